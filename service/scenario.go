package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"arcadia/domain/auction"
	"arcadia/domain/inventory"
	"arcadia/domain/kernel"
	"arcadia/domain/navigator"
)

// ErrUnknownOp is returned for a scenario step whose op is not recognised.
var ErrUnknownOp = errors.New("unknown scenario op")

// Scenario ops.
const (
	OpRegister     = "register"
	OpLookup       = "lookup"
	OpScore        = "score"
	OpRemovePlayer = "remove_player"
	OpTop          = "top"
	OpListItem     = "list_item"
	OpDelistItem   = "delist_item"
	OpItems        = "items"
	OpLootSplit    = "loot_split"
	OpCarry        = "carry"
	OpDecode       = "decode"
	OpPath         = "path"
	OpSpanning     = "spanning"
	OpDistances    = "distances"
	OpSchedule     = "schedule"
)

// Scenario is a scripted session read from YAML.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps" validate:"dive"`
}

// Step is one scripted command. Only the fields its op reads are used.
type Step struct {
	Op string `yaml:"op" validate:"required"`

	ID    int32  `yaml:"id"`
	Name  string `yaml:"name"`
	Score int32  `yaml:"score"`
	Price int32  `yaml:"price"`
	N     int    `yaml:"n"`
	// Min and Max bound an items listing; either may be left out.
	Min *int32 `yaml:"min"`
	Max *int32 `yaml:"max"`
	// Expect, when set, must match the step's output line.
	Expect string `yaml:"expect"`

	Coins    []int            `yaml:"coins"`
	Capacity int              `yaml:"capacity"`
	Items    []inventory.Item `yaml:"items"`
	Text     string           `yaml:"text"`

	Cities     int                      `yaml:"cities" validate:"gte=0"`
	Edges      []navigator.Edge         `yaml:"edges"`
	Roads      []navigator.Road         `yaml:"roads"`
	Weighted   []navigator.WeightedRoad `yaml:"weighted"`
	Src        int                      `yaml:"src"`
	Dst        int                      `yaml:"dst"`
	GoldRate   int64                    `yaml:"gold_rate"`
	SilverRate int64                    `yaml:"silver_rate"`

	Tasks    string `yaml:"tasks"`
	CoolDown int    `yaml:"cool_down"`
}

// ErrExpectation is returned when a step's output differs from its Expect.
var ErrExpectation = errors.New("unexpected output")

var scenarioValidate = validator.New()

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := scenarioValidate.Struct(sc); err != nil {
		return Scenario{}, fmt.Errorf("validate scenario: %w", err)
	}
	return sc, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// Run executes every step in order and writes one output line per step to
// w. It stops at the first failing step; the error names the step index.
func (a *Arcade) Run(sc Scenario, w io.Writer) error {
	a.log.Info("scenario started",
		slog.String("scenario", sc.Name),
		slog.Int("steps", len(sc.Steps)),
	)
	for i, st := range sc.Steps {
		out, err := a.apply(st)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		if st.Expect != "" && st.Expect != out {
			return fmt.Errorf("step %d (%s): %w: got %q, want %q", i, st.Op, ErrExpectation, out, st.Expect)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	a.log.Info("scenario finished",
		slog.String("scenario", sc.Name),
		slog.Any("last_seq", a.LastSeq()),
	)
	return nil
}

// apply runs one step and renders its output line.
func (a *Arcade) apply(st Step) (string, error) {
	switch st.Op {
	case OpRegister:
		if _, err := a.RegisterPlayer(st.ID, st.Name); err != nil {
			return "", err
		}
		return fmt.Sprintf("registered %d", st.ID), nil

	case OpLookup:
		name, ok := a.LookupPlayer(st.ID)
		if !ok {
			return fmt.Sprintf("player %d: <none>", st.ID), nil
		}
		return fmt.Sprintf("player %d: %s", st.ID, name), nil

	case OpScore:
		a.RecordScore(st.ID, st.Score)
		return fmt.Sprintf("score %d = %d", st.ID, st.Score), nil

	case OpRemovePlayer:
		a.RemovePlayer(st.ID)
		return fmt.Sprintf("removed %d", st.ID), nil

	case OpTop:
		rows := a.TopPlayers(st.N)
		parts := make([]string, 0, len(rows))
		for _, r := range rows {
			parts = append(parts, fmt.Sprintf("%d:%d", r.PlayerID, r.Score))
		}
		return joinLine("top", parts), nil

	case OpListItem:
		a.ListItem(st.ID, st.Price)
		return fmt.Sprintf("listed %d @ %d", st.ID, st.Price), nil

	case OpDelistItem:
		a.DelistItem(st.ID)
		return fmt.Sprintf("delisted %d", st.ID), nil

	case OpItems:
		var items []auction.Item
		if st.Min != nil || st.Max != nil {
			lo, hi := int32(math.MinInt32), int32(math.MaxInt32)
			if st.Min != nil {
				lo = *st.Min
			}
			if st.Max != nil {
				hi = *st.Max
			}
			items = a.ItemsInRange(lo, hi)
		} else {
			items = a.ItemsByPrice()
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			parts = append(parts, fmt.Sprintf("%d@%d", it.ItemID, it.Price))
		}
		return joinLine("items", parts), nil

	case OpLootSplit:
		return fmt.Sprintf("loot_split %d", inventory.OptimizeLootSplit(st.Coins)), nil

	case OpCarry:
		return fmt.Sprintf("carry %d", inventory.MaximizeCarryValue(st.Capacity, st.Items)), nil

	case OpDecode:
		return fmt.Sprintf("decode %d", inventory.CountStringPossibilities(st.Text)), nil

	case OpPath:
		return fmt.Sprintf("path %t", navigator.PathExists(st.Cities, st.Edges, st.Src, st.Dst)), nil

	case OpSpanning:
		cost := navigator.MinSpanningCost(st.Cities, st.Roads, st.GoldRate, st.SilverRate)
		return fmt.Sprintf("spanning %d", cost), nil

	case OpDistances:
		return "distances " + navigator.SumShortestDistancesAsBinary(st.Cities, st.Weighted), nil

	case OpSchedule:
		return fmt.Sprintf("schedule %d", kernel.MinScheduleIntervals([]byte(st.Tasks), st.CoolDown)), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
}

func joinLine(head string, parts []string) string {
	if len(parts) == 0 {
		return head
	}
	return head + " " + strings.Join(parts, " ")
}
