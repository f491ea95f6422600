package service

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"arcadia/config"
	"arcadia/domain/auction"
	"arcadia/domain/leaderboard"
	"arcadia/domain/registry"
	"arcadia/infra/metrics"
	"arcadia/infra/sequence"
)

/*
Arcade is the ONLY write entry point into the game indexes.

Coordination between:
- domain (registry, leaderboard, auction)
- infra (sequence, metrics)
happens here. Not safe for concurrent use; wrap it in a mutex if several
goroutines must share one.
*/
type Arcade struct {
	session string
	players *registry.Registry
	board   *leaderboard.Leaderboard
	market  *auction.Index
	seq     *sequence.Sequencer
	metrics *metrics.Metrics
	log     *slog.Logger
}

// Standing is one leaderboard row joined with the player's registered name.
type Standing struct {
	Rank     int
	PlayerID int32
	Name     string
	Score    int32
}

// NewArcade wires all dependencies. A nil logger discards output.
func NewArcade(
	players *registry.Registry,
	board *leaderboard.Leaderboard,
	market *auction.Index,
	seq *sequence.Sequencer,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Arcade {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	session := uuid.NewString()
	return &Arcade{
		session: session,
		players: players,
		board:   board,
		market:  market,
		seq:     seq,
		metrics: m,
		log:     logger.With(slog.String("session", session)),
	}
}

// FromConfig builds the three indexes from cfg and registers metrics on reg.
func FromConfig(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) *Arcade {
	opts := []leaderboard.Option{leaderboard.WithMaxLevel(cfg.Leaderboard.MaxLevel)}
	if cfg.Leaderboard.Seed != 0 {
		opts = append(opts, leaderboard.WithSeed(cfg.Leaderboard.Seed))
	}
	var regOpts []registry.Option
	if cfg.Registry.Grow {
		regOpts = append(regOpts, registry.WithGrowth())
	}
	return NewArcade(
		registry.NewWithCapacity(cfg.Registry.Capacity, regOpts...),
		leaderboard.New(opts...),
		auction.New(),
		sequence.New(0),
		metrics.New(reg),
		logger,
	)
}

// Session identifies this arcade instance in logs.
func (a *Arcade) Session() string { return a.session }

// LastSeq returns the number of the most recent command.
func (a *Arcade) LastSeq() sequence.Seq { return a.seq.Current() }

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// RegisterPlayer stores or renames a player. A full registry yields an error
// wrapping registry.ErrCapacityExceeded; the registry is left unchanged.
func (a *Arcade) RegisterPlayer(id int32, name string) (sequence.Seq, error) {
	start := time.Now()
	seq := a.seq.Next()

	if err := a.players.Insert(id, name); err != nil {
		a.metrics.Observe(metrics.Registry, "insert", metrics.ResultError, start)
		a.log.Warn("register rejected",
			seq.Attr(),
			slog.Int("player", int(id)),
			slog.Int("capacity", a.players.Capacity()),
			slog.Any("err", err),
		)
		return seq, fmt.Errorf("register player %d: %w", id, err)
	}

	a.metrics.Observe(metrics.Registry, "insert", metrics.ResultOK, start)
	a.metrics.SetEntries(metrics.Registry, a.players.Len())
	a.log.Debug("player registered",
		seq.Attr(),
		slog.Int("player", int(id)),
		slog.String("name", name),
	)
	return seq, nil
}

// RecordScore sets a player's score, replacing the previous one.
func (a *Arcade) RecordScore(id, score int32) sequence.Seq {
	start := time.Now()
	seq := a.seq.Next()

	a.board.AddScore(id, score)

	a.metrics.Observe(metrics.Leaderboard, "add_score", metrics.ResultOK, start)
	a.metrics.SetEntries(metrics.Leaderboard, a.board.Len())
	a.log.Debug("score recorded",
		seq.Attr(),
		slog.Int("player", int(id)),
		slog.Int("score", int(score)),
	)
	return seq
}

// RemovePlayer drops a player from the leaderboard. The registry has no
// removal, so the name stays registered.
func (a *Arcade) RemovePlayer(id int32) sequence.Seq {
	start := time.Now()
	seq := a.seq.Next()

	before := a.board.Len()
	a.board.RemovePlayer(id)
	result := metrics.ResultOK
	if a.board.Len() == before {
		result = metrics.ResultMiss
	}

	a.metrics.Observe(metrics.Leaderboard, "remove", result, start)
	a.metrics.SetEntries(metrics.Leaderboard, a.board.Len())
	a.log.Debug("player removed",
		seq.Attr(),
		slog.Int("player", int(id)),
		slog.String("result", result),
	)
	return seq
}

// ListItem puts an item up for auction or re-prices it.
func (a *Arcade) ListItem(id, price int32) sequence.Seq {
	start := time.Now()
	seq := a.seq.Next()

	a.market.InsertItem(id, price)

	a.metrics.Observe(metrics.Auction, "insert", metrics.ResultOK, start)
	a.metrics.SetEntries(metrics.Auction, a.market.Len())
	a.log.Debug("item listed",
		seq.Attr(),
		slog.Int("item", int(id)),
		slog.Int("price", int(price)),
	)
	return seq
}

// DelistItem withdraws an item. Unknown items are ignored.
func (a *Arcade) DelistItem(id int32) sequence.Seq {
	start := time.Now()
	seq := a.seq.Next()

	before := a.market.Len()
	a.market.DeleteItem(id)
	result := metrics.ResultOK
	if a.market.Len() == before {
		result = metrics.ResultMiss
	}

	a.metrics.Observe(metrics.Auction, "delete", result, start)
	a.metrics.SetEntries(metrics.Auction, a.market.Len())
	a.log.Debug("item delisted",
		seq.Attr(),
		slog.Int("item", int(id)),
		slog.String("result", result),
	)
	return seq
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// LookupPlayer returns the registered name, or "" and false.
func (a *Arcade) LookupPlayer(id int32) (string, bool) {
	start := time.Now()
	ok := a.players.Contains(id)
	result := metrics.ResultOK
	if !ok {
		result = metrics.ResultMiss
	}
	a.metrics.Observe(metrics.Registry, "search", result, start)
	if !ok {
		return "", false
	}
	return a.players.Search(id), true
}

// TopPlayers returns the best n players, best first. n <= 0 yields none.
func (a *Arcade) TopPlayers(n int) []Standing {
	start := time.Now()
	entries := a.board.TopEntries(n)
	out := make([]Standing, 0, len(entries))
	for i, e := range entries {
		out = append(out, Standing{
			Rank:     i + 1,
			PlayerID: e.PlayerID,
			Name:     a.players.Search(e.PlayerID),
			Score:    e.Score,
		})
	}
	a.metrics.Observe(metrics.Leaderboard, "top_n", metrics.ResultOK, start)
	return out
}

// ItemsByPrice returns all listed items, cheapest first.
func (a *Arcade) ItemsByPrice() []auction.Item {
	start := time.Now()
	items := a.market.Items()
	a.metrics.Observe(metrics.Auction, "in_order", metrics.ResultOK, start)
	return items
}

// ItemsInRange returns listed items priced within [lo, hi], cheapest first.
func (a *Arcade) ItemsInRange(lo, hi int32) []auction.Item {
	start := time.Now()
	items := a.market.PriceRange(lo, hi)
	a.metrics.Observe(metrics.Auction, "range", metrics.ResultOK, start)
	return items
}
