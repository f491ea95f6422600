package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcadia/domain/registry"
)

const sessionScenario = `
name: session
steps:
  - {op: register, id: 1, name: Player1}
  - {op: score, id: 1, score: 1000}
  - {op: list_item, id: 1, price: 500}
  - {op: register, id: 2, name: Player2}
  - {op: score, id: 2, score: 1500}
  - {op: list_item, id: 2, price: 300}
  - {op: lookup, id: 1, expect: "player 1: Player1"}
  - {op: top, n: 2, expect: "top 2:1500 1:1000"}
  - {op: score, id: 1, score: 2000}
  - {op: list_item, id: 1, price: 700}
  - {op: top, n: 2, expect: "top 1:2000 2:1500"}
  - {op: remove_player, id: 1}
  - {op: delist_item, id: 1}
  - {op: top, n: 5, expect: "top 2:1500"}
  - {op: items, expect: "items 2@300"}
  - {op: lookup, id: 7, expect: "player 7: <none>"}
`

func TestRunSessionScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(sessionScenario))
	require.NoError(t, err)
	require.Len(t, sc.Steps, 16)

	a, _ := newTestArcade(t)
	var out bytes.Buffer
	require.NoError(t, a.Run(sc, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "registered 1", lines[0])
	assert.Equal(t, "items 2@300", lines[14])
}

const puzzleScenario = `
name: puzzles
steps:
  - {op: loot_split, coins: [1, 2, 4], expect: "loot_split 1"}
  - op: carry
    capacity: 5
    items: [{weight: 4, value: 10}, {weight: 3, value: 9}, {weight: 2, value: 5}]
    expect: "carry 14"
  - {op: decode, text: uuuu, expect: "decode 5"}
  - op: path
    cities: 3
    edges: [{u: 0, v: 1}, {u: 1, v: 2}]
    src: 0
    dst: 2
    expect: "path true"
  - op: spanning
    cities: 3
    gold_rate: 1
    silver_rate: 1
    roads: [{u: 0, v: 1, gold: 10}, {u: 1, v: 2, gold: 5}, {u: 0, v: 2, gold: 20}]
    expect: "spanning 15"
  - op: distances
    cities: 3
    weighted: [{u: 0, v: 1, length: 1}, {u: 1, v: 2, length: 2}]
    expect: "distances 110"
  - {op: schedule, tasks: AAB, cool_down: 2, expect: "schedule 4"}
  - {op: items, expect: "items"}
`

func TestRunPuzzleScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(puzzleScenario))
	require.NoError(t, err)

	a, _ := newTestArcade(t)
	var out bytes.Buffer
	require.NoError(t, a.Run(sc, &out))
	assert.Zero(t, a.LastSeq())
}

func TestRunStopsOnUnknownOp(t *testing.T) {
	sc, err := ParseScenario([]byte("steps:\n  - {op: lookup, id: 1}\n  - {op: teleport}\n"))
	require.NoError(t, err)

	a, _ := newTestArcade(t)
	var out bytes.Buffer
	err = a.Run(sc, &out)
	require.ErrorIs(t, err, ErrUnknownOp)
	assert.Contains(t, err.Error(), "step 1")
	assert.Equal(t, "player 1: <none>\n", out.String())
}

func TestRunReportsExpectationMismatch(t *testing.T) {
	sc, err := ParseScenario([]byte("steps:\n  - {op: decode, text: uu, expect: \"decode 3\"}\n"))
	require.NoError(t, err)

	a, _ := newTestArcade(t)
	err = a.Run(sc, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrExpectation)
	assert.Contains(t, err.Error(), `got "decode 2"`)
}

func TestRunPropagatesFullRegistry(t *testing.T) {
	steps := make([]Step, 0, registry.DefaultCapacity+1)
	for i := 0; i <= registry.DefaultCapacity; i++ {
		steps = append(steps, Step{Op: OpRegister, ID: int32(i * 1000), Name: "p"})
	}

	a, _ := newTestArcade(t)
	err := a.Run(Scenario{Name: "full", Steps: steps}, &bytes.Buffer{})
	require.ErrorIs(t, err, registry.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "step 101")
}

func TestParseScenarioRejectsMissingOp(t *testing.T) {
	_, err := ParseScenario([]byte("steps:\n  - {id: 3}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate scenario")
}

func TestLoadScenarioFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sessionScenario), 0o600))
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "session", sc.Name)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunItemsWithPriceBounds(t *testing.T) {
	a, _ := newTestArcade(t)
	sc, err := ParseScenario([]byte(`
steps:
  - {op: list_item, id: 1, price: 100}
  - {op: list_item, id: 2, price: 200}
  - {op: list_item, id: 3, price: 300}
  - {op: items, min: 150, max: 250, expect: "items 2@200"}
  - {op: items, min: 200, expect: "items 2@200 3@300"}
  - {op: items, max: 100, expect: "items 1@100"}
  - {op: items, min: 400, expect: "items"}
  - {op: items, expect: "items 1@100 2@200 3@300"}
`))
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, a.Run(sc, &out))
}
