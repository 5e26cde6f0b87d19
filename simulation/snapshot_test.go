package simulation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/simulation"
)

func TestSnapshot_NameAndTotals(t *testing.T) {
	e := newEngine(t, chain(t, 1))
	_, err := e.Run(10, []int{0}, 2, 0)
	require.NoError(t, err)

	s := e.Snapshot()
	s.CreatedAt = time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, "edges-2-custom-sir", s.Name("edges", false))
	assert.Equal(t, "edges-2-custom-sir-20240305070809", s.Name("edges", true))
	assert.Equal(t, []int{0, 1}, s.Vertices())
	assert.Equal(t, e.LastRun().RunID, s.RunID)

	totals := s.Totals()
	require.Len(t, totals, 3)
	assert.Equal(t, [4]int{0, 0, 2, 0}, totals[0].Counts)
	assert.Equal(t, [4]int{0, 0, 1, 1}, totals[1].Counts)
	assert.Equal(t, [4]int{0, 0, 0, 2}, totals[2].Counts)
	assert.Equal(t, 1.0, s.AttackRate())

	// The snapshot survives the next run.
	_, err = e.Run(10, []int{1}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Events.Len())
}

func TestSnapshot_SeedDistances(t *testing.T) {
	topo, err := builder.Build(nil, builder.FromEdges(6, []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 3, To: 2}, {From: 4, To: 5},
	}))
	require.NoError(t, err)
	e := newEngine(t, topo)
	_, err = e.Run(5, []int{3, 0}, 1, 0)
	require.NoError(t, err)

	s := e.Snapshot()
	assert.Equal(t, []int{3, 0}, s.Stats.Seeds)
	assert.Equal(t, "custom", s.Stats.Topology)
	assert.Equal(t, "sir", s.Stats.Behavior)

	dist, err := s.SeedDistances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0, -1, -1}, dist)

	reachable, maxHops, err := s.Reach(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, reachable)
	assert.Equal(t, 1, maxHops)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.SeedDistances(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var counted countingObserver
	e := newEngine(t, chain(t, 1), simulation.WithObserver(simulation.Observers{
		simulation.NewLogObserver(logger), &counted,
	}))
	_, err := e.Run(10, []int{0}, 2, 0)
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, "simulation", rec["component"])
		msgs = append(msgs, rec["msg"].(string))
	}
	assert.Equal(t, "Run started.", msgs[0])
	assert.Equal(t, "Run finished.", msgs[len(msgs)-1])
	assert.Contains(t, msgs, "Epidemic burned out.")
	assert.Equal(t, 1, counted.started)
	assert.Equal(t, 4, counted.transitions)
	assert.Equal(t, 1, counted.finished)
}

type countingObserver struct {
	started, transitions, finished int
}

func (c *countingObserver) RunStarted(simulation.RunInfo)   { c.started++ }
func (c *countingObserver) Transition(simulation.Event)     { c.transitions++ }
func (c *countingObserver) RunFinished(simulation.RunStats) { c.finished++ }
