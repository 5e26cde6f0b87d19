package simulation_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/compartment"
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/simulation"
)

const (
	S = compartment.Susceptible
	E = compartment.Exposed
	I = compartment.Infectious
	R = compartment.Removed
)

// chain builds 0→1 with the given base infection chance.
func chain(t *testing.T, chance float64) *builder.Topology {
	t.Helper()
	topo, err := builder.Build([]builder.BuilderOption{builder.WithBaseInfectChance(chance)},
		builder.FromEdges(2, []core.Edge{{From: 0, To: 1}}))
	require.NoError(t, err)

	return topo
}

func newEngine(t *testing.T, topo *builder.Topology, opts ...simulation.Option) *simulation.Engine {
	t.Helper()
	e, err := simulation.NewEngine(topo, append([]simulation.Option{simulation.WithSeed(1)}, opts...)...)
	require.NoError(t, err)

	return e
}

func TestRun_TwoVertexChain(t *testing.T) {
	e := newEngine(t, chain(t, 1))
	_, err := e.Run(10, []int{0}, 2, 0)
	require.NoError(t, err)

	want := []simulation.Event{
		{Time: 0, Vertex: 0, From: S, To: I, Alive: true},
		{Time: 0, Vertex: 1, From: S, To: I, Alive: true},
		{Time: 1, Vertex: 0, From: I, To: R, Alive: false},
		{Time: 2, Vertex: 1, From: I, To: R, Alive: false},
	}
	if diff := cmp.Diff(want, e.Events().Events()); diff != "" {
		t.Fatalf("event log mismatch (-want +got):\n%s", diff)
	}

	stats := e.LastRun()
	assert.True(t, stats.BurnedOut)
	assert.Equal(t, 3, stats.Ticks, "stops well before maxTime")
	assert.Equal(t, 2.0, stats.EndTime)
	assert.Equal(t, 2, stats.Infections)
	assert.Equal(t, []compartment.State{R, R}, e.States())
}

func TestRun_FailedExposureClearsLoad(t *testing.T) {
	e := newEngine(t, chain(t, 0))
	_, err := e.Run(10, []int{0}, 3, 0)
	require.NoError(t, err)

	rec, ok := e.Record(1)
	require.True(t, ok)
	assert.Equal(t, S, rec.State)
	assert.Zero(t, rec.ViralLoad)
	assert.Equal(t, 3, e.LastRun().Ticks)
}

func TestRun_SEIRIncubates(t *testing.T) {
	e := newEngine(t, chain(t, 1), simulation.WithBehavior(compartment.SEIR{}))
	_, err := e.Run(20, []int{0}, 1, 1)
	require.NoError(t, err)

	want := []simulation.Event{
		{Time: 0, Vertex: 0, From: S, To: E, Alive: true},
		{Time: 1, Vertex: 0, From: E, To: I, Alive: true},
		{Time: 1, Vertex: 1, From: S, To: E, Alive: true},
		{Time: 2, Vertex: 0, From: I, To: R, Alive: false},
		{Time: 3, Vertex: 1, From: E, To: I, Alive: true},
		{Time: 4, Vertex: 1, From: I, To: R, Alive: false},
	}
	if diff := cmp.Diff(want, e.Events().Events()); diff != "" {
		t.Fatalf("event log mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MaxTimeBoundsTicks(t *testing.T) {
	e := newEngine(t, chain(t, 0), simulation.WithTimeStep(0.5))
	_, err := e.Run(1, []int{0}, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, e.LastRun().Ticks)
	assert.False(t, e.LastRun().BurnedOut)
	assert.Equal(t, []compartment.State{I, S}, e.States())
}

func TestRun_ResetsBetweenRuns(t *testing.T) {
	e := newEngine(t, chain(t, 1))
	_, err := e.Run(10, []int{0}, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, e.Events().Len())

	// Seeding only vertex 1 (no out-edges) must start from a clean slate.
	_, err = e.Run(10, []int{1}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []simulation.Event{
		{Time: 0, Vertex: 1, From: S, To: I, Alive: true},
		{Time: 1, Vertex: 1, From: I, To: R, Alive: false},
	}, e.Events().Events())
	assert.Equal(t, []compartment.State{S, R}, e.States())
}

func TestRun_DuplicateSeeds(t *testing.T) {
	e := newEngine(t, chain(t, 0))
	_, err := e.Run(10, []int{0, 0}, 1, 0)
	require.NoError(t, err)
	require.Len(t, e.Events().At(0), 1)
	assert.Equal(t, 0, e.Events().At(0)[0].Vertex)
}

func TestRun_Errors(t *testing.T) {
	e := newEngine(t, chain(t, 1))
	_, err := e.Run(10, []int{2}, 1, 0)
	assert.ErrorIs(t, err, simulation.ErrSeedNotFound)
	_, err = e.Run(10, []int{-1}, 1, 0)
	assert.ErrorIs(t, err, simulation.ErrSeedNotFound)
	_, err = e.Run(10, []int{0}, -1, 0)
	assert.ErrorIs(t, err, simulation.ErrInvalidDuration)

	inf, nan := math.Inf(1), math.NaN()
	for name, args := range map[string][3]float64{
		"infinite maxTime":    {inf, 1, 0},
		"NaN maxTime":         {nan, 1, 0},
		"infinite duration":   {10, inf, 0},
		"NaN duration":        {10, nan, 0},
		"infinite incubation": {10, 1, inf},
	} {
		_, err = e.Run(args[0], []int{0}, args[1], args[2])
		assert.ErrorIs(t, err, simulation.ErrInvalidDuration, name)
	}
	assert.ErrorIs(t, e.SetTimeStep(inf), simulation.ErrInvalidTimeStep)

	require.NoError(t, e.SetTimeStep(0))
	_, err = e.Run(10, []int{0}, 1, 0)
	assert.ErrorIs(t, err, simulation.ErrInvalidTimeStep)
	assert.ErrorIs(t, e.SetTimeStep(-1), simulation.ErrInvalidTimeStep)

	_, err = simulation.NewEngine(nil)
	assert.ErrorIs(t, err, simulation.ErrNilTopology)
}

func TestInfectChances(t *testing.T) {
	e := newEngine(t, chain(t, 0))
	require.NoError(t, e.SetBaseInfectChance(1))
	_, err := e.Run(10, []int{0}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, e.LastRun().Infections)

	require.NoError(t, e.ReplaceInfectChances([]float64{1, 0}))
	_, err = e.Run(10, []int{0}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, e.LastRun().Infections)

	assert.ErrorIs(t, e.ReplaceInfectChances([]float64{1}), simulation.ErrLengthMismatch)
	assert.ErrorIs(t, e.ReplaceInfectChances([]float64{1, 2}), simulation.ErrInvalidProbability)
	assert.ErrorIs(t, e.SetBaseInfectChance(-0.1), simulation.ErrInvalidProbability)
	rec, _ := e.Record(1)
	assert.Zero(t, rec.BaseInfectChance, "failed replace leaves chances untouched")
}

// brokenBehavior reports a state outside the four compartments.
type brokenBehavior struct{ compartment.SIR }

func (brokenBehavior) Update(*compartment.Record, float64) compartment.State {
	return compartment.State(9)
}

func TestRun_PanicsOnUnknownState(t *testing.T) {
	e := newEngine(t, chain(t, 1), simulation.WithBehavior(brokenBehavior{}))
	assert.PanicsWithValue(t, "simulation: invalid state state(9) for vertex 0 at time 0", func() {
		_, _ = e.Run(10, []int{0}, 2, 0)
	})
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { simulation.WithTimeStep(0) })
	assert.Panics(t, func() { simulation.WithBaseViralLoad(-1) })
	assert.Panics(t, func() { simulation.WithBehavior(nil) })
	assert.Panics(t, func() { simulation.WithRand(nil) })
	assert.Panics(t, func() { simulation.WithObserver(nil) })
}

func randomTopology(t *testing.T, seed int64) *builder.Topology {
	t.Helper()
	topo, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed), builder.WithBaseInfectChance(0.3)},
		builder.SmallWorld(200, 6, 0.1))
	require.NoError(t, err)

	return topo
}

func TestDeterminism(t *testing.T) {
	for _, b := range []compartment.Behavior{compartment.SIR{}, compartment.SEIR{}, compartment.SEIRSuperspreading{}} {
		run := func() *simulation.Engine {
			e := newEngine(t, randomTopology(t, 5), simulation.WithBehavior(b), simulation.WithSeed(42))
			_, err := e.Run(50, []int{0, 100}, 3, 1)
			require.NoError(t, err)
			return e
		}
		a, c := run(), run()
		assert.Equal(t, a.Topology().Graph.Edges(), c.Topology().Graph.Edges())
		if diff := cmp.Diff(a.Events().Events(), c.Events().Events()); diff != "" {
			t.Fatalf("%s: event logs differ (-a +c):\n%s", b.Name(), diff)
		}
		assert.Greater(t, a.Events().Len(), 4, b.Name())
	}
}

func TestBranch_SharesTopologyCopiesState(t *testing.T) {
	parent := newEngine(t, randomTopology(t, 8))
	_, err := parent.Run(30, []int{3}, 2, 0)
	require.NoError(t, err)
	before := parent.Events().Events()

	child := parent.Branch(simulation.WithSeed(9))
	assert.Same(t, parent.Topology(), child.Topology())
	assert.Equal(t, before, child.Events().Events())

	_, err = child.Run(30, []int{7}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, before, parent.Events().Events(), "parent log untouched by branch")

	// Seeded parents branch deterministically.
	p1 := newEngine(t, randomTopology(t, 8))
	p2 := newEngine(t, randomTopology(t, 8))
	b1, b2 := p1.Branch(), p2.Branch()
	_, err = b1.Run(30, []int{1}, 2, 0)
	require.NoError(t, err)
	_, err = b2.Run(30, []int{1}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, b1.Events().Events(), b2.Events().Events())
}

func TestRunForSeeds(t *testing.T) {
	e := newEngine(t, chain(t, 1))
	snaps, err := e.RunForSeeds(10, []int{0}, 3, 2, 0)
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	for _, s := range snaps {
		assert.Equal(t, 4, s.Events.Len())
	}
	assert.NotEqual(t, snaps[0].RunID, snaps[1].RunID)

	_, err = e.RunForSeeds(10, []int{5}, 1, 2, 0)
	assert.ErrorIs(t, err, simulation.ErrSeedNotFound)
}

func TestRunForRandomSeed(t *testing.T) {
	e := newEngine(t, randomTopology(t, 3))
	snaps, err := e.RunForRandomSeed(20, 4, 2, 1)
	require.NoError(t, err)
	require.Len(t, snaps, 4)
	for _, s := range snaps {
		first := s.Events.At(0)
		require.NotEmpty(t, first)
		assert.Equal(t, S, first[0].From)
	}
}
