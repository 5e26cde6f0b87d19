package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/compartment"
)

// Engine runs epidemics over one topology.
type Engine struct {
	topo *builder.Topology

	// CSR out-adjacency of topo.Graph, shared by branches.
	offsets []int
	targets []int

	behavior      compartment.Behavior
	timeStep      float64
	baseViralLoad float64
	rng           *rand.Rand
	observer      Observer

	// Run state.
	records  []compartment.Record
	log      *EventLog
	tracked  []int
	infected int
	lastRun  RunStats
}

// NewEngine returns an engine over topo. The topology must not be mutated
// afterwards.
func NewEngine(topo *builder.Topology, opts ...Option) (*Engine, error) {
	if topo == nil || topo.Graph == nil {
		return nil, fmt.Errorf("NewEngine: %w", ErrNilTopology)
	}
	n := topo.VertexCount()
	if len(topo.BaseInfectChance) != n {
		return nil, fmt.Errorf("NewEngine: %d base chances for %d vertices: %w",
			len(topo.BaseInfectChance), n, ErrLengthMismatch)
	}

	e := &Engine{
		topo:          topo,
		behavior:      compartment.SIR{},
		timeStep:      DefaultTimeStep,
		baseViralLoad: DefaultBaseViralLoad,
		observer:      NopObserver{},
		log:           NewEventLog(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.offsets, e.targets = topo.Graph.Adjacency()
	e.records = make([]compartment.Record, n)
	for v := range e.records {
		e.records[v] = compartment.NewRecord(topo.BaseInfectChance[v])
	}

	return e, nil
}

// Topology returns the shared topology.
func (e *Engine) Topology() *builder.Topology { return e.topo }

// Behavior returns the node behavior.
func (e *Engine) Behavior() compartment.Behavior { return e.behavior }

// VertexCount returns n.
func (e *Engine) VertexCount() int { return len(e.records) }

// TimeStep returns the tick length.
func (e *Engine) TimeStep() float64 { return e.timeStep }

// SetTimeStep changes the tick length. Zero is accepted here but rejected
// by Run.
func (e *Engine) SetTimeStep(dt float64) error {
	if !(dt >= 0) || !finite(dt) {
		return fmt.Errorf("SetTimeStep: dt=%g: %w", dt, ErrInvalidTimeStep)
	}
	e.timeStep = dt

	return nil
}

// SetBaseInfectChance gives every vertex the same base infection chance.
func (e *Engine) SetBaseInfectChance(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("SetBaseInfectChance: p=%g: %w", p, ErrInvalidProbability)
	}
	for v := range e.records {
		e.records[v].BaseInfectChance = p
	}

	return nil
}

// ReplaceInfectChances sets per-vertex base infection chances. The slice
// length must equal n and nothing changes on error.
func (e *Engine) ReplaceInfectChances(chances []float64) error {
	if len(chances) != len(e.records) {
		return fmt.Errorf("ReplaceInfectChances: got %d, want %d: %w",
			len(chances), len(e.records), ErrLengthMismatch)
	}
	for v, p := range chances {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("ReplaceInfectChances: vertex %d p=%g: %w", v, p, ErrInvalidProbability)
		}
	}
	for v, p := range chances {
		e.records[v].BaseInfectChance = p
	}

	return nil
}

// Record returns a copy of vertex v's record.
func (e *Engine) Record(v int) (compartment.Record, bool) {
	if v < 0 || v >= len(e.records) {
		return compartment.Record{}, false
	}

	return e.records[v], true
}

// States returns the current state of every vertex.
func (e *Engine) States() []compartment.State {
	out := make([]compartment.State, len(e.records))
	for v := range e.records {
		out[v] = e.records[v].State
	}

	return out
}

// Events returns the live event log of the last run. Use Snapshot for a
// copy that survives the next Run.
func (e *Engine) Events() *EventLog { return e.log }

// Branch returns an independent engine sharing the topology and adjacency
// with a value copy of the run state. Unless opts override it, the branch
// draws from a stream seeded by the parent's, so branching is
// deterministic for a seeded parent.
func (e *Engine) Branch(opts ...Option) *Engine {
	b := &Engine{
		topo:          e.topo,
		offsets:       e.offsets,
		targets:       e.targets,
		behavior:      e.behavior,
		timeStep:      e.timeStep,
		baseViralLoad: e.baseViralLoad,
		observer:      e.observer,
		records:       append([]compartment.Record(nil), e.records...),
		log:           e.log.Clone(),
		tracked:       append([]int(nil), e.tracked...),
		infected:      e.infected,
		lastRun:       e.lastRun,
		rng:           rand.New(rand.NewSource(e.rng.Int63())),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}
