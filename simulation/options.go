package simulation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/contagion/compartment"
)

// Option configures an Engine. Option constructors panic on meaningless
// values; NewEngine never does.
type Option func(*Engine)

// Defaults.
const (
	DefaultTimeStep      = 1.0
	DefaultBaseViralLoad = 1.0
)

// WithBehavior selects the node behavior (default compartment.SIR).
func WithBehavior(b compartment.Behavior) Option {
	if b == nil {
		panic("simulation: WithBehavior(nil)")
	}
	return func(e *Engine) { e.behavior = b }
}

// WithTimeStep sets the tick length. Panics unless dt > 0.
func WithTimeStep(dt float64) Option {
	if !(dt > 0) {
		panic(fmt.Sprintf("simulation: WithTimeStep(%g) must be > 0", dt))
	}
	return func(e *Engine) { e.timeStep = dt }
}

// WithBaseViralLoad sets the load handed to each new infection. Panics on
// negative values.
func WithBaseViralLoad(v float64) Option {
	if !(v >= 0) {
		panic(fmt.Sprintf("simulation: WithBaseViralLoad(%g) must be >= 0", v))
	}
	return func(e *Engine) { e.baseViralLoad = v }
}

// WithSeed gives the engine its own deterministic random stream.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand sets the random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulation: WithRand(nil)")
	}
	return func(e *Engine) { e.rng = r }
}

// WithObserver sets the notification sink (default NopObserver).
func WithObserver(o Observer) Option {
	if o == nil {
		panic("simulation: WithObserver(nil)")
	}
	return func(e *Engine) { e.observer = o }
}
