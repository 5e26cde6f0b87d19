package metrics

import (
	"github.com/katalvlaran/contagion/simulation"
)

// Observer feeds engine notifications into a Registry. It keeps no
// per-run state: labels come from RunStats, so one Observer may be shared
// by an engine and all of its branches running concurrently.
type Observer struct {
	reg *Registry
}

// NewObserver returns an Observer recording into reg.
func NewObserver(reg *Registry) *Observer {
	return &Observer{reg: reg}
}

var _ simulation.Observer = (*Observer)(nil)

// RunStarted counts the run as in flight.
func (o *Observer) RunStarted(simulation.RunInfo) {
	o.reg.RunsInFlight.Inc()
}

// Transition counts one state change by target compartment.
func (o *Observer) Transition(e simulation.Event) {
	o.reg.TransitionsTotal.WithLabelValues(e.To.String()).Inc()
}

// RunFinished records the run summary and leaves the in-flight gauge.
func (o *Observer) RunFinished(stats simulation.RunStats) {
	o.reg.RunsInFlight.Dec()
	o.reg.RecordRun(stats.Topology, stats.Behavior, stats.Ticks, stats.Infections, stats.BurnedOut, stats.Elapsed)
}
