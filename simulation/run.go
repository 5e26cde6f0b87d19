package simulation

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/contagion/compartment"
)

// Run resets every record and the event log, infects seeds at time 0 with
// the base viral load and advances ticks of TimeStep from 0 while the time
// is below maxTime and at least one vertex is infected. It returns the
// wall-clock time spent.
//
// Errors (nothing is reset on error):
//   - ErrInvalidTimeStep if TimeStep is not positive and finite.
//   - ErrInvalidDuration if maxTime is NaN or infinite, or if
//     infectionDuration or incubationDelay is negative, NaN or infinite.
//   - ErrSeedNotFound if a seed lies outside [0,n).
//
// Run panics if the behavior yields a state outside the four compartments.
func (e *Engine) Run(maxTime float64, seeds []int, infectionDuration, incubationDelay float64) (time.Duration, error) {
	if !(e.timeStep > 0) || !finite(e.timeStep) {
		return 0, fmt.Errorf("Run: timeStep=%g: %w", e.timeStep, ErrInvalidTimeStep)
	}
	if !finite(maxTime) {
		return 0, fmt.Errorf("Run: maxTime=%g: %w", maxTime, ErrInvalidDuration)
	}
	if !(infectionDuration >= 0) || !(incubationDelay >= 0) || !finite(infectionDuration) || !finite(incubationDelay) {
		return 0, fmt.Errorf("Run: duration=%g incubation=%g: %w", infectionDuration, incubationDelay, ErrInvalidDuration)
	}
	for _, s := range seeds {
		if s < 0 || s >= len(e.records) {
			return 0, fmt.Errorf("Run: seed %d not in [0,%d): %w", s, len(e.records), ErrSeedNotFound)
		}
	}

	start := time.Now()
	r := runner{
		Engine:     e,
		duration:   infectionDuration,
		incubation: incubationDelay,
		candidate:  make([]bool, len(e.records)),
	}
	e.reset()

	stats := RunStats{
		RunID:    uuid.New(),
		Behavior: e.behavior.Name(),
		Topology: string(e.topo.Kind),
		Seeds:    append([]int(nil), seeds...),
	}
	e.observer.RunStarted(RunInfo{
		RunID:    stats.RunID,
		Vertices: len(e.records),
		Seeds:    append([]int(nil), seeds...),
		MaxTime:  maxTime,
		TimeStep: e.timeStep,
		Behavior: stats.Behavior,
		Topology: stats.Topology,
	})

	for _, s := range seeds {
		r.infect(0, s, e.baseViralLoad)
	}
	sort.Ints(e.tracked)

	for i := 0; ; i++ {
		now := float64(i) * e.timeStep
		if now >= maxTime {
			break
		}
		r.tick(now)
		stats.Ticks++
		stats.EndTime = now
		if e.infected == 0 {
			stats.BurnedOut = true
			break
		}
	}

	stats.Infections = r.infections
	stats.Events = e.log.Len()
	stats.Elapsed = time.Since(start)
	e.lastRun = stats
	e.observer.RunFinished(stats)

	return stats.Elapsed, nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// LastRun returns the statistics of the most recent Run.
func (e *Engine) LastRun() RunStats { return e.lastRun }

func (e *Engine) reset() {
	for v := range e.records {
		e.records[v].Reset()
	}
	e.log.Clear()
	e.tracked = e.tracked[:0]
	e.infected = 0
}

// runner holds per-run scratch space.
type runner struct {
	*Engine
	duration   float64
	incubation float64
	infections int

	candidate  []bool
	candidates []int
}

// record logs the pending transition of v at time now.
func (r *runner) record(now float64, v int) {
	rec := &r.records[v]
	rec.Changed = false
	ev := Event{Time: now, Vertex: v, From: rec.PrevState, To: rec.State, Alive: rec.IsAlive()}
	r.log.Record(ev)
	r.observer.Transition(ev)
}

// infect moves susceptible v into its first infected state at time now,
// carrying load.
func (r *runner) infect(now float64, v int, load float64) {
	rec := &r.records[v]
	if rec.State != compartment.Susceptible {
		return
	}
	r.behavior.Infect(rec, r.duration, r.incubation, load)
	if rec.Changed {
		r.record(now, v)
	}
	if !rec.MarkedInfected {
		rec.MarkedInfected = true
		r.infected++
	}
	r.tracked = append(r.tracked, v)
	r.infections++
}

// tick runs one time step.
func (r *runner) tick(now float64) {
	kept := r.tracked[:0]
	for _, v := range r.tracked {
		rec := &r.records[v]
		state := r.behavior.Update(rec, r.timeStep)
		if rec.Changed {
			r.record(now, v)
		}

		switch state {
		case compartment.Susceptible:
			continue
		case compartment.Exposed:
		case compartment.Infectious:
			r.spread(v)
		case compartment.Removed:
			if rec.MarkedInfected {
				rec.MarkedInfected = false
				r.infected--
			}
			if !rec.IsAlive() {
				continue
			}
		default:
			panic(fmt.Sprintf("simulation: invalid state %v for vertex %d at time %g", state, v, now))
		}
		kept = append(kept, v)
	}
	r.tracked = kept

	sort.Ints(r.candidates)
	for _, v := range r.candidates {
		r.candidate[v] = false
		r.tryInfect(now, v)
	}
	r.candidates = r.candidates[:0]
	sort.Ints(r.tracked)
}

// spread pushes u's viral load onto its susceptible out-neighbours.
func (r *runner) spread(u int) {
	load := r.records[u].ViralLoad
	for _, v := range r.targets[r.offsets[u]:r.offsets[u+1]] {
		rec := &r.records[v]
		if rec.State != compartment.Susceptible {
			continue
		}
		rec.ViralLoad += load
		if !r.candidate[v] {
			r.candidate[v] = true
			r.candidates = append(r.candidates, v)
		}
	}
}

// tryInfect draws once against v's threshold; failure clears its load.
func (r *runner) tryInfect(now float64, v int) {
	rec := &r.records[v]
	threshold := rec.Threshold()
	draw := r.rng.Float64()
	if draw <= threshold {
		r.infect(now, v, r.behavior.TransferViralLoad(threshold, draw, r.baseViralLoad))
		return
	}
	rec.ViralLoad = 0
}
