package simulation

import "fmt"

// RunForSeeds repeats Run runs times with the same seeds and returns one
// snapshot per run.
func (e *Engine) RunForSeeds(maxTime float64, seeds []int, runs int, infectionDuration, incubationDelay float64) ([]*Snapshot, error) {
	if runs < 0 {
		return nil, fmt.Errorf("RunForSeeds: runs=%d: %w", runs, ErrInvalidDuration)
	}
	out := make([]*Snapshot, 0, runs)
	for i := 0; i < runs; i++ {
		if _, err := e.Run(maxTime, seeds, infectionDuration, incubationDelay); err != nil {
			return nil, fmt.Errorf("RunForSeeds: run %d: %w", i, err)
		}
		out = append(out, e.Snapshot())
	}

	return out, nil
}

// RunForRandomSeed repeats Run runs times, each seeded with one vertex
// drawn uniformly from the engine's stream.
func (e *Engine) RunForRandomSeed(maxTime float64, runs int, infectionDuration, incubationDelay float64) ([]*Snapshot, error) {
	if runs < 0 {
		return nil, fmt.Errorf("RunForRandomSeed: runs=%d: %w", runs, ErrInvalidDuration)
	}
	n := len(e.records)
	if n == 0 {
		return nil, fmt.Errorf("RunForRandomSeed: empty topology: %w", ErrSeedNotFound)
	}
	out := make([]*Snapshot, 0, runs)
	for i := 0; i < runs; i++ {
		seed := e.rng.Intn(n)
		if _, err := e.Run(maxTime, []int{seed}, infectionDuration, incubationDelay); err != nil {
			return nil, fmt.Errorf("RunForRandomSeed: run %d: %w", i, err)
		}
		out = append(out, e.Snapshot())
	}

	return out, nil
}
