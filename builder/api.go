// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Creates the Topology, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical topologies.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching the topology or the RNG.
//   - Add their own vertices (ids stay contiguous from 0).
//   - Preserve determinism for the same config and call order.
type Constructor func(t *Topology, cfg builderConfig) error

// Build creates an empty Topology, resolves the builder configuration from
// bopts, applies all constructors in order and finally assigns every
// vertex its base infection chance.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against the
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrInvalidProbability if the infection-chance function yields a value
//     outside [0,1].
//
// Construction is all-or-nothing: on error no Topology is returned.
func Build(bopts []BuilderOption, cons ...Constructor) (*Topology, error) {
	t := &Topology{Kind: KindCustom, Graph: core.NewGraph()}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	n := t.Graph.VertexCount()
	t.BaseInfectChance = make([]float64, n)
	for v := 0; v < n; v++ {
		p := cfg.infectChanceFn(v)
		if p < MinProbability || p > MaxProbability {
			return nil, fmt.Errorf("Build: base infection chance %g for vertex %d not in [0,1]: %w",
				p, v, ErrInvalidProbability)
		}
		t.BaseInfectChance[v] = p
	}

	return t, nil
}
