// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng             = nil   (stochastic constructors return ErrNeedRandSource)
//   • infectChanceFn  = constant defaultBaseInfectChance

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Per-vertex base infection chance.
	infectChanceFn func(v int) float64
}

const defaultBaseInfectChance = 0.0

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		infectChanceFn: func(int) float64 { return defaultBaseInfectChance },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
