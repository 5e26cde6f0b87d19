// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes construction by mutating a builderConfig
// instance before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBaseInfectChance gives every vertex the same base infection chance.
// Panics if p is outside [0,1].
func WithBaseInfectChance(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability {
		panic(fmt.Sprintf("builder: WithBaseInfectChance(%g) outside [0,1]", p))
	}
	return func(c *builderConfig) {
		c.infectChanceFn = func(int) float64 { return p }
	}
}

// WithInfectChanceFn assigns base infection chances per vertex. Values are
// checked by Build (ErrInvalidProbability). Panics on nil.
func WithInfectChanceFn(fn func(v int) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithInfectChanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.infectChanceFn = fn
	}
}
