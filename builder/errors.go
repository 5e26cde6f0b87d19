// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context (method, offending value) using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a count parameter (n, community size,
// branching factor) is smaller than the allowed minimum, including the
// empty vertex set.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability, density or proportion
// lies outside the closed interval [0,1] (or [0,1) where documented).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegree indicates a degree parameter that cannot be realised:
// negative, not below the vertex count, or with odd n*k.
var ErrInvalidDegree = errors.New("builder: invalid degree")

// ErrSampleTooLarge indicates a request for more items than the candidate
// pool holds (e.g. more vertices than supplied locations).
var ErrSampleTooLarge = errors.New("builder: sample exceeds candidate pool")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilFunc indicates a required callback (kernel, position source) was nil.
var ErrNilFunc = errors.New("builder: nil function argument")

// ErrConstructFailed indicates that the builder could not apply a
// mutation without breaking invariants (nil constructor, rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")
