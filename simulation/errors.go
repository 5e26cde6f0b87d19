package simulation

import "errors"

// ErrNilTopology indicates that NewEngine received no topology.
var ErrNilTopology = errors.New("simulation: topology is nil")

// ErrSeedNotFound indicates a seed vertex outside [0,n).
var ErrSeedNotFound = errors.New("simulation: seed vertex not found")

// ErrInvalidTimeStep indicates a negative or infinite time step, or a
// non-positive one at Run.
var ErrInvalidTimeStep = errors.New("simulation: invalid time step")

// ErrInvalidDuration indicates a negative or non-finite infection
// duration or incubation delay, a non-finite maxTime, or a negative run
// count.
var ErrInvalidDuration = errors.New("simulation: invalid duration")

// ErrInvalidProbability indicates an infection chance outside [0,1].
var ErrInvalidProbability = errors.New("simulation: probability out of range")

// ErrLengthMismatch indicates a per-vertex slice whose length is not n.
var ErrLengthMismatch = errors.New("simulation: length does not match vertex count")
