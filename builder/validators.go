// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel with the
// method name and the offending value when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method, name string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) { // also rejects NaN
		return fmt.Errorf("%s: %s=%g not in [%.1f,%.1f]: %w",
			method, name, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand ensures cfg carries a random stream.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// validateSample ensures k items can be drawn from a pool of size pool.
func validateSample(method, name string, k, pool int) error {
	if k > pool {
		return fmt.Errorf("%s: %s=%d exceeds pool=%d: %w", method, name, k, pool, ErrSampleTooLarge)
	}

	return nil
}
