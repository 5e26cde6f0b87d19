package builder

import "fmt"

// EdgeDensity converts an average (undirected) vertex degree into the
// directed edge density expected by Random and Community:
//
//	density = 2 * avgDegree / (n - 1)
//
// so that Random(n, density) yields roughly avgDegree contacts per vertex
// independently of n. Errors: ErrTooFewVertices if n ≤ 1,
// ErrInvalidDegree if avgDegree is negative or exceeds n-1.
func EdgeDensity(n int, avgDegree float64) (float64, error) {
	if err := validateMin(MethodEdgeDensity, "n", n, 2); err != nil {
		return 0, err
	}
	if avgDegree < 0 || avgDegree > float64(n-1) {
		return 0, fmt.Errorf("%s: avgDegree=%g not in [0,%d]: %w", MethodEdgeDensity, avgDegree, n-1, ErrInvalidDegree)
	}

	return 2 * avgDegree / float64(n-1), nil
}
