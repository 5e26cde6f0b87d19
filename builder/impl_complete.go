// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n fresh vertices (ids continue after existing ones).
//   • Emits each unordered pair {i,j} with i<j exactly once, as a
//     symmetric edge pair, giving n(n-1) directed edges.
//   • Never touches the RNG.
//
// Complexity:
//   • Time: O(n²) edge emission.
//   • Space: O(n) extra for the id slice.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j.

package builder

// Complete returns a Constructor that builds the complete contact graph K_n.
// Random(n, 1) delegates here.
func Complete(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinVertices); err != nil {
			return err
		}

		ids, err := addVertices(MethodComplete, t, n)
		if err != nil {
			return err
		}
		if err = addCompleteEdges(MethodComplete, t.Graph, ids); err != nil {
			return err
		}
		t.Kind = KindComplete

		return nil
	}
}
