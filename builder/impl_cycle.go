// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Ring 0—1—…—(n-1)—0 with mirrors; every vertex has degree 2.
//
// Complexity: O(n) time and space.

package builder

// Cycle returns a Constructor that builds the symmetric ring C_n.
func Cycle(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		ids, err := addVertices(MethodCycle, t, n)
		if err != nil {
			return err
		}
		if err = addRing(MethodCycle, t.Graph, ids); err != nil {
			return err
		}
		t.Kind = KindCycle

		return nil
	}
}
