// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • The first appended vertex is the hub; every other vertex is a leaf
//     connected to it symmetrically.
//
// Complexity: O(n) time and space.

package builder

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		ids, err := addVertices(MethodStar, t, n)
		if err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err = addSymmetric(MethodStar, t.Graph, hub, leaf); err != nil {
				return err
			}
		}
		t.Kind = KindStar

		return nil
	}
}
