// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Chain 0—1—…—(n-1) with mirrors; endpoints have degree 1.
//
// Complexity: O(n) time and space.

package builder

// Path returns a Constructor that builds the symmetric chain P_n.
func Path(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		ids, err := addVertices(MethodPath, t, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addSymmetric(MethodPath, t.Graph, ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		t.Kind = KindPath

		return nil
	}
}
