// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • W_n = C_{n-1} + hub, so n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Rim ids come first (ring order), the hub is the last id.
//   • Spokes hub—rim in rim order, with mirrors.
//
// Complexity: O(n) time and space.

package builder

// Wheel returns a Constructor that builds a rim cycle of n-1 vertices
// plus a hub joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		ids, err := addVertices(MethodWheel, t, n)
		if err != nil {
			return err
		}
		rim, hub := ids[:n-1], ids[n-1]
		if err = addRing(MethodWheel, t.Graph, rim); err != nil {
			return err
		}
		for _, v := range rim {
			if err = addSymmetric(MethodWheel, t.Graph, hub, v); err != nil {
				return err
			}
		}
		t.Kind = KindWheel

		return nil
	}
}
