// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices in row-major order: cell (r,c) gets id first + r*cols + c.
//   • 4-neighbourhood: each cell links right and down where present, with
//     mirrors. Positions[(r,c)] = (c, r).
//
// Complexity: O(rows·cols) time and space.

package builder

import "gonum.org/v1/gonum/spatial/r2"

// Grid returns a Constructor that builds a rows×cols orthogonal lattice,
// the usual stand-in for households on a street plan.
func Grid(rows, cols int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinVertices); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinVertices); err != nil {
			return err
		}

		ids, err := addVertices(MethodGrid, t, rows*cols)
		if err != nil {
			return err
		}
		growPositions(t)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				t.Positions[u] = r2.Vec{X: float64(c), Y: float64(r)}
				if c+1 < cols {
					if err = addSymmetric(MethodGrid, t.Graph, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addSymmetric(MethodGrid, t.Graph, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}
		t.Kind = KindGrid

		return nil
	}
}
