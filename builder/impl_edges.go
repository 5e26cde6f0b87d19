// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_edges.go — FromEdges(n, edges): explicit contact graphs.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edge endpoints are local indices in [0,n), offset by the first
//     appended vertex; each is added as given (directed, no mirror).
//   • Self-loops and duplicates are rejected with the core sentinels.
//
// Used for loaded edge lists and small hand-written scenarios.

package builder

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// FromEdges returns a Constructor that appends n vertices and exactly the
// listed directed edges.
func FromEdges(n int, edges []core.Edge) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodFromEdges, "n", n, MinVertices); err != nil {
			return err
		}
		for _, e := range edges {
			if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
				return fmt.Errorf("%s: edge %s outside [0,%d): %w", MethodFromEdges, e, n, core.ErrVertexNotFound)
			}
		}

		ids, err := addVertices(MethodFromEdges, t, n)
		if err != nil {
			return err
		}
		for _, e := range edges {
			u, v := ids[e.From], ids[e.To]
			if err = t.Graph.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodFromEdges, u, v, err)
			}
		}

		return nil
	}
}
