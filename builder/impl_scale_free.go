// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_scale_free.go — implementation of ScaleFree(n, k) constructor.
//
// Model (k-pyramid hierarchy):
//   - A pyramid of height h has k^(h-1) level-1 leaves and (k^h-1)/(k-1)
//     vertices in total. While the unassigned pool fits a pyramid of height
//     h > 1, the tallest one is carved out of the pool: leaves are drawn at
//     random, then each level above draws k^(l-1) parents and hands every
//     parent exactly k children of the level below.
//   - Each parent is linked (with mirror) to every level-1 vertex it owns
//     transitively, so hubs at the top reach degree k^(h-1).
//   - Vertices left over once no pyramid fits join the leaf set. All leaves
//     are shuffled into one chordless ring that connects the pyramids.
//
// Contract:
//   - 2 ≤ k < n (else ErrInvalidDegree / ErrTooFewVertices).
//   - cfg.rng required (else ErrNeedRandSource).
//   - t.Children[parent] lists its k children in ascending order.
//
// Complexity:
//   - Time: O(n·h) for ownership plus O(E) edges, h = O(log_k n).
//   - Space: O(n).

package builder

import (
	"fmt"
	"sort"
)

// ScaleFree returns a Constructor for the hierarchical k-pyramid topology.
func ScaleFree(n, k int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodScaleFree, "k", k, MinBranching); err != nil {
			return err
		}
		if k >= n {
			return fmt.Errorf("%s: k=%d must be < n=%d: %w", MethodScaleFree, k, n, ErrInvalidDegree)
		}
		if err := validateRand(MethodScaleFree, cfg); err != nil {
			return err
		}

		pool, err := addVertices(MethodScaleFree, t, n)
		if err != nil {
			return err
		}
		if t.Children == nil {
			t.Children = make(map[int][]int)
		}

		var leaves []int
		for h := pyramidHeight(len(pool), k); h > 1; h = pyramidHeight(len(pool), k) {
			var level []int
			width := pow(k, h-1)
			level, pool = takeRandom(cfg.rng, pool, width)
			leaves = append(leaves, level...)

			// reach[v] = level-1 vertices owned by v (a leaf owns itself).
			reach := make(map[int][]int, width)
			for _, v := range level {
				reach[v] = []int{v}
			}

			for width > 1 {
				width /= k
				var parents []int
				parents, pool = takeRandom(cfg.rng, pool, width)
				below := shuffled(cfg.rng, level)
				for j, parent := range parents {
					owned := append([]int(nil), below[j*k:(j+1)*k]...)
					sort.Ints(owned)
					t.Children[parent] = owned

					var leafSet []int
					for _, c := range owned {
						leafSet = append(leafSet, reach[c]...)
					}
					reach[parent] = leafSet
					for _, leaf := range leafSet {
						if err = addSymmetric(MethodScaleFree, t.Graph, parent, leaf); err != nil {
							return err
						}
					}
				}
				level = parents
			}
		}

		leaves = append(leaves, pool...)
		if err = addRing(MethodScaleFree, t.Graph, shuffled(cfg.rng, leaves)); err != nil {
			return err
		}
		t.Kind = KindScaleFree

		return nil
	}
}

// pyramidHeight returns the largest h with (k^h-1)/(k-1) ≤ pool.
func pyramidHeight(pool, k int) int {
	h, size := 1, 1
	for size*k+1 <= pool {
		size = size*k + 1
		h++
	}

	return h
}

// pow returns base^exp for small non-negative exponents.
func pow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}

	return out
}
