// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_small_world.go — implementation of SmallWorld(n, k, p) constructor.
//
// Model (Watts–Strogatz on a directed, mirrored structure):
//  1. Ring lattice: i is linked to i±d (mod n) for d = 1..⌊k/2⌋.
//  2. Odd k: a repair pass gives every vertex exactly one extra partner.
//     Candidates are the "wrap" pairs at ring distance m = ⌊k/2⌋+1; they form
//     gcd(n,m) disjoint cycles and one of the two alternating matchings of
//     each cycle is picked at random. When a cycle has odd length no perfect
//     matching exists and diameter pairs i↔i+n/2 are used instead.
//  3. Rewiring: every lattice pair (u,v) is visited once in emission order;
//     with probability p the pair is removed and u is linked to a uniform
//     vertex w ∉ N(u) ∪ {u, v}. If no such w exists the pair is restored.
//
// Contract:
//   - 0 ≤ k < n (else ErrInvalidDegree), n·k even (else ErrInvalidDegree).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when p > 0 or k is odd (else ErrNeedRandSource).
//   - Before rewiring every vertex has out-degree exactly k; p == 0 draws
//     nothing and returns the lattice unchanged.
//   - Positions: vertex i sits on a circle of radius n at angle 2πi/n.
//
// Complexity:
//   - Lattice + repair: O(n·k).
//   - Rewiring: O(n·k·n) worst case (candidate scan per rewired pair).

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/contagion/core"
)

// SmallWorld returns a Constructor for a Watts–Strogatz small-world graph.
func SmallWorld(n, k int, p float64) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodSmallWorld, "n", n, MinVertices); err != nil {
			return err
		}
		if k < 0 || k >= n {
			return fmt.Errorf("%s: k=%d not in [0,%d): %w", MethodSmallWorld, k, n, ErrInvalidDegree)
		}
		if (n*k)%2 != 0 {
			return fmt.Errorf("%s: n*k=%d is odd: %w", MethodSmallWorld, n*k, ErrInvalidDegree)
		}
		if err := validateProbability(MethodSmallWorld, "p", p); err != nil {
			return err
		}
		if p > MinProbability || k%2 == 1 {
			if err := validateRand(MethodSmallWorld, cfg); err != nil {
				return err
			}
		}

		ids, err := addVertices(MethodSmallWorld, t, n)
		if err != nil {
			return err
		}

		pairs := make([][2]int, 0, n*k/2)
		for i := 0; i < n; i++ {
			for d := 1; d <= k/2; d++ {
				pairs = append(pairs, [2]int{i, (i + d) % n})
			}
		}
		if k%2 == 1 {
			pairs = append(pairs, wrapMatching(cfg.rng, n, k/2+1)...)
		}
		for _, pr := range pairs {
			if err = addSymmetric(MethodSmallWorld, t.Graph, ids[pr[0]], ids[pr[1]]); err != nil {
				return err
			}
		}

		if p > MinProbability {
			for _, pr := range pairs {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = rewire(t.Graph, cfg.rng, ids, ids[pr[0]], ids[pr[1]]); err != nil {
					return err
				}
			}
		}

		growPositions(t)
		radius := float64(n)
		for i, id := range ids {
			angle := 2 * math.Pi * float64(i) / float64(n)
			t.Positions[id] = r2.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		}
		t.Kind = KindSmallWorld

		return nil
	}
}

// wrapMatching returns a perfect matching over ring indices [0,n) that uses
// only pairs at distance m, or diameter pairs when none exists. n is even.
func wrapMatching(rng *rand.Rand, n, m int) [][2]int {
	out := make([][2]int, 0, n/2)
	if 2*m == n {
		for i := 0; i < m; i++ {
			out = append(out, [2]int{i, i + m})
		}

		return out
	}

	cycles := gcd(n, m)
	length := n / cycles
	if length%2 == 1 {
		half := n / 2
		for i := 0; i < half; i++ {
			out = append(out, [2]int{i, i + half})
		}

		return out
	}

	for s := 0; s < cycles; s++ {
		cycle := make([]int, length)
		for j := range cycle {
			cycle[j] = (s + j*m) % n
		}
		for j := rng.Intn(2); j < length; j += 2 {
			out = append(out, [2]int{cycle[j], cycle[(j+1)%length]})
		}
	}

	return out
}

// rewire replaces the symmetric pair u—v by u—w for a uniform admissible w.
func rewire(g *core.Graph, rng *rand.Rand, ids []int, u, v int) error {
	if err := removeSymmetric(MethodSmallWorld, g, u, v); err != nil {
		return err
	}

	candidates := make([]int, 0, len(ids))
	for _, w := range ids {
		if w == u || w == v || g.HasEdge(u, w) {
			continue
		}
		candidates = append(candidates, w)
	}
	if len(candidates) == 0 {
		return addSymmetric(MethodSmallWorld, g, u, v)
	}

	return addSymmetric(MethodSmallWorld, g, u, candidates[rng.Intn(len(candidates))])
}
