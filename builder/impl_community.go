// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_community.go — implementation of Community(n, baseSize, overlap,
// density, internal) constructor.
//
// Model (overlapping-community perturbation of a random graph):
//  1. Membership. Community sizes are ⌊baseSize·2^(2u-1)⌋, u ~ U[0,1), i.e.
//     the base size jittered by a log-uniform factor in [½,2). Members are
//     drawn from an eligibility pool; a drawn vertex stays eligible with
//     probability overlap. A try fails when the pool is smaller than the
//     drawn size; two consecutive failed tries end the partitioning.
//  2. Baseline. A symmetric, not necessarily connected Random graph at
//     the target density.
//  3. Perturbation. For every community C the goal internal directed edge
//     count is ⌊density·internal·|C|·(n-1)⌋, clamped to [0, |C|(|C|-1)].
//     While the internal count is above the goal an internal pair u—v is
//     swapped for an external pair u—w; while below, an external pair is
//     swapped for an internal one. Each swap moves the count by exactly 2.
//     Swapping stops early when no source in C has a replacement target.
//
// Contract:
//   - n ≥ MinCommunityVertices (else ErrTooFewVertices).
//   - 1 ≤ baseSize ≤ n (else ErrTooFewVertices / ErrSampleTooLarge).
//   - 0 ≤ overlap < 1, 0 ≤ density ≤ 1, 0 ≤ internal ≤ 1
//     (else ErrInvalidProbability).
//   - cfg.rng required (else ErrNeedRandSource).
//   - Output is symmetric; t.Communities lists members ascending.

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/contagion/core"
)

// maxFailedCommunityTries ends membership sampling.
const maxFailedCommunityTries = 2

// Community returns a Constructor for a graph with overlapping community
// structure.
func Community(n, baseSize int, overlap, density, internal float64) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodCommunity, "n", n, MinCommunityVertices); err != nil {
			return err
		}
		if err := validateMin(MethodCommunity, "baseSize", baseSize, 1); err != nil {
			return err
		}
		if err := validateSample(MethodCommunity, "baseSize", baseSize, n); err != nil {
			return err
		}
		if !(overlap >= MinProbability && overlap < MaxProbability) {
			return fmt.Errorf("%s: overlap=%g not in [0,1): %w", MethodCommunity, overlap, ErrInvalidProbability)
		}
		if err := validateProbability(MethodCommunity, "density", density); err != nil {
			return err
		}
		if err := validateProbability(MethodCommunity, "internal", internal); err != nil {
			return err
		}
		if err := validateRand(MethodCommunity, cfg); err != nil {
			return err
		}

		ids, err := addVertices(MethodCommunity, t, n)
		if err != nil {
			return err
		}
		communities := sampleCommunities(cfg.rng, ids, baseSize, overlap)

		base := randomFill{method: MethodCommunity, g: t.Graph, ids: ids, rng: cfg.rng, symmetric: true}
		if err = base.fill(int(math.Ceil(float64(n*(n-1)) * density))); err != nil {
			return err
		}

		member := make([]bool, t.Graph.VertexCount())
		for _, c := range communities {
			for _, v := range c {
				member[v] = true
			}
			goal := int(math.Floor(density * internal * float64(len(c)) * float64(n-1)))
			if limit := len(c) * (len(c) - 1); goal > limit {
				goal = limit
			}
			s := swapper{g: t.Graph, rng: cfg.rng, ids: ids, community: c, member: member}
			if err = s.run(goal); err != nil {
				return err
			}
			for _, v := range c {
				member[v] = false
			}
		}

		t.Communities = append(t.Communities, communities...)
		t.Kind = KindCommunity

		return nil
	}
}

// sampleCommunities partitions ids into possibly overlapping groups.
func sampleCommunities(rng *rand.Rand, ids []int, baseSize int, overlap float64) [][]int {
	pool := append([]int(nil), ids...)
	var out [][]int
	for failed := 0; failed < maxFailedCommunityTries; {
		size := int(math.Floor(float64(baseSize) * math.Pow(2, communityJitterOctaves*(2*rng.Float64()-1))))
		if size == 0 || len(pool) < size {
			failed++
			continue
		}
		failed = 0

		seen := make(map[int]struct{}, size)
		group := make([]int, 0, size)
		for i := 0; i < size; i++ {
			idx := rng.Intn(len(pool))
			v := pool[idx]
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				group = append(group, v)
			}
			if rng.Float64() < overlap {
				continue
			}
			pool[idx] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		}
		sort.Ints(group)
		out = append(out, group)
	}

	return out
}

// swapper moves one community's internal edge count towards a goal.
type swapper struct {
	g         *core.Graph
	rng       *rand.Rand
	ids       []int
	community []int
	member    []bool
}

// internalCount returns the number of directed edges inside the community.
func (s *swapper) internalCount() int {
	count := 0
	for _, u := range s.community {
		nbrs, _ := s.g.Neighbors(u)
		for _, v := range nbrs {
			if s.member[v] {
				count++
			}
		}
	}

	return count
}

func (s *swapper) run(goal int) error {
	count := s.internalCount()
	outward := count > goal
	for (outward && count > goal) || (!outward && count < goal) {
		ok, err := s.swap(outward)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if outward {
			count -= 2
		} else {
			count += 2
		}
	}

	return nil
}

// swap replaces one pair u—v by u—w. outward drops an internal v for an
// external w, otherwise the reverse. It reports false when no source in the
// community can be swapped.
func (s *swapper) swap(outward bool) (bool, error) {
	outside := len(s.ids) - len(s.community)
	var removable []core.Edge
	for _, u := range s.community {
		nbrs, _ := s.g.Neighbors(u)
		inDeg := 0
		for _, v := range nbrs {
			if s.member[v] {
				inDeg++
			}
		}
		free := outside - (len(nbrs) - inDeg)
		if !outward {
			free = len(s.community) - 1 - inDeg
		}
		if free <= 0 {
			continue
		}
		for _, v := range nbrs {
			if s.member[v] == outward {
				removable = append(removable, core.Edge{From: u, To: v})
			}
		}
	}
	if len(removable) == 0 {
		return false, nil
	}

	e := removable[s.rng.Intn(len(removable))]
	nbrs, _ := s.g.Neighbors(e.From)
	targets := s.targets(e.From, nbrs, !outward)
	w := targets[s.rng.Intn(len(targets))]
	if err := removeSymmetric(MethodCommunity, s.g, e.From, e.To); err != nil {
		return false, err
	}
	if err := addSymmetric(MethodCommunity, s.g, e.From, w); err != nil {
		return false, err
	}

	return true, nil
}

// targets lists absent partners of u that are inside (inside=true) or
// outside the community.
func (s *swapper) targets(u int, nbrs []int, inside bool) []int {
	var out []int
	for _, w := range s.ids {
		if w == u || s.member[w] != inside || containsInt(nbrs, w) {
			continue
		}
		out = append(out, w)
	}

	return out
}

// containsInt reports whether sorted xs holds x.
func containsInt(xs []int, x int) bool {
	i := sort.SearchInts(xs, x)

	return i < len(xs) && xs[i] == x
}
