// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Model:
//   • Symmetric d-regular simple graph: every vertex has exactly d contacts.
//   • Stub matching with local rejection: two random open stubs are paired
//     when they belong to distinct, not yet linked vertices. An attempt that
//     runs out of valid pairs is discarded and restarted.
//
// Contract:
//   • n ≥ MinVertices (else ErrTooFewVertices).
//   • 0 ≤ d < n and n·d even (else ErrInvalidDegree).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • The graph is only mutated once a full pairing is found; after
//     maxRegularAttempts failures ErrConstructFailed is returned.
//
// Complexity: expected O(n·d) per attempt for d ≪ n; O(n·d) space.

package builder

import "fmt"

const (
	// maxRegularAttempts bounds full restarts of the pairing.
	maxRegularAttempts = 16
	// regularDrawsPerStub bounds random draws before scanning for any
	// remaining valid pair.
	regularDrawsPerStub = 8
)

// RandomRegular returns a Constructor that builds a random d-regular
// contact network on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, MinVertices); err != nil {
			return err
		}
		if d < 0 || d >= n || (n*d)%2 != 0 {
			return fmt.Errorf("%s: d=%d with n=%d (need 0 ≤ d < n and n·d even): %w",
				MethodRandomRegular, d, n, ErrInvalidDegree)
		}
		if err := validateRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		ids, err := addVertices(MethodRandomRegular, t, n)
		if err != nil {
			return err
		}
		t.Kind = KindRegular
		if d == 0 {
			return nil
		}

		for attempt := 0; attempt < maxRegularAttempts; attempt++ {
			pairs, ok := matchStubs(cfg, n, d)
			if !ok {
				continue
			}
			for _, p := range pairs {
				if err = addSymmetric(MethodRandomRegular, t.Graph, ids[p[0]], ids[p[1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxRegularAttempts, ErrConstructFailed)
	}
}

// matchStubs pairs n·d stubs into n·d/2 distinct non-loop pairs of local
// indices, or reports failure when the remaining stubs admit no valid pair.
func matchStubs(cfg builderConfig, n, d int) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}
	linked := make(map[[2]int]struct{}, n*d/2)
	pairs := make([][2]int, 0, n*d/2)
	valid := func(u, v int) bool {
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		_, dup := linked[[2]int{u, v}]

		return !dup
	}
	// take removes stubs i and j (i ≠ j) by swapping them to the tail.
	take := func(i, j int) {
		u, v := stubs[i], stubs[j]
		if u > v {
			u, v = v, u
		}
		linked[[2]int{u, v}] = struct{}{}
		pairs = append(pairs, [2]int{u, v})
		if i < j {
			i, j = j, i
		}
		last := len(stubs) - 1
		stubs[i], stubs[last] = stubs[last], stubs[i]
		last--
		stubs[j], stubs[last] = stubs[last], stubs[j]
		stubs = stubs[:last]
	}

	for len(stubs) > 0 {
		found := false
		for draw := 0; draw < regularDrawsPerStub*len(stubs); draw++ {
			i, j := cfg.rng.Intn(len(stubs)), cfg.rng.Intn(len(stubs))
			if i != j && valid(stubs[i], stubs[j]) {
				take(i, j)
				found = true
				break
			}
		}
		if found {
			continue
		}
	scan:
		for i := 0; i < len(stubs); i++ {
			for j := i + 1; j < len(stubs); j++ {
				if valid(stubs[i], stubs[j]) {
					take(i, j)
					found = true
					break scan
				}
			}
		}
		if !found {
			return nil, false
		}
	}

	return pairs, true
}
