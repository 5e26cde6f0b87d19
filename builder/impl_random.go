// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_random.go — implementation of Random(n, density, opts...) constructor.
//
// Model (density-targeted Erdős–Rényi):
//   - density == 1 ⇒ complete graph, no randomness.
//   - Connected (default): start from n singleton components and merge two
//     uniformly chosen components n-1 times through a random crossing edge.
//   - Fill: sample further edges uniformly without replacement until the
//     directed edge count reaches ceil(n(n-1)·density).
//   - Symmetric (default): every sampled edge comes with its mirror.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required whenever a draw is needed (else ErrNeedRandSource).
//
// Complexity:
//   - Merging: O(n) draws, O(n log n) copying in the worst case.
//   - Fill: O(E) expected with rejection sampling while the graph is at most
//     half full, O(n²) with an explicit candidate pool otherwise.
//
// Determinism:
//   - For a fixed seed the draw sequence (merge picks, then fill picks)
//     is fixed, so the edge set is reproducible.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/contagion/core"
)

// RandomOption tunes the Random constructor.
type RandomOption func(*randomParams)

type randomParams struct {
	connected bool
	symmetric bool
}

// RequireConnected toggles the component-merging phase (default true).
func RequireConnected(on bool) RandomOption {
	return func(p *randomParams) { p.connected = on }
}

// Symmetric toggles mirrored edges (default true). With false, every
// sampled ordered pair is added alone and connectivity is weak only.
func Symmetric(on bool) RandomOption {
	return func(p *randomParams) { p.symmetric = on }
}

// Random returns a Constructor for a density-targeted random contact graph.
func Random(n int, density float64, opts ...RandomOption) Constructor {
	params := randomParams{connected: true, symmetric: true}
	for _, o := range opts {
		o(&params)
	}

	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodRandom, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandom, "density", density); err != nil {
			return err
		}

		stochastic := n > 1 && density < MaxProbability && (density > MinProbability || params.connected)
		if stochastic {
			if err := validateRand(MethodRandom, cfg); err != nil {
				return err
			}
		}

		if n > 1 && density == MaxProbability {
			if err := Complete(n)(t, cfg); err != nil {
				return fmt.Errorf("%s: %w", MethodRandom, err)
			}
			t.Kind = KindRandom

			return nil
		}

		ids, err := addVertices(MethodRandom, t, n)
		if err != nil {
			return err
		}
		t.Kind = KindRandom
		if !stochastic {
			return nil
		}

		r := randomFill{method: MethodRandom, g: t.Graph, ids: ids, rng: cfg.rng, symmetric: params.symmetric}
		if params.connected {
			if err = r.connect(); err != nil {
				return err
			}
		}
		target := int(math.Ceil(float64(n*(n-1)) * density))

		return r.fill(target)
	}
}

// randomFill carries the state shared by the merge and fill phases.
type randomFill struct {
	method    string
	g         *core.Graph
	ids       []int
	rng       *rand.Rand
	symmetric bool
	added     int // directed edges added by this constructor
}

func (r *randomFill) link(u, v int) error {
	if r.symmetric {
		if err := addSymmetric(r.method, r.g, u, v); err != nil {
			return err
		}
		r.added += 2

		return nil
	}
	if err := r.g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", r.method, u, v, err)
	}
	r.added++

	return nil
}

// connect merges singleton components until one remains: n-1 merges,
// each through one crossing edge.
func (r *randomFill) connect() error {
	comps := make([][]int, len(r.ids))
	for i, id := range r.ids {
		comps[i] = []int{id}
	}

	for len(comps) > 1 {
		a := r.rng.Intn(len(comps))
		first := comps[a]
		comps[a] = comps[len(comps)-1]
		comps = comps[:len(comps)-1]

		b := r.rng.Intn(len(comps))
		u := first[r.rng.Intn(len(first))]
		v := comps[b][r.rng.Intn(len(comps[b]))]
		if err := r.link(u, v); err != nil {
			return err
		}
		comps[b] = append(comps[b], first...)
	}

	return nil
}

// fill samples absent candidates uniformly without replacement until
// r.added reaches target.
func (r *randomFill) fill(target int) error {
	n := len(r.ids)
	total := n * (n - 1) // ordered candidates
	if r.symmetric {
		total /= 2 // unordered candidates
	}
	taken := r.added
	if r.symmetric {
		taken /= 2
	}
	free := total - taken
	need := target - r.added
	if need <= 0 {
		return nil
	}
	if r.symmetric {
		need = (need + 1) / 2
	}
	if need > free {
		need = free
	}

	if 2*need <= free {
		return r.fillRejection(need)
	}

	return r.fillPool(need)
}

// fillRejection draws random candidates and skips the ones already present.
func (r *randomFill) fillRejection(need int) error {
	n := len(r.ids)
	for need > 0 {
		i, j := r.rng.Intn(n), r.rng.Intn(n)
		if i == j {
			continue
		}
		if r.symmetric && i > j {
			i, j = j, i
		}
		u, v := r.ids[i], r.ids[j]
		if r.g.HasEdge(u, v) {
			continue
		}
		if err := r.link(u, v); err != nil {
			return err
		}
		need--
	}

	return nil
}

// fillPool enumerates every absent candidate and takes a uniform sample.
func (r *randomFill) fillPool(need int) error {
	n := len(r.ids)
	pool := make([]int, 0, n*(n-1))
	for i := 0; i < n; i++ {
		jStart := 0
		if r.symmetric {
			jStart = i + 1
		}
		for j := jStart; j < n; j++ {
			if i == j || r.g.HasEdge(r.ids[i], r.ids[j]) {
				continue
			}
			pool = append(pool, i*n+j)
		}
	}

	chosen, _ := takeRandom(r.rng, pool, need)
	for _, code := range chosen {
		if err := r.link(r.ids[code/n], r.ids[code%n]); err != nil {
			return err
		}
	}

	return nil
}
