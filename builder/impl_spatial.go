// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// impl_spatial.go — implementation of Spatial and SpatialRandom constructors.
//
// Model (geometric Bernoulli graph):
//   - Every vertex gets a 2-D position, either drawn without replacement
//     from a candidate location list or produced by a position function.
//   - For every unordered pair i<j the symmetric edge is added when a
//     uniform draw is below kernel(‖pos_i − pos_j‖).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - len(locations) ≥ n (else ErrSampleTooLarge); n of them are drawn
//     without replacement, so vertex ids are assigned to locations in
//     random order even when len(locations) == n.
//   - kernel and posFn non-nil (else ErrNilFunc).
//   - cfg.rng required (else ErrNeedRandSource).
//
// Complexity: O(n²) kernel evaluations and draws.
//
// Determinism: pairs are visited in lexicographic (i,j) order.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kernel maps a Euclidean distance to a connection probability. Values
// ≤ 0 never connect, values ≥ 1 always do.
type Kernel func(distance float64) float64

// PositionFunc draws one vertex position from rng.
type PositionFunc func(rng *rand.Rand) r2.Vec

// Spatial returns a Constructor placing n vertices on the supplied
// candidate locations.
func Spatial(n int, locations []r2.Vec, kernel Kernel) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodSpatial, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateSample(MethodSpatial, "n", n, len(locations)); err != nil {
			return err
		}
		if kernel == nil {
			return fmt.Errorf("%s: kernel: %w", MethodSpatial, ErrNilFunc)
		}
		if err := validateRand(MethodSpatial, cfg); err != nil {
			return err
		}

		idx := make([]int, len(locations))
		for i := range idx {
			idx[i] = i
		}
		chosen, _ := takeRandom(cfg.rng, idx, n)
		pos := make([]r2.Vec, n)
		for i, c := range chosen {
			pos[i] = locations[c]
		}

		return placeSpatial(t, cfg.rng, pos, kernel)
	}
}

// SpatialRandom returns a Constructor drawing n positions from posFn.
func SpatialRandom(n int, posFn PositionFunc, kernel Kernel) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if err := validateMin(MethodSpatial, "n", n, MinVertices); err != nil {
			return err
		}
		if posFn == nil || kernel == nil {
			return fmt.Errorf("%s: posFn/kernel: %w", MethodSpatial, ErrNilFunc)
		}
		if err := validateRand(MethodSpatial, cfg); err != nil {
			return err
		}

		pos := make([]r2.Vec, n)
		for i := range pos {
			pos[i] = posFn(cfg.rng)
		}

		return placeSpatial(t, cfg.rng, pos, kernel)
	}
}

// placeSpatial appends len(pos) vertices at pos and samples kernel edges.
func placeSpatial(t *Topology, rng *rand.Rand, pos []r2.Vec, kernel Kernel) error {
	ids, err := addVertices(MethodSpatial, t, len(pos))
	if err != nil {
		return err
	}
	growPositions(t)
	for i, id := range ids {
		t.Positions[id] = pos[i]
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			d := r2.Norm(r2.Sub(pos[i], pos[j]))
			if rng.Float64() < kernel(d) {
				if err = addSymmetric(MethodSpatial, t.Graph, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
	}
	t.Kind = KindSpatial

	return nil
}

// ExpKernel returns the distance-decay kernel scale·e^(−d/length).
func ExpKernel(scale, length float64) Kernel {
	return func(d float64) float64 {
		return scale * math.Exp(-d/length)
	}
}

// UniformSquare returns a PositionFunc uniform over [0,side)².
func UniformSquare(side float64) PositionFunc {
	return func(rng *rand.Rand) r2.Vec {
		return r2.Vec{X: side * rng.Float64(), Y: side * rng.Float64()}
	}
}
