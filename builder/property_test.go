package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/contagion/bfs"
	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/core"
)

// simple reports no self-loops and full symmetry.
func simple(g *core.Graph) bool {
	for _, e := range g.Edges() {
		if e.From == e.To {
			return false
		}
	}

	return g.IsSymmetric()
}

// TestGeneratorInvariants checks structural guarantees over random
// parameter draws.
func TestGeneratorInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("connected random graphs are weakly connected", prop.ForAll(
		func(n int, density float64, seed int64) bool {
			topo, err := builder.Build(seeded(seed), builder.Random(n, density))
			if err != nil {
				return false
			}

			return simple(topo.Graph) && bfs.WeaklyConnected(topo.Graph)
		},
		gen.IntRange(2, 40),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.Property("random graphs at density one are complete", prop.ForAll(
		func(n int, seed int64) bool {
			topo, err := builder.Build(seeded(seed), builder.Random(n, 1))

			return err == nil && topo.Graph.EdgeCount() == n*(n-1)
		},
		gen.IntRange(1, 30),
		gen.Int64(),
	))

	properties.Property("ring lattice has out-degree k", prop.ForAll(
		func(half, extra int, odd bool, seed int64) bool {
			k := 2 * half
			n := k + 1 + extra
			if odd {
				k++
				if n%2 == 1 {
					n++
				}
				if k >= n {
					n += 2
				}
			}
			topo, err := builder.Build(seeded(seed), builder.SmallWorld(n, k, 0))
			if err != nil || !simple(topo.Graph) {
				return false
			}
			for v := 0; v < n; v++ {
				if topo.Graph.OutDegree(v) != k {
					return false
				}
			}

			return true
		},
		gen.IntRange(0, 6),
		gen.IntRange(0, 20),
		gen.Bool(),
		gen.Int64(),
	))

	properties.Property("pyramid parents own exactly k children", prop.ForAll(
		func(n, k int, seed int64) bool {
			if k >= n {
				n = k + 1
			}
			topo, err := builder.Build(seeded(seed), builder.ScaleFree(n, k))
			if err != nil || !simple(topo.Graph) || !bfs.WeaklyConnected(topo.Graph) {
				return false
			}
			for _, kids := range topo.Children {
				if len(kids) != k {
					return false
				}
			}

			return true
		},
		gen.IntRange(3, 120),
		gen.IntRange(2, 5),
		gen.Int64(),
	))

	properties.Property("community graphs stay symmetric", prop.ForAll(
		func(n int, overlap, density, internal float64, seed int64) bool {
			topo, err := builder.Build(seeded(seed), builder.Community(n, 1+n/5, overlap, density, internal))

			return err == nil && simple(topo.Graph)
		},
		gen.IntRange(2, 40),
		gen.Float64Range(0, 0.9),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
