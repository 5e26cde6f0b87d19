// Package builder provides internal helper functions used by Constructor
// implementations: vertex allocation, symmetric edge emission and
// sampling without replacement.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the calling method name.
//   - Determinism: every random draw goes through the caller's *rand.Rand.
package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/contagion/core"
)

// addVertices appends n vertices to t.Graph and returns their ids.
// Complexity: O(n).
func addVertices(method string, t *Topology, n int) ([]int, error) {
	first, err := t.Graph.AddVertices(n)
	if err != nil {
		return nil, fmt.Errorf("%s: AddVertices(%d): %w", method, n, err)
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = first + i
	}

	return ids, nil
}

// addSymmetric adds u→v and v→u, wrapping failures with method context.
func addSymmetric(method string, g *core.Graph, u, v int) error {
	if err := g.AddSymmetricEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddSymmetricEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// removeSymmetric removes u→v and v→u, wrapping failures with method context.
func removeSymmetric(method string, g *core.Graph, u, v int) error {
	if err := g.RemoveSymmetricEdge(u, v); err != nil {
		return fmt.Errorf("%s: RemoveSymmetricEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids symmetrically,
// in lexicographic (i,j) order.
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(method string, g *core.Graph, ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addSymmetric(method, g, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// addRing connects ids[i]—ids[i+1] and closes ids[last]—ids[0] when the
// ring has at least MinCycleNodes members. Two ids get a single edge pair.
// Complexity: O(len(ids)).
func addRing(method string, g *core.Graph, ids []int) error {
	for i := 0; i+1 < len(ids); i++ {
		if err := addSymmetric(method, g, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if len(ids) >= MinCycleNodes {
		return addSymmetric(method, g, ids[len(ids)-1], ids[0])
	}

	return nil
}

// takeRandom removes k uniformly chosen items from pool and returns them
// with the shrunken pool. The caller validates k ≤ len(pool).
// Complexity: O(k) via partial Fisher–Yates from the tail.
func takeRandom(rng *rand.Rand, pool []int, k int) (chosen, rest []int) {
	n := len(pool)
	for i := 0; i < k; i++ {
		j := rng.Intn(n - i)
		pool[j], pool[n-1-i] = pool[n-1-i], pool[j]
	}
	chosen = append([]int(nil), pool[n-k:]...)

	return chosen, pool[:n-k]
}

// shuffled returns a shuffled copy of ids.
func shuffled(rng *rand.Rand, ids []int) []int {
	out := append([]int(nil), ids...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// growPositions extends t.Positions with zero vectors up to the current
// vertex count so that generators can address them by id.
func growPositions(t *Topology) {
	n := t.Graph.VertexCount()
	for len(t.Positions) < n {
		t.Positions = append(t.Positions, r2.Vec{})
	}
}

// gcd returns the greatest common divisor of two positive ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
