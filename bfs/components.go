package bfs

import "github.com/katalvlaran/contagion/core"

// Components partitions g into weakly connected components. Components
// are ordered by their smallest vertex; members appear in BFS order.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	var comps [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		// v exists and the options are valid, so BFS cannot fail here.
		res, err := BFS(g, v, WithWeak())
		if err != nil {
			return nil
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// WeaklyConnected reports whether every vertex reaches every other when
// edge direction is ignored. The empty graph is reported as connected.
func WeaklyConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return true
	}
	res, err := BFS(g, 0, WithWeak())
	if err != nil {
		return false
	}

	return len(res.Order) == g.VertexCount()
}
