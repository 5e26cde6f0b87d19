// File: methods_vertices.go
// Role: Vertex lifecycle & queries over the dense [0,n) arena.
// Determinism:
//   - Vertices() returns ids ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddVertices appends k isolated vertices and returns the id of the first
// one. Ids stay contiguous: the new vertices are [first, first+k).
//
// Errors: ErrNegativeCount if k < 0.
// Complexity: O(k) amortized.
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, ErrNegativeCount
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.out)
	for i := 0; i < k; i++ {
		g.out = append(g.out, nil)
		g.in = append(g.in, nil)
	}

	return first, nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// HasVertex reports whether v lies in [0,n).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(v)
}

// Vertices returns every vertex id in ascending order.
// Complexity: O(V) time and space.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, len(g.out))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// hasVertexLocked assumes the caller holds mu (read or write).
func (g *Graph) hasVertexLocked(v int) bool {
	return v >= 0 && v < len(g.out)
}
