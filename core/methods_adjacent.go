// File: methods_adjacent.go
// Role: Adjacency queries (out/in neighbours, degrees, symmetry).
// Determinism:
//   - Neighbor slices are ascending by vertex id.
// Concurrency:
//   - Read lock only; returned slices are copies owned by the caller.

package core

// Neighbors returns the out-neighbours of v in ascending order.
// Errors: ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, ErrVertexNotFound
	}

	return append([]int(nil), g.out[v]...), nil
}

// InNeighbors returns the in-neighbours of v in ascending order.
// Errors: ErrVertexNotFound.
func (g *Graph) InNeighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, ErrVertexNotFound
	}

	return append([]int(nil), g.in[v]...), nil
}

// OutDegree returns |out(v)|, or 0 for an unknown vertex.
func (g *Graph) OutDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0
	}

	return len(g.out[v])
}

// InDegree returns |in(v)|, or 0 for an unknown vertex.
func (g *Graph) InDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0
	}

	return len(g.in[v])
}

// IsSymmetric reports whether every edge u→v has its mirror v→u.
// Complexity: O(E log Δ).
func (g *Graph) IsSymmetric() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, targets := range g.out {
		for _, v := range targets {
			if !containsSorted(g.out[v], u) {
				return false
			}
		}
	}

	return true
}

// Adjacency returns a compact CSR copy of the out-adjacency: targets of
// vertex v are targets[offsets[v]:offsets[v+1]]. The result shares nothing
// with g, so callers may hold it without locking.
// Complexity: O(V+E) time and space.
func (g *Graph) Adjacency() (offsets []int, targets []int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	offsets = make([]int, len(g.out)+1)
	targets = make([]int, 0, g.edgeCount)
	for v, nbrs := range g.out {
		offsets[v] = len(targets)
		targets = append(targets, nbrs...)
	}
	offsets[len(g.out)] = len(targets)

	return offsets, targets
}
