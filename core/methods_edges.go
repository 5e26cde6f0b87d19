// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus their symmetric (edge + mirror) forms.
// Determinism:
//   - Edges() returns edges sorted by (From,To) asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
// AI-HINT (file):
//   - Symmetric mutations are all-or-nothing: both directions are validated
//     before either is applied.

package core

import "sort"

// AddEdge inserts the directed edge from→to.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is outside [0,n).
//   - ErrLoopNotAllowed if from == to.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
//
// Complexity: O(deg(from) + deg(to)) for the sorted inserts.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNewEdgeLocked(from, to); err != nil {
		return err
	}
	g.linkLocked(from, to)

	return nil
}

// AddSymmetricEdge inserts u→v and v→u together.
// Either both edges are added or neither is.
func (g *Graph) AddSymmetricEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNewEdgeLocked(u, v); err != nil {
		return err
	}
	if err := g.checkNewEdgeLocked(v, u); err != nil {
		return err
	}
	g.linkLocked(u, v)
	g.linkLocked(v, u)

	return nil
}

// RemoveEdge deletes the directed edge from→to.
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkExistingEdgeLocked(from, to); err != nil {
		return err
	}
	g.unlinkLocked(from, to)

	return nil
}

// RemoveSymmetricEdge deletes u→v and v→u together.
// Either both edges are removed or neither is.
func (g *Graph) RemoveSymmetricEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkExistingEdgeLocked(u, v); err != nil {
		return err
	}
	if err := g.checkExistingEdgeLocked(v, u); err != nil {
		return err
	}
	g.unlinkLocked(u, v)
	g.unlinkLocked(v, u)

	return nil
}

// HasEdge reports whether from→to exists. Out-of-range ids report false.
// Complexity: O(log deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(from) || !g.hasVertexLocked(to) {
		return false
	}

	return containsSorted(g.out[from], to)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge sorted by (From,To) ascending.
// Complexity: O(E) time and space (adjacency is already sorted).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for from, targets := range g.out {
		for _, to := range targets {
			edges = append(edges, Edge{From: from, To: to})
		}
	}

	return edges
}

func (g *Graph) checkNewEdgeLocked(from, to int) error {
	if !g.hasVertexLocked(from) || !g.hasVertexLocked(to) {
		return ErrVertexNotFound
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if containsSorted(g.out[from], to) {
		return ErrMultiEdgeNotAllowed
	}

	return nil
}

func (g *Graph) checkExistingEdgeLocked(from, to int) error {
	if !g.hasVertexLocked(from) || !g.hasVertexLocked(to) {
		return ErrVertexNotFound
	}
	if !containsSorted(g.out[from], to) {
		return ErrEdgeNotFound
	}

	return nil
}

func (g *Graph) linkLocked(from, to int) {
	g.out[from] = insertSorted(g.out[from], to)
	g.in[to] = insertSorted(g.in[to], from)
	g.edgeCount++
}

func (g *Graph) unlinkLocked(from, to int) {
	g.out[from] = removeSorted(g.out[from], to)
	g.in[to] = removeSorted(g.in[to], from)
	g.edgeCount--
}

// containsSorted reports whether x is in the ascending slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}

// insertSorted inserts x into ascending s; x must not already be present.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// removeSorted removes x from ascending s; x must be present.
func removeSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)

	return append(s[:i], s[i+1:]...)
}
