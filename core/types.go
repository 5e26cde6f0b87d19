// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside [0,n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the ordered pair already has an edge.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeCount indicates a negative number of vertices was requested.
	ErrNegativeCount = errors.New("core: negative vertex count")
)

// Edge is an ordered pair of vertex ids.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the target vertex id.
	To int
}

// Mirror returns the reversed edge (To,From).
func (e Edge) Mirror() Edge { return Edge{From: e.To, To: e.From} }

// String renders the edge in the "<from>:<to>" edge-list form.
func (e Edge) String() string {
	return strconv.Itoa(e.From) + ":" + strconv.Itoa(e.To)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertices pre-allocates n isolated vertices [0,n).
// Panics on negative n: option constructors surface programmer errors early.
func WithVertices(n int) GraphOption {
	if n < 0 {
		panic("core: WithVertices(n<0)")
	}
	return func(g *Graph) {
		g.out = make([][]int, n)
		g.in = make([][]int, n)
	}
}

// Graph is a directed simple graph over contiguous integer vertices.
//
// out[v] and in[v] are kept sorted ascending; edgeCount mirrors the total
// length of all out slices. mu guards every field.
type Graph struct {
	mu sync.RWMutex

	out       [][]int // v -> sorted out-neighbours
	in        [][]int // v -> sorted in-neighbours
	edgeCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(n) for WithVertices(n), O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
