// Package core provides the dense, thread-safe contact graph used by the
// topology builders and the simulation engine.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are contiguous integers [0,n); there are never gaps.
//   - Edges are ordered pairs (From,To) with From != To (no self-loops).
//   - At most one edge per ordered pair (no parallel edges).
//   - "Symmetric" helpers add or remove an edge together with its mirror,
//     which is how undirected contact relations are realised on the
//     directed structure (transmission is directional per edge).
//
// Storage is an arena of sorted adjacency slices (out and in), so lookups
// are O(log deg) and iteration order is always ascending by vertex id.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertices(k int) (first int, err error) // O(k)
//	HasVertex(v int) bool                     // O(1)
//	VertexCount() int                         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int) error               // O(deg)
//	AddSymmetricEdge(u, v int) error          // O(deg)
//	RemoveEdge(from, to int) error            // O(deg)
//	RemoveSymmetricEdge(u, v int) error       // O(deg)
//	HasEdge(from, to int) bool                // O(log deg)
//	Edges() []Edge                            // O(E), sorted (From,To) asc
//
//	// Adjacency
//	Neighbors(v int) ([]int, error)           // out-neighbours, ascending
//	InNeighbors(v int) ([]int, error)         // in-neighbours, ascending
//	IsSymmetric() bool                        // O(E log deg)
//
// Concurrency: every method takes the graph's RWMutex. Builders mutate a
// graph only while constructing it; afterwards it is shared read-only.
package core
