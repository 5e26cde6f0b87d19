// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances and visit order, plus the component helpers the
// topology builders rely on.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (-1 when unreached)
//   - WithContext() cancels long traversals between dequeues.
//   - WithWeak() follows edges in both directions, which is what weak
//     connectivity of a directed contact network is defined over.
//   - Components / WeaklyConnected partition the vertex set.
//
// Determinism
//
//	core.Graph keeps adjacency sorted ascending, and BFS enqueues neighbours
//	in that order (out-neighbours before in-neighbours in weak mode), so the
//	visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the depth array and the queue
package bfs
