// Package core provides the in-memory Graph store used by the shortest-path
// engine: a fixed set of integer-indexed vertices joined by undirected,
// non-negatively weighted edges that each carry a human-readable description.
//
// The Graph G = (V,E) has the following shape:
//
//   - Vertices are the integers [0, VertexCount()). The index is the identity;
//     vertices carry no other attributes.
//   - Every Edge is stored exactly once in an append-only catalog and is
//     referenced by ID from the adjacency of both endpoints, so FindEdge(u,v)
//     and FindEdge(v,u) always resolve to the same Edge value.
//   - Edge.ID is the insertion ordinal ("first edge" = lowest ID).
//   - Parallel edges are retained. Lookups between a pair with several edges
//     return the first one inserted (first-match policy). Callers that depend
//     on a particular parallel edge must insert only that one.
//
// Lifecycle:
//
//	g, _ := core.NewGraph(4)
//	g.AddEdge(0, 1, 1.0, "A-B")
//	g.AddEdge(1, 2, 2.0, "B-C")
//	g.Freeze() // further AddEdge calls fail with ErrFrozen
//
// Build the graph fully, then query it. Freeze makes that discipline explicit;
// a frozen graph can be shared by any number of concurrent readers.
//
// Errors:
//
//	ErrBadVertexCount     – NewGraph with a negative vertex count.
//	ErrInvalidVertexIndex – an endpoint outside [0, VertexCount()).
//	ErrNegativeWeight     – AddEdge with weight < 0.
//	ErrBadWeight          – AddEdge with a NaN or +Inf weight.
//	ErrLoopNotAllowed     – AddEdge(v, v, ...) without WithLoops().
//	ErrEdgeNotFound       – Edge(id) for an unknown ID.
//	ErrFrozen             – AddEdge on a frozen graph.
//
// All validation happens at the offending call; a rejected AddEdge leaves the
// graph unchanged.
//
// Concurrency:
//
//	A single sync.RWMutex guards the edge catalog and adjacency. Mutations take
//	the write lock; queries and View take the read lock.
package core
