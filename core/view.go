// File: view.go
// Role: Read-only, lock-held access to a Graph for the duration of one computation.
// Concurrency:
//   - Graph.View holds the read lock while fn runs; View methods do not lock.
//   - A View must not escape fn.

package core

// View is a read-only window onto a Graph whose read lock is held by Graph.View.
// Its methods perform no locking, so an algorithm can issue many lookups
// without contending on the mutex, and no AddEdge can interleave with them.
type View struct {
	g *Graph
}

// View runs fn with a View of g while holding g's read lock.
// The error returned by fn is passed through.
//
// fn must not call mutating methods on g (AddEdge, Freeze), which would deadlock.
func (g *Graph) View(fn func(v View) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(View{g: g})
}

// VertexCount returns the number of vertices.
func (v View) VertexCount() int { return v.g.vertexCount }

// EdgeCount returns the number of edges.
func (v View) EdgeCount() int { return len(v.g.edges) }

// FindEdge is Graph.FindEdge without locking.
func (v View) FindEdge(a, b int) (Edge, bool) { return v.g.findEdge(a, b) }

// Edge returns the edge with the given ID. The ID must come from this graph.
func (v View) Edge(id int) Edge { return v.g.edges[id] }

// Incident returns the IDs of the edges incident to u in insertion order.
// The slice is shared with the graph and must not be modified.
func (v View) Incident(u int) []int { return v.g.adjacency[u] }

// Catalog returns the edge catalog as of this view, in ID order.
//
// The catalog is append-only and existing entries are never rewritten, so the
// returned slice stays valid after the view ends. It is capped to its length;
// appending to it never writes into the graph.
func (v View) Catalog() []Edge {
	n := len(v.g.edges)

	return v.g.edges[:n:n]
}
