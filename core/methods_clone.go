// File: methods_clone.go
// Role: Freezing and cloning graph instances.
// Determinism:
//   - Clone preserves edge IDs, so paths computed on the clone name the same edges.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

import "fmt"

// Freeze marks the graph read-only. Subsequent AddEdge calls return ErrFrozen.
// Freezing an already frozen graph is a no-op.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Clone returns a deep, unfrozen copy of the graph: configuration, edges and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := &Graph{
		vertexCount: g.vertexCount,
		allowLoops:  g.allowLoops,
		edges:       make([]Edge, len(g.edges)),
		adjacency:   make([][]int, g.vertexCount),
	}
	copy(clone.edges, g.edges)
	for v, ids := range g.adjacency {
		if len(ids) == 0 {
			continue
		}
		clone.adjacency[v] = append([]int(nil), ids...)
	}

	return clone
}

// WithWeight returns a clone of g in which edge id carries weight w.
// The source graph is not modified. Used to probe how a single weight change
// moves shortest distances.
func (g *Graph) WithWeight(id int, w float64) (*Graph, error) {
	if _, err := g.Edge(id); err != nil {
		return nil, err
	}
	if err := checkWeight(w); err != nil {
		return nil, fmt.Errorf("%w: edge id %d weight=%v", err, id, w)
	}
	clone := g.Clone()
	clone.edges[id].Weight = w

	return clone, nil
}
