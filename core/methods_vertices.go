// File: methods_vertices.go
// Role: Vertex queries: VertexCount/HasVertex/Neighbors/NeighborIDs/Degree.
// Determinism:
//   - Neighbors() is in edge insertion order; NeighborIDs() is sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.vertexCount }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return g.inRange(v) }

// inRange reports 0 <= v < vertexCount. vertexCount is immutable, so no lock is needed.
func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.vertexCount }

// Neighbors returns the edges incident to u in insertion order.
// Parallel edges appear once each; a self-loop appears once.
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.inRange(u) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexIndex, u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.adjacency[u]))
	for _, id := range g.adjacency[u] {
		out = append(out, g.edges[id])
	}

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to u, sorted ascending.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(u int) ([]int, error) {
	if !g.inRange(u) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexIndex, u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[int]struct{}, len(g.adjacency[u]))
	out := make([]int, 0, len(g.adjacency[u]))
	var w int
	for _, id := range g.adjacency[u] {
		w = g.edges[id].Other(u)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to u, counting parallel edges
// separately and a self-loop once.
func (g *Graph) Degree(u int) (int, error) {
	if !g.inRange(u) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertexIndex, u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u]), nil
}
