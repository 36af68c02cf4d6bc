// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/FindEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are insertion ordinals; Edges() returns them in ID order.
//   - FindEdge resolves parallel edges to the lowest ID (first inserted).
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts an undirected edge u—v with the given weight and description
// and returns its ID.
//
// Steps:
//  1. Validate endpoints, weight and loop policy.
//  2. Lock, reject if frozen.
//  3. Append the Edge to the catalog under the next ID.
//  4. Link the ID into adjacency[u] and, unless u == v, adjacency[v].
//
// A rejected call leaves the graph unchanged. Parallel edges are retained.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64, description string) (int, error) {
	// 1) Input validation
	if !g.inRange(u) || !g.inRange(v) {
		return -1, fmt.Errorf("%w: edge %d—%d with %d vertices", ErrInvalidVertexIndex, u, v, g.vertexCount)
	}
	if err := checkWeight(weight); err != nil {
		return -1, fmt.Errorf("%w: edge %d—%d weight=%v", err, u, v, weight)
	}
	if u == v && !g.allowLoops {
		return -1, fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return -1, ErrFrozen
	}

	// 3) Catalog
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: weight, Description: description})

	// 4) Adjacency; loops are linked once
	g.adjacency[u] = append(g.adjacency[u], id)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], id)
	}

	return id, nil
}

// checkWeight rejects weights the engine cannot relax over.
// NaN and +Inf would be indistinguishable from "no edge".
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// FindEdge returns the first-inserted edge joining u and v.
// The boolean is false when no such edge exists or either index is out of range;
// a zero-weight edge is reported as found.
//
// FindEdge(u, v) and FindEdge(v, u) return the same Edge.
//
// Complexity: O(deg(u)).
func (g *Graph) FindEdge(u, v int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findEdge(u, v)
}

// findEdge scans adjacency[u] in insertion order. Caller holds mu.
func (g *Graph) findEdge(u, v int) (Edge, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return Edge{}, false
	}
	var e Edge
	for _, id := range g.adjacency[u] {
		e = g.edges[id]
		if e.Other(u) == v {
			return e, true
		}
	}

	return Edge{}, false
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a copy of all edges in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
