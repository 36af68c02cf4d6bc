// Package core defines the Graph and Edge types, the GraphOption functional
// options, the sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates NewGraph was called with a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidVertexIndex indicates an endpoint outside [0, VertexCount()).
	ErrInvalidVertexIndex = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates AddEdge was given a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates AddEdge was given a NaN or infinite weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Edge is an undirected, weighted connection between two vertices.
//
// From and To record the order given to AddEdge; the edge is traversable in
// both directions with the same Weight and Description.
type Edge struct {
	// ID is the insertion ordinal of this edge, starting at 0.
	ID int

	// From is the first endpoint passed to AddEdge.
	From int

	// To is the second endpoint passed to AddEdge.
	To int

	// Weight is the non-negative traversal cost.
	Weight float64

	// Description is the human-readable text rendered into path labels.
	Description string
}

// Other returns the endpoint of e opposite to v.
// For a self-loop both endpoints are v. If v is not an endpoint, Other returns -1.
func (e Edge) Other(v int) int {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return -1
	}
}

// String renders the edge as "u—v (w) \"desc\"".
func (e Edge) String() string {
	return fmt.Sprintf("%d—%d (%g) %q", e.From, e.To, e.Weight, e.Description)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop never shortens a path; it is stored once in the vertex's adjacency.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithEdgeCapacity pre-sizes the edge catalog for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, n)
		}
	}
}

// Graph is the in-memory store of a fixed vertex set and its labelled edges.
//
// mu guards edges, adjacency and frozen. vertexCount and allowLoops are fixed
// at construction and read without locking.
type Graph struct {
	mu sync.RWMutex

	// Configuration (immutable after NewGraph)
	vertexCount int
	allowLoops  bool

	// Storage
	edges     []Edge  // edge ID → Edge, append-only
	adjacency [][]int // vertex → incident edge IDs in insertion order
	frozen    bool
}

// NewGraph creates a Graph with vertexCount vertices and no edges.
// A zero vertex count is valid and yields an empty graph.
//
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}
	g := &Graph{
		vertexCount: vertexCount,
		adjacency:   make([][]int, vertexCount),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error. Intended for tests and
// package-level fixtures with constant sizes.
func MustGraph(vertexCount int, opts ...GraphOption) *Graph {
	g, err := NewGraph(vertexCount, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
