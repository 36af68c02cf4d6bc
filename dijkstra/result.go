// File: result.go
// Role: The per-query PathResult table returned by ShortestPaths.
// Determinism:
//   - Paths are stored as edge IDs; labels are rendered on demand.
// Concurrency:
//   - A Result is immutable once returned and safe for concurrent readers.

package dijkstra

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// PathResult is the (distance, label) pair reported for one destination.
// Unreachable destinations have Distance == +Inf and an empty Label.
type PathResult struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Label    string  `json:"label" yaml:"label"`
}

// Reachable reports whether the distance is finite.
func (p PathResult) Reachable() bool { return !math.IsInf(p.Distance, 1) }

// Result holds, for one source, the distance, predecessor and arriving edge
// of every vertex, plus the edge catalog needed to render labels.
type Result struct {
	source  int
	sep     string
	dist    []float64
	parent  []int
	via     []int
	catalog []core.Edge
}

// Source returns the vertex the result was computed from.
func (r *Result) Source() int { return r.source }

// Len returns the number of vertices covered by the result.
func (r *Result) Len() int { return len(r.dist) }

// has reports 0 ≤ v < Len().
func (r *Result) has(v int) bool { return v >= 0 && v < len(r.dist) }

// Distance returns the shortest distance to v; +Inf if v is unreachable or out of range.
func (r *Result) Distance(v int) float64 {
	if !r.has(v) {
		return math.Inf(1)
	}

	return r.dist[v]
}

// Reachable reports whether a path from the source to v exists.
func (r *Result) Reachable(v int) bool { return !math.IsInf(r.Distance(v), 1) }

// Parent returns the predecessor of v on its recorded path.
// The source and unreachable vertices have no parent.
func (r *Result) Parent(v int) (int, bool) {
	if !r.has(v) || r.parent[v] == noVertex {
		return noVertex, false
	}

	return r.parent[v], true
}

// Path returns the IDs of the edges from the source to v in traversal order.
// It is empty for the source itself and nil for unreachable vertices.
func (r *Result) Path(v int) []int {
	if !r.Reachable(v) {
		return nil
	}
	path := make([]int, 0, 8)
	for cur := v; cur != r.source; cur = r.parent[cur] {
		path = append(path, r.via[cur])
	}
	// Walked v → source; flip to source → v.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Edges returns the edges from the source to v in traversal order.
func (r *Result) Edges(v int) []core.Edge {
	ids := r.Path(v)
	if ids == nil {
		return nil
	}
	out := make([]core.Edge, len(ids))
	for i, id := range ids {
		out[i] = r.catalog[id]
	}

	return out
}

// Vertices returns the vertex sequence source, …, v; nil for unreachable vertices.
func (r *Result) Vertices(v int) []int {
	if !r.Reachable(v) {
		return nil
	}
	seq := []int{v}
	for cur := v; cur != r.source; {
		cur = r.parent[cur]
		seq = append(seq, cur)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq
}

// Label renders the descriptions of the edges on v's path, joined by the
// configured separator. A separator is written only after a non-empty prefix,
// so the label never starts with one even when leading descriptions are empty.
func (r *Result) Label(v int) string {
	ids := r.Path(v)
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range ids {
		if b.Len() > 0 {
			b.WriteString(r.sep)
		}
		b.WriteString(r.catalog[id].Description)
	}

	return b.String()
}

// Get returns the PathResult for v, or ErrInvalidVertexIndex.
func (r *Result) Get(v int) (PathResult, error) {
	if !r.has(v) {
		return PathResult{}, fmt.Errorf("%w: %d with %d vertices", ErrInvalidVertexIndex, v, len(r.dist))
	}

	return PathResult{Distance: r.dist[v], Label: r.Label(v)}, nil
}

// Table returns the full vertex → PathResult mapping.
func (r *Result) Table() map[int]PathResult {
	out := make(map[int]PathResult, len(r.dist))
	for v := range r.dist {
		out[v] = PathResult{Distance: r.dist[v], Label: r.Label(v)}
	}

	return out
}

// ReachableCount returns how many vertices, the source included, are reachable.
func (r *Result) ReachableCount() int {
	n := 0
	for _, d := range r.dist {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}
