// Package dijkstra computes single-source shortest paths over a core.Graph and
// records, for every vertex, the sequence of edges on its shortest path.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvroute/core"
)

// noVertex marks "no parent" / "no edge" in the per-vertex tables.
const noVertex = -1

// ShortestPaths computes, from source, the minimum total weight to every vertex
// of g and the edges of the path achieving it.
//
// Returns a fresh *Result owned by the caller. Unreachable vertices report
// distance +Inf and an empty label.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. 0 ≤ source < g.VertexCount() (ErrInvalidVertexIndex).
//
// A graph with no edges is not an error. g is read under its read lock for
// the whole computation and is never mutated.
//
// Complexity:
//
//   - StrategyHeap:       Time O((V + E) log V), Space O(V + E)
//   - StrategyLinearScan: Time O(V²·d),          Space O(V)
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d with %d vertices", ErrInvalidVertexIndex, source, g.VertexCount())
	}

	// 3) Run under the graph's read lock
	var res *Result
	err := g.View(func(v core.View) error {
		r := newRunner(v, source, cfg)
		r.run()
		res = r.result()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	view   core.View
	opts   Options
	log    zerolog.Logger
	source int

	dist    []float64      // vertex → best-known distance from source
	parent  []int          // vertex → predecessor on the recorded path
	via     []int          // vertex → edge ID used to reach it from parent
	settled *bitset.BitSet // finalized vertices

	pq    nodePQ // heap strategy only
	stamp []int  // heap strategy: stamp[c] == step ⇔ c already relaxed in this step
	step  int
}

func newRunner(v core.View, source int, opts Options) *runner {
	n := v.VertexCount()
	r := &runner{
		view:    v,
		opts:    opts,
		log:     opts.Logger,
		source:  source,
		dist:    make([]float64, n),
		parent:  make([]int, n),
		via:     make([]int, n),
		settled: bitset.New(uint(n)),
	}
	// dist[v] = +Inf, no parent, no edge; dist[source] = 0
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.parent[i] = noVertex
		r.via[i] = noVertex
	}
	r.dist[source] = 0

	return r
}

// run dispatches on the strategy, then clears every vertex left unsettled.
func (r *runner) run() {
	r.log.Debug().
		Int("source", r.source).
		Int("vertices", r.view.VertexCount()).
		Int("edges", r.view.EdgeCount()).
		Stringer("strategy", r.opts.Strategy).
		Msg("shortest paths")

	if r.opts.Strategy == StrategyLinearScan {
		r.runScan()
	} else {
		r.runHeap()
	}

	// Tentative distances beyond MaxDistance were never settled; they are unreachable.
	for v := range r.dist {
		if r.settled.Test(uint(v)) {
			continue
		}
		r.dist[v] = math.Inf(1)
		r.parent[v] = noVertex
		r.via[v] = noVertex
	}
}

// runHeap settles vertices in (distance, index) order using a lazy min-heap.
// Stale heap entries always follow the live entry of the same vertex, so they
// are popped only after that vertex is settled and are then skipped.
func (r *runner) runHeap() {
	r.stamp = make([]int, len(r.dist))
	r.pq = make(nodePQ, 0, len(r.dist))
	heap.Push(&r.pq, nodeItem{id: r.source, dist: 0})

	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		if r.settled.Test(uint(item.id)) {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.settle(item.id)

		// Relax each unsettled neighbour once, through its first-inserted edge.
		r.step++
		var e core.Edge
		var c int
		for _, id := range r.view.Incident(item.id) {
			e = r.view.Edge(id)
			c = e.Other(item.id)
			if c == item.id || r.settled.Test(uint(c)) || r.stamp[c] == r.step {
				continue
			}
			r.stamp[c] = r.step
			if r.relax(item.id, c, e) {
				heap.Push(&r.pq, nodeItem{id: c, dist: r.dist[c]})
			}
		}
	}
}

// runScan is the O(V²) selection: settle, probe every unsettled vertex with
// FindEdge, then scan for the unsettled vertex of least distance (lowest index on ties).
func (r *runner) runScan() {
	node := r.source
	for {
		r.settle(node)
		for c := range r.dist {
			if c == r.source || r.settled.Test(uint(c)) {
				continue
			}
			if e, ok := r.view.FindEdge(node, c); ok {
				r.relax(node, c, e)
			}
		}

		next, ok := r.selectMin()
		if !ok {
			return
		}
		node = next
	}
}

// selectMin returns the unsettled vertex with the least finite distance not
// above MaxDistance. Strict comparison over ascending indices keeps the lowest
// index on ties.
func (r *runner) selectMin() (int, bool) {
	best, bestDist := noVertex, math.Inf(1)
	for c, d := range r.dist {
		if r.settled.Test(uint(c)) {
			continue
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == noVertex || bestDist > r.opts.MaxDistance {
		return noVertex, false
	}

	return best, true
}

// settle marks u final.
func (r *runner) settle(u int) {
	r.settled.Set(uint(u))
	r.log.Debug().Int("vertex", u).Float64("dist", r.dist[u]).Msg("settle")
}

// relax improves dist[c] through edge e from u when strictly shorter.
func (r *runner) relax(u, c int, e core.Edge) bool {
	nd := r.dist[u] + e.Weight
	if nd >= r.dist[c] {
		return false
	}
	r.dist[c] = nd
	r.parent[c] = u
	r.via[c] = e.ID
	r.log.Trace().Int("from", u).Int("to", c).Int("edge", e.ID).Float64("dist", nd).Msg("relax")

	return true
}

// result hands the tables over to a Result. The runner must not be used afterwards.
func (r *runner) result() *Result {
	return &Result{
		source:  r.source,
		sep:     r.opts.Separator,
		dist:    r.dist,
		parent:  r.parent,
		via:     r.via,
		catalog: r.view.Catalog(),
	}
}

// nodeItem is a heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
// The id tie-break reproduces the linear scan's lowest-index-first order.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
