// Package dijkstra provides a labelled implementation of Dijkstra's
// shortest-path algorithm on core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths(g, source) settles vertices in order of increasing distance
//     (lowest vertex index first on ties) and, for each vertex, keeps the edge
//     through which its shortest distance was last improved.
//   - The returned *Result answers Distance, Path (edge IDs), Vertices, Label
//     and the (distance, label) PathResult for every destination.
//   - Labels are not built during relaxation. The engine records edge IDs and
//     Result.Label renders the descriptions on demand, joined by the separator
//     (default ","), with no leading separator.
//
// Parallel edges:
//
//   - Relaxation from u to c always goes through the first-inserted edge
//     joining them (core.Graph.FindEdge), even if a later parallel edge is lighter.
//
// Selection strategies:
//
//   - StrategyHeap (default): binary heap keyed by (distance, vertex) with lazy
//     decrease-key. O((V + E) log V).
//   - StrategyLinearScan: linear scan for the minimum, FindEdge probe of every
//     unsettled vertex. O(V²·d). Identical results; kept for small graphs and
//     as a reference for the heap.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pr, _ := res.Get(2)
//	fmt.Println(pr.Distance, pr.Label) // 3 A-B,B-C
//
// Unreachable destinations are not errors: they report +Inf and "".
//
// Thread safety:
//
//   - ShortestPaths holds g's read lock for the whole computation, so a
//     concurrent AddEdge is never observed mid-query.
//   - Each call allocates its own Result; many queries may run in parallel
//     over the same graph. Freeze the graph to rule out mutation entirely.
package dijkstra
