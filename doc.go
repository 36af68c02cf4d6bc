// Package lvroute computes labelled single-source shortest paths over small,
// undirected, weighted graphs: for every destination, the minimal total
// weight and a human-readable label built from the descriptions of the edges
// walked, in order.
//
// 🚀 What is in the box?
//
//	• Graph store: int-indexed vertices, edges kept once with weight and description
//	• Shortest paths: Dijkstra with a binary heap or a linear-scan selection
//	• Documents: YAML / JSON graph files (optionally gzip) and the built-in campus graph
//	• Routing: a concurrent per-source cache answering source→dest queries
//
// Under the hood the module is organized as:
//
//	core/              — Graph, Edge, first-match edge lookup, Freeze/Clone
//	dijkstra/          — ShortestPaths, Result, label rendering, strategies
//	loader/            — Document decoding, Build, embedded campus graph
//	router/            — Router and Route: cached point-to-point queries
//	cmd/campusroute/   — the command-line front end
//
// Quick ASCII example:
//
//	    0 ──A-B── 1 ──B-C── 2        3
//
//	from 0: dist(2) = 3, label(2) = "A-B,B-C", vertex 3 unreachable (+Inf, "").
//
//	go install github.com/katalvlaran/lvroute/cmd/campusroute@latest
package lvroute
