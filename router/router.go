// Package router answers point-to-point route queries over one frozen graph.
//
// A Router runs the shortest-path engine at most once per source (barring a
// race between first callers, which compute identical tables) and keeps the
// resulting *dijkstra.Result in a sharded concurrent map, so any number of
// goroutines may call Route at once.
package router

import (
	"context"
	"errors"
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ErrNilGraph is returned by every query on a Router built over a nil graph.
var ErrNilGraph = errors.New("router: graph is nil")

// shardCount spreads sources across the map's shards.
const shardCount = 32

// Route is the answer to a single source→dest query.
type Route struct {
	Source    int     `json:"source"`
	Dest      int     `json:"dest"`
	Distance  float64 `json:"distance"`
	Label     string  `json:"label"`
	Edges     []int   `json:"edges"`
	Reachable bool    `json:"reachable"`
}

// Router caches one shortest-path table per queried source.
type Router struct {
	g     *core.Graph
	opts  []dijkstra.Option
	cache cmap.ConcurrentMap[int, *dijkstra.Result]
}

// New freezes g and returns a Router over it. opts are passed to every
// engine run.
func New(g *core.Graph, opts ...dijkstra.Option) *Router {
	if g != nil {
		g.Freeze()
	}

	return &Router{
		g:    g,
		opts: opts,
		cache: cmap.NewWithCustomShardingFunction[int, *dijkstra.Result](func(key int) uint32 {
			return uint32(key % shardCount)
		}),
	}
}

// Graph returns the frozen graph the Router answers over.
func (r *Router) Graph() *core.Graph { return r.g }

// Result returns the full table for source, computing it on first use.
// ctx is checked before any computation starts.
func (r *Router) Result(ctx context.Context, source int) (*dijkstra.Result, error) {
	if r.g == nil {
		return nil, ErrNilGraph
	}
	if res, ok := r.cache.Get(source); ok {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := dijkstra.ShortestPaths(r.g, source, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("router: source %d: %w", source, err)
	}
	if !r.cache.SetIfAbsent(source, res) {
		res, _ = r.cache.Get(source)
	}

	return res, nil
}

// Route answers source→dest. An unreachable dest yields Distance=+Inf,
// an empty Label and Reachable=false, with a nil error.
func (r *Router) Route(ctx context.Context, source, dest int) (Route, error) {
	res, err := r.Result(ctx, source)
	if err != nil {
		return Route{}, err
	}
	pr, err := res.Get(dest)
	if err != nil {
		return Route{}, fmt.Errorf("router: dest %d: %w", dest, err)
	}

	return Route{
		Source:    source,
		Dest:      dest,
		Distance:  pr.Distance,
		Label:     pr.Label,
		Edges:     res.Path(dest),
		Reachable: pr.Reachable(),
	}, nil
}

// Cached reports how many sources currently have a table in the cache.
func (r *Router) Cached() int { return r.cache.Count() }

// Purge drops every cached table.
func (r *Router) Purge() { r.cache.Clear() }
