// Package dijkstra defines the sentinel errors, selection strategies and
// functional options for the labelled shortest-path engine.
//
// Options:
//
//	– WithStrategy:    StrategyHeap (default) or StrategyLinearScan.
//	– WithSeparator:   text placed between edge descriptions in labels (default ",").
//	– WithMaxDistance: vertices farther than this are reported unreachable.
//	– WithLogger:      zerolog logger receiving a debug trace of settle/relax steps.
//
// Errors (sentinel):
//
//	– ErrNilGraph            if the provided graph pointer is nil.
//	– ErrInvalidVertexIndex  if the source (or a queried vertex) is out of range.
//	– ErrBadMaxDistance      if MaxDistance < 0 or NaN (raised via panic by the option).
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidVertexIndex indicates a vertex outside [0, VertexCount()).
	// It is the core sentinel, so one errors.Is check covers store and engine.
	ErrInvalidVertexIndex = core.ErrInvalidVertexIndex

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnknownStrategy indicates a strategy name that ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// DefaultSeparator joins edge descriptions in rendered labels.
const DefaultSeparator = ","

// Strategy selects how the next vertex to settle is found.
// Both strategies settle vertices in the same order and produce identical results.
type Strategy int

const (
	// StrategyHeap keeps tentative distances in a binary heap keyed by
	// (distance, vertex). O((V + E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinearScan scans every vertex for the minimum and probes every
	// unsettled vertex with FindEdge. O(V²·d). Suitable for small graphs.
	StrategyLinearScan
)

// String returns the flag-friendly name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinearScan:
		return "scan"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "heap" and "scan" to their Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return StrategyHeap, nil
	case "scan", "linear":
		return StrategyLinearScan, nil
	default:
		return StrategyHeap, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures the behavior of ShortestPaths.
type Options struct {
	Strategy    Strategy       // vertex selection strategy
	Separator   string         // label separator
	MaxDistance float64        // settle only vertices with distance ≤ MaxDistance
	Logger      zerolog.Logger // debug trace sink
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithStrategy selects the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithSeparator sets the text placed between edge descriptions in labels.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance exceeds
// max are reported unreachable. Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithLogger routes the engine's debug trace to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults:
//   - Strategy:    StrategyHeap
//   - Separator:   ","
//   - MaxDistance: +Inf (no cap)
//   - Logger:      zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyHeap,
		Separator:   DefaultSeparator,
		MaxDistance: math.Inf(1),
		Logger:      zerolog.Nop(),
	}
}
