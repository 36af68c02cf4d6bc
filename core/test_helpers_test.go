// Package core_test contains test helpers for lvroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
)

// Common weights used across core tests.
const (
	Weight0    = 0.0
	Weight1    = 1.0
	Weight2    = 2.0
	Weight5    = 5.0
	WeightHalf = 0.5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// newLine builds the three-vertex line graph 0—1—2 with "A-B" and "B-C".
func newLine(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	mustAdd(t, g, V0, V1, Weight1, "A-B")
	mustAdd(t, g, V1, V2, Weight2, "B-C")

	return g
}

// mustAdd adds an edge and fails the test on error. Returns the edge ID.
func mustAdd(t *testing.T, g *core.Graph, u, v int, w float64, desc string) int {
	t.Helper()
	id, err := g.AddEdge(u, v, w, desc)
	require.NoError(t, err)

	return id
}
