package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/loader"
)

func TestCampus_Shape(t *testing.T) {
	doc, err := loader.Campus()
	require.NoError(t, err)
	assert.Equal(t, 30, doc.Vertices)
	assert.Len(t, doc.Edges, 46)
	assert.Equal(t, "Kininvie", doc.Name(0))
	assert.Equal(t, "Physics building", doc.Name(21))
	assert.Equal(t, "29", doc.Name(29), "undescribed locations keep their index")

	// Campus returns an independent copy each time.
	doc.Edges = nil
	again, err := loader.Campus()
	require.NoError(t, err)
	assert.Len(t, again.Edges, 46)
}

func TestCampus_Routes(t *testing.T) {
	doc, err := loader.Campus()
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)

	for _, s := range []dijkstra.Strategy{dijkstra.StrategyHeap, dijkstra.StrategyLinearScan} {
		res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 30, res.ReachableCount(), "every location is reachable from Kininvie")

		assert.InDelta(t, 0.25, res.Distance(1), 1e-9)
		assert.Equal(t, "Walk between XXX Kininvie and Sarnia ", res.Label(1))

		assert.InDelta(t, 1.25, res.Distance(9), 1e-9)
		assert.Equal(t, strings.Join([]string{
			"Walk between XXX Kininvie and Brescia Parking lot",
			"Walk between the Brescia parking lot and the Huron underpass ",
			"Walk between the Huron Underpass and the footpath in front of the UCC",
		}, ","), res.Label(9))

		assert.InDelta(t, 1.62, res.Distance(21), 1e-9)
		assert.Equal(t, []int{0, 3, 6, 9, 8, 21}, res.Vertices(21))

		// The last four legs to 29 have no description.
		assert.InDelta(t, 2.73, res.Distance(29), 1e-9)
		assert.True(t, strings.HasSuffix(res.Label(29), "the stop sign there.,,,,"))
		assert.Len(t, res.Path(29), 10)
	}
}

func TestCampus_ReverseSkipsLeadingEmptyDescriptions(t *testing.T) {
	doc, err := loader.Campus()
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, 29)
	require.NoError(t, err)
	assert.InDelta(t, 2.73, res.Distance(0), 1e-9)
	assert.True(t, strings.HasPrefix(res.Label(0), "Walk between the UC footpath at Music building"))
	assert.True(t, strings.HasSuffix(res.Label(0), "Walk between XXX Kininvie and Brescia Parking lot"))
}

func TestCampus_DuplicateEdgeUsesFirst(t *testing.T) {
	doc, err := loader.Campus()
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)

	e, ok := g.FindEdge(9, 8)
	require.True(t, ok)
	first := -1
	for i, es := range doc.Edges {
		if es.From == 8 && es.To == 9 {
			first = i
			break
		}
	}
	assert.Equal(t, first, e.ID)
}
