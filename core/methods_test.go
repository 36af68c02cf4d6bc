package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// ------------------------------------------------------------------------
// 1. AddEdge validation
// ------------------------------------------------------------------------

func TestAddEdge_Validation(t *testing.T) {
	cases := []struct {
		name string
		u, v int
		w    float64
		want error
	}{
		{"u negative", -1, V1, Weight1, core.ErrInvalidVertexIndex},
		{"v past end", V0, V3, Weight1, core.ErrInvalidVertexIndex},
		{"negative weight", V0, V1, -0.5, core.ErrNegativeWeight},
		{"NaN weight", V0, V1, math.NaN(), core.ErrBadWeight},
		{"+Inf weight", V0, V1, math.Inf(1), core.ErrBadWeight},
		{"-Inf weight", V0, V1, math.Inf(-1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.MustGraph(3)
			id, err := g.AddEdge(tc.u, tc.v, tc.w, "x")
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, -1, id)
			assert.Zero(t, g.EdgeCount(), "rejected edge must not be stored")
		})
	}
}

func TestAddEdge_ErrorDoesNotCorruptState(t *testing.T) {
	g := newLine(t)
	_, err := g.AddEdge(V2, 7, Weight1, "bad")
	require.Error(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	nbs, err := g.NeighborIDs(V2)
	require.NoError(t, err)
	assert.Equal(t, []int{V1}, nbs)
}

func TestAddEdge_ZeroWeightIsFound(t *testing.T) {
	g := core.MustGraph(2)
	mustAdd(t, g, V0, V1, Weight0, "free")

	e, ok := g.FindEdge(V0, V1)
	require.True(t, ok, "zero-weight edge must be distinguishable from absence")
	assert.Equal(t, Weight0, e.Weight)
}

func TestAddEdge_IDsAreInsertionOrdinals(t *testing.T) {
	g := core.MustGraph(4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, mustAdd(t, g, i, i+1, Weight1, ""))
	}
	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
	}
}

// ------------------------------------------------------------------------
// 2. FindEdge: symmetry, absence, first-match
// ------------------------------------------------------------------------

func TestFindEdge_Symmetry(t *testing.T) {
	g := newLine(t)
	pairs := [][2]int{{V0, V1}, {V1, V2}}
	for _, p := range pairs {
		ab, okAB := g.FindEdge(p[0], p[1])
		ba, okBA := g.FindEdge(p[1], p[0])
		require.True(t, okAB)
		require.True(t, okBA)
		assert.Equal(t, ab, ba)
	}

	e, _ := g.FindEdge(V2, V1)
	assert.Equal(t, Weight2, e.Weight)
	assert.Equal(t, "B-C", e.Description)
}

func TestFindEdge_Absent(t *testing.T) {
	g := newLine(t)
	_, ok := g.FindEdge(V0, V2)
	assert.False(t, ok)
	_, ok = g.FindEdge(V0, 99)
	assert.False(t, ok)
	_, ok = g.FindEdge(-1, V0)
	assert.False(t, ok)
}

func TestFindEdge_ParallelFirstMatch(t *testing.T) {
	g := core.MustGraph(2)
	slow := mustAdd(t, g, V0, V1, Weight5, "slow")
	mustAdd(t, g, V0, V1, Weight1, "fast")
	assert.Equal(t, 2, g.EdgeCount(), "parallel edges are retained")

	for _, pair := range [][2]int{{V0, V1}, {V1, V0}} {
		e, ok := g.FindEdge(pair[0], pair[1])
		require.True(t, ok)
		assert.Equal(t, slow, e.ID)
		assert.Equal(t, "slow", e.Description)
		assert.Equal(t, Weight5, e.Weight)
	}
}

// ------------------------------------------------------------------------
// 3. Neighbours, degree, edge lookup
// ------------------------------------------------------------------------

func TestNeighbors(t *testing.T) {
	g := core.MustGraph(4)
	mustAdd(t, g, V1, V3, Weight1, "b")
	mustAdd(t, g, V1, V0, Weight1, "a")
	mustAdd(t, g, V3, V1, Weight2, "b2")

	nbs, err := g.Neighbors(V1)
	require.NoError(t, err)
	require.Len(t, nbs, 3)
	assert.Equal(t, []string{"b", "a", "b2"}, []string{nbs[0].Description, nbs[1].Description, nbs[2].Description})

	ids, err := g.NeighborIDs(V1)
	require.NoError(t, err)
	assert.Equal(t, []int{V0, V3}, ids, "distinct and sorted")

	deg, err := g.Degree(V2)
	require.NoError(t, err)
	assert.Zero(t, deg)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrInvalidVertexIndex)
	_, err = g.NeighborIDs(-1)
	assert.ErrorIs(t, err, core.ErrInvalidVertexIndex)
	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrInvalidVertexIndex)
}

func TestEdgeLookup(t *testing.T) {
	g := newLine(t)
	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, "B-C", e.Description)

	_, err = g.Edge(2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Edge(-1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestHasVertex(t *testing.T) {
	g := core.MustGraph(2)
	assert.True(t, g.HasVertex(V0))
	assert.True(t, g.HasVertex(V1))
	assert.False(t, g.HasVertex(V2))
	assert.False(t, g.HasVertex(-1))
}

// ------------------------------------------------------------------------
// 4. Freeze, Clone, WithWeight, View
// ------------------------------------------------------------------------

func TestFreeze(t *testing.T) {
	g := newLine(t)
	g.Freeze()
	g.Freeze()
	assert.True(t, g.Frozen())

	_, err := g.AddEdge(V0, V2, Weight1, "late")
	assert.True(t, errors.Is(err, core.ErrFrozen))
	assert.Equal(t, 2, g.EdgeCount())

	// Validation still runs before the frozen check.
	_, err = g.AddEdge(V0, V2, -1, "late")
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestClone_Independent(t *testing.T) {
	g := newLine(t)
	g.Freeze()
	c := g.Clone()
	assert.False(t, c.Frozen())
	assert.Equal(t, g.Edges(), c.Edges())

	mustAdd(t, c, V0, V2, WeightHalf, "short")
	assert.Equal(t, 3, c.EdgeCount())
	assert.Equal(t, 2, g.EdgeCount())
	_, ok := g.FindEdge(V0, V2)
	assert.False(t, ok)
}

func TestWithWeight(t *testing.T) {
	g := newLine(t)
	h, err := g.WithWeight(0, Weight5)
	require.NoError(t, err)

	e, _ := h.FindEdge(V0, V1)
	assert.Equal(t, Weight5, e.Weight)
	e, _ = g.FindEdge(V0, V1)
	assert.Equal(t, Weight1, e.Weight, "source graph untouched")

	_, err = g.WithWeight(9, Weight1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.WithWeight(0, -2)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestView(t *testing.T) {
	g := newLine(t)
	err := g.View(func(v core.View) error {
		assert.Equal(t, 3, v.VertexCount())
		assert.Equal(t, 2, v.EdgeCount())
		assert.Equal(t, []int{0, 1}, v.Incident(V1))
		assert.Equal(t, "A-B", v.Edge(0).Description)
		e, ok := v.FindEdge(V2, V1)
		assert.True(t, ok)
		assert.Equal(t, 1, e.ID)

		cat := v.Catalog()
		assert.Len(t, cat, 2)
		assert.Equal(t, 2, cap(cat))

		return nil
	})
	require.NoError(t, err)

	sentinel := errors.New("stop")
	assert.ErrorIs(t, g.View(func(core.View) error { return sentinel }), sentinel)
}
