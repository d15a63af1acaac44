package astar

import (
	"container/heap"
	"testing"

	"github.com/katalvlaran/routecalc/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type c = gridgraph.Cell

// TestReconstruct_Chain rebuilds a straight chain in start→goal order.
func TestReconstruct_Chain(t *testing.T) {
	came := map[c]c{
		{Row: 0, Col: 1}: {Row: 0, Col: 0},
		{Row: 0, Col: 2}: {Row: 0, Col: 1},
		{Row: 1, Col: 2}: {Row: 0, Col: 2},
	}
	path, err := reconstruct(came, c{Row: 0, Col: 0}, c{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}, path)
}

// TestReconstruct_StartIsGoal needs no predecessor links.
func TestReconstruct_StartIsGoal(t *testing.T) {
	path, err := reconstruct(map[c]c{}, c{Row: 2, Col: 2}, c{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, Path{{Row: 2, Col: 2}}, path)
}

// TestReconstruct_MissingLink surfaces the inconsistency instead of a short path.
func TestReconstruct_MissingLink(t *testing.T) {
	came := map[c]c{{Row: 0, Col: 2}: {Row: 0, Col: 1}}
	path, err := reconstruct(came, c{Row: 0, Col: 0}, c{Row: 0, Col: 2})
	assert.ErrorIs(t, err, ErrReconstruction)
	assert.Nil(t, path)

	_, err = reconstruct(map[c]c{}, c{Row: 0, Col: 0}, c{Row: 3, Col: 3})
	assert.ErrorIs(t, err, ErrReconstruction)
}

// TestReconstruct_Cycle terminates on a predecessor loop that never meets start.
func TestReconstruct_Cycle(t *testing.T) {
	came := map[c]c{
		{Row: 1, Col: 1}: {Row: 1, Col: 2},
		{Row: 1, Col: 2}: {Row: 1, Col: 1},
	}
	_, err := reconstruct(came, c{Row: 0, Col: 0}, c{Row: 1, Col: 1})
	assert.ErrorIs(t, err, ErrReconstruction)
}

// TestRunner_ScoreInvariants checks the bookkeeping after a full search:
// every reached cell other than start has a predecessor, f = g + h, and
// each predecessor is one move cheaper.
func TestRunner_ScoreInvariants(t *testing.T) {
	g, err := gridgraph.New(6, 6)
	require.NoError(t, err)
	g.SetObstacle(c{Row: 2, Col: 2})
	g.SetObstacle(c{Row: 2, Col: 3})
	g.SetObstacle(c{Row: 3, Col: 2})
	start, goal := c{Row: 0, Col: 0}, c{Row: 5, Col: 5}

	r := newRunner(g, start, goal, DefaultOptions())
	for {
		st, err := r.step()
		require.NoError(t, err)
		if st.done {
			require.True(t, st.found)
			break
		}
	}

	for cell, gs := range r.gScore {
		assert.Equal(t, gs+Manhattan(cell, goal), r.fScore[cell], "f = g + h at %v", cell)
		if cell == start {
			assert.Zero(t, gs)
			continue
		}
		prev, ok := r.cameFrom[cell]
		require.Truef(t, ok, "reached cell %v has no predecessor", cell)
		assert.Equal(t, gs-1, r.gScore[prev], "predecessor of %v", cell)
	}
	assert.Len(t, r.inOpen, r.open.Len(), "membership index matches heap")
	for _, it := range r.open {
		assert.Same(t, it, r.inOpen[it.cell])
	}
}

// TestOpenQueue_Order checks the (f, h, seq) ordering and index upkeep.
func TestOpenQueue_Order(t *testing.T) {
	q := make(openQueue, 0)
	heap.Init(&q)
	items := []*openItem{
		{cell: c{Row: 0, Col: 0}, f: 6, h: 2, seq: 1},
		{cell: c{Row: 0, Col: 1}, f: 5, h: 3, seq: 2},
		{cell: c{Row: 0, Col: 2}, f: 5, h: 1, seq: 4},
		{cell: c{Row: 0, Col: 3}, f: 5, h: 1, seq: 3},
	}
	for _, it := range items {
		heap.Push(&q, it)
	}
	for i, it := range q {
		assert.Equal(t, i, it.index)
	}

	// Decrease the key of the worst item so it comes first.
	items[0].f = 4
	heap.Fix(&q, items[0].index)

	var got []c
	for q.Len() > 0 {
		it := heap.Pop(&q).(*openItem)
		assert.Equal(t, -1, it.index)
		got = append(got, it.cell)
	}
	assert.Equal(t, []c{{Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: 2}, {Row: 0, Col: 1}}, got)
}

// TestNewRunner_OpenCapacityIndependentOfGrid checks the open set does not
// preallocate in proportion to the grid dimensions.
func TestNewRunner_OpenCapacityIndependentOfGrid(t *testing.T) {
	g, err := gridgraph.New(2, 200000)
	require.NoError(t, err)

	r := newRunner(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 199999}, DefaultOptions())
	assert.LessOrEqual(t, cap(r.open), initialOpenCap)
	assert.Equal(t, 1, r.open.Len())
}
