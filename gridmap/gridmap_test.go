package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/search"
)

// requirePanicsIs asserts fn panics with an error matching want.
func requirePanicsIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic with %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, want)
	}()
	fn()
}

func flat(rows ...[]float64) []float64 {
	var ws []float64
	for _, r := range rows {
		ws = append(ws, r...)
	}

	return ws
}

func openGrid3x3(t *testing.T, diagonal bool) *gridmap.GridMap[float64] {
	t.Helper()
	gm, err := gridmap.NewGridMap(3, 3, flat(
		[]float64{1, 1, 1},
		[]float64{1, 1, 1},
		[]float64{1, 1, 1},
	), gridmap.WithDiagonal(diagonal))
	require.NoError(t, err)

	return gm
}

//----------------------------------------------------------------------------//
// Edge enumeration and costing
//----------------------------------------------------------------------------//

// TestEdges_Conn8_Center: on an all-passable 3×3 grid with diagonals,
// the center cell has eight neighbors, four at straight weight 1.0 and
// four at diagonal weight 1.4143.
func TestEdges_Conn8_Center(t *testing.T) {
	gm := openGrid3x3(t, true)
	center := gridmap.Coord{X: 1, Y: 1}

	es := gm.Edges(center)
	require.Len(t, es, 8)

	straight, diagonal := 0, 0
	for _, e := range es {
		require.Equal(t, center, e.From)
		dx, dy := e.To.X-center.X, e.To.Y-center.Y
		if dx*dx+dy*dy == 1 {
			straight++
			assert.Equal(t, 1.0, e.Weight, "straight step to (%d,%d)", e.To.X, e.To.Y)
		} else {
			diagonal++
			assert.InDelta(t, 1.4143, e.Weight, 1e-12, "diagonal step to (%d,%d)", e.To.X, e.To.Y)
		}
	}
	assert.Equal(t, 4, straight)
	assert.Equal(t, 4, diagonal)
}

// TestEdges_Conn4_Wall: with (1,1) impassable and diagonals disabled,
// the corner (0,0) connects only to (1,0) and (0,1).
func TestEdges_Conn4_Wall(t *testing.T) {
	gm, err := gridmap.NewGridMap(3, 3, flat(
		[]float64{1, 1, 1},
		[]float64{1, -1, 1},
		[]float64{1, 1, 1},
	), gridmap.WithDiagonal(false))
	require.NoError(t, err)

	es := gm.Edges(gridmap.Coord{X: 0, Y: 0})
	require.Len(t, es, 2)
	got := []gridmap.Coord{es[0].To, es[1].To}
	assert.ElementsMatch(t, []gridmap.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}, got)
	for _, e := range es {
		assert.Equal(t, 1.0, e.Weight)
	}

	h := gridmap.ManhattanDistance[float64](gridmap.Coord{X: 0, Y: 0}, gridmap.Coord{X: 2, Y: 2})
	assert.Equal(t, 4.0, h)
}

// TestEdges_TerrainScalesCost: the edge weight is the destination
// terrain weight scaled by the step weight.
func TestEdges_TerrainScalesCost(t *testing.T) {
	gm, err := gridmap.NewGridMap(2, 2, []float64{1, 3, 2, 5}, gridmap.WithDiagonal(true))
	require.NoError(t, err)

	for _, e := range gm.Edges(gridmap.Coord{X: 0, Y: 0}) {
		switch e.To {
		case gridmap.Coord{X: 1, Y: 0}:
			assert.Equal(t, 3.0, e.Weight)
		case gridmap.Coord{X: 0, Y: 1}:
			assert.Equal(t, 2.0, e.Weight)
		case gridmap.Coord{X: 1, Y: 1}:
			assert.InDelta(t, 5*1.4143, e.Weight, 1e-9)
		default:
			t.Fatalf("unexpected neighbor (%d,%d)", e.To.X, e.To.Y)
		}
	}
}

func TestEdges_OutOfBoundsPanics(t *testing.T) {
	gm := openGrid3x3(t, true)
	requirePanicsIs(t, gridmap.ErrOutOfBounds, func() {
		gm.Edges(gridmap.Coord{X: 5, Y: 5})
	})
}

// TestGridMap_IntegerCosts: the same grid logic works for an integer
// cost type, with the diagonal weight truncating to 1.
func TestGridMap_IntegerCosts(t *testing.T) {
	assert.Equal(t, 1, gridmap.DiagonalWeight[int]())
	assert.Equal(t, int8(1), gridmap.DiagonalWeight[int8]())
	assert.Equal(t, int64(1), gridmap.DiagonalWeight[int64]())
	assert.InDelta(t, 1.4143, float64(gridmap.DiagonalWeight[float32]()), 1e-4)
	assert.Equal(t, 1, gridmap.StraightWeight[int]())

	gm, err := gridmap.NewGridMap(3, 3, []int{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}, gridmap.WithDiagonal(true))
	require.NoError(t, err)

	for _, e := range gm.Edges(gridmap.Coord{X: 1, Y: 1}) {
		assert.Equal(t, 1, e.Weight)
	}
	assert.Equal(t, 2, gridmap.DiagonalDistance[int](gridmap.Coord{X: 0, Y: 0}, gridmap.Coord{X: 2, Y: 2}))
}

//----------------------------------------------------------------------------//
// State machine
//----------------------------------------------------------------------------//

// TestStateMachine_OpenCloseReopen follows a cell through
// unexplored → open → closed → open and checks the counters:
// reopening bumps NodesReopened by exactly one while NodesOpened
// stays put.
func TestStateMachine_OpenCloseReopen(t *testing.T) {
	gm := openGrid3x3(t, false)
	a := gridmap.Coord{X: 0, Y: 0}
	b := gridmap.Coord{X: 1, Y: 0}

	gm.Open(a, 0, 0, a)
	require.True(t, gm.IsOpen(a))
	require.False(t, gm.IsUnexplored(a))
	require.Equal(t, a, gm.CloseFront())

	gm.Open(b, 5, 0, a)
	require.Equal(t, 5.0, gm.CurrentCost(b))
	require.Equal(t, b, gm.CloseFront())
	require.False(t, gm.IsOpen(b))
	require.False(t, gm.HasOpen())

	gm.Reopen(b, 3, 0, a)
	require.True(t, gm.IsOpen(b))
	require.Equal(t, 3.0, gm.CurrentCost(b))

	stats := gm.Stats()
	assert.Equal(t, uint64(2), stats.NodesOpened, "reopening must not count as opening")
	assert.Equal(t, uint64(1), stats.NodesReopened)
	assert.Equal(t, uint64(2), stats.NodesClosed)
	assert.Equal(t, uint64(0), stats.NodesPriorityIncreased)
}

// TestStateMachine_IncreasePriority improves a still-open cell and
// verifies it jumps ahead of the previous minimum.
func TestStateMachine_IncreasePriority(t *testing.T) {
	gm := openGrid3x3(t, false)
	a := gridmap.Coord{X: 0, Y: 0}
	b := gridmap.Coord{X: 1, Y: 0}
	c := gridmap.Coord{X: 0, Y: 1}

	gm.Open(a, 0, 0, a)
	require.Equal(t, a, gm.CloseFront())
	gm.Open(b, 2, 2, a) // f=4
	gm.Open(c, 9, 0, a) // f=9

	gm.IncreasePriority(c, 1, 0, a) // f=1, now the minimum
	require.Equal(t, 1.0, gm.CurrentCost(c))
	require.Equal(t, c, gm.CloseFront())
	require.Equal(t, b, gm.CloseFront())

	assert.Equal(t, uint64(1), gm.Stats().NodesPriorityIncreased)
}

// TestStateMachine_IncreasePriorityTieBreak: when an improvement lands
// a cell on another cell's f, the tie-break must compare the improved
// g, not the value it replaced.
func TestStateMachine_IncreasePriorityTieBreak(t *testing.T) {
	gm := openGrid3x3(t, false)
	s := gridmap.Coord{X: 0, Y: 0}
	a := gridmap.Coord{X: 1, Y: 0}
	b := gridmap.Coord{X: 0, Y: 1}

	gm.Open(s, 0, 0, s)
	require.Equal(t, s, gm.CloseFront())
	gm.Open(a, 4.25, 0.75, s) // f=5
	gm.Open(b, 4.5, 1.0, s)   // f=5.5

	gm.IncreasePriority(b, 4.0, 1.0, s) // f=5, ties a with the smaller g
	require.Equal(t, 4.0, gm.CurrentCost(b))
	require.Equal(t, a, gm.CloseFront(), "equal f must prefer the larger g")
	require.Equal(t, b, gm.CloseFront())
}

// TestStateMachine_Preconditions exercises every fail-fast guard of
// the contract mutators.
func TestStateMachine_Preconditions(t *testing.T) {
	gm := openGrid3x3(t, false)
	a := gridmap.Coord{X: 0, Y: 0}
	b := gridmap.Coord{X: 1, Y: 0}
	far := gridmap.Coord{X: 2, Y: 2}

	requirePanicsIs(t, gridmap.ErrEmptyOpenList, func() { gm.CloseFront() })

	gm.Open(a, 0, 0, a)
	requirePanicsIs(t, gridmap.ErrNotUnexplored, func() { gm.Open(a, 0, 0, a) })
	requirePanicsIs(t, gridmap.ErrNotClosed, func() { gm.Reopen(a, 0, 0, a) })
	requirePanicsIs(t, gridmap.ErrUnknownParent, func() { gm.Open(b, 1, 1, far) })

	require.Equal(t, a, gm.CloseFront())
	requirePanicsIs(t, gridmap.ErrNotOpen, func() { gm.IncreasePriority(a, 0, 0, a) })

	gm.Open(b, 2, 2, a)
	requirePanicsIs(t, gridmap.ErrPriorityIncrease, func() { gm.IncreasePriority(b, 3, 2, a) })

	requirePanicsIs(t, gridmap.ErrOutOfBounds, func() { gm.Open(gridmap.Coord{X: -1, Y: 0}, 0, 0, a) })
}

// TestStateMachine_OpenListMirrorsStates asserts the core invariant:
// at every point, exactly the open-state cells are on the open list,
// and CloseFront drains them in non-decreasing f order.
func TestStateMachine_OpenListMirrorsStates(t *testing.T) {
	gm := openGrid3x3(t, false)
	start := gridmap.Coord{X: 0, Y: 0}

	gm.Open(start, 0, 4, start)
	require.Equal(t, start, gm.CloseFront())

	opened := []struct {
		c    gridmap.Coord
		g, h float64
	}{
		{gridmap.Coord{X: 1, Y: 0}, 1, 3},
		{gridmap.Coord{X: 0, Y: 1}, 1, 5},
		{gridmap.Coord{X: 1, Y: 1}, 2, 1},
		{gridmap.Coord{X: 2, Y: 2}, 7, 0},
	}
	for _, o := range opened {
		gm.Open(o.c, o.g, o.h, start)
	}
	for _, o := range opened {
		require.True(t, gm.IsOpen(o.c))
		require.Equal(t, gridmap.StateOpen, gm.State(o.c))
	}

	prev := -1.0
	for gm.HasOpen() {
		c := gm.CloseFront()
		require.Equal(t, gridmap.StateClosed, gm.State(c))
		var f float64
		for _, o := range opened {
			if o.c == c {
				f = o.g + o.h
			}
		}
		require.GreaterOrEqual(t, f, prev, "pops must come out in f order")
		prev = f
	}
	for _, o := range opened {
		require.False(t, gm.IsOpen(o.c))
	}
}

//----------------------------------------------------------------------------//
// Path extraction, rendering, reset
//----------------------------------------------------------------------------//

// TestExtractPath_WalksToSelfParent builds a short parent chain by
// hand and checks ordering, annotations, and rendering.
func TestExtractPath_WalksToSelfParent(t *testing.T) {
	gm, err := gridmap.NewGridMap(2, 2, []float64{1, 1, -1, 1}, gridmap.WithDiagonal(false))
	require.NoError(t, err)

	a := gridmap.Coord{X: 0, Y: 0}
	b := gridmap.Coord{X: 1, Y: 0}
	gm.Open(a, 0, 2, a)
	require.Equal(t, a, gm.CloseFront())
	gm.Open(b, 1, 1, a)
	require.Equal(t, b, gm.CloseFront())

	path := gm.ExtractPath(b)
	require.Equal(t, []gridmap.Coord{a, b}, path)
	assert.Equal(t, gridmap.StateStart, gm.State(a))
	assert.Equal(t, gridmap.StateGoal, gm.State(b))

	want := "opened: 2, reopened: 0, closed: 2, priority increased: 0\n" +
		"SG\n" +
		"x \n"
	assert.Equal(t, want, gm.String())
}

// TestExtractPath_Adjacency: successive path cells are always grid
// neighbors (Chebyshev distance 1) and the ends are start and goal.
func TestExtractPath_Adjacency(t *testing.T) {
	gm := openGrid3x3(t, true)
	start := gridmap.Coord{X: 0, Y: 0}
	goal := gridmap.Coord{X: 2, Y: 2}

	gm.Open(start, 0, 0, start)
	require.Equal(t, start, gm.CloseFront())
	mid := gridmap.Coord{X: 1, Y: 1}
	gm.Open(mid, 1.4143, 1.4143, start)
	require.Equal(t, mid, gm.CloseFront())
	gm.Open(goal, 2.8286, 0, mid)
	require.Equal(t, goal, gm.CloseFront())

	path := gm.ExtractPath(goal)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		cheb := max(abs(dx), abs(dy))
		require.Equal(t, 1, cheb, "path cells %d and %d are not adjacent", i-1, i)
	}
	assert.Equal(t, gridmap.StateResult, gm.State(mid))
}

func TestExtractPath_UnexploredPanics(t *testing.T) {
	gm := openGrid3x3(t, false)
	requirePanicsIs(t, gridmap.ErrBrokenParentChain, func() {
		gm.ExtractPath(gridmap.Coord{X: 2, Y: 2})
	})
}

// TestExtractPath_StartIsGoal: extracting from the start itself yields
// the single-cell path and the start annotation wins.
func TestExtractPath_StartIsGoal(t *testing.T) {
	gm := openGrid3x3(t, false)
	start := gridmap.Coord{X: 1, Y: 1}
	gm.Open(start, 0, 0, start)
	require.Equal(t, start, gm.CloseFront())

	path := gm.ExtractPath(start)
	require.Equal(t, []gridmap.Coord{start}, path)
	assert.Equal(t, gridmap.StateStart, gm.State(start))
}

// TestReset_Reproducible: resetting and replaying an identical call
// sequence reproduces identical states and statistics.
func TestReset_Reproducible(t *testing.T) {
	gm := openGrid3x3(t, false)

	run := func() ([]gridmap.Coord, gridmap.SearchStats, string) {
		start := gridmap.Coord{X: 0, Y: 0}
		gm.Open(start, 0, 4, start)
		var pops []gridmap.Coord
		pops = append(pops, gm.CloseFront())
		gm.Open(gridmap.Coord{X: 1, Y: 0}, 1, 3, start)
		gm.Open(gridmap.Coord{X: 0, Y: 1}, 1, 5, start)
		pops = append(pops, gm.CloseFront())
		gm.IncreasePriority(gridmap.Coord{X: 0, Y: 1}, 1, 4, start)
		pops = append(pops, gm.CloseFront())

		return pops, gm.Stats(), gm.String()
	}

	pops1, stats1, render1 := run()
	gm.Reset()

	require.False(t, gm.HasOpen())
	require.Equal(t, gridmap.SearchStats{}, gm.Stats())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.True(t, gm.IsUnexplored(gridmap.Coord{X: x, Y: y}))
		}
	}

	pops2, stats2, render2 := run()
	assert.Equal(t, pops1, pops2)
	assert.Equal(t, stats1, stats2)
	assert.Equal(t, render1, render2)
}

// TestGridMap_ImplementsContract pins the contract at compile time for
// both cost instantiations.
func TestGridMap_ImplementsContract(t *testing.T) {
	var _ search.Graph[gridmap.Coord, float64] = (*gridmap.GridMap[float64])(nil)
	var _ search.Graph[gridmap.Coord, int] = (*gridmap.GridMap[int])(nil)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
