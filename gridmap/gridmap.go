package gridmap

import (
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// GridMap is a square tile grid exposed through the search.Graph
// contract: it composes the vertex cost matrix, the node store, the
// indexed open list, and the search statistics, and funnels every
// piece of frontier/state mutation through its contract methods.
//
// GridMap accepts both integer and floating-point cost types.
// Diagonal movement is allowed by default (see WithDiagonal).
//
// A GridMap assumes a single writer and no concurrent access; rerun a
// search over the same terrain only after Reset.
type GridMap[C search.Cost] struct {
	matrix   *VertexMatrix[C]
	store    *nodeStore[C]
	open     openList[C]
	stats    SearchStats
	offsets  [][2]int
	diagonal bool
}

// Compile-time check: GridMap satisfies the search driver's contract.
var _ search.Graph[Coord, float64] = (*GridMap[float64])(nil)

// NewGridMap constructs a GridMap over a width×height grid from a
// flattened row-major weight slice (negative weight = impassable).
// Returns ErrEmptyGrid or ErrDimensionMismatch on invalid input.
// Complexity: O(W×H) time and memory (node records are allocated
// eagerly, all unexplored).
func NewGridMap[C search.Cost](width, height int, weights []C, opts ...Option) (*GridMap[C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	matrix, err := NewVertexMatrix(width, height, weights)
	if err != nil {
		return nil, err
	}

	offsets := offsets4
	if cfg.Diagonal {
		offsets = offsets8
	}

	return &GridMap[C]{
		matrix:   matrix,
		store:    newNodeStore[C](width, height),
		offsets:  offsets,
		diagonal: cfg.Diagonal,
	}, nil
}

// Matrix returns the read-only terrain weight matrix.
func (g *GridMap[C]) Matrix() *VertexMatrix[C] { return g.matrix }

// Diagonal reports whether 8-neighbor connectivity is enabled.
func (g *GridMap[C]) Diagonal() bool { return g.diagonal }

// Stats returns a snapshot of the search statistics counters.
func (g *GridMap[C]) Stats() SearchStats { return g.stats }

// State returns the search state of the cell at c.
// Panics with ErrOutOfBounds when c is outside the grid.
func (g *GridMap[C]) State(c Coord) NodeState { return g.store.node(c).state }

// Reset restores the map for a fresh search over the same terrain:
// the open list empties, every node record returns to unexplored, and
// the statistics zero. The vertex matrix is untouched. There is no
// implicit clearing between searches; callers must Reset explicitly.
// Complexity: O(W×H).
func (g *GridMap[C]) Reset() {
	g.open.clear()
	g.store.reset()
	g.stats.reset()
}

// CurrentCost returns the accumulated cost g of the best known path
// from the start to n. Meaningful only once n has been opened.
func (g *GridMap[C]) CurrentCost(n Coord) C {
	return g.store.node(n).g
}

// Equal reports coordinate identity.
func (g *GridMap[C]) Equal(a, b Coord) bool { return a == b }

// HasOpen reports whether any cell remains on the open list.
func (g *GridMap[C]) HasOpen() bool { return !g.open.isEmpty() }

// IsUnexplored reports whether the cell at n was never discovered.
func (g *GridMap[C]) IsUnexplored(n Coord) bool {
	return g.store.node(n).state == StateUnexplored
}

// IsOpen reports whether the cell at n currently sits on the open list.
func (g *GridMap[C]) IsOpen(n Coord) bool {
	return g.store.node(n).state == StateOpen
}

// Edges enumerates the 4 or 8 grid neighbors of n (per the diagonal
// option), filters out impassable cells, and weights each edge as
// terrainWeight(to) × stepWeight(from,to). Panics with ErrOutOfBounds
// when n itself is outside the grid. Complexity: O(1) — at most eight
// neighbors.
func (g *GridMap[C]) Edges(n Coord) []search.Edge[Coord, C] {
	if !g.matrix.InBounds(n) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, n.X, n.Y))
	}

	es := make([]search.Edge[Coord, C], 0, len(g.offsets))
	for _, d := range g.offsets {
		to := Coord{X: n.X + d[0], Y: n.Y + d[1]}
		if !g.matrix.IsPassable(to) {
			continue
		}
		es = append(es, search.Edge[Coord, C]{From: n, To: to, Weight: g.edgeCost(n, to)})
	}

	return es
}

// edgeCost is the full traversal cost of one step: the destination's
// terrain weight scaled by the straight/diagonal step weight.
func (g *GridMap[C]) edgeCost(from, to Coord) C {
	return g.matrix.Weight(to) * stepWeight[C](from, to)
}

// stepWeight resolves the step kind purely from the Manhattan distance
// between two neighboring cells: exactly 1 is a straight step, exactly
// 2 a diagonal one. Any other distance is a caller error and panics
// with ErrNotAdjacent.
func stepWeight[C search.Cost](from, to Coord) C {
	switch abs(to.X-from.X) + abs(to.Y-from.Y) {
	case 1:
		return StraightWeight[C]()
	case 2:
		return DiagonalWeight[C]()
	}
	panic(fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrNotAdjacent, from.X, from.Y, to.X, to.Y))
}

// Open discovers the cell at n for the first time: records g,
// f = g+h and the parent link, pushes n onto the open list, and marks
// it open. The parent must already be open/closed, or be n itself
// (which marks a start cell — the fixed point of the parent relation).
// Panics with ErrNotUnexplored if n was already discovered.
// Complexity: O(log n).
func (g *GridMap[C]) Open(n Coord, gCost, h C, parent Coord) {
	nd := g.store.node(n)
	if nd.state != StateUnexplored {
		panic(fmt.Errorf("%w: (%d,%d)", ErrNotUnexplored, n.X, n.Y))
	}
	g.checkParent(nd, parent)

	nd.parent, nd.g, nd.f = parent, gCost, gCost+h
	g.open.insert(nd)
	nd.state = StateOpen
	g.stats.NodesOpened++
}

// Reopen re-admits the closed cell at n after a cheaper path to it was
// found, with the same field updates as Open.
// Panics with ErrNotClosed if n is not currently closed.
// Complexity: O(log n).
func (g *GridMap[C]) Reopen(n Coord, gCost, h C, parent Coord) {
	nd := g.store.node(n)
	if nd.state != StateClosed {
		panic(fmt.Errorf("%w: (%d,%d)", ErrNotClosed, n.X, n.Y))
	}
	g.checkParent(nd, parent)

	nd.parent, nd.g, nd.f = parent, gCost, gCost+h
	g.open.insert(nd)
	nd.state = StateOpen
	g.stats.NodesReopened++
}

// IncreasePriority improves the cost of the still-open cell at n:
// updates g and the parent link, then restores open-list order in
// place with the new f = g+h. Panics with ErrNotOpen if n is not open
// and with ErrPriorityIncrease if the new f would exceed the current
// one. Complexity: O(log n).
func (g *GridMap[C]) IncreasePriority(n Coord, gCost, h C, parent Coord) {
	nd := g.store.node(n)
	if nd.state != StateOpen {
		panic(fmt.Errorf("%w: (%d,%d)", ErrNotOpen, n.X, n.Y))
	}
	g.checkParent(nd, parent)

	// Validate-then-mutate: the queue call rejects an f increase
	// before any field changes, and installs g alongside f so the
	// reorder compares the improved value.
	g.open.increasePriority(nd, gCost, gCost+h)
	nd.parent = parent
	g.stats.NodesPriorityIncreased++
}

// CloseFront pops the minimum-f cell from the open list, marks it
// closed, and returns its coordinate for expansion.
// Panics with ErrEmptyOpenList when the open list is empty.
// Complexity: O(log n).
func (g *GridMap[C]) CloseFront() Coord {
	nd := g.open.removeFront()
	nd.state = StateClosed
	g.stats.NodesClosed++

	return nd.coord
}

// checkParent enforces that a parent link always points at a cell that
// was itself already discovered, or at nd itself (a start cell). That
// keeps the parent relation a forest by construction: no cycle can
// form, so ExtractPath always terminates.
func (g *GridMap[C]) checkParent(nd *gridNode[C], parent Coord) {
	p := g.store.node(parent)
	if p != nd && p.state != StateOpen && p.state != StateClosed {
		panic(fmt.Errorf("%w: (%d,%d)", ErrUnknownParent, parent.X, parent.Y))
	}
}

// ExtractPath walks parent links backward from goal until it reaches
// the self-parented start cell and returns the collected coordinates
// ordered start → goal, both endpoints included. Along the way each
// intermediate cell is annotated StateResult, then the endpoints
// StateGoal/StateStart (cosmetic, for rendering).
// Panics with ErrBrokenParentChain if the walk meets an unexplored
// cell or fails to reach a self-parented cell within W×H steps.
// Complexity: O(path length).
func (g *GridMap[C]) ExtractPath(goal Coord) []Coord {
	limit := g.matrix.Width() * g.matrix.Height()
	path := make([]Coord, 0, 16)
	cur := goal
	for steps := 0; ; steps++ {
		nd := g.store.node(cur)
		if nd.state == StateUnexplored || steps > limit {
			panic(fmt.Errorf("%w: (%d,%d)", ErrBrokenParentChain, cur.X, cur.Y))
		}
		if nd.parent == cur {
			break
		}
		path = append(path, cur)
		nd.state = StateResult
		cur = nd.parent
	}
	path = append(path, cur)

	// Collected goal-first; flip into start → goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	g.store.node(goal).state = StateGoal
	g.store.node(cur).state = StateStart

	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
