package gridmap

import (
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// unqueued is the heap index of a node that is not on the open list.
const unqueued = -1

// gridNode is the per-cell search record: visitation state, cost
// accumulated from the start (g), estimated total cost (f = g + h),
// the parent coordinate on the best known path, and the cell's own
// coordinate for round-tripping out of the open list.
//
// Records are owned exclusively by the node store; the open list holds
// pointers into the store, never a second copy of the data. heapIndex
// tracks the record's current open-list position so decrease-key works
// without a linear scan.
type gridNode[C search.Cost] struct {
	coord     Coord
	parent    Coord
	g, f      C
	state     NodeState
	heapIndex int
}

// nodeStore eagerly allocates one gridNode per cell of a W×H grid,
// addressed by coordinate in row-major order. Records are mutated in
// place for the lifetime of one search; reset restores them all.
type nodeStore[C search.Cost] struct {
	width, height int
	nodes         []gridNode[C]
}

func newNodeStore[C search.Cost](width, height int) *nodeStore[C] {
	s := &nodeStore[C]{
		width:  width,
		height: height,
		nodes:  make([]gridNode[C], width*height),
	}
	s.reset()

	return s
}

func (s *nodeStore[C]) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// node returns the record for c. Panics with ErrOutOfBounds when c is
// outside the grid. Complexity: O(1).
func (s *nodeStore[C]) node(c Coord) *gridNode[C] {
	if !s.inBounds(c) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y))
	}

	return &s.nodes[c.Y*s.width+c.X]
}

// reset restores every record to its pre-search state: unexplored,
// zero costs, no parent, not queued. Complexity: O(W×H).
func (s *nodeStore[C]) reset() {
	for i := range s.nodes {
		s.nodes[i] = gridNode[C]{
			coord:     Coord{X: i % s.width, Y: i / s.width},
			heapIndex: unqueued,
		}
	}
}
