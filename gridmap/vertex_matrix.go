package gridmap

import (
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// VertexMatrix is the immutable per-cell terrain weight lookup over a
// fixed W×H grid. A negative weight marks a cell impassable; all other
// values are non-negative traversal multipliers. The matrix is
// read-only after construction and may be shared by concurrent
// searches, provided each search owns its own GridMap bookkeeping.
type VertexMatrix[C search.Cost] struct {
	width, height int
	weights       []C // row-major, weights[y*width+x]
}

// NewVertexMatrix constructs a VertexMatrix from a flattened row-major
// weight slice. The slice is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if width or height is non-positive, and
// ErrDimensionMismatch if len(weights) != width*height.
// Complexity: O(W×H) time and memory.
func NewVertexMatrix[C search.Cost](width, height int, weights []C) (*VertexMatrix[C], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if len(weights) != width*height {
		return nil, fmt.Errorf("%w: got %d weights for %dx%d", ErrDimensionMismatch, len(weights), width, height)
	}
	ws := make([]C, len(weights))
	copy(ws, weights)

	return &VertexMatrix[C]{width: width, height: height, weights: ws}, nil
}

// Width returns the grid width. Complexity: O(1).
func (m *VertexMatrix[C]) Width() int { return m.width }

// Height returns the grid height. Complexity: O(1).
func (m *VertexMatrix[C]) Height() int { return m.height }

// InBounds reports whether c lies within [0,W)×[0,H). Complexity: O(1).
func (m *VertexMatrix[C]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// index maps c to its row-major slice position: Y*Width + X.
func (m *VertexMatrix[C]) index(c Coord) int {
	return c.Y*m.width + c.X
}

// Weight returns the stored terrain weight at c.
// Panics with ErrOutOfBounds when c is outside the grid.
// Complexity: O(1).
func (m *VertexMatrix[C]) Weight(c Coord) C {
	if !m.InBounds(c) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y))
	}

	return m.weights[m.index(c)]
}

// IsPassable reports whether c is inside the grid and carries a
// non-negative weight. Out-of-bounds coordinates are simply
// impassable, not an error. Complexity: O(1).
func (m *VertexMatrix[C]) IsPassable(c Coord) bool {
	return m.InBounds(c) && m.weights[m.index(c)] >= 0
}
