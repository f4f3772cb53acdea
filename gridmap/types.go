// Package gridmap defines core types, options, and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for gridmap operations.
//
// Construction errors (ErrEmptyGrid, ErrDimensionMismatch) are
// returned; every other sentinel reports a caller-side precondition
// violation and is raised as a panic, because an undetected violation
// corrupts the open-list/state-machine invariants for the remainder
// of the search.
var (
	// ErrEmptyGrid indicates a non-positive grid width or height.
	ErrEmptyGrid = errors.New("gridmap: grid must have positive width and height")
	// ErrDimensionMismatch indicates len(weights) != width*height.
	ErrDimensionMismatch = errors.New("gridmap: weight slice length must equal width*height")
	// ErrOutOfBounds indicates a coordinate outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("gridmap: coordinate outside the grid")
	// ErrNotAdjacent indicates a step between cells that are not grid neighbors.
	ErrNotAdjacent = errors.New("gridmap: coordinates are not grid-adjacent")
	// ErrEmptyOpenList indicates CloseFront was called with no open cells.
	ErrEmptyOpenList = errors.New("gridmap: open list is empty")
	// ErrAlreadyQueued indicates an insert of a cell already on the open list.
	ErrAlreadyQueued = errors.New("gridmap: cell already on the open list")
	// ErrNotUnexplored indicates Open on a cell that was already discovered.
	ErrNotUnexplored = errors.New("gridmap: cell already discovered")
	// ErrNotClosed indicates Reopen on a cell that is not closed.
	ErrNotClosed = errors.New("gridmap: cell is not closed")
	// ErrNotOpen indicates IncreasePriority on a cell that is not open.
	ErrNotOpen = errors.New("gridmap: cell is not open")
	// ErrPriorityIncrease indicates an attempt to raise an open cell's f value.
	ErrPriorityIncrease = errors.New("gridmap: new priority exceeds current priority")
	// ErrUnknownParent indicates a parent link to a never-discovered cell.
	ErrUnknownParent = errors.New("gridmap: parent cell was never discovered")
	// ErrBrokenParentChain indicates ExtractPath could not reach a start cell.
	ErrBrokenParentChain = errors.New("gridmap: parent chain does not reach a start cell")
)

// Coord addresses a single grid cell by column (X) and row (Y).
// Identity is pure value equality; Coord keys every per-cell structure.
type Coord struct {
	X, Y int
}

// NodeState is the per-cell search state.
//
// Search transitions: StateUnexplored → StateOpen (first discovery) →
// StateClosed (expanded) → StateOpen (reopened on a cheaper path) → …
// StateResult, StateStart and StateGoal are cosmetic annotations
// applied only by ExtractPath and carry no further search semantics.
type NodeState uint8

const (
	// StateUnexplored marks a cell that has never been discovered.
	StateUnexplored NodeState = iota
	// StateOpen marks a cell currently on the open list.
	StateOpen
	// StateClosed marks an expanded cell.
	StateClosed
	// StateResult marks an intermediate cell of an extracted path.
	StateResult
	// StateStart marks the start cell of an extracted path.
	StateStart
	// StateGoal marks the goal cell of an extracted path.
	StateGoal
)

// Edge-step weight constants shared by edge costs and the diagonal
// heuristic. The diagonal constant is the truncated literal 1.4143,
// not math.Sqrt2 at full precision: DiagonalDistance and Edges must
// use the exact same value for the heuristic to stay consistent with
// edge costs, and the truncation keeps rendered costs stable across
// cost types.
const (
	straightEdgeWeight = 1.0
	diagonalEdgeWeight = 1.4143
)

// StraightWeight returns the axis-aligned step weight (1.0) in the
// cost type C.
func StraightWeight[C search.Cost]() C {
	return C(float64(straightEdgeWeight))
}

// DiagonalWeight returns the diagonal step weight (1.4143, truncating
// to 1 for integer cost types) in the cost type C.
func DiagonalWeight[C search.Cost]() C {
	// The conversion must go through a variable: a constant 1.4143 is
	// not representable in the integer members of C's type set.
	w := float64(diagonalEdgeWeight)

	return C(w)
}

// Neighbor offset tables, precomputed to avoid branching in Edges.
// Enumeration order is fixed: row above, same row, row below,
// left to right within each row.
var (
	offsets4 = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	offsets8 = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Options contains tunable parameters for GridMap construction.
type Options struct {
	// Diagonal enables 8-neighbor connectivity; disabled it is 4-neighbor.
	Diagonal bool
}

// Option represents a functional option for configuring a GridMap.
type Option func(*Options)

// WithDiagonal sets 8-neighbor (true) or 4-neighbor (false) connectivity.
func WithDiagonal(enabled bool) Option {
	return func(o *Options) { o.Diagonal = enabled }
}

// DefaultOptions returns the default GridMap configuration:
// diagonal movement enabled.
func DefaultOptions() Options {
	return Options{Diagonal: true}
}
