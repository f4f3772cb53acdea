package gridmap

import (
	"math"

	"github.com/katalvlaran/gridpath/search"
)

// Distance heuristics. All three are pure and stateless, usable both
// as A* heuristics and as edge-weight sanity checks. Pairing a
// heuristic with the matching connectivity mode is the caller's
// responsibility; GridMap does not enforce it.

// ManhattanDistance returns |Δx| + |Δy|.
// Admissible only for 4-connected grids.
func ManhattanDistance[C search.Cost](a, b Coord) C {
	return C(abs(b.X-a.X) + abs(b.Y-a.Y))
}

// DiagonalDistance returns the octile distance
// diagonalWeight·min(|Δx|,|Δy|) + straightWeight·(max−min), using the
// same step-weight constants as Edges. Admissible and consistent for
// 8-connected grids.
func DiagonalDistance[C search.Cost](a, b Coord) C {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	dmin, dmax := dx, dy
	if dmin > dmax {
		dmin, dmax = dmax, dmin
	}

	return C(dmin)*DiagonalWeight[C]() + C(dmax-dmin)*StraightWeight[C]()
}

// EuclideanDistance returns √(Δx²+Δy²).
// Admissible for both connectivity modes, generally not tight.
func EuclideanDistance[C search.Cost](a, b Coord) C {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)

	return C(math.Sqrt(dx*dx + dy*dy))
}
