package gridmap

import "strings"

// Cell symbols used by String, one byte per cell.
const (
	symImpassable = 'x'
	symUnexplored = ' '
	symOpen       = 'o'
	symClosed     = '-'
	symResult     = '@'
	symStart      = 'S'
	symGoal       = 'G'
)

// String renders a human-readable snapshot of the search: the four
// statistics counters on the first line, then one symbol per cell —
// 'x' impassable, ' ' unexplored, 'o' open, '-' closed, '@' on the
// extracted path, 'S' start, 'G' goal. Diagnostics only; the search
// contract does not depend on this output.
func (g *GridMap[C]) String() string {
	var sb strings.Builder
	sb.WriteString(g.stats.String())
	sb.WriteByte('\n')

	for y := 0; y < g.matrix.Height(); y++ {
		for x := 0; x < g.matrix.Width(); x++ {
			c := Coord{X: x, Y: y}
			if !g.matrix.IsPassable(c) {
				sb.WriteByte(symImpassable)
				continue
			}
			sb.WriteByte(stateSymbol(g.store.node(c).state))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func stateSymbol(st NodeState) byte {
	switch st {
	case StateOpen:
		return symOpen
	case StateClosed:
		return symClosed
	case StateResult:
		return symResult
	case StateStart:
		return symStart
	case StateGoal:
		return symGoal
	default:
		return symUnexplored
	}
}
