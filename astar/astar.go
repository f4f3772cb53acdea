package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// Search runs best-first search over g from start to goal, ranking the
// frontier by f = g-cost + h(node, goal). With an admissible h it is
// A* and the returned path is cost-optimal; with ZeroHeuristic it is
// Dijkstra's algorithm.
//
// Search drives g exclusively through the search.Graph contract: it
// asks for the neighbors of the cell it just closed, computes
// tentative costs, and opens/reopens/re-prioritizes cells accordingly.
// The graph owns all bookkeeping; rerunning Search over the same graph
// value requires resetting it first (see gridmap.GridMap.Reset).
//
// Returns:
//
//   - Result with the start→goal path and its cost on success.
//   - ErrNoPath when the frontier empties with the goal unreached.
//   - ErrExpansionLimit when WithMaxExpansions trips; the partial
//     Expanded count is still reported.
//
// Complexity: O((V + E) log V) time with the indexed open list,
// O(V) memory on top of the graph's own storage.
func Search[N comparable, C search.Cost](
	g search.Graph[N, C],
	start, goal N,
	h search.Heuristic[N, C],
	opts ...Option,
) (Result[N, C], error) {
	var zero Result[N, C]
	if g == nil {
		return zero, ErrNilGraph
	}
	if h == nil {
		return zero, ErrNilHeuristic
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// The start cell parents itself: the fixed point ExtractPath stops at.
	var zeroCost C
	g.Open(start, zeroCost, h(start, goal), start)

	expanded := 0
	for g.HasOpen() {
		if expanded >= cfg.MaxExpansions {
			return Result[N, C]{Expanded: expanded},
				fmt.Errorf("%w: %d expansions", ErrExpansionLimit, expanded)
		}

		// 1) Expand the most promising frontier cell.
		cur := g.CloseFront()
		expanded++

		// 2) Goal test on expansion, not on discovery — required for
		//    optimality: a discovered goal may still be improved.
		if g.Equal(cur, goal) {
			return Result[N, C]{
				Path:     g.ExtractPath(goal),
				Cost:     g.CurrentCost(goal),
				Expanded: expanded,
			}, nil
		}

		// 3) Relax every outgoing edge.
		base := g.CurrentCost(cur)
		for _, e := range g.Edges(cur) {
			tentative := base + e.Weight
			switch {
			case g.IsUnexplored(e.To):
				g.Open(e.To, tentative, h(e.To, goal), cur)
			case g.IsOpen(e.To):
				if tentative < g.CurrentCost(e.To) {
					g.IncreasePriority(e.To, tentative, h(e.To, goal), cur)
				}
			default: // closed
				if tentative < g.CurrentCost(e.To) {
					g.Reopen(e.To, tentative, h(e.To, goal), cur)
				}
			}
		}
	}

	return Result[N, C]{Expanded: expanded}, ErrNoPath
}
