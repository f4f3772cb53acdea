// Package gridpath is the grid-graph backend for incremental
// best-first search: tile maps as weighted graphs, an indexed open
// list, and an A*/Dijkstra driver on top.
//
// 🚀 What is gridpath?
//
//	A small, focused pathfinding library that brings together:
//		• search/   — the abstract weighted-graph contract a search driver expands over
//		• gridmap/  — 2D tile maps: terrain weights, 4/8-connectivity, per-cell
//		              search state machine, indexed min-heap open list, statistics
//		• astar/    — the driver: A*, weighted A*, or Dijkstra by choice of heuristic
//		• asciimap/ — character-grid map parsing for quick construction
//
// ✨ Why choose gridpath?
//
//   - True decrease-key – the open list tracks element positions, so
//     re-prioritizing an open cell is O(log n), never a linear scan
//   - Generic costs – one implementation for int and float64 maps alike
//   - Fail-fast invariants – state-machine violations are detected at
//     the call site, not discovered as corrupted paths later
//   - Pure Go – no cgo, a single test-only dependency
//
// Quick ASCII example:
//
//	    S@@
//	    ox@
//	      G
//
//	a finished 3×3 search around a wall: S start, G goal, @ the path,
//	o still open, x impassable.
//
// Dive into the per-package docs for contracts, options and complexity
// notes.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
