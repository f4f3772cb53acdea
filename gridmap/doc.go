// Package gridmap represents a 2D tile map as a weighted graph for
// incremental best-first search.
//
// What:
//
//   - VertexMatrix[C] — immutable per-cell terrain weight and
//     passability lookup (negative weight = impassable).
//   - GridMap[C] — the façade implementing search.Graph[Coord, C]:
//     neighbor enumeration with 4- or 8-connectivity, edge costing,
//     frontier mutation (Open/Reopen/IncreasePriority/CloseFront),
//     and path extraction via parent links.
//   - An indexed binary min-heap open list with true decrease-key:
//     each node record tracks its heap position, so improving an open
//     cell's priority is O(log n) instead of a linear scan.
//   - SearchStats — opened/reopened/closed/priority-increased
//     counters, plus a one-glance String() grid rendering.
//   - Manhattan, octile (diagonal) and Euclidean distance heuristics
//     sharing the exact step-weight constants used for edge costs.
//
// Why:
//
//   - Game and robotics pathfinding over tile maps with weighted
//     terrain, driven by package astar or any custom driver speaking
//     the search.Graph contract.
//   - The per-cell state machine (unexplored → open → closed → open…)
//     guarantees no cell is expanded twice for the same cost and that
//     parent chains stay acyclic, so the driver's optimality
//     guarantees hold.
//
// Complexity:
//
//   - NewGridMap / Reset: O(W×H).
//   - Edges, heuristics:  O(1).
//   - Open, Reopen, IncreasePriority, CloseFront: O(log n).
//
// Concurrency:
//
//   - Single-writer. The VertexMatrix may be shared between searches;
//     everything else is per-search mutable state. Call Reset before
//     reusing a GridMap.
//
// Errors:
//
//   - ErrEmptyGrid, ErrDimensionMismatch — returned by constructors.
//   - ErrOutOfBounds, ErrNotAdjacent, ErrEmptyOpenList,
//     ErrAlreadyQueued, ErrNotUnexplored, ErrNotClosed, ErrNotOpen,
//     ErrPriorityIncrease, ErrUnknownParent, ErrBrokenParentChain —
//     precondition violations, raised as panics (fail fast: an
//     undetected violation corrupts the search invariants).
package gridmap
