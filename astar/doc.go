// Package astar implements the best-first search driver over the
// abstract search.Graph contract.
//
// What:
//
//   - Search[N, C] — the outer A*/Dijkstra loop: close the minimum-f
//     frontier cell, goal-test it, relax its edges, and dispatch each
//     neighbor to Open / IncreasePriority / Reopen depending on its
//     state. The driver never touches a backend's bookkeeping
//     directly; every mutation goes through the contract.
//   - ZeroHeuristic — turns Search into uniform-cost (Dijkstra) search.
//   - Result[N, C] — path, total cost, expansion count.
//
// Why:
//
//   - One driver, many graphs: any backend satisfying search.Graph
//     (the gridmap tile map, or a custom representation) gets A*,
//     weighted A*, and Dijkstra behavior for free by choosing the
//     heuristic.
//   - Optimality: with an admissible, consistent heuristic the first
//     expansion of the goal carries its optimal cost. Reopening
//     handles merely-admissible heuristics correctly.
//
// Options:
//
//   - WithMaxExpansions(n): bound the number of expansions; the graph
//     layer itself never bounds the search.
//
// Errors:
//
//   - ErrNilGraph, ErrNilHeuristic — invalid inputs.
//   - ErrNoPath — frontier emptied with the goal unreached.
//   - ErrExpansionLimit — expansion bound hit.
//
// Complexity: O((V + E) log V) time, O(V) auxiliary memory.
package astar
