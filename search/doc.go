// Package search is the foundation package of gridpath: it declares the
// polymorphic graph contract a best-first search driver expands over.
//
// What:
//
//   - Cost — numeric constraint for weights, g-costs and heuristics
//     (integer or floating-point, no code duplication between the two).
//   - Edge[N, C] — a weighted directed connection between two nodes.
//   - Heuristic[N, C] — remaining-cost estimator used to form f = g + h.
//   - Graph[N, C] — the frontier-managing contract: neighbor
//     enumeration, cost queries, open/reopen/re-prioritize/close
//     mutators, and path extraction.
//
// Why:
//
//   - The driver in package astar is written once against Graph and
//     works for any backend — the grid backend in package gridmap, or
//     any non-grid representation satisfying the same contract.
//   - All open-list and node-state mutation funnels through the
//     contract methods; nothing else may touch a backend's bookkeeping.
//
// See package gridmap for the canonical implementation and package
// astar for the driver.
package search
