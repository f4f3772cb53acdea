// Package search defines the abstract weighted-graph contract that a
// best-first search driver operates over, together with the generic
// numeric Cost constraint and the Edge/Heuristic types shared by every
// graph backend in gridpath.
package search

// Cost constrains the numeric type used for edge weights, accumulated
// path costs, and heuristic estimates. Both integer and floating-point
// instantiations are supported; the algorithms only require ordering,
// addition, and a representable zero.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Edge is a single weighted, directed connection between two nodes.
type Edge[N comparable, C Cost] struct {
	// From is the node the edge leaves.
	From N

	// To is the node the edge enters.
	To N

	// Weight is the cost of traversing the edge. Never negative for
	// graphs consumed by best-first search.
	Weight C
}

// Heuristic estimates the remaining cost from one node to another.
// A heuristic must never overestimate the true remaining cost
// (admissibility) for the driver's optimality guarantees to hold.
type Heuristic[N comparable, C Cost] func(from, to N) C

// Graph is the frontier-managing graph contract a best-first search
// driver expands over. Implementations own the open list and all
// per-node search bookkeeping; the driver mutates that state only
// through these methods.
//
// State machine per node: unexplored → open (Open) → closed
// (CloseFront) → open again (Reopen, when a cheaper path is found
// after closing). IncreasePriority re-ranks a node that is still open.
// Preconditions on these transitions are the caller's responsibility;
// implementations fail fast on violations because an undetected
// violation corrupts the open list for the rest of the search.
type Graph[N comparable, C Cost] interface {
	// CurrentCost returns the best known accumulated cost (g) from the
	// search start to n. Meaningful only once n has been opened.
	CurrentCost(n N) C

	// Edges enumerates the outgoing edges of n, already filtered to
	// traversable destinations and carrying final traversal weights.
	Edges(n N) []Edge[N, C]

	// Equal reports node identity.
	Equal(a, b N) bool

	// HasOpen reports whether the open list is non-empty.
	HasOpen() bool

	// IsUnexplored reports whether n has never been discovered.
	IsUnexplored(n N) bool

	// IsOpen reports whether n currently sits on the open list.
	IsOpen(n N) bool

	// Open discovers n for the first time: records g, f = g+h and the
	// parent link, and pushes n onto the open list.
	Open(n N, g, h C, parent N)

	// Reopen re-admits a closed n after a cheaper path was found,
	// with the same field updates as Open.
	Reopen(n N, g, h C, parent N)

	// IncreasePriority improves the cost of an already-open n and
	// restores open-list order in place.
	IncreasePriority(n N, g, h C, parent N)

	// CloseFront removes the minimum-f node from the open list, marks
	// it closed, and returns it for expansion.
	CloseFront() N

	// ExtractPath walks parent links backward from goal to the
	// self-parented start and returns the path ordered start → goal.
	ExtractPath(goal N) []N
}
