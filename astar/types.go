// Package astar defines configuration options, sentinel errors, and
// the Result type for the best-first search driver.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates a nil graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil heuristic was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNoPath indicates the frontier emptied before the goal was reached.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrExpansionLimit indicates Search hit the MaxExpansions bound
	// before reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates MaxExpansions was set to a
	// non-positive value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Options configures the behavior of Search.
type Options struct {
	// MaxExpansions bounds how many cells Search may close before
	// giving up. The graph layer itself never bounds the search;
	// capping it is the driver's job. Default is math.MaxInt (no cap).
	MaxExpansions int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxExpansions caps the number of node expansions. Must be
// positive; a non-positive n panics with ErrBadMaxExpansions when the
// option is applied.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns the default Search configuration:
// no expansion cap.
func DefaultOptions() Options {
	return Options{MaxExpansions: math.MaxInt}
}

// Result carries the outcome of one Search run.
type Result[N comparable, C search.Cost] struct {
	// Path is the node sequence from start to goal inclusive.
	// Nil when no path was found.
	Path []N

	// Cost is the accumulated cost of Path.
	Cost C

	// Expanded is the number of nodes closed during the search.
	Expanded int
}

// ZeroHeuristic estimates zero remaining cost everywhere, degrading
// Search to Dijkstra's algorithm (uniform-cost search). Useful when no
// admissible estimate is available for the node type.
func ZeroHeuristic[N comparable, C search.Cost](_, _ N) C {
	var zero C

	return zero
}
