package gridmap

import "fmt"

// SearchStats holds monotonically increasing counters describing
// open-list and node-store activity during one search. The counters
// are diagnostics only; they reset together with the node store.
type SearchStats struct {
	// NodesOpened counts first discoveries.
	NodesOpened uint64
	// NodesReopened counts closed cells re-admitted on a cheaper path.
	NodesReopened uint64
	// NodesClosed counts expansions.
	NodesClosed uint64
	// NodesPriorityIncreased counts in-place open-list improvements.
	NodesPriorityIncreased uint64
}

// String renders the four counters on one line.
func (s SearchStats) String() string {
	return fmt.Sprintf("opened: %d, reopened: %d, closed: %d, priority increased: %d",
		s.NodesOpened, s.NodesReopened, s.NodesClosed, s.NodesPriorityIncreased)
}

func (s *SearchStats) reset() {
	*s = SearchStats{}
}
