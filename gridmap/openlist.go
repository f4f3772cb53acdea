package gridmap

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// nodeHeap is a binary min-heap over node records ordered by each
// record's current f value, read at comparison time rather than
// cached. Swap/Push/Pop maintain gridNode.heapIndex, so a priority
// change is heap.Fix at a known position: O(log n), no linear scan.
type nodeHeap[C search.Cost] []*gridNode[C]

func (h nodeHeap[C]) Len() int { return len(h) }

// Less orders by ascending f; equal f prefers the larger g (the node
// whose estimate carries the smallest heuristic share), which expands
// cells nearer the goal first and makes path choice among equal-cost
// alternatives deterministic.
func (h nodeHeap[C]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].g > h[j].g
}

func (h nodeHeap[C]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *nodeHeap[C]) Push(x any) {
	n := x.(*gridNode[C])
	n.heapIndex = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap[C]) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.heapIndex = unqueued
	*h = old[:last]

	return n
}

// openList is the search frontier: the set of discovered-but-not-yet-
// expanded cells keyed by estimated total cost. Exactly the cells in
// StateOpen have exactly one live entry here; GridMap upholds that
// invariant through its mutators.
type openList[C search.Cost] struct {
	heap nodeHeap[C]
}

func (ol *openList[C]) isEmpty() bool { return len(ol.heap) == 0 }

// insert pushes n onto the frontier and sifts up.
// Panics with ErrAlreadyQueued if n already has a live entry.
// Complexity: O(log n).
func (ol *openList[C]) insert(n *gridNode[C]) {
	if n.heapIndex != unqueued {
		panic(fmt.Errorf("%w: (%d,%d)", ErrAlreadyQueued, n.coord.X, n.coord.Y))
	}
	heap.Push(&ol.heap, n)
}

// removeFront pops and returns the minimum-f record.
// Panics with ErrEmptyOpenList on an empty frontier.
// Complexity: O(log n).
func (ol *openList[C]) removeFront() *gridNode[C] {
	if len(ol.heap) == 0 {
		panic(ErrEmptyOpenList)
	}

	return heap.Pop(&ol.heap).(*gridNode[C])
}

// increasePriority lowers n's key to g/f (cost-improvement semantics:
// the new f must not exceed the current one) and restores heap order
// from n's tracked position. Both fields land before the sift so the
// equal-f tie-break compares the updated g. Panics with ErrNotOpen if
// n is not queued and with ErrPriorityIncrease if f would grow.
// Complexity: O(log n).
func (ol *openList[C]) increasePriority(n *gridNode[C], g, f C) {
	if n.heapIndex == unqueued {
		panic(fmt.Errorf("%w: (%d,%d)", ErrNotOpen, n.coord.X, n.coord.Y))
	}
	if f > n.f {
		panic(fmt.Errorf("%w: (%d,%d)", ErrPriorityIncrease, n.coord.X, n.coord.Y))
	}
	n.g = g
	n.f = f
	heap.Fix(&ol.heap, n.heapIndex)
}

// clear empties the frontier. Callers must reset the node store
// alongside, which rewrites the stale heap indices.
func (ol *openList[C]) clear() {
	for i := range ol.heap {
		ol.heap[i] = nil
	}
	ol.heap = ol.heap[:0]
}
