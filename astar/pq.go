package astar

import (
	"container/heap"

	"github.com/katalvlaran/routecalc/gridgraph"
)

var _ heap.Interface = (*openQueue)(nil)

// openItem is one entry of the open set.
type openItem struct {
	cell  gridgraph.Cell
	f     int    // gScore + heuristic
	h     int    // heuristic to goal
	seq   uint64 // insertion stamp, refreshed when the key decreases
	index int    // position in openQueue, kept current by Swap
}

// openQueue is a min-heap of *openItem ordered by (f, h, seq).
// Equal f prefers the cell nearer the goal; remaining ties go to the
// earliest-stamped entry, which makes expansion order reproducible.
type openQueue []*openItem

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by f, then h, then seq.
func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements and updates their indices.
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x to the heap. Called by heap.Push; x must be *openItem.
func (q *openQueue) Push(x any) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

// Pop removes the last element. Called by heap.Pop.
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}
