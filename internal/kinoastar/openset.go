package kinoastar

import (
	"container/heap"

	"github.com/basalt-robotics/kinoplan/internal/core"
)

// nodeHeap implements heap.Interface, ordered ascending on FScore. It is
// the Go-idiomatic twin of the teacher's astarHeap/astar3DHeap: a slice
// of pointers with Less on the priority field and Swap maintaining each
// element's own heap index.
type nodeHeap []*core.Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].FScore < h[j].FScore }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].HeapIndex = i
	h[j].HeapIndex = j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*core.Node)
	n.HeapIndex = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// OpenSet is a binary min-heap of nodes keyed by FScore. Pushing a node
// marks it InOpen. An improved node is re-pushed as a second slot
// pointing at the same *core.Node rather than cloned, so popping it does
// NOT itself decide staleness — the caller must check the node's
// lifecycle tag before reprocessing it and skip if it reads InClosed
// already, which is how a duplicate slot for an already-closed node is
// discriminated (spec.md §4.6, §9).
type OpenSet struct {
	h nodeHeap
}

// NewOpenSet builds an empty open set.
func NewOpenSet() *OpenSet {
	os := &OpenSet{h: nodeHeap{}}
	heap.Init(&os.h)
	return os
}

// Push adds n to the open set and marks it InOpen.
func (os *OpenSet) Push(n *core.Node) {
	n.NodeState = core.InOpen
	heap.Push(&os.h, n)
}

// Pop removes and returns the node with the lowest FScore. Returns
// ok=false if the open set is empty. It does not change the node's
// lifecycle tag; the caller owns that transition (see type doc).
func (os *OpenSet) Pop() (*core.Node, bool) {
	if os.h.Len() == 0 {
		return nil, false
	}
	n := heap.Pop(&os.h).(*core.Node)
	return n, true
}

// Len reports the number of entries currently on the heap, including
// stale duplicates not yet popped.
func (os *OpenSet) Len() int { return os.h.Len() }

// Clear empties the open set.
func (os *OpenSet) Clear() {
	os.h = nodeHeap{}
	heap.Init(&os.h)
}
