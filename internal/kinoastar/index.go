package kinoastar

import "github.com/basalt-robotics/kinoplan/internal/core"

// NodeIndex is the two hash indices from spec.md §4.5: position-cell to
// node, and (position-cell, time-cell) to node. Go's comparable array
// types (PosCell, TimeCell) are hashable natively, so this is plain
// map[K]*core.Node rather than a hand-rolled hash combiner — see
// DESIGN.md's Open Question resolution for why that is a mechanism
// change only, not a semantics change from the original.
type NodeIndex struct {
	byCell     map[core.PosCell]*core.Node
	byCellTime map[core.TimeCell]*core.Node
}

// NewNodeIndex builds an empty index.
func NewNodeIndex() *NodeIndex {
	idx := &NodeIndex{}
	idx.Clear()
	return idx
}

// Insert indexes node by its position cell, and additionally by
// (position cell, time cell) when dynamic is true.
func (idx *NodeIndex) Insert(n *core.Node, dynamic bool) {
	idx.byCell[n.Cell] = n
	if dynamic {
		idx.byCellTime[n.Cell.WithTime(n.TCell)] = n
	}
}

// Find looks up a node by position cell alone (time-agnostic mode).
func (idx *NodeIndex) Find(cell core.PosCell) (*core.Node, bool) {
	n, ok := idx.byCell[cell]
	return n, ok
}

// FindDynamic looks up a node by (position cell, time cell), for dynamic
// (time-indexed) mode.
func (idx *NodeIndex) FindDynamic(cell core.PosCell, tcell int) (*core.Node, bool) {
	n, ok := idx.byCellTime[cell.WithTime(tcell)]
	return n, ok
}

// Clear empties both indices.
func (idx *NodeIndex) Clear() {
	idx.byCell = make(map[core.PosCell]*core.Node)
	idx.byCellTime = make(map[core.TimeCell]*core.Node)
}
