package kinoastar

import (
	"testing"

	"github.com/basalt-robotics/kinoplan/internal/core"
)

func TestNodeIndexFindsByCell(t *testing.T) {
	idx := NewNodeIndex()
	n := &core.Node{Cell: core.PosCell{1, 2, 3}, Self: 0}
	idx.Insert(n, false)

	got, ok := idx.Find(core.PosCell{1, 2, 3})
	if !ok || got != n {
		t.Fatalf("expected to find inserted node, got %v ok=%v", got, ok)
	}
	if _, ok := idx.Find(core.PosCell{9, 9, 9}); ok {
		t.Fatal("unexpected hit for an unindexed cell")
	}
}

func TestNodeIndexDynamicModeDistinguishesTime(t *testing.T) {
	idx := NewNodeIndex()
	a := &core.Node{Cell: core.PosCell{0, 0, 0}, TCell: 1, Self: 0}
	b := &core.Node{Cell: core.PosCell{0, 0, 0}, TCell: 2, Self: 1}
	idx.Insert(a, true)
	idx.Insert(b, true)

	got, ok := idx.FindDynamic(core.PosCell{0, 0, 0}, 1)
	if !ok || got != a {
		t.Fatalf("expected node a at time cell 1, got %v", got)
	}
	got, ok = idx.FindDynamic(core.PosCell{0, 0, 0}, 2)
	if !ok || got != b {
		t.Fatalf("expected node b at time cell 2, got %v", got)
	}

	// Non-dynamic Find is keyed purely on position cell and should see
	// whichever insert happened last, since both share it.
	if got, ok := idx.Find(core.PosCell{0, 0, 0}); !ok || got != b {
		t.Fatalf("expected position-only index to hold the latest insert, got %v", got)
	}
}

func TestNodeIndexClear(t *testing.T) {
	idx := NewNodeIndex()
	idx.Insert(&core.Node{Cell: core.PosCell{1, 1, 1}}, true)
	idx.Clear()
	if _, ok := idx.Find(core.PosCell{1, 1, 1}); ok {
		t.Fatal("expected Clear to empty the position-cell index")
	}
	if _, ok := idx.FindDynamic(core.PosCell{1, 1, 1}, 0); ok {
		t.Fatal("expected Clear to empty the time-cell index")
	}
}
