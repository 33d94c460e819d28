package kinoastar

import (
	"testing"

	"github.com/basalt-robotics/kinoplan/internal/core"
)

func TestOpenSetPopsAscendingByFScore(t *testing.T) {
	os := NewOpenSet()
	scores := []float64{5, 1, 3, 2, 4}
	for i, f := range scores {
		os.Push(&core.Node{FScore: f, Self: i, Parent: core.NoParent})
	}

	var got []float64
	for os.Len() > 0 {
		n, ok := os.Pop()
		if !ok {
			t.Fatal("Pop reported empty while Len() > 0")
		}
		got = append(got, n.FScore)
		if n.NodeState != core.InOpen {
			t.Fatalf("expected popped node to still read InOpen (caller owns the InClosed transition), got %v", n.NodeState)
		}
	}
	want := []float64{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}

func TestOpenSetPushMarksInOpen(t *testing.T) {
	os := NewOpenSet()
	n := &core.Node{FScore: 1, NodeState: core.NotExpanded}
	os.Push(n)
	if n.NodeState != core.InOpen {
		t.Fatalf("expected Push to mark InOpen, got %v", n.NodeState)
	}
}

func TestOpenSetPopEmpty(t *testing.T) {
	os := NewOpenSet()
	if _, ok := os.Pop(); ok {
		t.Fatal("expected Pop on empty set to report ok=false")
	}
}
