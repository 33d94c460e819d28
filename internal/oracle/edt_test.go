package oracle

import (
	"math"
	"testing"

	"github.com/basalt-robotics/kinoplan/internal/core"
)

func TestEDTClearanceGrowsAwayFromObstacle(t *testing.T) {
	grid := NewVoxelGrid(core.NewVec3(0, 0, 0), core.NewVec3(10, 10, 2), 0.5)
	grid.SetSphere(core.NewVec3(5, 5, 1), 1.0)

	edt := NewEDT(grid, 5.0, PolicyFree)

	near := edt.Clearance(core.NewVec3(5, 5, 1)) // inside the obstacle
	mid := edt.Clearance(core.NewVec3(6.5, 5, 1))
	far := edt.Clearance(core.NewVec3(9, 5, 1))

	if !(near <= mid && mid <= far) {
		t.Errorf("clearance should grow with distance from obstacle: near=%v mid=%v far=%v", near, mid, far)
	}
	if near != 0 {
		t.Errorf("clearance at obstacle center = %v, want 0", near)
	}
}

func TestEDTOutOfBoundsPolicy(t *testing.T) {
	grid := NewVoxelGrid(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), 1.0)

	free := NewEDT(grid, 3.0, PolicyFree)
	if got := free.Clearance(core.NewVec3(100, 100, 100)); got != 3.0 {
		t.Errorf("PolicyFree out-of-bounds clearance = %v, want 3.0", got)
	}

	occ := NewEDT(grid, 3.0, PolicyOccupied)
	if got := occ.Clearance(core.NewVec3(100, 100, 100)); got != 0 {
		t.Errorf("PolicyOccupied out-of-bounds clearance = %v, want 0", got)
	}
}

// A cell diagonally adjacent to an occupied cell is sqrt(2)*resolution away
// in a straight line, not 2*resolution of axis-aligned grid steps; the
// reported clearance must reflect the former.
func TestEDTReportsEuclideanNotGridStepDistance(t *testing.T) {
	grid := NewVoxelGrid(core.NewVec3(0, 0, 0), core.NewVec3(5, 5, 1), 1.0)
	grid.SetOccupied(core.NewVec3(0.5, 0.5, 0.5))

	edt := NewEDT(grid, 10.0, PolicyFree)
	got := edt.Clearance(core.NewVec3(1.5, 1.5, 0.5))

	want := math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("diagonal clearance = %v, want %v (sqrt(2), not 2 grid steps)", got, want)
	}
}

func TestEDTSaturatesAtMaxDist(t *testing.T) {
	grid := NewVoxelGrid(core.NewVec3(0, 0, 0), core.NewVec3(20, 20, 1), 1.0)
	grid.SetOccupied(core.NewVec3(0.5, 0.5, 0.5))

	edt := NewEDT(grid, 2.0, PolicyFree)
	got := edt.Clearance(core.NewVec3(19, 19, 0.5))
	if got != 2.0 {
		t.Errorf("far clearance = %v, want saturated 2.0", got)
	}
}
