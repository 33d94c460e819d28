package dynamics

import (
	"math"
	"testing"

	"github.com/basalt-robotics/kinoplan/internal/core"
)

func TestIntegrateClosedForm(t *testing.T) {
	s0 := core.State{Pos: core.NewVec3(0, 0, 1), Vel: core.NewVec3(1, 0, 0)}
	u := core.NewVec3(0, 1, 0)
	tau := 0.5

	got := Integrate(s0, u, tau)
	wantPos := core.NewVec3(0.5, 0.125, 1)
	wantVel := core.NewVec3(1, 0.5, 0)

	if !near(got.Pos, wantPos) {
		t.Errorf("Pos = %v, want %v", got.Pos, wantPos)
	}
	if !near(got.Vel, wantVel) {
		t.Errorf("Vel = %v, want %v", got.Vel, wantVel)
	}
}

func TestIntegrateMatrixAgreesWithClosedForm(t *testing.T) {
	cases := []struct {
		s0  core.State
		u   core.Vec3
		tau float64
	}{
		{core.State{Pos: core.NewVec3(0, 0, 0), Vel: core.NewVec3(0, 0, 0)}, core.NewVec3(0, 0, 0), 0.25},
		{core.State{Pos: core.NewVec3(1, -2, 3), Vel: core.NewVec3(0.5, 0, -1)}, core.NewVec3(3, -3, 3), 0.8},
		{core.State{Pos: core.NewVec3(-5, 5, 0), Vel: core.NewVec3(2, 2, 2)}, core.NewVec3(-1, 1, 0), 0.1},
	}
	for _, c := range cases {
		closed := Integrate(c.s0, c.u, c.tau)
		viaMatrix := IntegrateViaMatrix(c.s0, c.u, c.tau)
		if !near(closed.Pos, viaMatrix.Pos) || !near(closed.Vel, viaMatrix.Vel) {
			t.Errorf("matrix integration disagrees with closed form: closed=%+v matrix=%+v", closed, viaMatrix)
		}
	}
}

func near(a, b core.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}
