package dynamics

import (
	"github.com/basalt-robotics/kinoplan/internal/core"
	"gonum.org/v1/gonum/mat"
)

// Phi builds the 6x6 state-transition matrix for the double integrator
// over duration tau, ordered (px,py,pz,vx,vy,vz). The original C++ source
// declares an equivalent phi_ field but never exercises it; here it backs
// a second, matrix-form integration path that IntegrateViaMatrix uses and
// tests cross-check against the closed form.
func Phi(tau float64) *mat.Dense {
	phi := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		phi.Set(i, i, 1)
	}
	phi.Set(0, 3, tau)
	phi.Set(1, 4, tau)
	phi.Set(2, 5, tau)
	return phi
}

// Gamma builds the 6x3 control-influence matrix for duration tau.
func Gamma(tau float64) *mat.Dense {
	g := mat.NewDense(6, 3, nil)
	half := 0.5 * tau * tau
	g.Set(0, 0, half)
	g.Set(1, 1, half)
	g.Set(2, 2, half)
	g.Set(3, 0, tau)
	g.Set(4, 1, tau)
	g.Set(5, 2, tau)
	return g
}

// IntegrateViaMatrix propagates s0 under control u for duration tau using
// the explicit state-transition matrices, s1 = Phi*s0 + Gamma*u. It must
// agree with Integrate to floating-point tolerance.
func IntegrateViaMatrix(s0 core.State, u core.Vec3, tau float64) core.State {
	x0 := mat.NewVecDense(6, []float64{
		s0.Pos[0], s0.Pos[1], s0.Pos[2],
		s0.Vel[0], s0.Vel[1], s0.Vel[2],
	})
	uv := mat.NewVecDense(3, []float64{u[0], u[1], u[2]})

	var px, pu mat.VecDense
	px.MulVec(Phi(tau), x0)
	pu.MulVec(Gamma(tau), uv)

	var x1 mat.VecDense
	x1.AddVec(&px, &pu)

	return core.State{
		Pos: core.NewVec3(x1.AtVec(0), x1.AtVec(1), x1.AtVec(2)),
		Vel: core.NewVec3(x1.AtVec(3), x1.AtVec(4), x1.AtVec(5)),
	}
}
