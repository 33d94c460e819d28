// Package shot implements the one-shot polynomial terminal connection: a
// single degree-3-per-axis trajectory attempting to close the remaining
// distance to the goal, plus its feasibility check against velocity,
// acceleration, and clearance bounds.
package shot

import (
	"github.com/basalt-robotics/kinoplan/internal/core"
	"github.com/basalt-robotics/kinoplan/internal/oracle"
)

// Coeffs holds the per-axis cubic polynomial coefficients
// p(t) = c0 + c1*t + c2*t^2 + c3*t^3, one row per axis (x,y,z).
type Coeffs [3][4]float64

// Trajectory is an accepted one-shot connection from x1 to x2 in duration T.
type Trajectory struct {
	Coeffs Coeffs
	T      float64
}

// FeasibilityParams bounds a shot attempt's acceptance.
type FeasibilityParams struct {
	VMax     float64
	AMax     float64
	Margin   float64
	Bounds   core.Bounds
	CheckNum int
	Oracle   oracle.DistanceOracle
}

// Attempt fits a cubic-per-axis polynomial connecting x1 to x2 in duration
// T (matching position and velocity at both endpoints) and runs the
// feasibility check from spec.md §4.4. ok reports whether every sampled
// point respects velocity, acceleration, bounds, and clearance.
func Attempt(x1, x2 core.State, T float64, params FeasibilityParams) (Trajectory, bool) {
	if T <= 0 {
		return Trajectory{}, false
	}

	var coeffs Coeffs
	for axis := 0; axis < 3; axis++ {
		coeffs[axis] = fitCubic(x1.Pos[axis], x1.Vel[axis], x2.Pos[axis], x2.Vel[axis], T)
	}
	traj := Trajectory{Coeffs: coeffs, T: T}

	if !feasible(traj, params) {
		return Trajectory{}, false
	}
	return traj, true
}

// fitCubic solves for c0..c3 of p(t)=c0+c1 t+c2 t^2+c3 t^3 given
// p(0)=p0, p'(0)=v0, p(T)=p1, p'(T)=v1.
func fitCubic(p0, v0, p1, v1, T float64) [4]float64 {
	c0 := p0
	c1 := v0
	T2 := T * T
	T3 := T2 * T
	// Standard Hermite cubic solve for the remaining two coefficients.
	dp := p1 - p0 - v0*T
	dv := v1 - v0
	c2 := (3*dp - dv*T) / T2
	c3 := (dv*T - 2*dp) / T3
	return [4]float64{c0, c1, c2, c3}
}

func positionAt(c [4]float64, t float64) float64 {
	return c[0] + c[1]*t + c[2]*t*t + c[3]*t*t*t
}

func velocityAt(c [4]float64, t float64) float64 {
	return c[1] + 2*c[2]*t + 3*c[3]*t*t
}

func accelAt(c [4]float64, t float64) float64 {
	return 2*c[2] + 6*c[3]*t
}

// PositionAt evaluates the fitted trajectory's position at time t in [0,T].
func (tr Trajectory) PositionAt(t float64) core.Vec3 {
	return core.NewVec3(
		positionAt(tr.Coeffs[0], t),
		positionAt(tr.Coeffs[1], t),
		positionAt(tr.Coeffs[2], t),
	)
}

// VelocityAt evaluates the fitted trajectory's velocity at time t in [0,T].
func (tr Trajectory) VelocityAt(t float64) core.Vec3 {
	return core.NewVec3(
		velocityAt(tr.Coeffs[0], t),
		velocityAt(tr.Coeffs[1], t),
		velocityAt(tr.Coeffs[2], t),
	)
}

// AccelAt evaluates the fitted trajectory's acceleration at time t in [0,T].
func (tr Trajectory) AccelAt(t float64) core.Vec3 {
	return core.NewVec3(
		accelAt(tr.Coeffs[0], t),
		accelAt(tr.Coeffs[1], t),
		accelAt(tr.Coeffs[2], t),
	)
}

func feasible(tr Trajectory, params FeasibilityParams) bool {
	n := params.CheckNum
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		t := tr.T * float64(i) / float64(n-1)
		p := tr.PositionAt(t)
		v := tr.VelocityAt(t)
		a := tr.AccelAt(t)

		if core.MaxAbsComponent(v) > params.VMax {
			return false
		}
		if core.MaxAbsComponent(a) > params.AMax {
			return false
		}
		if !params.Bounds.Contains(p) {
			return false
		}
		if params.Oracle.Clearance(p) <= params.Margin {
			return false
		}
	}
	return true
}
