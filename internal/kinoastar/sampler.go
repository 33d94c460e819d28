package kinoastar

import (
	"math"

	"github.com/basalt-robotics/kinoplan/internal/core"
	"github.com/basalt-robotics/kinoplan/internal/dynamics"
	"github.com/basalt-robotics/kinoplan/internal/shot"
)

// BoundaryDerivatives carries the velocity/acceleration boundary
// conditions a downstream spline fit needs, per spec.md §4.8.
type BoundaryDerivatives struct {
	StartVel core.Vec3
	StartAcc core.Vec3
	EndVel   core.Vec3
	EndAcc   core.Vec3
}

// sampleTimes returns the local sample instants 0, dt, 2dt, ..., up to
// and including tau (the final sample lands exactly on tau even when tau
// is not a multiple of dt). sampleSegment, sampleShot, and GetSamples
// all sample at these same instants, so GetSamples can report absolute
// timestamps by adding each segment's base time instead of re-deriving
// them from a flat running counter.
func sampleTimes(tau, dt float64) []float64 {
	if dt <= 0 || tau <= 0 {
		return nil
	}
	var out []float64
	for t := 0.0; t < tau; t += dt {
		out = append(out, t)
	}
	return append(out, tau)
}

// sampleSegment emits positions at 0, dt, 2dt, ..., up to and including
// tau, reintegrating from s0 under constant control u.
func sampleSegment(s0 core.State, u core.Vec3, tau, dt float64) []core.Vec3 {
	times := sampleTimes(tau, dt)
	if times == nil {
		return nil
	}
	out := make([]core.Vec3, len(times))
	for i, t := range times {
		out[i] = dynamics.Integrate(s0, u, t).Pos
	}
	return out
}

// sampleShot emits the accepted terminal shot's positions at
// 0, dt, ..., T_shot.
func sampleShot(tr shot.Trajectory, dt float64) []core.Vec3 {
	times := sampleTimes(tr.T, dt)
	if times == nil {
		return nil
	}
	out := make([]core.Vec3, len(times))
	for i, t := range times {
		out[i] = tr.PositionAt(t)
	}
	return out
}

// GetKinoTraj reconstructs the dense position sequence for the most
// recent successful search at sample interval dt (spec.md §4.8). It
// walks path_nodes_ parent-to-child, reintegrating each stored (u, tau)
// segment, then appends the terminal shot if one was accepted.
func (p *Planner) GetKinoTraj(dt float64) []core.Vec3 {
	path := p.RetrievePath()
	if len(path) == 0 {
		return nil
	}

	var points []core.Vec3
	for i := 1; i < len(path); i++ {
		parent, child := path[i-1], path[i]
		seg := sampleSegment(parent.State, child.Input, child.Tau, dt)
		points = append(points, seg...)
	}

	if tr, ok := p.ShotToGoal(); ok {
		points = append(points, sampleShot(tr, dt)...)
	}
	return points
}

// GetSamples reconstructs the dense trajectory along with its time stamps
// and the boundary velocity/acceleration a downstream spline fit needs.
func (p *Planner) GetSamples(dt float64) (ts []float64, points []core.Vec3, boundary BoundaryDerivatives) {
	path := p.RetrievePath()
	if len(path) == 0 {
		return nil, nil, boundary
	}

	boundary.StartVel = path[0].State.Vel
	boundary.StartAcc = p.startAcc

	t := 0.0
	for i := 1; i < len(path); i++ {
		parent, child := path[i-1], path[i]
		for _, lt := range sampleTimes(child.Tau, dt) {
			ts = append(ts, t+lt)
		}
		points = append(points, sampleSegment(parent.State, child.Input, child.Tau, dt)...)
		boundary.EndVel = child.State.Vel
		boundary.EndAcc = child.Input
		t += child.Tau
	}

	if tr, ok := p.ShotToGoal(); ok {
		for _, lt := range sampleTimes(tr.T, dt) {
			ts = append(ts, t+lt)
		}
		points = append(points, sampleShot(tr, dt)...)
		boundary.EndVel = tr.VelocityAt(tr.T)
		boundary.EndAcc = tr.AccelAt(tr.T)
	}

	return ts, points, boundary
}

// refinementFactor reports how many times finer b is than a, used by
// tests asserting GetKinoTraj(dt/2) refines GetKinoTraj(dt) (spec.md §8
// invariant 9).
func refinementFactor(a, b float64) int {
	if b <= 0 {
		return 0
	}
	return int(math.Round(a / b))
}
