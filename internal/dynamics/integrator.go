// Package dynamics implements closed-form propagation of the
// double-integrator state under constant control.
package dynamics

import "github.com/basalt-robotics/kinoplan/internal/core"

// Integrate propagates s0 under constant control u for duration tau:
//
//	p' = p + v*tau + 1/2*u*tau^2
//	v' = v + u*tau
//
// It is deterministic and allocation-free.
func Integrate(s0 core.State, u core.Vec3, tau float64) core.State {
	half := 0.5 * tau * tau
	return core.State{
		Pos: s0.Pos.Add(s0.Vel.Mul(tau)).Add(u.Mul(half)),
		Vel: s0.Vel.Add(u.Mul(tau)),
	}
}
