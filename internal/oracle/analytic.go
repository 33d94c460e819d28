package oracle

import "github.com/basalt-robotics/kinoplan/internal/core"

// Analytic is a closed-form DistanceOracle for deterministic tests: it
// never needs a precomputed field, so test scenarios can assert exact
// clearance values.
type Analytic struct {
	bounds  core.Bounds
	field   func(core.Vec3) float64
	unknown UnknownPolicy
	maxDist float64
}

// NewConstantField returns an Analytic oracle reporting a fixed clearance
// everywhere inside bounds (spec.md scenario S1: "oracle returns 10
// everywhere").
func NewConstantField(bounds core.Bounds, clearance float64) *Analytic {
	return &Analytic{
		bounds:  bounds,
		field:   func(core.Vec3) float64 { return clearance },
		unknown: PolicyFree,
		maxDist: clearance,
	}
}

// NewSphereObstacle returns an Analytic oracle modeling a single sphere
// obstacle: clearance(p) = max(0, |p-center| - radius), matching spec.md
// scenario S2.
func NewSphereObstacle(bounds core.Bounds, center core.Vec3, radius, maxDist float64) *Analytic {
	return &Analytic{
		bounds: bounds,
		field: func(p core.Vec3) float64 {
			d := p.Sub(center).Len() - radius
			if d < 0 {
				d = 0
			}
			if d > maxDist {
				d = maxDist
			}
			return d
		},
		unknown: PolicyFree,
		maxDist: maxDist,
	}
}

// Clearance implements DistanceOracle.
func (a *Analytic) Clearance(p core.Vec3) float64 {
	if !a.bounds.Contains(p) {
		if a.unknown == PolicyOccupied {
			return 0
		}
		return a.maxDist
	}
	return a.field(p)
}

// Bounds implements DistanceOracle.
func (a *Analytic) Bounds() core.Bounds {
	return a.bounds
}
