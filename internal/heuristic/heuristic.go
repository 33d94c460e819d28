package heuristic

import (
	"github.com/basalt-robotics/kinoplan/internal/core"
)

// TieBreaker is applied to every returned heuristic value to prefer
// straighter expansions among equal-f ties (spec.md §4.3).
const TieBreaker = 1.0 + 1.0/10000.0

// Solver estimates the optimal-time cost-to-go between two full states
// under J(T) = integral(||u||^2 dt) + wTime*T.
type Solver struct {
	WTime float64
	VMax  float64
}

// NewSolver builds a Solver with the given time-cost weight and velocity
// bound (vMax is only used for the T_fallback estimate).
func NewSolver(wTime, vMax float64) Solver {
	return Solver{WTime: wTime, VMax: vMax}
}

// Estimate returns (J*, T*): the minimal objective value and the optimal
// time achieving it, between x1 = (p1,v1) and x2 = (p2,v2).
func (s Solver) Estimate(x1, x2 core.State) (cost, optimalTime float64) {
	p1, v1 := x1.Pos, x1.Vel
	p2, v2 := x2.Pos, x2.Vel
	dp := p1.Sub(p2)

	c0 := s.WTime
	c2 := -4 * (v1.Dot(v1) + v1.Dot(v2) + v2.Dot(v2))
	c3 := 24 * (v1.Add(v2)).Dot(dp)
	c4 := -36 * dp.Dot(dp)

	roots := SolveQuartic(c0, 0, c2, c3, c4)

	tFallback := p2.Sub(p1).Len() / fallbackVMax(s.VMax)

	objective := func(t float64) float64 {
		return -c4/(3*t*t*t) - c3/(2*t*t) - c2/t + s.WTime*t
	}

	bestT := tFallback
	bestJ := objective(tFallback)
	for _, t := range roots {
		if t <= rootEps {
			continue
		}
		j := objective(t)
		if j < bestJ {
			bestJ = j
			bestT = t
		}
	}

	return TieBreaker * bestJ, bestT
}

// fallbackVMax guards against a zero/unset velocity bound producing an
// infinite or NaN fallback time.
func fallbackVMax(vMax float64) float64 {
	if vMax <= 0 {
		return 1
	}
	return vMax
}
