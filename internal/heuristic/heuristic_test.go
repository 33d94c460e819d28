package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/basalt-robotics/kinoplan/internal/core"
)

func TestEstimateZeroDistanceIsCheap(t *testing.T) {
	s := NewSolver(10, 3)
	x := core.State{Pos: core.NewVec3(1, 1, 1), Vel: core.NewVec3(0, 0, 0)}
	cost, optT := s.Estimate(x, x)
	require.Greater(t, optT, 0.0)
	require.Greater(t, cost, 0.0, "even a zero-distance hop costs time*wTime under the tie-breaker")
}

func TestEstimateMonotonicInDistance(t *testing.T) {
	s := NewSolver(10, 3)
	start := core.State{Pos: core.NewVec3(0, 0, 0), Vel: core.NewVec3(0, 0, 0)}
	near := core.State{Pos: core.NewVec3(1, 0, 0), Vel: core.NewVec3(0, 0, 0)}
	far := core.State{Pos: core.NewVec3(10, 0, 0), Vel: core.NewVec3(0, 0, 0)}

	cNear, _ := s.Estimate(start, near)
	cFar, _ := s.Estimate(start, far)
	require.Less(t, cNear, cFar, "heuristic should grow with distance")
}

func TestEstimateOptimalTimePositive(t *testing.T) {
	s := NewSolver(10, 3)
	x1 := core.State{Pos: core.NewVec3(0, 0, 1), Vel: core.NewVec3(0, 0, 0)}
	x2 := core.State{Pos: core.NewVec3(5, 0, 1), Vel: core.NewVec3(0, 0, 0)}
	_, optT := s.Estimate(x1, x2)
	require.Greater(t, optT, 0.0)
}

func TestEstimateStaysBounded(t *testing.T) {
	s := NewSolver(1, 3)
	x1 := core.State{Pos: core.NewVec3(0, 0, 0), Vel: core.NewVec3(0, 0, 0)}
	x2 := core.State{Pos: core.NewVec3(9, 0, 0), Vel: core.NewVec3(0, 0, 0)}
	cost, optT := s.Estimate(x1, x2)

	require.Greater(t, optT, 0.0)
	require.Less(t, cost, 1e6)
}
