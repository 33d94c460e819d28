// Package oracle implements the DistanceOracle capability: given a 3D
// point, return the clearance (Euclidean distance) to the nearest
// occupied cell, within a bounded query domain.
package oracle

import "github.com/basalt-robotics/kinoplan/internal/core"

// UnknownPolicy decides how a DistanceOracle treats a query outside its
// bounded region.
type UnknownPolicy int

const (
	// PolicyFree treats unknown space as free: a large (saturating)
	// clearance is returned.
	PolicyFree UnknownPolicy = iota
	// PolicyOccupied treats unknown space as occupied: zero clearance.
	PolicyOccupied
)

// DistanceOracle is a read-only capability: clearance(p) -> distance.
// Implementations must be safe to call at inner-loop collision-check
// rates (on the order of 1e5 queries per search) and must not mutate
// shared state.
type DistanceOracle interface {
	// Clearance returns the non-negative distance from p to the nearest
	// occupied cell, saturating at the implementation's configured max.
	Clearance(p core.Vec3) float64
	// Bounds reports the query domain the oracle was constructed over.
	Bounds() core.Bounds
}
