// Package core defines the data model shared by every kinoplan component:
// vectors, states, bounds, and search nodes.
package core

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3D Euclidean vector. Arithmetic (Add, Sub, Mul, Dot, Len, ...)
// comes from mgl64.Vec3 rather than a hand-rolled type.
type Vec3 = mgl64.Vec3

// Zero3 is the zero vector.
var Zero3 = Vec3{0, 0, 0}

// NewVec3 builds a Vec3 from components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// MaxAbsComponent returns max(|v.X|, |v.Y|, |v.Z|), the infinity norm.
func MaxAbsComponent(v Vec3) float64 {
	m := absf(v[0])
	if a := absf(v[1]); a > m {
		m = a
	}
	if a := absf(v[2]); a > m {
		m = a
	}
	return m
}

// InfNorm is the infinity-norm distance between two points.
func InfNorm(a, b Vec3) float64 {
	return MaxAbsComponent(a.Sub(b))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Bounds is an axis-aligned bounding box over the map.
type Bounds struct {
	Min, Max Vec3
}

// Contains reports whether p lies within the bounds (inclusive).
func (b Bounds) Contains(p Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}
