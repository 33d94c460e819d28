package core

import "math"

// State is the 6-D double-integrator state s = (p, v).
// Acceleration is a control input, not part of state.
type State struct {
	Pos Vec3
	Vel Vec3
}

// PosCell is an integer position-cell key, idx_i = floor((p_i-origin_i)/rho).
type PosCell [3]int

// TimeCell extends PosCell with a quantized time index for dynamic-mode
// (time-indexed) search.
type TimeCell [4]int

// PosToCell quantizes a position into a position cell at resolution rho.
func PosToCell(p, origin Vec3, rho float64) PosCell {
	return PosCell{
		floorDiv(p[0]-origin[0], rho),
		floorDiv(p[1]-origin[1], rho),
		floorDiv(p[2]-origin[2], rho),
	}
}

// TimeToIndex quantizes a time value into a time cell at resolution rhoT.
func TimeToIndex(t, t0, rhoT float64) int {
	return int(floorDivF(t-t0, rhoT))
}

// WithTime appends a time cell index to a position cell, forming the
// (position-cell, time-cell) key used in dynamic mode.
func (c PosCell) WithTime(tidx int) TimeCell {
	return TimeCell{c[0], c[1], c[2], tidx}
}

func floorDiv(num, den float64) int {
	return int(floorDivF(num, den))
}

func floorDivF(num, den float64) float64 {
	return math.Floor(num / den)
}
