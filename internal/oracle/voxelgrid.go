package oracle

import "github.com/basalt-robotics/kinoplan/internal/core"

// VoxelGrid is a dense 3D occupancy grid: Occupied[z][y][x] true means the
// cell is blocked. It is the stand-in for an octomap-derived occupancy
// source.
type VoxelGrid struct {
	Origin     core.Vec3
	Resolution float64
	NX, NY, NZ int
	Occupied   []bool // indexed by (z*NY+y)*NX+x
}

// NewVoxelGrid allocates an empty (all-free) grid over [min,max] at the
// given resolution.
func NewVoxelGrid(min, max core.Vec3, resolution float64) *VoxelGrid {
	nx := dimCount(min[0], max[0], resolution)
	ny := dimCount(min[1], max[1], resolution)
	nz := dimCount(min[2], max[2], resolution)
	return &VoxelGrid{
		Origin:     min,
		Resolution: resolution,
		NX:         nx, NY: ny, NZ: nz,
		Occupied: make([]bool, nx*ny*nz),
	}
}

func dimCount(lo, hi, res float64) int {
	n := int((hi-lo)/res) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// Index converts a cell coordinate to a flat Occupied index.
func (g *VoxelGrid) Index(x, y, z int) int {
	return (z*g.NY+y)*g.NX + x
}

// InBounds reports whether (x,y,z) is a valid cell coordinate.
func (g *VoxelGrid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.NX && y >= 0 && y < g.NY && z >= 0 && z < g.NZ
}

// CellOf converts a world point to its containing cell coordinate,
// clamped to the grid.
func (g *VoxelGrid) CellOf(p core.Vec3) (int, int, int) {
	x := clampInt(int((p[0]-g.Origin[0])/g.Resolution), 0, g.NX-1)
	y := clampInt(int((p[1]-g.Origin[1])/g.Resolution), 0, g.NY-1)
	z := clampInt(int((p[2]-g.Origin[2])/g.Resolution), 0, g.NZ-1)
	return x, y, z
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetOccupied marks the cell containing p as occupied.
func (g *VoxelGrid) SetOccupied(p core.Vec3) {
	x, y, z := g.CellOf(p)
	g.Occupied[g.Index(x, y, z)] = true
}

// SetSphere marks every cell inside a sphere (center, radius) as occupied.
func (g *VoxelGrid) SetSphere(center core.Vec3, radius float64) {
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				p := g.Origin.Add(core.NewVec3(
					(float64(x)+0.5)*g.Resolution,
					(float64(y)+0.5)*g.Resolution,
					(float64(z)+0.5)*g.Resolution,
				))
				if p.Sub(center).Len() <= radius {
					g.Occupied[g.Index(x, y, z)] = true
				}
			}
		}
	}
}

// Bounds reports the world-space bounding box of the grid.
func (g *VoxelGrid) Bounds() core.Bounds {
	return core.Bounds{
		Min: g.Origin,
		Max: g.Origin.Add(core.NewVec3(
			float64(g.NX)*g.Resolution,
			float64(g.NY)*g.Resolution,
			float64(g.NZ)*g.Resolution,
		)),
	}
}
