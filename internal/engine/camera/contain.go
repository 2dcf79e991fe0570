package camera

import "github.com/go-gl/mathgl/mgl32"

// Extents is the walkable area a camera is kept inside.
// *terrain.Landscape satisfies it.
type Extents interface {
	MinX() float32
	MaxX() float32
	MinZ() float32
	MaxZ() float32
	MinCameraY(worldX, worldZ float32) float32
}

// Contain clamps pos to the landscape's X/Z extents and lifts it to at least
// the minimum camera height above the cell underneath.
func Contain(pos mgl32.Vec3, e Extents) mgl32.Vec3 {
	x := clamp(pos.X(), e.MinX(), e.MaxX())
	z := clamp(pos.Z(), e.MinZ(), e.MaxZ())
	y := pos.Y()
	if minY := e.MinCameraY(x, z); y < minY {
		y = minY
	}
	return mgl32.Vec3{x, y, z}
}

// ContainRig applies Contain to a rig's position in place.
func ContainRig(r Rig, e Extents) {
	pos := r.Position()
	if contained := Contain(pos, e); contained != pos {
		r.SetPosition(contained)
	}
}
