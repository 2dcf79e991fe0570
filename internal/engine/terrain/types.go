// Package terrain builds the voxel landscape: a noise heightfield, the
// face-culled cube quads standing on it, and the merged static mesh.
package terrain

import "github.com/go-gl/mathgl/mgl32"

// Direction identifies one of the five cube faces the voxelizer can emit.
// Bottom faces are never emitted.
type Direction uint8

const (
	Top Direction = iota
	PosX
	NegX
	PosZ
	NegZ
)

// NumDirections is the number of emittable face directions.
const NumDirections = 5

// sideDirections are checked against neighbours in this order.
var sideDirections = [4]Direction{PosX, NegX, PosZ, NegZ}

// Offset returns the grid step towards the neighbour a side face looks at.
func (d Direction) Offset() (dx, dz int) {
	switch d {
	case PosX:
		return 1, 0
	case NegX:
		return -1, 0
	case PosZ:
		return 0, 1
	case NegZ:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "+y"
	case PosX:
		return "+x"
	case NegX:
		return "-x"
	case PosZ:
		return "+z"
	case NegZ:
		return "-z"
	}
	return "unknown"
}

// Vertex is one corner of a landscape quad. The layout is tightly packed
// float32s so a []Vertex can be uploaded to the GPU as is.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh is the merged landscape geometry ready for GPU upload or export.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
	Sphere   Sphere
}

// FaceCount returns the number of quads in the mesh.
func (m *Mesh) FaceCount() int {
	return len(m.Vertices) / 4
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}
