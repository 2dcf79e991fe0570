package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// quad is a face template: four corners around a cube centred on the origin.
// Triangles are (0, 2, 1) and (2, 3, 1).
type quad [4]Vertex

var quadIndices = [6]uint32{0, 2, 1, 2, 3, 1}

// The atlas keeps the top texture in its upper half and the side texture in
// its lower half; templates squash V into the matching half.
var (
	sideUV = [4]mgl32.Vec2{{0, 0.5}, {1, 0.5}, {0, 0}, {1, 0}}
	topUV  = [4]mgl32.Vec2{{0, 1}, {1, 1}, {0, 0.5}, {1, 0.5}}
)

// faceTemplates builds the five face quads for a cube of edge size.
// Each starts as a plane in XY facing +Z, then is rotated and pushed out by half an edge.
func faceTemplates(size float32) [NumDirections]quad {
	half := size / 2
	rotX := func(a float64) mgl32.Mat4 { return mgl32.HomogRotate3DX(float32(a)) }
	rotY := func(a float64) mgl32.Mat4 { return mgl32.HomogRotate3DY(float32(a)) }

	var t [NumDirections]quad
	t[PosX] = planeQuad(size, sideUV, mgl32.Translate3D(half, 0, 0).Mul4(rotY(math.Pi/2)))
	t[NegX] = planeQuad(size, sideUV, mgl32.Translate3D(-half, 0, 0).Mul4(rotY(-math.Pi/2)))
	t[Top] = planeQuad(size, topUV, mgl32.Translate3D(0, half, 0).Mul4(rotX(-math.Pi/2)))
	t[PosZ] = planeQuad(size, sideUV, mgl32.Translate3D(0, 0, half))
	t[NegZ] = planeQuad(size, sideUV, mgl32.Translate3D(0, 0, -half).Mul4(rotY(math.Pi)))
	return t
}

func planeQuad(size float32, uv [4]mgl32.Vec2, m mgl32.Mat4) quad {
	half := size / 2
	corners := [4]mgl32.Vec3{
		{-half, half, 0},
		{half, half, 0},
		{-half, -half, 0},
		{half, -half, 0},
	}
	normal := snap(mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, m).Normalize())

	var q quad
	for i, c := range corners {
		q[i] = Vertex{
			Position: snapTo(mgl32.TransformCoordinate(c, m), half),
			Normal:   normal,
			TexCoord: uv[i],
		}
	}
	return q
}

// snap removes the float noise rotations by multiples of pi/2 leave behind
// in unit vectors.
func snap(v mgl32.Vec3) mgl32.Vec3 {
	for i := range v {
		v[i] = noNegZero(float32(math.Round(float64(v[i])*1e4) / 1e4))
	}
	return v
}

// snapTo moves components lying within rounding noise of a multiple of step
// onto it. Other components are left untouched.
func snapTo(v mgl32.Vec3, step float32) mgl32.Vec3 {
	if step <= 0 {
		return v
	}
	tol := 1e-5 * float64(step)
	for i := range v {
		k := math.Round(float64(v[i]) / float64(step))
		if math.Abs(float64(v[i])-k*float64(step)) <= tol {
			v[i] = noNegZero(float32(k) * step)
		}
	}
	return v
}

func noNegZero(f float32) float32 {
	if f == 0 {
		return 0
	}
	return f
}
