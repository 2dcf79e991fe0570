package scenegraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a position and normal, tightly packed for GPU upload.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int { return len(g.Indices) / 3 }

// boxFaces lists each face's normal and in-plane axes, with u x v = normal.
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Box builds an axis-aligned box centred on the origin, four vertices per face.
func Box(width, height, depth float32) *Geometry {
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}
	scale := func(v mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{v[0] * half[0], v[1] * half[1], v[2] * half[2]}
	}

	g := &Geometry{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(g.Vertices))
		for _, s := range [4][2]float32{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}} {
			p := n.Add(u.Mul(s[0])).Add(v.Mul(s[1]))
			g.Vertices = append(g.Vertices, Vertex{Position: scale(p), Normal: n})
		}
		g.Indices = append(g.Indices, base, base+2, base+1, base+2, base+3, base+1)
	}
	return g
}

// UVSphere builds a sphere from latitude/longitude rings. The poles are
// single-triangle fans, so a 6x6 sphere has 60 triangles.
func UVSphere(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	g := &Geometry{}
	grid := make([][]uint32, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		grid[iy] = make([]uint32, widthSegments+1)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi

			n := mgl32.Vec3{
				float32(-math.Cos(phi) * math.Sin(theta)),
				float32(math.Cos(theta)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			grid[iy][ix] = uint32(len(g.Vertices))
			g.Vertices = append(g.Vertices, Vertex{Position: n.Mul(radius), Normal: n})
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}
