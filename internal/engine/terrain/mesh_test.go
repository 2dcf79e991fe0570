package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// near reports whether a and b differ by less than tol.
func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) < float64(tol)
}

// nearVec reports whether a and b are less than tol apart.
func nearVec(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

func TestFaceTemplates(t *testing.T) {
	const size = 4
	templates := faceTemplates(size)

	normals := map[Direction]mgl32.Vec3{
		Top:  {0, 1, 0},
		PosX: {1, 0, 0},
		NegX: {-1, 0, 0},
		PosZ: {0, 0, 1},
		NegZ: {0, 0, -1},
	}

	for dir, want := range normals {
		t.Run(dir.String(), func(t *testing.T) {
			q := templates[dir]
			for i, v := range q {
				if v.Normal != want {
					t.Errorf("vertex %d normal: got %v, want %v", i, v.Normal, want)
				}
				// Every corner sits on the cube surface, half an edge out along the normal.
				if d := v.Position.Dot(want); d != size/2 {
					t.Errorf("vertex %d plane distance: got %v, want %v", i, d, size/2)
				}
				for axis := range 3 {
					if a := float32(math.Abs(float64(v.Position[axis]))); a != size/2 {
						t.Errorf("vertex %d axis %d: got |%v|, want %v", i, axis, v.Position[axis], size/2)
					}
				}
			}

			// Counter-clockwise winding seen from outside.
			e1 := q[quadIndices[1]].Position.Sub(q[quadIndices[0]].Position)
			e2 := q[quadIndices[2]].Position.Sub(q[quadIndices[0]].Position)
			if n := e1.Cross(e2).Normalize(); !nearVec(n, want, eps) {
				t.Errorf("winding normal: got %v, want %v", n, want)
			}
		})
	}
}

func TestFaceTemplateCornersExact(t *testing.T) {
	tests := []struct {
		name string
		size float32
	}{
		{"unit", 1},
		{"third", 0.33333},
		{"fraction", 0.7071},
		{"large", 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			half := tt.size / 2
			for dir, q := range faceTemplates(tt.size) {
				for i, v := range q {
					for axis, c := range v.Position {
						if c != 0 && c != half && c != -half {
							t.Errorf("%v corner %d axis %d: got %v, want 0 or +-%v", Direction(dir), i, axis, c, half)
						}
					}
					for axis, c := range v.Normal {
						if c != 0 && c != 1 && c != -1 {
							t.Errorf("%v normal axis %d: got %v, want 0 or +-1", Direction(dir), axis, c)
						}
					}
				}
			}
		})
	}
}

func TestSnapTo(t *testing.T) {
	tests := []struct {
		name string
		in   mgl32.Vec3
		step float32
		want mgl32.Vec3
	}{
		{"noise", mgl32.Vec3{0.1666651, -0.1666649, -4e-9}, 0.166665, mgl32.Vec3{0.166665, -0.166665, 0}},
		{"off grid", mgl32.Vec3{0.1, 0.25, 0.5}, 1, mgl32.Vec3{0.1, 0.25, 0.5}},
		{"zero step", mgl32.Vec3{0.3, 0, 0}, 0, mgl32.Vec3{0.3, 0, 0}},
	}
	for _, tt := range tests {
		if got := snapTo(tt.in, tt.step); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFaceTemplateUVs(t *testing.T) {
	templates := faceTemplates(1)
	for dir, q := range templates {
		lo, hi := float32(0), float32(0.5)
		if Direction(dir) == Top {
			lo, hi = 0.5, 1
		}
		for i, v := range q {
			if v.TexCoord.Y() < lo || v.TexCoord.Y() > hi {
				t.Errorf("%v vertex %d: v=%v outside [%v, %v]", Direction(dir), i, v.TexCoord.Y(), lo, hi)
			}
		}
	}
}

func TestMergeSingleTop(t *testing.T) {
	m := Merge([]Face{{Dir: Top, Translation: mgl32.Vec3{0, 0, 0}}}, 2)

	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("got %d vertices / %d indices, want 4 / 6", len(m.Vertices), len(m.Indices))
	}
	for i, want := range []uint32{0, 2, 1, 2, 3, 1} {
		if m.Indices[i] != want {
			t.Errorf("index %d: got %d, want %d", i, m.Indices[i], want)
		}
	}

	wantMin, wantMax := mgl32.Vec3{-1, 1, -1}, mgl32.Vec3{1, 1, 1}
	if m.Bounds.Min != wantMin || m.Bounds.Max != wantMax {
		t.Errorf("bounds: got %v..%v, want %v..%v", m.Bounds.Min, m.Bounds.Max, wantMin, wantMax)
	}
	if m.Sphere.Center != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("sphere center: got %v", m.Sphere.Center)
	}
	if !near(m.Sphere.Radius, float32(math.Sqrt2), eps) {
		t.Errorf("sphere radius: got %v, want %v", m.Sphere.Radius, math.Sqrt2)
	}
}

func TestMergeIndicesOffsetPerFace(t *testing.T) {
	faces := Voxelize(mustGrid(t, 2, 1, 0, 3), 1)
	m := Merge(faces, 1)

	if m.FaceCount() != len(faces) {
		t.Fatalf("FaceCount() = %d, want %d", m.FaceCount(), len(faces))
	}
	if len(m.Indices) != 6*len(faces) {
		t.Fatalf("indices: got %d, want %d", len(m.Indices), 6*len(faces))
	}
	for f := range faces {
		base := uint32(f * 4)
		for i, idx := range m.Indices[f*6 : f*6+6] {
			if idx != base+quadIndices[i] {
				t.Errorf("face %d index %d: got %d, want %d", f, i, idx, base+quadIndices[i])
			}
		}
	}
}

func TestMergeSphereEnclosesVertices(t *testing.T) {
	g := mustGrid(t, 4, 3, 0, 5, -2, 1, 7, 7, 3, 0, -1, 2, 2, 9)
	m := Merge(Voxelize(g, 4), 4)

	for i, v := range m.Vertices {
		if d := v.Position.Sub(m.Sphere.Center).Len(); d > m.Sphere.Radius+1e-3 {
			t.Errorf("vertex %d at distance %v outside radius %v", i, d, m.Sphere.Radius)
		}
	}
	if m.Bounds.Min.Y() != -2*4-2 || m.Bounds.Max.Y() != 9*4+2 {
		t.Errorf("y bounds: got %v..%v, want -10..38", m.Bounds.Min.Y(), m.Bounds.Max.Y())
	}
}

func TestMergeEmpty(t *testing.T) {
	m := Merge(nil, 1)
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Errorf("expected empty mesh, got %d vertices", len(m.Vertices))
	}
	if m.Sphere.Radius != 0 {
		t.Errorf("radius: got %v, want 0", m.Sphere.Radius)
	}
}
