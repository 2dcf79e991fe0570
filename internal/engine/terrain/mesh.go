package terrain

import "math"

// Merge concatenates faces into one indexed mesh with four vertices and six
// indices per face, then computes its bounds.
func Merge(faces []Face, cubeSize float32) *Mesh {
	templates := faceTemplates(cubeSize)

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, len(faces)*4),
		Indices:  make([]uint32, 0, len(faces)*6),
	}

	for _, f := range faces {
		base := uint32(len(mesh.Vertices))
		for _, v := range templates[f.Dir] {
			v.Position = v.Position.Add(f.Translation)
			mesh.Vertices = append(mesh.Vertices, v)
		}
		for _, idx := range quadIndices {
			mesh.Indices = append(mesh.Indices, base+idx)
		}
	}

	mesh.Bounds = computeBounds(mesh.Vertices)
	mesh.Sphere = computeSphere(mesh.Vertices, mesh.Bounds)
	return mesh
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := range 3 {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

// computeSphere centres the sphere on the box and grows it to the farthest vertex.
func computeSphere(vertices []Vertex, b Bounds) Sphere {
	center := b.Center()
	var maxSq float32
	for _, v := range vertices {
		d := v.Position.Sub(center)
		if sq := d.Dot(d); sq > maxSq {
			maxSq = sq
		}
	}
	return Sphere{Center: center, Radius: sqrtf(maxSq)}
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
