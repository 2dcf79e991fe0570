package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/command-blocker/internal/engine/lighting"
	"github.com/Faultbox/command-blocker/internal/engine/scene/shaders"
	"github.com/Faultbox/command-blocker/internal/engine/scenegraph"
	"github.com/Faultbox/command-blocker/internal/engine/shader"
)

// gpuMesh is one uploaded geometry.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// MeshRenderer draws scene graph nodes. Geometry is uploaded on first sight
// and shared between nodes that reference the same *Geometry.
type MeshRenderer struct {
	program *shader.Program
	meshes  map[*scenegraph.Geometry]*gpuMesh
}

// NewMeshRenderer compiles the mesh shader.
func NewMeshRenderer() (*MeshRenderer, error) {
	program, err := shader.New(
		shaders.Define(shaders.MeshVertex, "MAX_POINT_LIGHTS", lighting.MaxPointLights),
		shaders.Define(shaders.MeshFragment, "MAX_POINT_LIGHTS", lighting.MaxPointLights),
	)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	return &MeshRenderer{
		program: program,
		meshes:  make(map[*scenegraph.Geometry]*gpuMesh),
	}, nil
}

func (mr *MeshRenderer) upload(g *scenegraph.Geometry) *gpuMesh {
	if m, ok := mr.meshes[g]; ok {
		return m
	}
	m := &gpuMesh{indexCount: int32(len(g.Indices))}
	mr.meshes[g] = m
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(scenegraph.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*vertexSize, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Render draws every visible node under root that carries geometry.
func (mr *MeshRenderer) Render(viewProj mgl32.Mat4, rig *lighting.Rig, root *scenegraph.Node) {
	if root == nil {
		return
	}

	mr.program.Use()
	mr.program.SetMat4("uViewProj", viewProj)
	setLighting(mr.program, rig)

	root.Walk(func(n *scenegraph.Node, world mgl32.Mat4) {
		if n.Geometry == nil {
			return
		}
		m := mr.upload(n.Geometry)
		if m.vao == 0 {
			return
		}
		mr.program.SetMat4("uModel", world)
		mr.program.SetVec3("uColor", n.Color)
		mr.program.SetVec3("uEmission", n.Emission)

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	})
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (mr *MeshRenderer) Destroy() {
	for g, m := range mr.meshes {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
		delete(mr.meshes, g)
	}
	mr.program.Delete()
}
