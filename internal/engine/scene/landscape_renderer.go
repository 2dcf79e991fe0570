package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/command-blocker/internal/engine/lighting"
	"github.com/Faultbox/command-blocker/internal/engine/scene/shaders"
	"github.com/Faultbox/command-blocker/internal/engine/shader"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/engine/texture"
)

// LandscapeRenderer draws the merged landscape mesh with the block atlas.
type LandscapeRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	atlas      uint32

	// Bounds of the uploaded mesh
	Bounds terrain.Bounds
}

// NewLandscapeRenderer compiles the landscape shader.
func NewLandscapeRenderer() (*LandscapeRenderer, error) {
	program, err := shader.New(
		shaders.Define(shaders.LandscapeVertex, "MAX_POINT_LIGHTS", lighting.MaxPointLights),
		shaders.Define(shaders.LandscapeFragment, "MAX_POINT_LIGHTS", lighting.MaxPointLights),
	)
	if err != nil {
		return nil, fmt.Errorf("landscape shader: %w", err)
	}
	return &LandscapeRenderer{program: program}, nil
}

// Load uploads mesh and the atlas, replacing anything loaded before.
func (lr *LandscapeRenderer) Load(mesh *terrain.Mesh, atlas *image.RGBA) {
	lr.clear()
	lr.Bounds = mesh.Bounds
	lr.atlas = uploadAtlas(atlas)
	lr.uploadMesh(mesh.Vertices, mesh.Indices)
}

// uploadAtlas uploads the atlas bottom row first with nearest filtering so
// block texels stay sharp.
func uploadAtlas(img *image.RGBA) uint32 {
	flipped := texture.FlipVertical(img)

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(flipped.Bounds().Dx()), int32(flipped.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&flipped.Pix[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return texID
}

func (lr *LandscapeRenderer) uploadMesh(vertices []terrain.Vertex, indices []uint32) {
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &lr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, lr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	lr.indexCount = int32(len(indices))
}

// Render draws the landscape.
func (lr *LandscapeRenderer) Render(viewProj mgl32.Mat4, rig *lighting.Rig) {
	if lr.vao == 0 {
		return
	}

	lr.program.Use()
	lr.program.SetMat4("uViewProj", viewProj)
	setLighting(lr.program, rig)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, lr.atlas)
	lr.program.SetInt("uAtlas", 0)

	gl.BindVertexArray(lr.vao)
	gl.DrawElements(gl.TRIANGLES, lr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (lr *LandscapeRenderer) clear() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	if lr.ebo != 0 {
		gl.DeleteBuffers(1, &lr.ebo)
		lr.ebo = 0
	}
	if lr.atlas != 0 {
		gl.DeleteTextures(1, &lr.atlas)
		lr.atlas = 0
	}
	lr.indexCount = 0
}

// Destroy releases all resources.
func (lr *LandscapeRenderer) Destroy() {
	lr.clear()
	lr.program.Delete()
}

// setLighting uploads the light rig uniforms shared by both shaders.
func setLighting(p *shader.Program, rig *lighting.Rig) {
	p.SetVec3("uAmbient", rig.Ambient)
	p.SetVec3("uLightDir", rig.Directional.Direction)
	p.SetVec3("uLightColor", rig.Directional.Color.Mul(rig.Directional.Intensity))

	u := rig.Points.Uniforms()
	p.SetInt("uPointLightCount", u.Count)
	p.SetVec3Array("uPointLightPositions", u.Positions[:])
	p.SetVec3Array("uPointLightColors", u.Colors[:])
	p.SetFloatArray("uPointLightRanges", u.Ranges[:])
	p.SetFloatArray("uPointLightIntensities", u.Intensities[:])
}
