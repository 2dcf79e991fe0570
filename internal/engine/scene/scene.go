// Package scene is the OpenGL render system: it draws the landscape mesh and
// the scene graph under one light rig.
package scene

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/engine/lighting"
	"github.com/Faultbox/command-blocker/internal/engine/scenegraph"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/logger"
)

// Scene manages the landscape and mesh renderers. It must be created after
// the OpenGL context.
type Scene struct {
	Lights *lighting.Rig

	landscape *LandscapeRenderer
	meshes    *MeshRenderer
	log       *zap.Logger
}

// New creates the renderers.
func New(lights *lighting.Rig) (*Scene, error) {
	s := &Scene{
		Lights: lights,
		log:    logger.Named("scene"),
	}

	var err error
	s.landscape, err = NewLandscapeRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating landscape renderer: %w", err)
	}

	s.meshes, err = NewMeshRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating mesh renderer: %w", err)
	}

	return s, nil
}

// LoadLandscape uploads the merged landscape mesh and its atlas.
func (s *Scene) LoadLandscape(mesh *terrain.Mesh, atlas *image.RGBA) error {
	if mesh == nil {
		return errors.New("nil landscape mesh")
	}
	if atlas == nil || len(atlas.Pix) == 0 {
		return errors.New("empty atlas")
	}
	s.landscape.Load(mesh, atlas)
	s.log.Info("landscape uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
		zap.Int("atlas_width", atlas.Bounds().Dx()),
	)
	return nil
}

// SetSunPosition moves the sun point light.
func (s *Scene) SetSunPosition(pos mgl32.Vec3) {
	s.Lights.SetSunPosition(pos)
}

// Render draws the landscape, then every visible mesh under root.
func (s *Scene) Render(view, projection mgl32.Mat4, root *scenegraph.Node) {
	viewProj := projection.Mul4(view)
	s.landscape.Render(viewProj, s.Lights)
	s.meshes.Render(viewProj, s.Lights, root)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.landscape != nil {
		s.landscape.Destroy()
		s.landscape = nil
	}
	if s.meshes != nil {
		s.meshes.Destroy()
		s.meshes = nil
	}
}
