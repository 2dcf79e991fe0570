package states

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/config"
	"github.com/Faultbox/command-blocker/internal/engine/camera"
	"github.com/Faultbox/command-blocker/internal/engine/scenegraph"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/game/world"
	"github.com/Faultbox/command-blocker/internal/logger"
)

// SceneRenderer is the GPU side the states draw through. *scene.Scene implements it.
type SceneRenderer interface {
	LoadLandscape(mesh *terrain.Mesh, atlas *image.RGBA) error
	SetSunPosition(pos mgl32.Vec3)
	Render(view, projection mgl32.Mat4, root *scenegraph.Node)
}

// SandboxState animates the world and renders it through the configured camera rig.
type SandboxState struct {
	world      *world.World
	renderer   SceneRenderer
	rig        camera.Rig
	projection camera.Projection
	contain    bool
	paused     bool
	log        *zap.Logger
}

// NewSandboxState creates the sandbox for a built world. An orbit rig with no
// configured position is fitted to the landscape's bounding sphere.
func NewSandboxState(cfg *config.Config, w *world.World, renderer SceneRenderer) *SandboxState {
	rig := NewRig(cfg.Camera)
	if orbit, ok := rig.(*camera.OrbitRig); ok && cfg.Camera.Position == ([3]float32{}) {
		sphere := w.Landscape.Mesh().Sphere
		orbit.FitToBounds(sphere.Center, sphere.Radius, cfg.Camera.FOV)
	}
	return &SandboxState{
		world:    w,
		renderer: renderer,
		rig:      rig,
		projection: camera.NewProjection(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far,
			cfg.Graphics.Width, cfg.Graphics.Height),
		contain: cfg.Camera.Contain,
		log:     logger.Named("sandbox"),
	}
}

// Enter is called when entering this state.
func (s *SandboxState) Enter() error {
	pos := s.rig.Position()
	s.log.Info("entering SandboxState",
		zap.Float32s("camera", pos[:]),
		zap.Bool("contain", s.contain))
	s.follow()
	return nil
}

// Exit is called when leaving this state.
func (s *SandboxState) Exit() error {
	return nil
}

// Update advances the animation and keeps the camera on the character.
func (s *SandboxState) Update(dt float64) error {
	if !s.paused {
		s.world.Advance(dt)
		s.rig.Update(float32(dt))
	}
	s.follow()
	return nil
}

func (s *SandboxState) follow() {
	s.rig.LookAt(s.world.CameraTarget())
	if s.contain {
		camera.ContainRig(s.rig, s.world.Landscape)
	}
	s.renderer.SetSunPosition(s.world.SunPosition())
}

// Render draws the world from the rig.
func (s *SandboxState) Render() error {
	s.renderer.Render(s.rig.ViewMatrix(), s.projection.Matrix(), s.world.Root)
	return nil
}

// Resize updates the projection aspect ratio.
func (s *SandboxState) Resize(width, height int) {
	s.projection.SetViewport(width, height)
}

// TogglePause freezes or resumes the animation and the orbit.
func (s *SandboxState) TogglePause() {
	s.paused = !s.paused
	s.log.Debug("pause toggled", zap.Bool("paused", s.paused))
}

// Paused reports whether the animation is frozen.
func (s *SandboxState) Paused() bool {
	return s.paused
}

// Rig returns the camera rig.
func (s *SandboxState) Rig() camera.Rig {
	return s.rig
}

// World returns the animated world.
func (s *SandboxState) World() *world.World {
	return s.world
}
