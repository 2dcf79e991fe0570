package states

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/config"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/engine/texture"
	"github.com/Faultbox/command-blocker/internal/game/world"
	"github.com/Faultbox/command-blocker/internal/logger"
)

// fallbackAtlasSize is the edge of the generated atlas used when the file is missing.
const fallbackAtlasSize = 64

// Loading phases, one per frame so the window stays responsive.
const (
	PhaseGenerate = "generate"
	PhaseMesh     = "mesh"
	PhaseAtlas    = "atlas"
	PhaseUpload   = "upload"
	PhaseWorld    = "world"
	PhaseDone     = "done"
)

var loadingPhases = []string{PhaseGenerate, PhaseMesh, PhaseAtlas, PhaseUpload, PhaseWorld}

// LoadingState generates the landscape and uploads it before the sandbox starts.
type LoadingState struct {
	cfg      *config.Config
	renderer SceneRenderer
	manager  *Manager

	// Loading progress
	Phase    string
	Progress float32 // 0.0 to 1.0

	land  *terrain.Landscape
	mesh  *terrain.Mesh
	atlas *image.RGBA
	world *world.World

	step      int
	startTime time.Time
	log       *zap.Logger
}

// NewLoadingState creates a new loading state.
func NewLoadingState(cfg *config.Config, renderer SceneRenderer, manager *Manager) *LoadingState {
	return &LoadingState{
		cfg:      cfg,
		renderer: renderer,
		manager:  manager,
		Phase:    PhaseGenerate,
		log:      logger.Named("loading"),
	}
}

// Enter is called when entering this state.
func (s *LoadingState) Enter() error {
	s.startTime = time.Now()
	s.step = 0
	s.Progress = 0
	s.Phase = loadingPhases[0]
	s.log.Info("entering LoadingState",
		zap.Int("width", s.cfg.Landscape.Width),
		zap.Int("depth", s.cfg.Landscape.Depth),
		zap.String("noise", s.cfg.Landscape.Noise))
	return nil
}

// Exit is called when leaving this state.
func (s *LoadingState) Exit() error {
	return nil
}

// Update runs one loading phase.
func (s *LoadingState) Update(dt float64) error {
	if s.step >= len(loadingPhases) {
		return nil
	}

	if err := s.run(loadingPhases[s.step]); err != nil {
		return fmt.Errorf("loading %s: %w", loadingPhases[s.step], err)
	}

	s.step++
	s.Progress = float32(s.step) / float32(len(loadingPhases))
	if s.step < len(loadingPhases) {
		s.Phase = loadingPhases[s.step]
		return nil
	}

	s.Phase = PhaseDone
	s.log.Info("landscape ready",
		zap.Int("faces", s.mesh.FaceCount()),
		zap.Duration("elapsed", time.Since(s.startTime)))
	s.manager.Change(NewSandboxState(s.cfg, s.world, s.renderer))
	return nil
}

func (s *LoadingState) run(phase string) error {
	switch phase {
	case PhaseGenerate:
		land, err := terrain.NewLandscape(LandscapeOptions(s.cfg.Landscape))
		if err != nil {
			return err
		}
		s.land = land
	case PhaseMesh:
		s.mesh = s.land.Mesh()
	case PhaseAtlas:
		atlas, err := texture.LoadAtlas(s.cfg.Assets.AtlasPath)
		if err != nil {
			s.log.Warn("atlas not loaded, using generated fallback",
				zap.String("path", s.cfg.Assets.AtlasPath), zap.Error(err))
			atlas = texture.Fallback(fallbackAtlasSize)
		}
		s.atlas = atlas
	case PhaseUpload:
		return s.renderer.LoadLandscape(s.mesh, s.atlas)
	case PhaseWorld:
		s.world = world.New(s.land, WorldOptions(s.cfg.Scene))
	}
	return nil
}

// Render draws nothing while loading; the window shows the clear color.
func (s *LoadingState) Render() error {
	return nil
}

// Landscape returns the generated landscape, nil before the first phase completes.
func (s *LoadingState) Landscape() *terrain.Landscape {
	return s.land
}
