// Package game implements the main loop and wires the render system to the demo states.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/config"
	"github.com/Faultbox/command-blocker/internal/engine/debug"
	"github.com/Faultbox/command-blocker/internal/engine/input"
	"github.com/Faultbox/command-blocker/internal/engine/lighting"
	"github.com/Faultbox/command-blocker/internal/engine/renderer"
	"github.com/Faultbox/command-blocker/internal/engine/scene"
	"github.com/Faultbox/command-blocker/internal/engine/window"
	"github.com/Faultbox/command-blocker/internal/game/states"
	"github.com/Faultbox/command-blocker/internal/logger"
)

// Title is the window title.
const Title = "Command Blocker"

// Game is the main demo instance.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene
	input    *input.Input
	states   *states.Manager
	shots    *debug.ScreenshotCapture
	capture  bool
	log      *zap.Logger
}

// New opens the window and creates the render system for cfg.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("preset", cfg.Preset),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height))

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable can be larger than the window on high-DPI displays.
	width, height := g.window.DrawableSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: lighting.HexColor(cfg.Scene.Background),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene, err = scene.New(lighting.NewRig(states.LightingOptions(cfg.Lighting)))
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	g.input = input.New()
	g.shots = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "command-blocker")

	g.states = states.NewManager(width, height)
	g.states.Change(states.NewLoadingState(cfg, g.scene, g.states))

	g.log.Info("initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	var frameBudget time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Update current state
		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		g.renderer.Begin()
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if err := g.renderer.End(); err != nil {
			g.log.Warn("frame finished with GL error", zap.Error(err))
		}

		if g.capture {
			g.capture = false
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", time.Duration(dt*float64(time.Second))))
			g.window.SetTitle(fmt.Sprintf("%s - %d fps", Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.resize()
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F11:
				g.window.ToggleFullscreen()
				g.resize()
			case sdl.SCANCODE_F12:
				g.capture = true
			case sdl.SCANCODE_SPACE:
				if s, ok := g.states.Current().(*states.SandboxState); ok {
					s.TogglePause()
				}
			}
		}
	}
}

func (g *Game) screenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// resize follows the drawable size rather than the event's window size.
func (g *Game) resize() {
	width, height := g.window.DrawableSize()
	g.renderer.Resize(width, height)
	g.states.Resize(width, height)
	g.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
