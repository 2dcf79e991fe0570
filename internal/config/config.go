// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Camera rig names.
const (
	RigOrbit       = "orbit"
	RigFirstPerson = "first-person"
)

// Config holds all demo settings.
type Config struct {
	Preset    string          `yaml:"preset"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Landscape LandscapeConfig `yaml:"landscape"`
	Camera    CameraConfig    `yaml:"camera"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Scene     SceneConfig     `yaml:"scene"`
	Assets    AssetsConfig    `yaml:"assets"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here
}

// LandscapeConfig holds the heightmap and voxel settings.
type LandscapeConfig struct {
	Width             int     `yaml:"width"`              // Grid cells along X
	Depth             int     `yaml:"depth"`              // Grid cells along Z
	CubeSize          float32 `yaml:"cube_size"`          // World units per voxel edge
	HeightScale       float64 `yaml:"height_scale"`       // Applied to the noise sum before truncation
	Octaves           int     `yaml:"octaves"`
	InitialQuality    float64 `yaml:"initial_quality"`
	QualityMultiplier float64 `yaml:"quality_multiplier"`
	Noise             string  `yaml:"noise"` // "perlin" or "simplex"
}

// CameraConfig holds the perspective projection and rig placement.
type CameraConfig struct {
	Rig        string     `yaml:"rig"`
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	FOV        float32    `yaml:"fov"` // Degrees
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	OrbitSpeed float32    `yaml:"orbit_speed"` // Radians per second, orbit rig only
	Contain    bool       `yaml:"contain"`     // Clamp the camera to the landscape
}

// LightingConfig holds the light rig. Colors are 24-bit 0xRRGGBB values.
type LightingConfig struct {
	AmbientColor         uint32     `yaml:"ambient_color"`
	DirectionalColor     uint32     `yaml:"directional_color"`
	DirectionalIntensity float32    `yaml:"directional_intensity"`
	DirectionalPosition  [3]float32 `yaml:"directional_position"`
	SunColor             uint32     `yaml:"sun_color"`
	SunIntensity         float32    `yaml:"sun_intensity"`
}

// SceneConfig toggles the sandbox decorations.
type SceneConfig struct {
	Background    uint32 `yaml:"background"`
	Celestials    bool   `yaml:"celestials"`
	SpinningCubes bool   `yaml:"spinning_cubes"`
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	AtlasPath string `yaml:"atlas_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Default returns a Config with sensible default values (the "landscape" preset).
func Default() *Config {
	return &Config{
		Preset: PresetLandscape,
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Landscape: LandscapeConfig{
			Width:             70,
			Depth:             50,
			CubeSize:          4,
			HeightScale:       0.25,
			Octaves:           4,
			InitialQuality:    2,
			QualityMultiplier: 4,
			Noise:             "perlin",
		},
		Camera: CameraConfig{
			Rig:        RigOrbit,
			Position:   [3]float32{30, 44, 25},
			Target:     [3]float32{0, 2, 0},
			FOV:        60,
			Near:       1,
			Far:        50000,
			OrbitSpeed: 0.1,
			Contain:    true,
		},
		Lighting: LightingConfig{
			AmbientColor:         0xcccccc,
			DirectionalColor:     0xffffff,
			DirectionalIntensity: 2,
			DirectionalPosition:  [3]float32{1, 1000, 0.5},
			SunColor:             0xffffff,
			SunIntensity:         3,
		},
		Scene: SceneConfig{
			Background: 0xbfd1e2,
			Celestials: true,
		},
		Assets: AssetsConfig{
			AtlasPath: "textures/minecraft/atlas.png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the values the landscape and camera cannot work without.
func (c *Config) Validate() error {
	if c.Landscape.Width <= 0 || c.Landscape.Depth <= 0 {
		return fmt.Errorf("%w: landscape size %dx%d", ErrInvalid, c.Landscape.Width, c.Landscape.Depth)
	}
	if c.Landscape.CubeSize <= 0 {
		return fmt.Errorf("%w: cube size %v", ErrInvalid, c.Landscape.CubeSize)
	}
	if c.Landscape.Octaves <= 0 {
		return fmt.Errorf("%w: octaves %d", ErrInvalid, c.Landscape.Octaves)
	}
	if !(c.Landscape.InitialQuality > 0) || math.IsInf(c.Landscape.InitialQuality, 0) {
		return fmt.Errorf("%w: initial quality %v", ErrInvalid, c.Landscape.InitialQuality)
	}
	if !(c.Landscape.QualityMultiplier > 0) || math.IsInf(c.Landscape.QualityMultiplier, 0) {
		return fmt.Errorf("%w: quality multiplier %v", ErrInvalid, c.Landscape.QualityMultiplier)
	}
	if math.IsNaN(c.Landscape.HeightScale) || math.IsInf(c.Landscape.HeightScale, 0) {
		return fmt.Errorf("%w: height scale %v", ErrInvalid, c.Landscape.HeightScale)
	}
	if c.Camera.Rig != RigOrbit && c.Camera.Rig != RigFirstPerson {
		return fmt.Errorf("%w: camera rig %q", ErrInvalid, c.Camera.Rig)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	return nil
}
