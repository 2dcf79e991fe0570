package states

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/command-blocker/internal/config"
	"github.com/Faultbox/command-blocker/internal/engine/camera"
	"github.com/Faultbox/command-blocker/internal/engine/lighting"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/game/world"
)

// LandscapeOptions maps the landscape section onto generator options. Every
// landscape built from them gets a fresh random seed.
func LandscapeOptions(c config.LandscapeConfig) terrain.Options {
	return terrain.Options{
		Width:    c.Width,
		Depth:    c.Depth,
		CubeSize: c.CubeSize,
		Noise:    c.Noise,
		Generate: terrain.GenerateOptions{
			Octaves:           c.Octaves,
			InitialQuality:    c.InitialQuality,
			QualityMultiplier: c.QualityMultiplier,
			HeightScale:       c.HeightScale,
		},
	}
}

// LightingOptions maps the lighting section onto a light rig.
func LightingOptions(c config.LightingConfig) lighting.Options {
	return lighting.Options{
		AmbientColor:         c.AmbientColor,
		DirectionalColor:     c.DirectionalColor,
		DirectionalIntensity: c.DirectionalIntensity,
		DirectionalPosition:  mgl32.Vec3(c.DirectionalPosition),
		SunColor:             c.SunColor,
		SunIntensity:         c.SunIntensity,
	}
}

// WorldOptions maps the scene toggles onto world decorations.
func WorldOptions(c config.SceneConfig) world.Options {
	return world.Options{
		Celestials:    c.Celestials,
		SpinningCubes: c.SpinningCubes,
	}
}

// NewRig builds the configured camera rig.
func NewRig(c config.CameraConfig) camera.Rig {
	pos := mgl32.Vec3(c.Position)
	target := mgl32.Vec3(c.Target)
	if c.Rig == config.RigFirstPerson {
		return camera.NewFirstPersonRig(pos, target)
	}
	r := camera.NewOrbitRig(pos, target)
	r.YawSpeed = c.OrbitSpeed
	return r
}
