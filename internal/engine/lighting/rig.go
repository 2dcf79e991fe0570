// Package lighting holds the demo's light rig: ambient fill, one directional
// light and point lights, ready for shader upload.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// HexColor converts a 24-bit 0xRRGGBB value to linear 0-1 RGB.
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(hex>>16&0xff) / 255,
		float32(hex>>8&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

// DirectionalLight shines from infinitely far away.
type DirectionalLight struct {
	Color     mgl32.Vec3
	Intensity float32
	// Direction points from the scene towards the light.
	Direction mgl32.Vec3
}

// Options describes a light rig in config terms.
type Options struct {
	AmbientColor         uint32
	DirectionalColor     uint32
	DirectionalIntensity float32
	DirectionalPosition  mgl32.Vec3 // Normalized into a direction
	SunColor             uint32
	SunIntensity         float32
}

// DefaultOptions returns the rig the landscape is lit with.
func DefaultOptions() Options {
	return Options{
		AmbientColor:         0xcccccc,
		DirectionalColor:     0xffffff,
		DirectionalIntensity: 2,
		DirectionalPosition:  mgl32.Vec3{1, 1000, 0.5},
		SunColor:             0xffffff,
		SunIntensity:         3,
	}
}

// Rig is the full set of scene lights.
type Rig struct {
	Ambient     mgl32.Vec3
	Directional DirectionalLight
	Sun         PointLight
	Points      *PointLightBuffer
}

// NewRig builds a rig from opts. The sun starts at the origin; move it with SetSunPosition.
func NewRig(opts Options) *Rig {
	dir := opts.DirectionalPosition
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 1, 0}
	}
	return &Rig{
		Ambient: HexColor(opts.AmbientColor),
		Directional: DirectionalLight{
			Color:     HexColor(opts.DirectionalColor),
			Intensity: opts.DirectionalIntensity,
			Direction: dir.Normalize(),
		},
		Sun: PointLight{
			Color:     HexColor(opts.SunColor),
			Intensity: opts.SunIntensity,
		},
		Points: NewPointLightBuffer(),
	}
}

// SetSunPosition moves the sun light and refreshes the point light buffer.
func (r *Rig) SetSunPosition(pos mgl32.Vec3) {
	r.Sun.Position = pos
	r.Points.Clear()
	if r.Sun.Intensity > 0 {
		r.Points.AddLight(r.Sun)
	}
}
