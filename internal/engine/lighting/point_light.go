package lighting

import "github.com/go-gl/mathgl/mgl32"

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  mgl32.Vec3 // World position
	Color     mgl32.Vec3 // RGB color (0-1 range)
	Range     float32    // Falloff distance, 0 means no falloff
	Intensity float32    // Light intensity multiplier
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *PointLightBuffer) Count() int { return len(b.Lights) }

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// PointLightUniforms is the buffer flattened into fixed-size uniform arrays.
// Unused slots are zero.
type PointLightUniforms struct {
	Count       int32
	Positions   [MaxPointLights * 3]float32
	Colors      [MaxPointLights * 3]float32
	Ranges      [MaxPointLights]float32
	Intensities [MaxPointLights]float32
}

// Uniforms flattens the buffer for glUniform*v upload.
func (b *PointLightBuffer) Uniforms() PointLightUniforms {
	var u PointLightUniforms
	u.Count = int32(len(b.Lights))
	for i, l := range b.Lights {
		copy(u.Positions[i*3:], l.Position[:])
		copy(u.Colors[i*3:], l.Color[:])
		u.Ranges[i] = l.Range
		u.Intensities[i] = l.Intensity
	}
	return u
}
