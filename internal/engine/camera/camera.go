// Package camera provides the perspective projection and the camera rigs
// that look over the landscape.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Rig places the camera in the world.
type Rig interface {
	Position() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
	LookAt(target mgl32.Vec3)
	ViewMatrix() mgl32.Mat4
	// Update advances any time-driven motion by dt seconds.
	Update(dt float32)
}

// Projection is a perspective projection.
type Projection struct {
	FOV    float32 // Vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewProjection creates a projection for a viewport of width x height pixels.
func NewProjection(fov, near, far float32, width, height int) Projection {
	p := Projection{FOV: fov, Near: near, Far: far}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio. A zero height keeps it at 1.
func (p *Projection) SetViewport(width, height int) {
	if height <= 0 || width <= 0 {
		p.Aspect = 1
		return
	}
	p.Aspect = float32(width) / float32(height)
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}

// OrbitRig orbits around a target point.
type OrbitRig struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // Vertical angle above the target (radians)
	Yaw      float32 // Horizontal angle (radians), 0 looks along -Z

	// YawSpeed turns the rig around the target, in radians per second.
	YawSpeed float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32
}

// NewOrbitRig creates an orbit rig at position looking at target.
func NewOrbitRig(position, target mgl32.Vec3) *OrbitRig {
	r := &OrbitRig{
		Target:      target,
		MinDistance: 1,
		MaxDistance: 100000,
		MinPitch:    -1.5,
		MaxPitch:    1.5,
	}
	r.SetPosition(position)
	return r
}

// Position returns the camera position in world space.
func (r *OrbitRig) Position() mgl32.Vec3 {
	cosPitch := float32(math.Cos(float64(r.Pitch)))
	offset := mgl32.Vec3{
		r.Distance * cosPitch * float32(math.Sin(float64(r.Yaw))),
		r.Distance * float32(math.Sin(float64(r.Pitch))),
		r.Distance * cosPitch * float32(math.Cos(float64(r.Yaw))),
	}
	return r.Target.Add(offset)
}

// SetPosition moves the camera, keeping the target.
func (r *OrbitRig) SetPosition(pos mgl32.Vec3) {
	offset := pos.Sub(r.Target)
	r.Distance = clamp(offset.Len(), r.MinDistance, r.MaxDistance)
	if offset.Len() == 0 {
		return
	}
	r.Pitch = clamp(float32(math.Asin(float64(offset.Y()/offset.Len()))), r.MinPitch, r.MaxPitch)
	r.Yaw = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
}

// LookAt retargets the orbit, keeping the camera where it is.
func (r *OrbitRig) LookAt(target mgl32.Vec3) {
	pos := r.Position()
	r.Target = target
	r.SetPosition(pos)
}

// ViewMatrix returns the view matrix for this camera.
func (r *OrbitRig) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(r.Position(), r.Target, worldUp)
}

// Update advances the automatic orbit.
func (r *OrbitRig) Update(dt float32) {
	r.Yaw = wrapAngle(r.Yaw + r.YawSpeed*dt)
}

// FitToBounds centres the orbit on a bounding sphere and backs off far enough
// to see all of it.
func (r *OrbitRig) FitToBounds(center mgl32.Vec3, radius, fov float32) {
	r.Target = center
	half := mgl32.DegToRad(fov) / 2
	r.Distance = clamp(radius/float32(math.Sin(float64(half))), r.MinDistance, r.MaxDistance)
	r.Pitch = clamp(0.6, r.MinPitch, r.MaxPitch) // ~35 degrees down
}

// FirstPersonRig is a free camera with a position and a heading.
type FirstPersonRig struct {
	Pos   mgl32.Vec3
	Yaw   float32 // Radians, 0 looks along -Z
	Pitch float32 // Radians, positive looks up
}

// maxPitch keeps the view direction off the poles where the up vector degenerates.
const maxPitch = 89 * math.Pi / 180

// NewFirstPersonRig creates a first-person rig at position looking at target.
func NewFirstPersonRig(position, target mgl32.Vec3) *FirstPersonRig {
	r := &FirstPersonRig{Pos: position}
	r.LookAt(target)
	return r
}

// Position returns the camera position.
func (r *FirstPersonRig) Position() mgl32.Vec3 { return r.Pos }

// SetPosition moves the camera, keeping its heading.
func (r *FirstPersonRig) SetPosition(pos mgl32.Vec3) { r.Pos = pos }

// Forward returns the unit view direction.
func (r *FirstPersonRig) Forward() mgl32.Vec3 {
	cosPitch := float32(math.Cos(float64(r.Pitch)))
	return mgl32.Vec3{
		cosPitch * float32(math.Sin(float64(r.Yaw))),
		float32(math.Sin(float64(r.Pitch))),
		-cosPitch * float32(math.Cos(float64(r.Yaw))),
	}
}

// LookAt turns the camera towards target.
func (r *FirstPersonRig) LookAt(target mgl32.Vec3) {
	dir := target.Sub(r.Pos)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	r.Pitch = clamp(float32(math.Asin(float64(dir.Y()))), -maxPitch, maxPitch)
	r.Yaw = float32(math.Atan2(float64(dir.X()), float64(-dir.Z())))
}

// ViewMatrix returns the view matrix for this camera.
func (r *FirstPersonRig) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(r.Pos, r.Pos.Add(r.Forward()), worldUp)
}

// Update is a no-op; the first-person rig only moves when told to.
func (r *FirstPersonRig) Update(float32) {}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	for a > math.Pi {
		a -= twoPi
	}
	for a < -math.Pi {
		a += twoPi
	}
	return a
}
