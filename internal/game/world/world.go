// Package world assembles the sandbox scene that stands on the landscape:
// the character anchor, the celestial system and the optional cube row.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/engine/lighting"
	"github.com/Faultbox/command-blocker/internal/engine/scenegraph"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/logger"
)

// Celestial system layout.
const (
	systemHeight     = 10 // Solar system height before it is lifted above the floor
	systemAboveFloor = 20
	sunScale         = 5
	earthOrbitRadius = 10
	moonOrbitRadius  = 2
	moonScale        = 0.5

	sphereRadius   = 1
	sphereSegments = 6

	characterSpin = 10 // Radians per second
)

// cubeRow is the z position and color of each spinning cube.
var cubeRow = []struct {
	z     float32
	color uint32
}{
	{-8, 0xa44a88},
	{-4, 0x4a48a8},
	{-2, 0xa4488a},
	{0, 0x44aa88},
	{2, 0x48a48a},
	{4, 0x48a48a},
	{8, 0xa8448a},
}

// Options toggles the decorations.
type Options struct {
	Celestials    bool
	SpinningCubes bool
}

// World is the animated scene graph standing on a landscape.
type World struct {
	Landscape *terrain.Landscape
	Root      *scenegraph.Node

	// Anchor marks where the character stands, on the centre cell's floor.
	Anchor *scenegraph.Node

	// System is the solar system root. Nil without celestials.
	System *scenegraph.Node
	// celestials rotate about Y each frame, each a little faster than the last.
	celestials []*scenegraph.Node

	Cubes []*scenegraph.Node

	elapsed float64
	log     *zap.Logger
}

// New builds the scene for land.
func New(land *terrain.Landscape, opts Options) *World {
	w := &World{
		Landscape: land,
		Root:      scenegraph.NewNode("world"),
		log:       logger.Named("world"),
	}

	// The anchor's origin is at the character's feet.
	w.Anchor = scenegraph.NewNode("character")
	body := scenegraph.NewMesh("character-body", scenegraph.Box(1, 2, 1), lighting.HexColor(0x8fbf6f))
	body.Position = mgl32.Vec3{0, 1, 0}
	w.Anchor.Add(body)
	w.Root.Add(w.Anchor)

	if opts.Celestials {
		w.buildCelestials()
	}
	if opts.SpinningCubes {
		w.buildCubes()
	}

	w.Animate(0)
	w.log.Debug("world built",
		zap.Bool("celestials", opts.Celestials),
		zap.Int("cubes", len(w.Cubes)),
		zap.Float32("floor", land.CenterFloorY()),
	)
	return w
}

func (w *World) buildCelestials() {
	sphere := scenegraph.UVSphere(sphereRadius, sphereSegments, sphereSegments)

	system := scenegraph.NewNode("solar-system")
	system.Position = mgl32.Vec3{0, systemHeight, 0}

	sun := scenegraph.NewMesh("sun", sphere, mgl32.Vec3{})
	sun.Emission = lighting.HexColor(0xffff00)
	sun.Scale = mgl32.Vec3{sunScale, sunScale, sunScale}

	earthOrbit := scenegraph.NewNode("earth-orbit")
	earthOrbit.Position = mgl32.Vec3{earthOrbitRadius, 0, 0}
	earth := scenegraph.NewMesh("earth", sphere, lighting.HexColor(0x2233ff))
	earth.Emission = lighting.HexColor(0x112244)

	moonOrbit := scenegraph.NewNode("moon-orbit")
	moonOrbit.Position = mgl32.Vec3{moonOrbitRadius, 0, 0}
	moon := scenegraph.NewMesh("moon", sphere, lighting.HexColor(0x888888))
	moon.Emission = lighting.HexColor(0x222222)
	moon.Scale = mgl32.Vec3{moonScale, moonScale, moonScale}

	system.Add(sun)
	system.Add(earthOrbit)
	earthOrbit.Add(earth)
	earthOrbit.Add(moonOrbit)
	moonOrbit.Add(moon)
	w.Root.Add(system)

	w.System = system
	w.celestials = []*scenegraph.Node{system, sun, earthOrbit, earth, moonOrbit, moon}
}

func (w *World) buildCubes() {
	box := scenegraph.Box(1, 1, 1)
	for _, c := range cubeRow {
		cube := scenegraph.NewMesh("cube", box, lighting.HexColor(c.color))
		cube.Position = mgl32.Vec3{0, 1, c.z}
		w.Root.Add(cube)
		w.Cubes = append(w.Cubes, cube)
	}
}

// Animate poses the scene for t seconds since start.
func (w *World) Animate(t float64) {
	w.elapsed = t
	floor := w.Landscape.CenterFloorY()

	w.Anchor.Position[1] = floor
	w.Anchor.Rotation[1] = float32(t * characterSpin)

	if w.System != nil {
		w.System.Position[1] = floor + systemAboveFloor
	}
	for i, n := range w.celestials {
		n.Rotation[1] = spin(t, i)
	}
	for i, n := range w.Cubes {
		rot := spin(t, i)
		n.Rotation[0] = rot
		n.Rotation[1] = rot
	}
}

// Advance moves the animation forward by dt seconds.
func (w *World) Advance(dt float64) {
	w.Animate(w.elapsed + dt)
}

// Elapsed returns the animation time in seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// SunPosition returns where the sun light sits: the centre of the celestial
// system, or above the character when there is none.
func (w *World) SunPosition() mgl32.Vec3 {
	if w.System != nil {
		return w.System.WorldPosition()
	}
	return w.Anchor.WorldPosition().Add(mgl32.Vec3{0, systemHeight + systemAboveFloor, 0})
}

// CameraTarget is the point the camera keeps looking at.
func (w *World) CameraTarget() mgl32.Vec3 {
	return w.Anchor.WorldPosition()
}

// spin is the Y angle of the i-th animated node at time t.
func spin(t float64, i int) float32 {
	return float32(t * (1 + float64(i)*0.1))
}
