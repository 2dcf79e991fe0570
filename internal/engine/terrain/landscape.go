package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/engine/noise"
	"github.com/Faultbox/command-blocker/internal/logger"
)

var (
	// ErrInvalidDimensions is returned for non-positive grid sizes or mismatched height data.
	ErrInvalidDimensions = errors.New("invalid landscape dimensions")
	// ErrInvalidCubeSize is returned for a non-positive cube size.
	ErrInvalidCubeSize = errors.New("invalid cube size")
	// ErrInvalidGeneration is returned for octave settings that cannot produce finite heights.
	ErrInvalidGeneration = errors.New("invalid generation options")
)

// Options configures a generated landscape.
type Options struct {
	Width    int
	Depth    int
	CubeSize float32
	Noise    string // noise.KindPerlin or noise.KindSimplex
	Generate GenerateOptions

	// Rand seeds the noise source and picks the seed coordinate.
	// Nil uses the process-wide random source, so every landscape differs.
	Rand *rand.Rand
}

// DefaultOptions returns the 70x50 landscape of 4-unit cubes.
func DefaultOptions() Options {
	return Options{
		Width:    70,
		Depth:    50,
		CubeSize: 4,
		Noise:    noise.KindPerlin,
		Generate: DefaultGenerateOptions(),
	}
}

// Landscape owns one heightfield and everything derived from it. It is the
// context object the scene and camera query instead of shared globals.
type Landscape struct {
	grid     *HeightGrid
	cubeSize float32
	mesh     *Mesh
	log      *zap.Logger
}

// NewLandscape generates a heightfield from noise.
func NewLandscape(opts Options) (*Landscape, error) {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opts.Width, opts.Depth)
	}
	if opts.CubeSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCubeSize, opts.CubeSize)
	}
	if err := opts.Generate.Validate(); err != nil {
		return nil, err
	}

	var seed int64
	var seedZ float64
	if opts.Rand != nil {
		seed = opts.Rand.Int64()
		seedZ = opts.Rand.Float64() * float64(opts.CubeSize)
	} else {
		seed = rand.Int64()
		seedZ = rand.Float64() * float64(opts.CubeSize)
	}

	src, err := noise.New(opts.Noise, seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	grid, err := Generate(src, opts.Width, opts.Depth, seedZ, opts.Generate)
	if err != nil {
		return nil, err
	}

	l := newLandscape(grid, opts.CubeSize)
	lo, hi := grid.MinMax()
	l.log.Info("heightfield generated",
		zap.Int("width", grid.Width()),
		zap.Int("depth", grid.Depth()),
		zap.String("noise", opts.Noise),
		zap.Float64("seed_z", seedZ),
		zap.Int("min_height", lo),
		zap.Int("max_height", hi),
		zap.Duration("took", time.Since(start)),
	)
	return l, nil
}

// NewLandscapeFromGrid wraps an existing grid.
func NewLandscapeFromGrid(grid *HeightGrid, cubeSize float32) (*Landscape, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	if cubeSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCubeSize, cubeSize)
	}
	return newLandscape(grid, cubeSize), nil
}

func newLandscape(grid *HeightGrid, cubeSize float32) *Landscape {
	return &Landscape{
		grid:     grid,
		cubeSize: cubeSize,
		log:      logger.Named("terrain"),
	}
}

// Grid returns the heightfield.
func (l *Landscape) Grid() *HeightGrid { return l.grid }

// CubeSize returns the voxel edge length in world units.
func (l *Landscape) CubeSize() float32 { return l.cubeSize }

// Width returns the grid width in cells.
func (l *Landscape) Width() int { return l.grid.Width() }

// Depth returns the grid depth in cells.
func (l *Landscape) Depth() int { return l.grid.Depth() }

// Height returns the cell height at (x, z); cells outside the grid read as 0.
func (l *Landscape) Height(x, z int) int {
	return l.grid.At(x, z)
}

// Faces voxelizes the grid.
func (l *Landscape) Faces() []Face {
	return Voxelize(l.grid, l.cubeSize)
}

// Mesh voxelizes and merges the landscape on first use and caches the result.
func (l *Landscape) Mesh() *Mesh {
	if l.mesh != nil {
		return l.mesh
	}

	start := time.Now()
	faces := l.Faces()
	l.mesh = Merge(faces, l.cubeSize)

	counts := CountByDirection(faces)
	l.log.Info("landscape mesh built",
		zap.Int("faces", len(faces)),
		zap.Int("top", counts[Top]),
		zap.Int("sides", len(faces)-counts[Top]),
		zap.Int("vertices", len(l.mesh.Vertices)),
		zap.Float32("radius", l.mesh.Sphere.Radius),
		zap.Duration("took", time.Since(start)),
	)
	return l.mesh
}

// FloorY returns the world Y of the top surface of cell (x, z).
func (l *Landscape) FloorY(x, z int) float32 {
	return float32(l.Height(x, z))*l.cubeSize + l.cubeSize/2
}

// CenterFloorY returns the floor height of the middle cell, where the
// character stands.
func (l *Landscape) CenterFloorY() float32 {
	return l.FloorY(l.Width()/2, l.Depth()/2)
}

// CellCenter returns the world X/Z of a cell's centre.
func (l *Landscape) CellCenter(x, z int) (float32, float32) {
	return (float32(x) - float32(l.Width())/2) * l.cubeSize,
		(float32(z) - float32(l.Depth())/2) * l.cubeSize
}

// CellAt returns the cell under a world position and whether it lies on the grid.
func (l *Landscape) CellAt(worldX, worldZ float32) (x, z int, ok bool) {
	x = int(math.Floor(float64(worldX/l.cubeSize+float32(l.Width())/2) + 0.5))
	z = int(math.Floor(float64(worldZ/l.cubeSize+float32(l.Depth())/2) + 0.5))
	return x, z, l.grid.InBounds(x, z)
}

// MinX returns the world X of the landscape's west edge.
func (l *Landscape) MinX() float32 {
	x, _ := l.CellCenter(0, 0)
	return x - l.cubeSize/2
}

// MaxX returns the world X of the landscape's east edge.
func (l *Landscape) MaxX() float32 {
	x, _ := l.CellCenter(l.Width()-1, 0)
	return x + l.cubeSize/2
}

// MinZ returns the world Z of the landscape's north edge.
func (l *Landscape) MinZ() float32 {
	_, z := l.CellCenter(0, 0)
	return z - l.cubeSize/2
}

// MaxZ returns the world Z of the landscape's south edge.
func (l *Landscape) MaxZ() float32 {
	_, z := l.CellCenter(0, l.Depth()-1)
	return z + l.cubeSize/2
}

// MinCameraY returns the lowest Y a camera may take above a world position:
// one cube above the floor of the cell beneath it. Positions off the grid
// use the nearest edge cell.
func (l *Landscape) MinCameraY(worldX, worldZ float32) float32 {
	x, z, _ := l.CellAt(worldX, worldZ)
	x = max(0, min(x, l.Width()-1))
	z = max(0, min(z, l.Depth()-1))
	return l.FloorY(x, z) + l.cubeSize
}
