package terrain

import "fmt"

// HeightGrid is a dense width x depth field of integer cell heights, stored
// row-major (x + z*width). It is immutable once built.
type HeightGrid struct {
	width   int
	depth   int
	heights []int
}

// NewHeightGrid wraps heights as a grid. The slice is copied.
func NewHeightGrid(width, depth int, heights []int) (*HeightGrid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, depth)
	}
	if len(heights) != width*depth {
		return nil, fmt.Errorf("%w: %d heights for %dx%d grid", ErrInvalidDimensions, len(heights), width, depth)
	}
	g := &HeightGrid{
		width:   width,
		depth:   depth,
		heights: make([]int, len(heights)),
	}
	copy(g.heights, heights)
	return g, nil
}

// Width returns the number of cells along X.
func (g *HeightGrid) Width() int { return g.width }

// Depth returns the number of cells along Z.
func (g *HeightGrid) Depth() int { return g.depth }

// InBounds reports whether (x, z) is a cell of the grid.
func (g *HeightGrid) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < g.width && z < g.depth
}

// Lookup returns the height at (x, z) and whether the cell exists.
func (g *HeightGrid) Lookup(x, z int) (int, bool) {
	if !g.InBounds(x, z) {
		return 0, false
	}
	return g.heights[x+z*g.width], true
}

// At returns the height at (x, z), or 0 outside the grid.
func (g *HeightGrid) At(x, z int) int {
	h, _ := g.Lookup(x, z)
	return h
}

// MinMax returns the lowest and highest cell heights.
func (g *HeightGrid) MinMax() (lo, hi int) {
	lo, hi = g.heights[0], g.heights[0]
	for _, h := range g.heights[1:] {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return lo, hi
}

// Heights returns a copy of the row-major height values.
func (g *HeightGrid) Heights() []int {
	out := make([]int, len(g.heights))
	copy(out, g.heights)
	return out
}
