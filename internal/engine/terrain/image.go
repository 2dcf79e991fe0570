package terrain

import (
	"image"
	"image/color"
)

// Image renders the grid as a grayscale heightmap, one pixel per cell with X
// to the right and Z down. The lowest cell is black and the highest white.
func (g *HeightGrid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.depth))
	lo, hi := g.MinMax()
	span := hi - lo
	for z := 0; z < g.depth; z++ {
		for x := 0; x < g.width; x++ {
			var v uint8
			if span > 0 {
				v = uint8((g.heights[x+z*g.width] - lo) * 255 / span)
			}
			img.SetGray(x, z, color.Gray{Y: v})
		}
	}
	return img
}
