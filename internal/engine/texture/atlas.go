// Package texture decodes and prepares the block atlas the landscape is
// textured with.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder registration
	"io"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
)

// LoadAtlas reads and decodes an atlas image from disk.
func LoadAtlas(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read atlas: %w", err)
	}
	return DecodeAtlas(bytes.NewReader(data))
}

// DecodeAtlas decodes a PNG or BMP atlas and converts it to RGBA with
// power-of-two dimensions.
func DecodeAtlas(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode atlas: empty %s image", format)
	}
	return PowerOfTwo(ImageToRGBA(img)), nil
}

// ImageToRGBA converts any image.Image to *image.RGBA anchored at (0, 0).
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// PowerOfTwo rescales img up to the next power-of-two size with
// nearest-neighbour sampling, keeping texels sharp. Images that already
// qualify are returned as is.
func PowerOfTwo(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pw, ph := nextPowerOfTwo(w), nextPowerOfTwo(h)
	if pw == w && ph == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// FlipVertical returns a copy of img upside down. GL expects the bottom row
// first; atlas V coordinates count from the bottom.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dstY := b.Dy() - 1 - y
		copy(out.Pix[dstY*out.Stride:dstY*out.Stride+rowLen], src)
	}
	return out
}

// Fallback colors for the generated atlas.
var (
	grassTop  = color.RGBA{R: 96, G: 160, B: 64, A: 255}
	grassEdge = color.RGBA{R: 80, G: 136, B: 52, A: 255}
	dirt      = color.RGBA{R: 134, G: 96, B: 67, A: 255}
	dirtDark  = color.RGBA{R: 110, G: 78, B: 54, A: 255}
)

// Fallback generates a size x size atlas used when no atlas file is
// available: a checkered grass top in the upper half and dirt sides in the
// lower half.
func Fallback(size int) *image.RGBA {
	size = max(nextPowerOfTwo(size), 4)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/8, 1)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			checker := (x/cell+y/cell)%2 == 0
			var c color.RGBA
			switch {
			case y < size/2 && checker:
				c = grassTop
			case y < size/2:
				c = grassEdge
			case checker:
				c = dirt
			default:
				c = dirtDark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
