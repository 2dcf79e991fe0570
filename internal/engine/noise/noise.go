// Package noise provides the coherent noise sources the landscape generator samples.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source names accepted by New.
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// ErrUnknownSource is returned by New for an unrecognised source name.
var ErrUnknownSource = errors.New("unknown noise source")

// Source is a deterministic 3D coherent noise function returning values in roughly [-1, 1].
type Source interface {
	Noise3(x, y, z float64) float64
}

// New returns the named noise source seeded with seed.
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case KindPerlin, "":
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}

// Perlin is single-octave gradient noise. Octave accumulation is done by the
// terrain generator, so the library's own fractal sum is disabled (n = 1).
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin source.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Noise3 samples the noise at (x, y, z).
func (n *Perlin) Noise3(x, y, z float64) float64 {
	return n.p.Noise3D(x, y, z)
}

// Simplex is OpenSimplex noise.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates a Simplex source.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Noise3 samples the noise at (x, y, z).
func (n *Simplex) Noise3(x, y, z float64) float64 {
	return n.n.Eval3(x, y, z)
}
