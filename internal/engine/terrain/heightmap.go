package terrain

import (
	"fmt"
	"math"

	"github.com/Faultbox/command-blocker/internal/engine/noise"
)

// GenerateOptions controls the fractal sum that produces cell heights.
type GenerateOptions struct {
	Octaves           int     // Number of noise layers
	InitialQuality    float64 // Sample divisor and weight of the first layer
	QualityMultiplier float64 // Quality growth per layer
	HeightScale       float64 // Applied to the sum before truncation
}

// DefaultGenerateOptions returns four octaves at quality 2, 8, 32, 128 scaled by 0.25.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Octaves:           4,
		InitialQuality:    2,
		QualityMultiplier: 4,
		HeightScale:       0.25,
	}
}

// Validate rejects settings that would divide by zero or produce non-finite heights.
func (o GenerateOptions) Validate() error {
	switch {
	case o.Octaves <= 0:
		return fmt.Errorf("%w: octaves %d", ErrInvalidGeneration, o.Octaves)
	case !(o.InitialQuality > 0) || math.IsInf(o.InitialQuality, 0):
		return fmt.Errorf("%w: initial quality %v", ErrInvalidGeneration, o.InitialQuality)
	case !(o.QualityMultiplier > 0) || math.IsInf(o.QualityMultiplier, 0):
		return fmt.Errorf("%w: quality multiplier %v", ErrInvalidGeneration, o.QualityMultiplier)
	case math.IsNaN(o.HeightScale) || math.IsInf(o.HeightScale, 0):
		return fmt.Errorf("%w: height scale %v", ErrInvalidGeneration, o.HeightScale)
	}
	return nil
}

// NoiseField accumulates the octave sum for every cell, row-major.
// Each layer samples src at (x/quality, z/quality, seedZ) weighted by quality.
func NoiseField(src noise.Source, width, depth int, seedZ float64, opts GenerateOptions) []float64 {
	field := make([]float64, width*depth)

	quality := opts.InitialQuality
	for range opts.Octaves {
		for i := range field {
			x := float64(i % width)
			z := float64(i / width)
			field[i] += src.Noise3(x/quality, z/quality, seedZ) * quality
		}
		quality *= opts.QualityMultiplier
	}

	return field
}

// Generate builds a HeightGrid from src. Heights are the scaled octave sum
// truncated toward zero, so rough terrain can dip below zero.
func Generate(src noise.Source, width, depth int, seedZ float64, opts GenerateOptions) (*HeightGrid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, depth)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	field := NoiseField(src, width, depth, seedZ, opts)

	heights := make([]int, len(field))
	for i, v := range field {
		heights[i] = int(v * opts.HeightScale)
	}

	return NewHeightGrid(width, depth, heights)
}
