package terrain

import (
	"errors"
	"testing"
)

// sourceFunc adapts a function to noise.Source.
type sourceFunc func(x, y, z float64) float64

func (f sourceFunc) Noise3(x, y, z float64) float64 { return f(x, y, z) }

func constSource(v float64) sourceFunc {
	return func(_, _, _ float64) float64 { return v }
}

func TestNoiseFieldOctaveWeights(t *testing.T) {
	field := NoiseField(constSource(1), 2, 2, 0, DefaultGenerateOptions())

	// Weights are the qualities 2, 8, 32, 128.
	for i, v := range field {
		if v != 170 {
			t.Errorf("cell %d: got %v, want 170", i, v)
		}
	}
}

func TestNoiseFieldSampleCoordinates(t *testing.T) {
	type sample struct{ x, y, z float64 }
	var samples []sample
	src := sourceFunc(func(x, y, z float64) float64 {
		samples = append(samples, sample{x, y, z})
		return 0
	})

	opts := DefaultGenerateOptions()
	NoiseField(src, 4, 2, 1.25, opts)

	if len(samples) != 4*2*opts.Octaves {
		t.Fatalf("samples: got %d, want %d", len(samples), 4*2*opts.Octaves)
	}

	// Cell (3, 1) is index 7 within each octave pass.
	wantDiv := []float64{2, 8, 32, 128}
	for octave, div := range wantDiv {
		s := samples[octave*8+7]
		if s.x != 3/div || s.y != 1/div || s.z != 1.25 {
			t.Errorf("octave %d: got (%v, %v, %v), want (%v, %v, 1.25)", octave, s.x, s.y, s.z, 3/div, 1/div)
		}
	}
}

func TestGenerateTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"positive", 1, 42},   // 170 * 0.25 = 42.5
		{"negative", -1, -42}, // -42.5 truncates up
		{"small", 0.02, 0},    // 0.85
		{"small negative", -0.02, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(constSource(tt.value), 3, 2, 0, DefaultGenerateOptions())
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			for _, h := range g.Heights() {
				if h != tt.want {
					t.Fatalf("got %d, want %d", h, tt.want)
				}
			}
		})
	}
}

func TestGenerateHeightScale(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.HeightScale = 0.2

	g, err := Generate(constSource(1), 1, 1, 0, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if h := g.At(0, 0); h != 34 {
		t.Errorf("got %d, want 34", h)
	}
}

func TestGenerateRejectsZeroQuality(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.InitialQuality = 0
	if _, err := Generate(constSource(1), 2, 2, 0, opts); !errors.Is(err, ErrInvalidGeneration) {
		t.Errorf("got %v, want ErrInvalidGeneration", err)
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	if _, err := Generate(constSource(0), 0, 5, 0, DefaultGenerateOptions()); err == nil {
		t.Error("expected error for zero width")
	}
}
