package terrain

import (
	"errors"
	"testing"
)

func TestNewHeightGridErrors(t *testing.T) {
	tests := []struct {
		name         string
		width, depth int
		heights      []int
	}{
		{"zero width", 0, 2, nil},
		{"negative depth", 2, -1, nil},
		{"short data", 2, 2, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHeightGrid(tt.width, tt.depth, tt.heights)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestHeightGridLookup(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6}
	g := mustGrid(t, 3, 2, src...)
	src[0] = 99

	if h := g.At(0, 0); h != 1 {
		t.Errorf("At(0,0) = %d, want 1 (input slice must be copied)", h)
	}
	if h := g.At(2, 1); h != 6 {
		t.Errorf("At(2,1) = %d, want 6", h)
	}
	if h, ok := g.Lookup(3, 0); ok || h != 0 {
		t.Errorf("Lookup(3,0) = (%d, %v), want (0, false)", h, ok)
	}
	if h := g.At(-1, 0); h != 0 {
		t.Errorf("At(-1,0) = %d, want 0", h)
	}
	if lo, hi := g.MinMax(); lo != 1 || hi != 6 {
		t.Errorf("MinMax() = (%d, %d), want (1, 6)", lo, hi)
	}

	hs := g.Heights()
	hs[1] = -7
	if g.At(1, 0) != 2 {
		t.Error("Heights() must return a copy")
	}
}
