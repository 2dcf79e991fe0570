package terrain

import "testing"

func TestHeightGridImage(t *testing.T) {
	g := mustGrid(t, 3, 2,
		-2, 0, 2,
		1, 2, -2,
	)
	img := g.Image()

	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds: got %v, want 3x2", b)
	}
	tests := []struct {
		x, z int
		want uint8
	}{
		{0, 0, 0},
		{1, 0, 127},
		{2, 0, 255},
		{0, 1, 191},
		{2, 1, 0},
	}
	for _, tt := range tests {
		if got := img.GrayAt(tt.x, tt.z).Y; got != tt.want {
			t.Errorf("pixel (%d,%d): got %d, want %d", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestHeightGridImageFlat(t *testing.T) {
	img := mustGrid(t, 2, 1, 5, 5).Image()
	for x := 0; x < 2; x++ {
		if got := img.GrayAt(x, 0).Y; got != 0 {
			t.Errorf("pixel %d: got %d, want 0", x, got)
		}
	}
}
