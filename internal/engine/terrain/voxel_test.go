package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func mustGrid(t *testing.T, width, depth int, heights ...int) *HeightGrid {
	t.Helper()
	g, err := NewHeightGrid(width, depth, heights)
	if err != nil {
		t.Fatalf("NewHeightGrid: %v", err)
	}
	return g
}

func TestVoxelizeSideFacesAlongX(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		wantX   int // +x and -x faces
		wantAll int
	}{
		// A three-unit cliff shows on both sides.
		{"cliff", []int{0, 3}, 4, 10},
		// A one-unit step is flush from the lower side only.
		{"step", []int{2, 3}, 3, 9},
		{"level", []int{5, 5}, 2, 8},
		// Lower neighbour two units down is a cliff from both sides.
		{"drop", []int{3, 1}, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faces := Voxelize(mustGrid(t, 2, 1, tt.heights...), 1)
			counts := CountByDirection(faces)

			if got := counts[PosX] + counts[NegX]; got != tt.wantX {
				t.Errorf("x-axis side faces: got %d, want %d", got, tt.wantX)
			}
			// Depth 1 puts every cell on both z edges.
			if counts[PosZ] != 2 || counts[NegZ] != 2 {
				t.Errorf("z-axis side faces: got +z=%d -z=%d, want 2 each", counts[PosZ], counts[NegZ])
			}
			if counts[Top] != 2 {
				t.Errorf("top faces: got %d, want 2", counts[Top])
			}
			if len(faces) != tt.wantAll {
				t.Errorf("total faces: got %d, want %d", len(faces), tt.wantAll)
			}
		})
	}
}

func TestVoxelizeStepVisibleFromHigherSide(t *testing.T) {
	faces := Voxelize(mustGrid(t, 2, 1, 2, 3), 1)

	var lowPosX, highNegX bool
	for _, f := range faces {
		switch {
		case f.Dir == PosX && f.Translation.Y() == 2:
			lowPosX = true
		case f.Dir == NegX && f.Translation.Y() == 3:
			highNegX = true
		}
	}
	if lowPosX {
		t.Error("lower cell emitted +x face towards a neighbour one unit taller")
	}
	if !highNegX {
		t.Error("taller cell did not emit -x face towards the lower neighbour")
	}
}

func TestVoxelizeSideFacesAlongZ(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		wantZ   int // +z and -z faces
		wantAll int
	}{
		{"cliff", []int{0, 3}, 4, 10},
		{"step", []int{2, 3}, 3, 9},
		{"level", []int{5, 5}, 2, 8},
		{"drop", []int{3, 1}, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faces := Voxelize(mustGrid(t, 1, 2, tt.heights...), 1)
			counts := CountByDirection(faces)

			if got := counts[PosZ] + counts[NegZ]; got != tt.wantZ {
				t.Errorf("z-axis side faces: got %d, want %d", got, tt.wantZ)
			}
			// Width 1 puts every cell on both x edges.
			if counts[PosX] != 2 || counts[NegX] != 2 {
				t.Errorf("x-axis side faces: got +x=%d -x=%d, want 2 each", counts[PosX], counts[NegX])
			}
			if len(faces) != tt.wantAll {
				t.Errorf("total faces: got %d, want %d", len(faces), tt.wantAll)
			}
		})
	}
}

func TestVoxelizeStepAlongZ(t *testing.T) {
	faces := Voxelize(mustGrid(t, 1, 2, 2, 3), 1)

	var lowPosZ, highNegZ bool
	for _, f := range faces {
		switch {
		case f.Dir == PosZ && f.Translation.Y() == 2:
			lowPosZ = true
		case f.Dir == NegZ && f.Translation.Y() == 3:
			highNegZ = true
		}
	}
	if lowPosZ {
		t.Error("lower cell emitted +z face towards a neighbour one unit taller")
	}
	if !highNegZ {
		t.Error("taller cell did not emit -z face towards the lower neighbour")
	}
}

func TestVoxelizeInteriorPit(t *testing.T) {
	tests := []struct {
		name      string
		centre    int
		wantSides int // faces per side direction
	}{
		// The pit walls face inwards and the centre faces outwards.
		{"deep", 0, 5},
		// One unit down: the rim shows its walls, the centre stays flush.
		{"shallow", 1, 4},
		{"level", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 3, 3,
				2, 2, 2,
				2, tt.centre, 2,
				2, 2, 2)
			counts := CountByDirection(Voxelize(g, 1))

			want := [NumDirections]int{Top: 9, PosX: tt.wantSides, NegX: tt.wantSides, PosZ: tt.wantSides, NegZ: tt.wantSides}
			if counts != want {
				t.Errorf("got %v, want %v", counts, want)
			}
		})
	}
}

func TestVoxelizeFlatGrid(t *testing.T) {
	g := mustGrid(t, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	counts := CountByDirection(Voxelize(g, 1))

	want := [NumDirections]int{Top: 9, PosX: 3, NegX: 3, PosZ: 3, NegZ: 3}
	if counts != want {
		t.Errorf("got %v, want %v", counts, want)
	}
}

func TestVoxelizeTopFacePerCell(t *testing.T) {
	g := mustGrid(t, 4, 3, 0, 5, -2, 1, 7, 7, 3, 0, -1, 2, 2, 9)
	counts := CountByDirection(Voxelize(g, 2))
	if counts[Top] != 12 {
		t.Errorf("top faces: got %d, want 12", counts[Top])
	}
}

func TestVoxelizeTranslations(t *testing.T) {
	faces := Voxelize(mustGrid(t, 2, 1, 0, 3), 4)

	want := map[float32]mgl32.Vec3{
		0:  {-4, 0, -2},
		12: {0, 12, -2},
	}
	for _, f := range faces {
		if f.Dir != Top {
			continue
		}
		w, ok := want[f.Translation.Y()]
		if !ok {
			t.Fatalf("unexpected top translation %v", f.Translation)
		}
		if f.Translation != w {
			t.Errorf("translation: got %v, want %v", f.Translation, w)
		}
	}
}

func TestVoxelizeNegativeHeights(t *testing.T) {
	faces := Voxelize(mustGrid(t, 1, 1, -3), 2)
	if len(faces) != 5 {
		t.Fatalf("faces: got %d, want 5", len(faces))
	}
	if y := faces[0].Translation.Y(); y != -6 {
		t.Errorf("y: got %v, want -6", y)
	}
}

func TestVoxelizeOrder(t *testing.T) {
	faces := Voxelize(mustGrid(t, 1, 1, 0), 1)
	want := []Direction{Top, PosX, NegX, PosZ, NegZ}
	if len(faces) != len(want) {
		t.Fatalf("faces: got %d, want %d", len(faces), len(want))
	}
	for i, f := range faces {
		if f.Dir != want[i] {
			t.Errorf("face %d: got %v, want %v", i, f.Dir, want[i])
		}
	}

	// Row by row: all of z=0 before z=1.
	faces = Voxelize(mustGrid(t, 2, 2, 0, 0, 0, 0), 1)
	lastZ := float32(-1e9)
	for _, f := range faces {
		if z := f.Translation.Z(); z < lastZ {
			t.Fatalf("z went backwards: %v after %v", z, lastZ)
		}
		lastZ = f.Translation.Z()
	}
}

func TestVoxelizeIdempotent(t *testing.T) {
	g := mustGrid(t, 3, 2, 1, 4, 2, 0, 0, 9)
	a := Voxelize(g, 3)
	b := Voxelize(g, 3)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("face %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dz int
		name   string
	}{
		{Top, 0, 0, "+y"},
		{PosX, 1, 0, "+x"},
		{NegX, -1, 0, "-x"},
		{PosZ, 0, 1, "+z"},
		{NegZ, 0, -1, "-z"},
	}
	for _, tt := range tests {
		dx, dz := tt.dir.Offset()
		if dx != tt.dx || dz != tt.dz {
			t.Errorf("%v.Offset() = (%d, %d), want (%d, %d)", tt.dir, dx, dz, tt.dx, tt.dz)
		}
		if tt.dir.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.dir.String(), tt.name)
		}
	}
}
