package terrain

import "github.com/go-gl/mathgl/mgl32"

// Face is one visible cube face: its direction and the world translation of
// the cube it belongs to.
type Face struct {
	Dir         Direction
	Translation mgl32.Vec3
}

// Voxelize turns grid into the visible faces of its height columns.
//
// Every cell emits its top face. A side face is emitted when the cell sits on
// the grid edge in that direction, or when the neighbour's height n satisfies
// n != h && n != h+1. A neighbour exactly one unit taller counts as a flush
// step from the lower side and hides the face; the taller cell still emits its
// face towards the lower one.
//
// Faces come out row by row (z, then x), and per cell in the order top, +x, -x, +z, -z.
func Voxelize(grid *HeightGrid, cubeSize float32) []Face {
	halfWidth := float32(grid.Width()) / 2
	halfDepth := float32(grid.Depth()) / 2

	faces := make([]Face, 0, grid.Width()*grid.Depth()*2)

	for z := 0; z < grid.Depth(); z++ {
		for x := 0; x < grid.Width(); x++ {
			h, _ := grid.Lookup(x, z)

			translation := mgl32.Vec3{
				float32(x)*cubeSize - halfWidth*cubeSize,
				float32(h) * cubeSize,
				float32(z)*cubeSize - halfDepth*cubeSize,
			}

			faces = append(faces, Face{Dir: Top, Translation: translation})

			for _, dir := range sideDirections {
				dx, dz := dir.Offset()
				n, ok := grid.Lookup(x+dx, z+dz)
				if !ok || (n != h && n != h+1) {
					faces = append(faces, Face{Dir: dir, Translation: translation})
				}
			}
		}
	}

	return faces
}

// CountByDirection tallies faces per direction.
func CountByDirection(faces []Face) [NumDirections]int {
	var counts [NumDirections]int
	for _, f := range faces {
		counts[f.Dir]++
	}
	return counts
}
