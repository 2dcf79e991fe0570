package scenegraph

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// near reports whether a and b differ by less than tol.
func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) < float64(tol)
}

// nearVec reports whether a and b are less than tol apart.
func nearVec(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

// nearMat compares matrices element-wise with an absolute tolerance.
func nearMat(a, b mgl32.Mat4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func TestWorldPositionInheritsParents(t *testing.T) {
	root := NewNode("system")
	root.Position = mgl32.Vec3{0, 10, 0}
	orbit := NewNode("orbit")
	orbit.Position = mgl32.Vec3{10, 0, 0}
	root.Add(orbit)

	if got, want := orbit.WorldPosition(), (mgl32.Vec3{10, 10, 0}); !nearVec(got, want, eps) {
		t.Errorf("translated: got %v, want %v", got, want)
	}

	// A quarter turn about Y carries +X onto -Z.
	root.Rotation = mgl32.Vec3{0, math.Pi / 2, 0}
	if got, want := orbit.WorldPosition(), (mgl32.Vec3{0, 10, -10}); !nearVec(got, want, eps) {
		t.Errorf("rotated: got %v, want %v", got, want)
	}

	root.Rotation = mgl32.Vec3{}
	root.Scale = mgl32.Vec3{2, 2, 2}
	if got, want := orbit.WorldPosition(), (mgl32.Vec3{20, 10, 0}); !nearVec(got, want, eps) {
		t.Errorf("scaled: got %v, want %v", got, want)
	}
}

func TestLocalMatrixOrder(t *testing.T) {
	n := NewNode("n")
	n.Position = mgl32.Vec3{1, 2, 3}
	n.Scale = mgl32.Vec3{2, 2, 2}
	n.Rotation = mgl32.Vec3{0, math.Pi, 0}

	// Scale first, then rotate, then translate.
	got := n.LocalMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{-1, 2, 3}
	if !nearVec(got, want, eps) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddReparents(t *testing.T) {
	a, b, child := NewNode("a"), NewNode("b"), NewNode("child")
	a.Add(child)
	b.Add(child)

	if child.Parent() != b {
		t.Errorf("parent: got %v, want b", child.Parent().Name)
	}
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Errorf("children: a=%d b=%d, want 0 and 1", len(a.Children()), len(b.Children()))
	}
	if a.Remove(child) {
		t.Error("Remove reported success for a node that is not a child")
	}
	if !b.Remove(child) || child.Parent() != nil {
		t.Error("Remove did not detach the child")
	}
}

func TestWalkSkipsHidden(t *testing.T) {
	root := NewNode("root")
	visible := NewNode("visible")
	hidden := NewNode("hidden")
	hidden.Visible = false
	under := NewNode("under-hidden")
	root.Add(visible)
	root.Add(hidden)
	hidden.Add(under)

	var names []string
	root.Walk(func(n *Node, _ mgl32.Mat4) { names = append(names, n.Name) })

	want := []string{"root", "visible"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("visit %d: got %s, want %s", i, names[i], want[i])
		}
	}
}

func TestWalkMatchesWorldMatrix(t *testing.T) {
	root := NewNode("root")
	root.Position = mgl32.Vec3{0, 5, 0}
	root.Rotation = mgl32.Vec3{0.3, 0.7, 0}
	leaf := NewNode("leaf")
	leaf.Position = mgl32.Vec3{2, 0, 1}
	root.Add(leaf)

	root.Walk(func(n *Node, world mgl32.Mat4) {
		if !nearMat(world, n.WorldMatrix(), eps) {
			t.Errorf("%s: walk matrix %v differs from WorldMatrix %v", n.Name, world, n.WorldMatrix())
		}
	})
}

func TestFind(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.Add(mid)
	mid.Add(leaf)

	if root.Find("leaf") != leaf {
		t.Error("Find(leaf) did not return the leaf")
	}
	if root.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
}
