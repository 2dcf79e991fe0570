// Package scenegraph is a minimal transform hierarchy: nodes with a
// position, XYZ Euler rotation and scale, optionally carrying geometry.
package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Node is one element of the hierarchy. A node without geometry only groups
// and transforms its children.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    mgl32.Vec3

	Geometry *Geometry
	Color    mgl32.Vec3 // Diffuse color
	Emission mgl32.Vec3 // Added regardless of lighting
	Visible  bool

	parent   *Node
	children []*Node
}

// NewNode creates a visible node with unit scale and white color.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   mgl32.Vec3{1, 1, 1},
		Color:   mgl32.Vec3{1, 1, 1},
		Visible: true,
	}
}

// NewMesh creates a node carrying geometry.
func NewMesh(name string, geom *Geometry, color mgl32.Vec3) *Node {
	n := NewNode(name)
	n.Geometry = geom
	n.Color = color
	return n
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child. It reports whether child was attached to n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the attached children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// LocalMatrix returns translation * rotation * scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(n.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(n.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	return mgl32.Translate3D(n.Position.Elem()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(n.Scale.Elem()))
}

// WorldMatrix returns the node's transform including all ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// Walk visits n and its visible descendants depth-first with their world
// matrices. Invisible nodes are skipped along with their subtrees.
func (n *Node) Walk(fn func(node *Node, world mgl32.Mat4)) {
	var parent mgl32.Mat4
	if n.parent != nil {
		parent = n.parent.WorldMatrix()
	} else {
		parent = mgl32.Ident4()
	}
	n.walk(parent, fn)
}

func (n *Node) walk(parent mgl32.Mat4, fn func(*Node, mgl32.Mat4)) {
	if !n.Visible {
		return
	}
	world := parent.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Find returns the first descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
