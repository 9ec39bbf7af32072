package scenegraph

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind is the type of a scene node.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindAmbientLight
	KindPointLight
	KindSpotLight
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindAmbientLight:
		return "ambient"
	case KindPointLight:
		return "point"
	case KindSpotLight:
		return "spot"
	}
	return "unknown"
}

// Node is one element of the retained scene tree. Position is local to the parent; Scale is uniform.
// Meshes are unit cubes scaled by Scale. Lights use Position, Color and Intensity; spot lights also use
// Angle (half-angle of the cone, radians) and Penumbra (0 = hard edge, 1 = fully soft).
type Node struct {
	Kind      Kind
	Name      string
	Position  rl.Vector3
	Scale     float32
	Color     rl.Color
	Intensity float32
	Angle     float32
	Penumbra  float32

	parent   *Node
	children []*Node
}

// NewGroup returns an empty group at the origin.
func NewGroup(name string) *Node {
	return &Node{Kind: KindGroup, Name: name, Scale: 1}
}

// NewMesh returns a cube mesh node. A scale of 0 means 1.
func NewMesh(name string, position rl.Vector3, scale float32, color rl.Color) *Node {
	if scale == 0 {
		scale = 1
	}
	return &Node{Kind: KindMesh, Name: name, Position: position, Scale: scale, Color: color}
}

// Add appends children to n. A child already attached elsewhere is moved.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child from n. Returns false if child is not a direct child of n.
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

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root or a detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldPosition returns the position of n in world space (parent positions and scales applied).
func (n *Node) WorldPosition() rl.Vector3 {
	pos := n.Position
	for p := n.parent; p != nil; p = p.parent {
		pos = rl.Vector3Add(rl.Vector3Scale(pos, p.scale()), p.Position)
	}
	return pos
}

// WorldScale returns the product of the scales from root to n.
func (n *Node) WorldScale() float32 {
	s := n.scale()
	for p := n.parent; p != nil; p = p.parent {
		s *= p.scale()
	}
	return s
}

// Bounds returns the world-space axis-aligned box of a unit cube mesh scaled and placed like n.
func (n *Node) Bounds() rl.BoundingBox {
	c := n.WorldPosition()
	h := n.WorldScale() * 0.5
	return rl.NewBoundingBox(
		rl.NewVector3(c.X-h, c.Y-h, c.Z-h),
		rl.NewVector3(c.X+h, c.Y+h, c.Z+h),
	)
}

func (n *Node) scale() float32 {
	if n.Scale == 0 {
		return 1
	}
	return n.Scale
}

// Walk visits n and every descendant depth-first, parents before children. Returning false from fn
// skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns every node of the given kind under n (including n).
func (n *Node) Find(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}
