package scenegraph

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNode_AddMovesChild(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	m := NewMesh("m", rl.NewVector3(1, 2, 3), 1, rl.Orange)

	a.Add(m)
	b.Add(m)

	if len(a.Children()) != 0 {
		t.Errorf("Expected a to lose its child, has %d", len(a.Children()))
	}
	if m.Parent() != b {
		t.Error("Expected m to be parented to b")
	}
}

func TestNode_WorldPositionFollowsGroup(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("drag")
	m := NewMesh("m", rl.NewVector3(1.2, 1.2, 0), 1, rl.Orange)
	root.Add(g)
	g.Add(m)

	g.Position = rl.NewVector3(0.5, -1, 2)
	got := m.WorldPosition()
	want := rl.NewVector3(1.7, 0.2, 2)
	if !near(got, want) {
		t.Errorf("Expected world position %v, got %v", want, got)
	}
	if m.Position != rl.NewVector3(1.2, 1.2, 0) {
		t.Errorf("Local position changed: %v", m.Position)
	}
}

func TestNode_BoundsUsesScale(t *testing.T) {
	m := NewMesh("face", rl.NewVector3(0, 0, 0), 3.3, rl.Black)
	b := m.Bounds()
	if b.Min.X != -1.65 || b.Max.Y != 1.65 {
		t.Errorf("Unexpected bounds %v", b)
	}
}

func TestNode_AddAndRemove(t *testing.T) {
	root := NewGroup("root")
	m := NewMesh("m", rl.Vector3{}, 1, rl.Orange)
	root.Add(m)
	if m.Parent() != root {
		t.Error("Added node does not report its parent")
	}
	if !root.Remove(m) {
		t.Error("Remove returned false for a direct child")
	}
	if root.Remove(m) {
		t.Error("Remove returned true for a node that is no longer a child")
	}
	if m.Parent() != nil {
		t.Error("Removed node still has a parent")
	}
}

func TestNode_Find(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("drag")
	root.Add(NewAmbientLight(rl.White, 0), g)
	g.Add(NewMesh("box-1", rl.Vector3{}, 1, rl.Orange), NewMesh("box-2", rl.Vector3{}, 1, rl.Orange))

	if n := len(root.Find(KindMesh)); n != 2 {
		t.Errorf("Expected 2 meshes, got %d", n)
	}
	if n := len(g.Find(KindMesh)); n != 2 {
		t.Errorf("Expected 2 meshes under the drag group, got %d", n)
	}
	if n := len(root.Find(KindAmbientLight)); n != 1 {
		t.Errorf("Expected 1 ambient light, got %d", n)
	}
}

func TestNewSpotLight_ClampsPenumbra(t *testing.T) {
	s := NewSpotLight(rl.NewVector3(10, 10, 10), 0.15, 3, rl.White, 0)
	if s.Penumbra != 1 {
		t.Errorf("Expected penumbra clamped to 1, got %v", s.Penumbra)
	}
	if s.Intensity != 1 {
		t.Errorf("Expected default intensity 1, got %v", s.Intensity)
	}
	if s.Kind.String() != "spot" {
		t.Errorf("Expected kind spot, got %s", s.Kind)
	}
}

func near(a, b rl.Vector3) bool {
	const eps = 1e-5
	d := rl.Vector3Subtract(a, b)
	return d.X < eps && d.X > -eps && d.Y < eps && d.Y > -eps && d.Z < eps && d.Z > -eps
}
