package controls

import (
	"math"
	"testing"

	"cube-scene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 5),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

var screen = viewport.Size{Width: 800, Height: 600}

func TestOrbit_DisabledLeavesCamera(t *testing.T) {
	o := NewOrbit(rl.Vector3{})
	o.SetEnabled(false)
	cam := newCamera()
	o.Update(&cam, Input{Primary: true, Delta: rl.NewVector2(50, 0), Wheel: 3, Viewport: screen})

	if cam.Position != rl.NewVector3(0, 0, 5) {
		t.Errorf("Disabled orbit moved the camera to %v", cam.Position)
	}
}

func TestOrbit_RotateKeepsDistance(t *testing.T) {
	o := NewOrbit(rl.Vector3{})
	cam := newCamera()
	o.Update(&cam, Input{Primary: true, Delta: rl.NewVector2(150, 0), Viewport: screen})

	if cam.Position.X == 0 {
		t.Error("Expected horizontal drag to rotate the camera around Y")
	}
	if d := rl.Vector3Length(cam.Position); math.Abs(float64(d-5)) > 1e-4 {
		t.Errorf("Expected distance 5 after rotation, got %v", d)
	}
	if cam.Target != o.Target {
		t.Errorf("Camera target %v should equal orbit target %v", cam.Target, o.Target)
	}
}

func TestOrbit_WheelZooms(t *testing.T) {
	o := NewOrbit(rl.Vector3{})
	o.MinDistance = 4.9

	cam := newCamera()
	o.Update(&cam, Input{Wheel: 1, Viewport: screen})
	if d := rl.Vector3Length(cam.Position); math.Abs(float64(d-4.9)) > 1e-4 {
		t.Errorf("Expected zoom-in clamped to 4.9, got %v", d)
	}

	cam = newCamera()
	o.Update(&cam, Input{Wheel: -1, Viewport: screen})
	if d := rl.Vector3Length(cam.Position); d <= 5 {
		t.Errorf("Expected zoom-out beyond 5, got %v", d)
	}
}

func TestOrbit_PanMovesTarget(t *testing.T) {
	o := NewOrbit(rl.Vector3{})
	cam := newCamera()
	o.Update(&cam, Input{Pan: true, Delta: rl.NewVector2(-40, 0), Viewport: screen})

	if o.Target.X <= 0 {
		t.Errorf("Expected dragging left to pan target to +X, got %v", o.Target)
	}
	if cam.Target != o.Target {
		t.Errorf("Camera target %v should follow orbit target %v", cam.Target, o.Target)
	}
}

func TestOrbit_NilSafe(t *testing.T) {
	var o *Orbit
	o.SetEnabled(true)
	if o.Enabled() {
		t.Error("Nil orbit reported enabled")
	}
}
