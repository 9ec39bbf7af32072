package rig

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRig_Target(t *testing.T) {
	r := New()
	tests := []struct {
		pointer rl.Vector2
		want    rl.Vector3
	}{
		{rl.NewVector2(0, 0), rl.NewVector3(0, 0, 5)},
		{rl.NewVector2(1, 1), rl.NewVector3(0.5, 0.5, 5)},
		{rl.NewVector2(-1, 0.5), rl.NewVector3(-0.5, 0.25, 5)},
	}
	for _, tc := range tests {
		if got := r.Target(tc.pointer); got != tc.want {
			t.Errorf("Target(%v) = %v, want %v", tc.pointer, got, tc.want)
		}
	}
}

func TestRig_UpdateEasesFivePercent(t *testing.T) {
	r := New()
	cam := rl.Camera3D{Position: rl.NewVector3(10, 0, 5)}
	r.Update(&cam, rl.NewVector2(0, 0))

	if math.Abs(float64(cam.Position.X-9.5)) > 1e-5 {
		t.Errorf("Expected x 9.5 after one frame, got %v", cam.Position.X)
	}
	if cam.Position.Z != 5 {
		t.Errorf("Expected z to stay 5, got %v", cam.Position.Z)
	}
}

func TestRig_ConvergesWithoutSnapping(t *testing.T) {
	r := New()
	cam := rl.Camera3D{Position: rl.NewVector3(0, 0, 20)}
	prev := rl.Vector3Distance(cam.Position, rl.NewVector3(0.5, 0.5, 5))
	for i := 0; i < 200; i++ {
		r.Update(&cam, rl.NewVector2(1, 1))
		d := rl.Vector3Distance(cam.Position, rl.NewVector3(0.5, 0.5, 5))
		if d >= prev && d > 1e-4 {
			t.Fatalf("Frame %d: distance did not shrink (%v -> %v)", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-3 {
		t.Errorf("Expected camera to converge, still %v away", prev)
	}
}

func TestRig_Disabled(t *testing.T) {
	r := New()
	r.Enabled = false
	cam := rl.Camera3D{Position: rl.NewVector3(3, 3, 3)}
	r.Update(&cam, rl.NewVector2(1, 1))
	if cam.Position != rl.NewVector3(3, 3, 3) {
		t.Errorf("Disabled rig moved camera to %v", cam.Position)
	}
}

func TestTransition_ReachesDestination(t *testing.T) {
	cam := rl.Camera3D{Position: rl.NewVector3(10, 10, 10), Target: rl.NewVector3(1, 0, 0)}
	tr := NewTransition(cam, rl.NewVector3(0, 0, 5), rl.Vector3{}, 0.5)

	if tr.Update(&cam, 0.25) {
		t.Fatal("Transition finished too early")
	}
	if cam.Position.X >= 10 || cam.Position.X <= 0 {
		t.Errorf("Expected an intermediate x, got %v", cam.Position.X)
	}
	if !tr.Update(&cam, 0.5) {
		t.Fatal("Expected transition to finish")
	}
	if cam.Position != rl.NewVector3(0, 0, 5) || cam.Target != (rl.Vector3{}) {
		t.Errorf("Expected exact destination, got %v / %v", cam.Position, cam.Target)
	}
	if !tr.Done() || !tr.Update(&cam, 1) {
		t.Error("Finished transition should stay done")
	}
}
