package rig

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition moves a camera from its current pose to a destination pose over a fixed duration
// with cubic ease-out. Position and target are interpolated together.
type Transition struct {
	fromPos, toPos       rl.Vector3
	fromTarget, toTarget rl.Vector3
	tween                *gween.Tween
	done                 bool
}

// NewTransition starts a transition from cam's current pose to (position, target) lasting seconds.
func NewTransition(cam rl.Camera3D, position, target rl.Vector3, seconds float32) *Transition {
	if seconds <= 0 {
		seconds = 0.001
	}
	return &Transition{
		fromPos:    cam.Position,
		toPos:      position,
		fromTarget: cam.Target,
		toTarget:   target,
		tween:      gween.New(0, 1, seconds, ease.OutCubic),
	}
}

// Update advances by dt seconds and writes the interpolated pose to cam. Returns true once finished;
// the final frame writes the destination exactly.
func (t *Transition) Update(cam *rl.Camera3D, dt float32) bool {
	if t.done {
		return true
	}
	k, finished := t.tween.Update(dt)
	if finished {
		cam.Position = t.toPos
		cam.Target = t.toTarget
		t.done = true
		return true
	}
	cam.Position = rl.Vector3Lerp(t.fromPos, t.toPos, k)
	cam.Target = rl.Vector3Lerp(t.fromTarget, t.toTarget, k)
	return false
}

// Done reports whether the transition reached its destination.
func (t *Transition) Done() bool {
	return t.done
}
