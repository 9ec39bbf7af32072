package rig

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Depth is the z of the follow target.
	Depth = 5
	// Blend is the fraction of the remaining distance covered each frame.
	Blend = 0.05
)

// Rig eases the camera toward a point derived from the normalized pointer: (x/2, y/2, Depth).
// The follow vector is reused across frames.
type Rig struct {
	Enabled bool
	v       rl.Vector3
}

// New returns an enabled rig.
func New() *Rig {
	return &Rig{Enabled: true}
}

// Target returns the follow point for a pointer in normalized device coordinates.
func (r *Rig) Target(pointer rl.Vector2) rl.Vector3 {
	r.v.X, r.v.Y, r.v.Z = pointer.X/2, pointer.Y/2, Depth
	return r.v
}

// Update moves cam.Position Blend of the way toward Target(pointer). Called once per frame.
func (r *Rig) Update(cam *rl.Camera3D, pointer rl.Vector2) {
	if !r.Enabled {
		return
	}
	cam.Position = rl.Vector3Lerp(cam.Position, r.Target(pointer), Blend)
}
