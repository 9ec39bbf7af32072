package controls

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// polarEpsilon keeps the camera off the poles so the up vector stays valid.
	polarEpsilon = 1e-4
	zoomBase     = 0.95
)

// Orbit rotates, zooms and pans a camera around Target. Primary drag rotates, wheel zooms and
// secondary/middle drag pans. When disabled Update leaves the camera untouched.
type Orbit struct {
	Target      rl.Vector3
	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32
	MinDistance float32
	MaxDistance float32

	enabled bool
}

// NewOrbit returns enabled orbit controls looking at target.
func NewOrbit(target rl.Vector3) *Orbit {
	return &Orbit{
		Target:      target,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		PanSpeed:    1,
		MinDistance: 0,
		MaxDistance: math32.Inf(1),
		enabled:     true,
	}
}

// SetEnabled turns the controls on or off. A nil *Orbit ignores the call.
func (o *Orbit) SetEnabled(enabled bool) {
	if o == nil {
		return
	}
	o.enabled = enabled
}

// Enabled reports whether Update acts on input.
func (o *Orbit) Enabled() bool {
	return o != nil && o.enabled
}

// Update applies one frame of input to cam. The camera always ends up looking at Target.
func (o *Orbit) Update(cam *rl.Camera3D, in Input) {
	if !o.Enabled() {
		return
	}
	h := float32(in.Viewport.Height)
	if h <= 0 {
		h = 1
	}

	offset := rl.Vector3Subtract(cam.Position, o.Target)
	radius := rl.Vector3Length(offset)
	if radius == 0 {
		return
	}
	theta := math32.Atan2(offset.X, offset.Z)
	phi := math32.Acos(clamp(offset.Y/radius, -1, 1))

	if in.Primary && !in.Pressed {
		theta -= 2 * math32.Pi * in.Delta.X / h * o.RotateSpeed
		phi -= 2 * math32.Pi * in.Delta.Y / h * o.RotateSpeed
		phi = clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)
	}

	if in.Wheel != 0 {
		scale := math32.Pow(zoomBase, o.ZoomSpeed*math32.Abs(in.Wheel))
		if in.Wheel > 0 {
			radius *= scale
		} else {
			radius /= scale
		}
		radius = clamp(radius, o.MinDistance, o.MaxDistance)
	}

	if in.Pan && (in.Delta.X != 0 || in.Delta.Y != 0) {
		o.pan(cam, in.Delta, h, radius)
	}

	sinPhi := math32.Sin(phi)
	offset = rl.NewVector3(
		radius*sinPhi*math32.Sin(theta),
		radius*math32.Cos(phi),
		radius*sinPhi*math32.Cos(theta),
	)
	cam.Position = rl.Vector3Add(o.Target, offset)
	cam.Target = o.Target
}

// pan moves Target in the camera's view plane so the point under the pointer tracks the pointer.
func (o *Orbit) pan(cam *rl.Camera3D, delta rl.Vector2, height, distance float32) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(o.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3CrossProduct(right, forward)

	fovy := cam.Fovy * rl.Deg2rad
	worldPerPixel := 2 * distance * math32.Tan(fovy/2) / height * o.PanSpeed

	move := rl.Vector3Add(
		rl.Vector3Scale(right, -delta.X*worldPerPixel),
		rl.Vector3Scale(up, delta.Y*worldPerPixel),
	)
	o.Target = rl.Vector3Add(o.Target, move)
	cam.Position = rl.Vector3Add(cam.Position, move)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
