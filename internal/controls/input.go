package controls

import (
	"cube-scene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of pointer state. Screen coordinates are pixels from the top-left corner.
type Input struct {
	Pointer  rl.Vector2
	Delta    rl.Vector2
	Wheel    float32
	Pressed  bool // primary button went down this frame
	Released bool // primary button went up this frame
	Primary  bool // primary button held
	Pan      bool // secondary or middle button held
	Viewport viewport.Size
}

// Normalized returns the pointer in normalized device coordinates: x and y in [-1, 1], y up.
func (in Input) Normalized() rl.Vector2 {
	return Normalize(in.Pointer, in.Viewport)
}

// Normalize maps a screen position to normalized device coordinates. Top-left is (-1, 1), the centre is
// (0, 0) and bottom-right is (1, -1). A zero-sized viewport maps everything to the centre.
func Normalize(p rl.Vector2, size viewport.Size) rl.Vector2 {
	if size.Width <= 0 || size.Height <= 0 {
		return rl.Vector2{}
	}
	return rl.NewVector2(
		p.X/float32(size.Width)*2-1,
		-(p.Y/float32(size.Height))*2+1,
	)
}

// PollInput reads the current raylib mouse state. Call once per frame from the update callback.
func PollInput(size viewport.Size) Input {
	return Input{
		Pointer:  rl.GetMousePosition(),
		Delta:    rl.GetMouseDelta(),
		Wheel:    rl.GetMouseWheelMove(),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Primary:  rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Pan:      rl.IsMouseButtonDown(rl.MouseButtonRight) || rl.IsMouseButtonDown(rl.MouseButtonMiddle),
		Viewport: size,
	}
}
