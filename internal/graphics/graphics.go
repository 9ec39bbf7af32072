package graphics

import (
	"cube-scene/internal/events"
	"cube-scene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window opened by Run.
type Options struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Background rl.Color
}

// Window is the native render surface. It reports its size and emits a notification whenever the
// user resizes it, so it can feed a viewport.Tracker.
type Window struct {
	opts    Options
	size    viewport.Size
	resized events.Emitter[viewport.Size]
}

// NewWindow returns a window description. Nothing is opened until Run.
func NewWindow(opts Options) *Window {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.TargetFPS <= 0 {
		opts.TargetFPS = 60
	}
	return &Window{opts: opts, size: viewport.Size{Width: opts.Width, Height: opts.Height}}
}

// Size returns the current window size (the requested size until the window is open).
func (w *Window) Size() viewport.Size {
	return w.size
}

// OnResize registers fn to run after every resize. The returned func removes it.
func (w *Window) OnResize(fn func(viewport.Size)) (release func()) {
	return w.resized.On(fn)
}

// SetBackground changes the color used to clear the surface each frame.
func (w *Window) SetBackground(c rl.Color) {
	w.opts.Background = c
}

// Run opens the window and runs the main loop until the window is closed. Each frame it polls resize,
// calls update (input, camera), then clears the surface and calls draw.
// The window is resizable and HiDPI aware; ESC is reserved for the console, so close via the window button.
// unload, if set, runs after the last frame while the GL context is still alive.
func (w *Window) Run(update, draw, unload func()) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.opts.Width), int32(w.opts.Height), w.opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.opts.TargetFPS))
	w.poll(true)

	for !rl.WindowShouldClose() {
		w.poll(false)
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.opts.Background)
		draw()
		rl.EndDrawing()
	}
	if unload != nil {
		unload()
	}
}

// poll reads the real window size. The first poll after InitWindow always emits so trackers that mounted
// before the window existed pick up the actual size.
func (w *Window) poll(force bool) {
	if !force && !rl.IsWindowResized() {
		return
	}
	w.size = viewport.Size{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}
	w.resized.Emit(w.size)
}
