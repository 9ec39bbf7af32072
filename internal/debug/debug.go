package debug

import (
	"fmt"
	"runtime"

	"cube-scene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(0, 140, 60, 255)

// Status is the scene state shown by the overlay.
type Status struct {
	Viewport     viewport.Size
	Pointer      rl.Vector2
	Camera       rl.Vector3
	Group        rl.Vector3
	Dragging     bool
	OrbitEnabled bool
}

// Debug draws optional overlays at the top-right: FPS, heap allocation and scene status.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool
	status       func() Status
	frameCount   uint32
	lines        []string
	memStats     runtime.MemStats
}

// New returns a Debug overlay that reads scene state from status (may be nil).
func New(status func() Status) *Debug {
	return &Debug{status: status}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	d.lines = nil
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
	d.lines = nil
}

// ToggleStatus flips the scene status lines (bound to F1).
func (d *Debug) ToggleStatus() {
	d.ShowStatus = !d.ShowStatus
	d.lines = nil
}

// Invalidate makes the next Draw recompute its text instead of waiting for the refresh interval.
func (d *Debug) Invalidate() {
	d.lines = nil
}

// StatusLines formats s for display.
func StatusLines(s Status) []string {
	orbit := "on"
	if !s.OrbitEnabled {
		orbit = "off"
	}
	drag := "idle"
	if s.Dragging {
		drag = "dragging"
	}
	return []string{
		fmt.Sprintf("Viewport: %dx%d (%.2f)", s.Viewport.Width, s.Viewport.Height, s.Viewport.Aspect()),
		fmt.Sprintf("Pointer: %.2f, %.2f", s.Pointer.X, s.Pointer.Y),
		fmt.Sprintf("Camera: %.2f, %.2f, %.2f", s.Camera.X, s.Camera.Y, s.Camera.Z),
		fmt.Sprintf("Group: %.2f, %.2f, %.2f", s.Group.X, s.Group.Y, s.Group.Z),
		fmt.Sprintf("Orbit: %s  Drag: %s", orbit, drag),
	}
}

func (d *Debug) refresh() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.ShowStatus && d.status != nil {
		d.lines = append(d.lines, StatusLines(d.status())...)
	}
}

// Draw renders enabled overlays, right-aligned. Call after the scene and the console.
// Text is only recomputed every updateInterval frames, or right after a toggle.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc && !d.ShowStatus {
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		if d.lines == nil {
			d.lines = make([]string, 0, 8)
		}
		d.refresh()
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, textColor)
		y += lineHeight
	}
}
