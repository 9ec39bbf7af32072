package viewport

// Size is the width and height of the render surface in screen pixels.
type Size struct {
	Width  int
	Height int
}

// Aspect returns Width/Height, or 1 when Height is zero (minimized window). raylib derives the projection
// aspect from the same framebuffer size in BeginMode3D.
func (s Size) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Source is anything that reports a current size and notifies on resize (e.g. graphics.Window).
type Source interface {
	Size() Size
	OnResize(fn func(Size)) (release func())
}

// Tracker mirrors the window size. The render surface is sized from Size() every frame.
// No debounce and no clamping: each resize replaces the tracked value immediately.
type Tracker struct {
	size    Size
	release func()
}

// NewTracker returns an unmounted tracker with a zero size.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Mount reads the current size from src and subscribes to its resize notifications.
// Mounting again first releases the previous subscription.
func (t *Tracker) Mount(src Source) {
	t.Unmount()
	t.size = src.Size()
	t.release = src.OnResize(t.resize)
}

// Unmount releases the resize subscription. The last size is kept. Safe to call more than once.
func (t *Tracker) Unmount() {
	if t.release == nil {
		return
	}
	t.release()
	t.release = nil
}

// Size returns the tracked viewport size.
func (t *Tracker) Size() Size {
	return t.size
}

func (t *Tracker) resize(s Size) {
	t.size = s
}
