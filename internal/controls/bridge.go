package controls

// Toggler is the capability the drag bridge needs from the orbit controls.
type Toggler interface {
	SetEnabled(enabled bool)
	Enabled() bool
}

// DragBridge disables the orbit controls while a drag is in progress so camera and object manipulation
// never run at the same time. At drag end the orbit controls go back to the state they had at drag
// start, so a user's own off switch survives a drag. The orbit controls are handed in explicitly; a nil
// Toggler makes the toggling a no-op.
type DragBridge struct {
	orbit        Toggler
	orbitEnabled bool
	suspended    bool
	restore      bool
	releases     []func()
}

// NewDragBridge subscribes to drag start/end on drag. Close releases the subscriptions.
func NewDragBridge(drag *Drag, orbit Toggler) *DragBridge {
	b := &DragBridge{orbit: orbit, orbitEnabled: true}
	if orbit != nil {
		b.orbitEnabled = orbit.Enabled()
	}
	b.releases = append(b.releases,
		drag.OnDragStart(func(DragEvent) { b.suspend() }),
		drag.OnDragEnd(func(DragEvent) { b.resume() }),
	)
	return b
}

// OrbitEnabled reports the state the bridge last applied: false between drag start and end, otherwise
// the state the orbit controls had before the drag.
func (b *DragBridge) OrbitEnabled() bool {
	return b.orbitEnabled
}

// Close releases both subscriptions and restores orbiting if a drag was cut short. Safe to call twice.
func (b *DragBridge) Close() {
	for _, release := range b.releases {
		release()
	}
	b.releases = nil
	b.resume()
}

func (b *DragBridge) suspend() {
	if b.suspended {
		return
	}
	b.suspended = true
	b.restore = true
	if b.orbit != nil {
		b.restore = b.orbit.Enabled()
	}
	b.set(false)
}

func (b *DragBridge) resume() {
	if !b.suspended {
		return
	}
	b.suspended = false
	b.set(b.restore)
}

func (b *DragBridge) set(enabled bool) {
	b.orbitEnabled = enabled
	if b.orbit == nil {
		return
	}
	b.orbit.SetEnabled(enabled)
}
