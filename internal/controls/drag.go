package controls

import (
	"cube-scene/internal/events"
	"cube-scene/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DragEvent describes a drag notification. Object is the node under the pointer when the drag started;
// Moved is the node actually being translated (Object's parent when TransformGroup is set).
type DragEvent struct {
	Object *scenegraph.Node
	Moved  *scenegraph.Node
}

// Drag lets the user move scene nodes with the pointer. A press that hits one of the objects starts a
// drag; the moved node then follows the pointer on the plane facing the camera through the hit point
// until release.
type Drag struct {
	// TransformGroup moves the hit object's parent instead of the object, so siblings move together.
	TransformGroup bool

	objects []*scenegraph.Node
	enabled bool

	active     *scenegraph.Node
	moved      *scenegraph.Node
	planePoint rl.Vector3
	planeNorm  rl.Vector3

	start events.Emitter[DragEvent]
	drag  events.Emitter[DragEvent]
	end   events.Emitter[DragEvent]
}

// NewDrag returns enabled drag controls over objects. The slice is copied.
func NewDrag(objects []*scenegraph.Node) *Drag {
	objs := make([]*scenegraph.Node, len(objects))
	copy(objs, objects)
	return &Drag{objects: objs, enabled: true}
}

// OnDragStart registers fn for drag start. The returned func removes it.
func (d *Drag) OnDragStart(fn func(DragEvent)) (release func()) { return d.start.On(fn) }

// OnDrag registers fn for every pointer move during a drag.
func (d *Drag) OnDrag(fn func(DragEvent)) (release func()) { return d.drag.On(fn) }

// OnDragEnd registers fn for drag end.
func (d *Drag) OnDragEnd(fn func(DragEvent)) (release func()) { return d.end.On(fn) }

// Listeners returns the number of registered start, move and end listeners.
func (d *Drag) Listeners() int {
	return d.start.Len() + d.drag.Len() + d.end.Len()
}

// SetEnabled turns dragging on or off. Disabling during a drag ends it.
func (d *Drag) SetEnabled(enabled bool) {
	if !enabled && d.active != nil {
		d.finish()
	}
	d.enabled = enabled
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.active != nil
}

// Update advances the drag state machine for one frame. ray is the pointer ray in world space and
// viewDir the camera's forward direction.
func (d *Drag) Update(ray rl.Ray, viewDir rl.Vector3, in Input) {
	if !d.enabled {
		return
	}
	if d.active != nil {
		if in.Released || !in.Primary {
			d.finish()
			return
		}
		d.follow(ray)
		return
	}
	if !in.Pressed {
		return
	}
	obj, hit, ok := d.Pick(ray)
	if !ok {
		return
	}
	d.active = obj
	d.moved = obj
	if d.TransformGroup && obj.Parent() != nil {
		d.moved = obj.Parent()
	}
	d.planePoint = hit
	d.planeNorm = rl.Vector3Normalize(viewDir)
	d.start.Emit(DragEvent{Object: d.active, Moved: d.moved})
}

// Pick returns the closest object hit by ray and the hit point.
func (d *Drag) Pick(ray rl.Ray) (*scenegraph.Node, rl.Vector3, bool) {
	var best *scenegraph.Node
	var bestHit rl.RayCollision
	for _, o := range d.objects {
		c := rl.GetRayCollisionBox(ray, o.Bounds())
		if !c.Hit {
			continue
		}
		if best == nil || c.Distance < bestHit.Distance {
			best = o
			bestHit = c
		}
	}
	if best == nil {
		return nil, rl.Vector3{}, false
	}
	return best, bestHit.Point, true
}

func (d *Drag) follow(ray rl.Ray) {
	p, ok := intersectPlane(ray, d.planePoint, d.planeNorm)
	if !ok {
		return
	}
	delta := rl.Vector3Subtract(p, d.planePoint)
	if delta == (rl.Vector3{}) {
		return
	}
	d.moved.Position = rl.Vector3Add(d.moved.Position, delta)
	d.planePoint = p
	d.drag.Emit(DragEvent{Object: d.active, Moved: d.moved})
}

func (d *Drag) finish() {
	ev := DragEvent{Object: d.active, Moved: d.moved}
	d.active = nil
	d.moved = nil
	d.end.Emit(ev)
}

// intersectPlane returns where ray crosses the plane through point with normal n. Rays parallel to the
// plane or pointing away from it do not intersect.
func intersectPlane(ray rl.Ray, point, n rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(n, ray.Direction)
	if denom > -1e-6 && denom < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(point, ray.Position), n) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}
