package scene

import (
	"fmt"

	"cube-scene/internal/controls"
	"cube-scene/internal/primitives"
	"cube-scene/internal/rig"
	"cube-scene/internal/scenegraph"
	"cube-scene/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// resetSeconds is how long `reset` takes to bring the camera back to rest.
	resetSeconds = 0.8
)

// Scene is the mounted cube scene: a retained node tree, a camera, orbit and drag controls, the camera
// rig and a viewport tracker. Update runs input and camera logic once per frame; Draw renders between
// BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	Root        *scenegraph.Node
	Face        *scenegraph.Node
	DragGroup   *scenegraph.Node
	Background  rl.Color
	GridVisible bool

	Orbit    *controls.Orbit
	Drag     *controls.Drag
	Bridge   *controls.DragBridge
	Rig      *rig.Rig
	Viewport *viewport.Tracker

	// Ray maps a screen position to a world ray for picking. Defaults to rl.GetScreenToWorldRay.
	Ray func(pos rl.Vector2, cam rl.Camera3D) rl.Ray

	rest       rl.Camera3D
	lights     []*scenegraph.Node
	renderer   *primitives.Registry
	transition *rig.Transition
	pointer    rl.Vector2
	closed     bool
}

// New assembles the scene described by layout and mounts its viewport tracker on src. Every element is
// declared here, once: lights, orbit controls, background, the face cube and the grid of boxes.
func New(layout Layout, src viewport.Source) (*Scene, error) {
	bg, err := parseColor(layout.Background)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s := &Scene{
		Root:       scenegraph.NewGroup("root"),
		DragGroup:  scenegraph.NewGroup("drag"),
		Background: bg,
		Orbit:      controls.NewOrbit(rl.Vector3{}),
		Rig:        rig.New(),
		Viewport:   viewport.NewTracker(),
		Ray:        rl.GetScreenToWorldRay,
		renderer:   primitives.NewRegistry(),
	}
	s.Camera = rl.Camera3D{
		Position:   vec(layout.Camera.Position),
		Target:     rl.Vector3{},
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       layout.Camera.Fov,
		Projection: rl.CameraPerspective,
	}
	s.rest = s.Camera

	for _, ld := range layout.Lights {
		light, err := buildLight(ld)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.lights = append(s.lights, light)
		s.Root.Add(light)
	}

	faceColor, err := parseColor(layout.Face.Color)
	if err != nil {
		return nil, fmt.Errorf("scene: face: %w", err)
	}
	s.Face = scenegraph.NewMesh("face", vec(layout.Face.Position), layout.Face.Scale, faceColor)
	s.Root.Add(s.Face, s.DragGroup)

	for _, layer := range layout.Layers {
		c, err := parseColor(layer.Color)
		if err != nil {
			return nil, fmt.Errorf("scene: layer %q: %w", layer.Name, err)
		}
		parent := s.Root
		if layer.Draggable {
			parent = s.DragGroup
		}
		for i, p := range layer.Boxes {
			box := Box(vec(p))
			box.Color = c
			box.Name = fmt.Sprintf("%s-%d", layer.Name, i)
			parent.Add(box)
		}
	}

	s.Drag = controls.NewDrag(s.DragGroup.Children())
	s.Drag.TransformGroup = true
	s.Bridge = controls.NewDragBridge(s.Drag, s.Orbit)
	s.Viewport.Mount(src)
	return s, nil
}

func buildLight(ld LightDef) (*scenegraph.Node, error) {
	color := rl.White
	if ld.Color != "" {
		c, err := parseColor(ld.Color)
		if err != nil {
			return nil, err
		}
		color = c
	}
	switch ld.Kind {
	case "ambient":
		return scenegraph.NewAmbientLight(color, ld.Intensity), nil
	case "point":
		return scenegraph.NewPointLight(vec(ld.Position), color, ld.Intensity), nil
	case "spot":
		return scenegraph.NewSpotLight(vec(ld.Position), ld.Angle, ld.Penumbra, color, ld.Intensity), nil
	}
	return nil, fmt.Errorf("unknown light kind %q", ld.Kind)
}

// Boxes returns every unit box in declaration order (draggable layers included).
func (s *Scene) Boxes() []*scenegraph.Node {
	var out []*scenegraph.Node
	for _, m := range s.Root.Find(scenegraph.KindMesh) {
		if m != s.Face {
			out = append(out, m)
		}
	}
	return out
}

// Lights returns the scene's light nodes.
func (s *Scene) Lights() []*scenegraph.Node {
	return s.lights
}

// Pointer returns the last pointer position in normalized device coordinates.
func (s *Scene) Pointer() rl.Vector2 {
	return s.pointer
}

// SetGridVisible sets whether the helper grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Reset eases the camera back to its rest pose and recentres the orbit target. The rig pauses until
// the transition finishes.
func (s *Scene) Reset() {
	s.Orbit.Target = s.rest.Target
	s.transition = rig.NewTransition(s.Camera, s.rest.Position, s.rest.Target, resetSeconds)
}

// Resetting reports whether a reset transition is running.
func (s *Scene) Resetting() bool {
	return s.transition != nil
}

// Update runs once per frame: drag first (so a drag start disables orbiting in the same frame), then
// orbit, then either the reset transition or the camera rig. Does nothing after Close.
func (s *Scene) Update(in controls.Input, dt float32) {
	if s.closed {
		return
	}
	in.Viewport = s.Viewport.Size()
	s.pointer = in.Normalized()

	ray := s.Ray(in.Pointer, s.Camera)
	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(s.Camera.Target, s.Camera.Position))
	s.Drag.Update(ray, viewDir, in)
	s.Orbit.Update(&s.Camera, in)

	if s.transition != nil {
		if s.transition.Update(&s.Camera, dt) {
			s.transition = nil
		}
		return
	}
	s.Rig.Update(&s.Camera, s.pointer)
}

// Draw renders the scene. Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw() {
	if s.closed {
		return
	}
	rl.BeginMode3D(s.Camera)
	s.renderer.SetView(s.Camera.Position, s.lights)
	s.Root.Walk(func(n *scenegraph.Node) bool {
		s.renderer.Draw(n)
		return true
	})
	if s.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

// Close unmounts the scene: releases the drag bridge and resize subscriptions and frees GPU resources.
// Safe to call more than once.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Bridge.Close()
	s.Drag.SetEnabled(false)
	s.Viewport.Unmount()
	s.renderer.Unload()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(96, 96, 96, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
