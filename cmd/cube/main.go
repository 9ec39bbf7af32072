package main

import (
	"cube-scene/internal/commands"
	"cube-scene/internal/controls"
	"cube-scene/internal/debug"
	"cube-scene/internal/engineconfig"
	"cube-scene/internal/env"
	"cube-scene/internal/graphics"
	"cube-scene/internal/logger"
	"cube-scene/internal/scene"
	"cube-scene/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	log := logger.New(logger.DefaultPath)
	if set, err := env.Load(".env"); err != nil {
		log.Logf(logger.Warn, "%v", err)
	} else if len(set) > 0 {
		log.Logf(logger.Info, "loaded .env: %v", set)
	}

	var store engineconfig.Store
	if m, err := engineconfig.Open(); err != nil {
		log.Logf(logger.Warn, "%v; preferences will not persist", err)
	} else {
		store = m
	}
	prefs, err := engineconfig.Load(store)
	if err != nil {
		log.Logf(logger.Warn, "%v; using defaults", err)
	}
	prefs = engineconfig.ApplyEnv(prefs)

	win := graphics.NewWindow(graphics.Options{
		Width:     prefs.Width,
		Height:    prefs.Height,
		Title:     prefs.Title,
		TargetFPS: prefs.TargetFPS,
	})
	scn, err := scene.New(scene.MustLayout(), win)
	if err != nil {
		log.Logf(logger.Error, "%v", err)
		return
	}
	win.SetBackground(scn.Background)
	scn.SetGridVisible(prefs.GridVisible)
	scn.Rig.Enabled = prefs.RigEnabled

	dbg := debug.New(func() debug.Status {
		return debug.Status{
			Viewport:     scn.Viewport.Size(),
			Pointer:      scn.Pointer(),
			Camera:       scn.Camera.Position,
			Group:        scn.DragGroup.Position,
			Dragging:     scn.Drag.Dragging(),
			OrbitEnabled: scn.Orbit.Enabled(),
		}
	})
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	// Keep the overlay's group position live while dragging instead of every 30 frames.
	scn.Drag.OnDrag(func(controls.DragEvent) { dbg.Invalidate() })

	reg := commands.NewRegistry()
	registerCommands(reg, &app{log: log, scene: scn, debug: dbg, prefs: &prefs, store: store})
	term := terminal.New(log, reg)
	log.Logf(logger.Info, "scene mounted: %d boxes, %d draggable", len(scn.Boxes()), len(scn.DragGroup.Children()))

	update := func() {
		term.Update()
		if rl.IsKeyPressed(rl.KeyF1) && !term.IsOpen() {
			dbg.ToggleStatus()
		}
		scn.Update(controls.PollInput(scn.Viewport.Size()), rl.GetFrameTime())
	}
	draw := func() {
		scn.Draw()
		term.Draw()
		dbg.Draw()
	}
	win.Run(update, draw, scn.Close)
}
