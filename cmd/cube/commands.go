package main

import (
	"flag"
	"fmt"

	"cube-scene/internal/commands"
	"cube-scene/internal/debug"
	"cube-scene/internal/engineconfig"
	"cube-scene/internal/logger"
	"cube-scene/internal/scene"
)

// app is what console commands act on.
type app struct {
	log   *logger.Logger
	scene *scene.Scene
	debug *debug.Debug
	prefs *engineconfig.EnginePrefs
	store engineconfig.Store
}

func noArgs(run func() error) commands.Setup {
	return func(*flag.FlagSet) func([]string) error {
		return func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments %v", args)
			}
			return run()
		}
	}
}

func registerCommands(reg *commands.Registry, a *app) {
	reg.Register("grid", "--show|--hide the helper grid", commands.Toggle("show", "hide", func(v bool) error {
		a.scene.SetGridVisible(v)
		a.prefs.GridVisible = v
		return nil
	}))
	reg.Register("fps", "--show|--hide the FPS counter", commands.Toggle("show", "hide", func(v bool) error {
		a.debug.SetShowFPS(v)
		a.prefs.ShowFPS = v
		return nil
	}))
	reg.Register("memalloc", "--show|--hide heap usage", commands.Toggle("show", "hide", func(v bool) error {
		a.debug.SetShowMemAlloc(v)
		a.prefs.ShowMemAlloc = v
		return nil
	}))
	reg.Register("orbit", "--on|--off camera orbit controls", commands.Toggle("on", "off", func(v bool) error {
		if a.scene.Drag.Dragging() {
			return fmt.Errorf("orbit: cannot change while dragging")
		}
		a.scene.Orbit.SetEnabled(v)
		return nil
	}))
	reg.Register("rig", "--on|--off pointer camera follow", commands.Toggle("on", "off", func(v bool) error {
		a.scene.Rig.Enabled = v
		a.prefs.RigEnabled = v
		return nil
	}))
	reg.Register("reset", "ease the camera back to its rest pose", noArgs(func() error {
		a.scene.Reset()
		return nil
	}))
	reg.Register("size", "log the tracked viewport size", noArgs(func() error {
		s := a.scene.Viewport.Size()
		a.log.Logf(logger.Info, "viewport %dx%d", s.Width, s.Height)
		return nil
	}))
	reg.Register("save", "persist preferences", noArgs(func() error {
		if err := engineconfig.Save(a.store, *a.prefs); err != nil {
			return err
		}
		a.log.Log("preferences saved")
		return nil
	}))
	reg.Register("help", "list commands", noArgs(func() error {
		for _, line := range reg.Help() {
			a.log.Log(line)
		}
		return nil
	}))
}
