package main

import (
	"strings"
	"testing"

	"cube-scene/internal/commands"
	"cube-scene/internal/debug"
	"cube-scene/internal/engineconfig"
	"cube-scene/internal/logger"
	"cube-scene/internal/scene"
	"cube-scene/internal/viewport"
)

type staticWindow struct{ size viewport.Size }

func (w staticWindow) Size() viewport.Size { return w.size }
func (w staticWindow) OnResize(func(viewport.Size)) (release func()) { return func() {} }

type memStore struct{ items map[string][]byte }

func (m *memStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func newApp(t *testing.T) (*commands.Registry, *app) {
	t.Helper()
	scn, err := scene.New(scene.MustLayout(), staticWindow{size: viewport.Size{Width: 640, Height: 480}})
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	prefs := engineconfig.Default()
	a := &app{
		log:   logger.New(""),
		scene: scn,
		debug: debug.New(nil),
		prefs: &prefs,
		store: &memStore{items: map[string][]byte{}},
	}
	reg := commands.NewRegistry()
	registerCommands(reg, a)
	return reg, a
}

func TestCommands_TogglesUpdatePrefs(t *testing.T) {
	reg, a := newApp(t)
	for _, line := range []string{"cmd grid --show", "cmd fps --show", "cmd rig --off"} {
		args, _ := commands.Parse(line)
		if err := reg.Execute(args); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	if !a.scene.GridVisible || !a.prefs.GridVisible {
		t.Error("grid --show did not apply")
	}
	if !a.debug.ShowFPS || !a.prefs.ShowFPS {
		t.Error("fps --show did not apply")
	}
	if a.scene.Rig.Enabled || a.prefs.RigEnabled {
		t.Error("rig --off did not apply")
	}
}

func TestCommands_SaveRoundTrips(t *testing.T) {
	reg, a := newApp(t)
	a.prefs.ShowMemAlloc = true
	if err := reg.Execute([]string{"save"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := engineconfig.Load(a.store)
	if err != nil || !got.ShowMemAlloc {
		t.Errorf("Expected saved prefs, got %+v, %v", got, err)
	}
}

func TestCommands_SizeAndReset(t *testing.T) {
	reg, a := newApp(t)
	if err := reg.Execute([]string{"size"}); err != nil {
		t.Fatal(err)
	}
	lines := a.log.Lines()
	if len(lines) == 0 || !strings.HasSuffix(lines[len(lines)-1], "viewport 640x480") {
		t.Errorf("Expected size line, got %v", lines)
	}
	if err := reg.Execute([]string{"reset"}); err != nil {
		t.Fatal(err)
	}
	if !a.scene.Resetting() {
		t.Error("reset did not start a transition")
	}
	if err := reg.Execute([]string{"reset", "now"}); err == nil {
		t.Error("Expected error for unexpected arguments")
	}
}
