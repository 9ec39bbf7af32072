package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/quasilyte/gdata"
)

// AppName names the per-user data directory gdata stores preferences in.
const AppName = "cube-scene"

// prefsItem is the gdata item key holding the JSON-encoded EnginePrefs.
const prefsItem = "engine"

// EnginePrefs holds engine-only preferences (window, debug overlays, grid). Persisted across runs.
type EnginePrefs struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Title        string `json:"title"`
	TargetFPS    int    `json:"target_fps"`
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	RigEnabled   bool   `json:"rig_enabled"`
}

// Default returns default engine preferences (1280×720, overlays off, grid off, rig on).
func Default() EnginePrefs {
	return EnginePrefs{
		Width:        1280,
		Height:       720,
		Title:        "cube scene",
		TargetFPS:    60,
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  false,
		RigEnabled:   true,
	}
}

// Store reads and writes preferences as one item.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open returns the gdata-backed store for this app.
func Open() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("engineconfig: open storage: %w", err)
	}
	return m, nil
}

// Load reads preferences from store. Missing or unreadable data yields Default() with a nil error;
// a present but invalid item yields Default() and the decode error so the caller can log it.
// A nil store is allowed and behaves like an empty one.
func Load(store Store) (EnginePrefs, error) {
	if store == nil {
		return Default(), nil
	}
	data, err := store.LoadItem(prefsItem)
	if err != nil || len(data) == 0 {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: decode: %w", err)
	}
	return p, nil
}

// Save writes preferences to store. A nil store is a no-op.
func Save(store Store, p EnginePrefs) error {
	if store == nil {
		return nil
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("engineconfig: encode: %w", err)
	}
	if err := store.SaveItem(prefsItem, data); err != nil {
		return fmt.Errorf("engineconfig: save: %w", err)
	}
	return nil
}

// ApplyEnv overrides p from CUBE_WIDTH, CUBE_HEIGHT, CUBE_TITLE and CUBE_FPS. Values that do not parse
// as positive integers are ignored.
func ApplyEnv(p EnginePrefs) EnginePrefs {
	if v, ok := positiveInt("CUBE_WIDTH"); ok {
		p.Width = v
	}
	if v, ok := positiveInt("CUBE_HEIGHT"); ok {
		p.Height = v
	}
	if v, ok := positiveInt("CUBE_FPS"); ok {
		p.TargetFPS = v
	}
	if v := os.Getenv("CUBE_TITLE"); v != "" {
		p.Title = v
	}
	return p
}

func positiveInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
