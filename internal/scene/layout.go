package scene

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"cube-scene/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

const (
	boxColor  = "#ffa500"
	faceColor = "#000000"
	faceScale = 3.3
)

// Layout is the declarative description of the scene (see layout.yaml).
type Layout struct {
	Background string     `yaml:"background"`
	Camera     CameraDef  `yaml:"camera"`
	Lights     []LightDef `yaml:"lights"`
	Face       BoxDef     `yaml:"face"`
	Layers     []LayerDef `yaml:"layers"`
}

// CameraDef is the rest pose of the camera; it always looks at the origin.
type CameraDef struct {
	Position [3]float32 `yaml:"position"`
	Fov      float32    `yaml:"fov"`
}

// LightDef describes one light. Kind is ambient, point or spot.
type LightDef struct {
	Kind      string     `yaml:"kind"`
	Position  [3]float32 `yaml:"position,omitempty"`
	Color     string     `yaml:"color,omitempty"`
	Intensity float32    `yaml:"intensity,omitempty"`
	Angle     float32    `yaml:"angle,omitempty"`
	Penumbra  float32    `yaml:"penumbra,omitempty"`
}

// BoxDef is a single cube.
type BoxDef struct {
	Position [3]float32 `yaml:"position"`
	Scale    float32    `yaml:"scale,omitempty"`
	Color    string     `yaml:"color,omitempty"`
}

// LayerDef is a named set of unit boxes. Boxes of draggable layers go into the drag group.
type LayerDef struct {
	Name      string       `yaml:"name"`
	Draggable bool         `yaml:"draggable,omitempty"`
	Color     string       `yaml:"color,omitempty"`
	Boxes     [][3]float32 `yaml:"boxes"`
}

// ParseLayout decodes and validates a YAML layout. Box positions must be unique across all layers.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	if l.Background == "" {
		l.Background = "#ffffff"
	}
	if _, err := parseColor(l.Background); err != nil {
		return Layout{}, fmt.Errorf("layout: background: %w", err)
	}
	if l.Camera.Fov <= 0 {
		l.Camera.Fov = 75
	}
	for i, ld := range l.Lights {
		switch ld.Kind {
		case "ambient", "point", "spot":
		default:
			return Layout{}, fmt.Errorf("layout: light %d: unknown kind %q", i, ld.Kind)
		}
		if ld.Color != "" {
			if _, err := parseColor(ld.Color); err != nil {
				return Layout{}, fmt.Errorf("layout: light %d: %w", i, err)
			}
		}
	}
	if l.Face.Scale == 0 {
		l.Face.Scale = faceScale
	}
	if l.Face.Color == "" {
		l.Face.Color = faceColor
	}
	if _, err := parseColor(l.Face.Color); err != nil {
		return Layout{}, fmt.Errorf("layout: face: %w", err)
	}
	seen := make(map[[3]float32]string)
	for i := range l.Layers {
		layer := &l.Layers[i]
		if layer.Color == "" {
			layer.Color = boxColor
		}
		if _, err := parseColor(layer.Color); err != nil {
			return Layout{}, fmt.Errorf("layout: layer %q: %w", layer.Name, err)
		}
		for _, p := range layer.Boxes {
			if other, dup := seen[p]; dup {
				return Layout{}, fmt.Errorf("layout: layer %q: box %v already declared in layer %q", layer.Name, p, other)
			}
			seen[p] = layer.Name
		}
	}
	return l, nil
}

// DefaultLayout returns the embedded 3×3×3 layout.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayout)
}

// MustLayout is DefaultLayout for program start; the embedded file is part of the binary, so a failure
// is a build mistake.
func MustLayout() Layout {
	l, err := DefaultLayout()
	if err != nil {
		panic(err)
	}
	return l
}

// Box returns a unit orange cube at position.
func Box(position rl.Vector3) *scenegraph.Node {
	return scenegraph.NewMesh("box", position, 1, mustColor(boxColor))
}

// CubeFace returns the oversized black backdrop cube at position.
func CubeFace(position rl.Vector3) *scenegraph.Node {
	return scenegraph.NewMesh("face", position, faceScale, mustColor(faceColor))
}

// parseColor accepts "#rgb", "#rrggbb" or "#rrggbbaa".
func parseColor(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func mustColor(s string) rl.Color {
	c, err := parseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func vec(p [3]float32) rl.Vector3 {
	return rl.NewVector3(p[0], p[1], p[2])
}
