package scenegraph

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewAmbientLight returns an ambient light. Intensity 0 means 1.
func NewAmbientLight(color rl.Color, intensity float32) *Node {
	if intensity == 0 {
		intensity = 1
	}
	return &Node{Kind: KindAmbientLight, Name: "ambient", Color: color, Intensity: intensity, Scale: 1}
}

// NewPointLight returns an omnidirectional light at position.
func NewPointLight(position rl.Vector3, color rl.Color, intensity float32) *Node {
	if intensity == 0 {
		intensity = 1
	}
	return &Node{Kind: KindPointLight, Name: "point", Position: position, Color: color, Intensity: intensity, Scale: 1}
}

// NewSpotLight returns a spot light at position aimed at the origin. angle is the cone half-angle in
// radians; penumbra in [0,1] is the fraction of the cone that fades out.
func NewSpotLight(position rl.Vector3, angle, penumbra float32, color rl.Color, intensity float32) *Node {
	if intensity == 0 {
		intensity = 1
	}
	if penumbra < 0 {
		penumbra = 0
	}
	if penumbra > 1 {
		penumbra = 1
	}
	return &Node{
		Kind:      KindSpotLight,
		Name:      "spot",
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Angle:     angle,
		Penumbra:  penumbra,
		Scale:     1,
	}
}
