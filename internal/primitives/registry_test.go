package primitives

import (
	"math"
	"testing"

	"cube-scene/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCollectLights(t *testing.T) {
	lights := []*scenegraph.Node{
		scenegraph.NewAmbientLight(rl.NewColor(51, 51, 51, 255), 1),
		scenegraph.NewAmbientLight(rl.NewColor(51, 0, 0, 255), 1),
		scenegraph.NewSpotLight(rl.NewVector3(10, 10, 10), 0.15, 1, rl.White, 1),
		scenegraph.NewPointLight(rl.NewVector3(-10, -10, -10), rl.White, 1),
		scenegraph.NewPointLight(rl.NewVector3(99, 99, 99), rl.White, 1),
	}
	u := collectLights(lights)

	if math.Abs(float64(u.ambient[0]-0.4)) > 1e-5 || math.Abs(float64(u.ambient[1]-0.2)) > 1e-5 {
		t.Errorf("Ambient lights should add up, got %v", u.ambient)
	}
	if u.hasPoint != 1 || u.pointPos != [3]float32{-10, -10, -10} {
		t.Errorf("Expected first point light at -10, got %v", u.pointPos)
	}
	if u.hasSpot != 1 || u.spotDir[0] >= 0 {
		t.Errorf("Spot light should aim at the origin, dir %v", u.spotDir)
	}
}

func TestSpotCone(t *testing.T) {
	outer, inner := spotCone(0.15, 1)
	if math.Abs(float64(outer)-math.Cos(0.15)) > 1e-6 {
		t.Errorf("Unexpected outer cosine %v", outer)
	}
	if inner != 1 {
		t.Errorf("Full penumbra should fade from the axis, inner cosine %v", inner)
	}
	outer, inner = spotCone(0.5, 0)
	if outer != inner {
		t.Errorf("Zero penumbra should give a hard edge, got %v/%v", outer, inner)
	}
}

func TestLookupUniforms_OneLookupPerName(t *testing.T) {
	calls := map[string]int{}
	locs := lookupUniforms(func(name string) int32 {
		calls[name]++
		if name == "hasSpot" {
			return -1
		}
		return int32(len(calls))
	})

	if len(calls) != len(vec3Uniforms)+len(scalarUniforms) {
		t.Errorf("Expected %d distinct lookups, got %v", len(vec3Uniforms)+len(scalarUniforms), calls)
	}
	for name, n := range calls {
		if n != 1 {
			t.Errorf("Uniform %q looked up %d times", name, n)
		}
	}
	if locs.vec3[0] != 1 {
		t.Errorf("Expected viewPos at location 1, got %d", locs.vec3[0])
	}
	if locs.scalar[len(scalarUniforms)-1] != -1 {
		t.Errorf("Expected missing hasSpot to stay -1, got %d", locs.scalar[len(scalarUniforms)-1])
	}
}

func TestUniformValues_MatchNames(t *testing.T) {
	u := lightUniforms{
		ambient:      [3]float32{1, 1, 1},
		spotColor:    [3]float32{2, 2, 2},
		spotCosOuter: 0.5,
		hasSpot:      1,
	}
	vec3 := u.vec3Values([3]float32{0, 0, 5})
	if vec3[0] != [3]float32{0, 0, 5} || vec3[1] != u.ambient || vec3[len(vec3)-1] != u.spotColor {
		t.Errorf("vec3 values out of order: %v", vec3)
	}
	scalars := u.scalarValues()
	if scalars[0] != 0.5 || scalars[len(scalars)-1] != 1 {
		t.Errorf("Scalar values out of order: %v", scalars)
	}
}
