package primitives

import (
	"cube-scene/internal/scenegraph"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Registry owns the GPU resources for drawing cube nodes. The mesh and shader are created lazily on
// the first Draw so they are allocated after the window/OpenGL context exists; nothing here is touched
// while the scene is being declared.
type Registry struct {
	mesh    rl.Mesh
	mtl     rl.Material
	loaded  bool
	lit     bool
	locs    uniformLocs
	lights  lightUniforms
	viewPos [3]float32
}

var (
	vec3Uniforms   = [...]string{"viewPos", "ambient", "pointPos", "pointColor", "spotPos", "spotDir", "spotColor"}
	scalarUniforms = [...]string{"spotCosOuter", "spotCosInner", "hasPoint", "hasSpot"}
)

// uniformLocs holds shader locations in vec3Uniforms/scalarUniforms order; -1 means absent.
type uniformLocs struct {
	vec3   [len(vec3Uniforms)]int32
	scalar [len(scalarUniforms)]int32
}

func lookupUniforms(locate func(name string) int32) uniformLocs {
	var l uniformLocs
	for i, name := range vec3Uniforms {
		l.vec3[i] = locate(name)
	}
	for i, name := range scalarUniforms {
		l.scalar[i] = locate(name)
	}
	return l
}

// lightUniforms is the per-frame lighting state uploaded to the lit shader.
type lightUniforms struct {
	ambient      [3]float32
	pointPos     [3]float32
	pointColor   [3]float32
	spotPos      [3]float32
	spotDir      [3]float32
	spotColor    [3]float32
	spotCosOuter float32
	spotCosInner float32
	hasPoint     float32
	hasSpot      float32
}

// NewRegistry returns a registry with nothing loaded.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetView records the camera position and the scene's lights and uploads them to the lit shader. Lighting
// is the same for every cube, so call it once per frame inside BeginMode3D, before Draw. Only the first
// point and first spot light are used; ambient lights add up.
func (r *Registry) SetView(viewPos rl.Vector3, lights []*scenegraph.Node) {
	r.viewPos = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	r.lights = collectLights(lights)
	r.ensureCube()
	if r.lit {
		r.setUniforms()
	}
}

func collectLights(lights []*scenegraph.Node) lightUniforms {
	var u lightUniforms
	for _, l := range lights {
		c := colorVec(l.Color, l.Intensity)
		p := l.WorldPosition()
		switch l.Kind {
		case scenegraph.KindAmbientLight:
			u.ambient[0] += c[0]
			u.ambient[1] += c[1]
			u.ambient[2] += c[2]
		case scenegraph.KindPointLight:
			if u.hasPoint != 0 {
				continue
			}
			u.hasPoint = 1
			u.pointPos = [3]float32{p.X, p.Y, p.Z}
			u.pointColor = c
		case scenegraph.KindSpotLight:
			if u.hasSpot != 0 {
				continue
			}
			u.hasSpot = 1
			u.spotPos = [3]float32{p.X, p.Y, p.Z}
			d := rl.Vector3Normalize(rl.Vector3Negate(p))
			u.spotDir = [3]float32{d.X, d.Y, d.Z}
			u.spotColor = c
			u.spotCosOuter, u.spotCosInner = spotCone(l.Angle, l.Penumbra)
		}
	}
	return u
}

// spotCone returns the cosines of the outer and inner cone half-angles. The penumbra is the fraction of
// the cone, measured from the edge, over which light fades to zero.
func spotCone(angle, penumbra float32) (cosOuter, cosInner float32) {
	return math32.Cos(angle), math32.Cos(angle * (1 - penumbra))
}

func colorVec(c rl.Color, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

func (r *Registry) ensureCube() {
	if r.loaded {
		return
	}
	r.mesh = rl.GenMeshCube(1, 1, 1)
	r.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
		r.locs = lookupUniforms(func(name string) int32 { return rl.GetShaderLocation(shader, name) })
		r.lit = true
	}
	r.loaded = true
}

// Draw draws one mesh node at its world position and scale, tinted with its color.
// Must be called between BeginMode3D and EndMode3D; non-mesh nodes are skipped.
func (r *Registry) Draw(n *scenegraph.Node) {
	if n.Kind != scenegraph.KindMesh {
		return
	}
	r.ensureCube()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = n.Color
	}
	p := n.WorldPosition()
	s := n.WorldScale()
	transform := rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixTranslate(p.X, p.Y, p.Z))
	rl.DrawMesh(r.mesh, r.mtl, transform)
}

// Unload releases the mesh and material. The registry can be reused; it reloads on the next Draw.
func (r *Registry) Unload() {
	if !r.loaded {
		return
	}
	rl.UnloadMesh(&r.mesh)
	rl.UnloadMaterial(r.mtl)
	r.loaded = false
	r.lit = false
}

func (u lightUniforms) vec3Values(viewPos [3]float32) [len(vec3Uniforms)][3]float32 {
	return [len(vec3Uniforms)][3]float32{viewPos, u.ambient, u.pointPos, u.pointColor, u.spotPos, u.spotDir, u.spotColor}
}

func (u lightUniforms) scalarValues() [len(scalarUniforms)]float32 {
	return [len(scalarUniforms)]float32{u.spotCosOuter, u.spotCosInner, u.hasPoint, u.hasSpot}
}

// setUniforms uploads the lighting state through the cached locations.
func (r *Registry) setUniforms() {
	shader := r.mtl.Shader
	vec3 := r.lights.vec3Values(r.viewPos)
	for i, loc := range r.locs.vec3 {
		if loc >= 0 {
			rl.SetShaderValueV(shader, loc, vec3[i][:], rl.ShaderUniformVec3, 1)
		}
	}
	scalars := r.lights.scalarValues()
	for i, loc := range r.locs.scalar {
		if loc >= 0 {
			rl.SetShaderValue(shader, loc, scalars[i:i+1], rl.ShaderUniformFloat)
		}
	}
}
