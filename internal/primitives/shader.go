package primitives

// Lit shader: ambient + one point light + one spot light with a soft (penumbra) edge, Blinn-Phong
// specular. Vertex attributes match raylib meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float hasPoint;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform vec3 spotColor;
uniform float spotCosOuter;
uniform float spotCosInner;
uniform float hasSpot;
out vec4 finalColor;

vec3 shade(vec3 N, vec3 V, vec3 L, vec3 color, vec3 albedo) {
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), 32.0) * 0.25;
  return (albedo * NdotL + vec3(spec) * step(0.0, NdotL)) * color;
}

void main() {
  vec3 albedo = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 result = ambient * albedo;
  if (hasPoint > 0.5) {
    vec3 L = normalize(pointPos - fragPosition);
    result += shade(N, V, L, pointColor, albedo);
  }
  if (hasSpot > 0.5) {
    vec3 L = normalize(spotPos - fragPosition);
    float cosTheta = dot(-L, normalize(spotDir));
    float cone = smoothstep(spotCosOuter, max(spotCosInner, spotCosOuter + 1e-4), cosTheta);
    result += shade(N, V, L, spotColor, albedo) * cone;
  }
  finalColor = vec4(result, colDiffuse.a);
}
`
)
