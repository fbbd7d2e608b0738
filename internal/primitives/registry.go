package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vpetrova3/my3d-modeller/internal/node"
	"github.com/vpetrova3/my3d-modeller/internal/palette"
)

// Sphere mesh resolution.
const (
	sphereRings  = 16
	sphereSlices = 16
)

// selectedBoost is added to each color channel of a highlighted node, the raylib
// stand-in for an emissive term.
const selectedBoost = 77 // ≈ 0.3 in [0, 1]

// cached holds the mesh and material for one shape kind, created lazily on first draw
// so GPU resources are allocated after the window and GL context exist.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps shape kinds to mesh and material and draws scene-graph DrawCalls.
// One registry serves the whole session; Unload releases its GPU resources.
type Registry struct {
	cache map[node.Kind]cached
}

// NewRegistry returns a registry with nothing cached yet.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[node.Kind]cached)}
}

// ensure creates the mesh and material for kind if not yet cached. Cube side 1 and
// sphere radius 0.5 match the unit bounding box the picking math assumes.
func (r *Registry) ensure(kind node.Kind) cached {
	if c, ok := r.cache[kind]; ok {
		return c
	}
	var mesh rl.Mesh
	switch kind {
	case node.KindSphere:
		mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	default:
		mesh = rl.GenMeshCube(1, 1, 1)
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[kind] = c
	return c
}

// Draw renders one DrawCall: the cached mesh for the call's kind, under its placement
// matrix, tinted with the palette color and brightened when selected. Must be called
// between BeginMode3D and EndMode3D.
func (r *Registry) Draw(call node.DrawCall, pal *palette.Palette) {
	c := r.ensure(call.Kind)

	col := pal.Color(call.ColorIndex)
	tint := rl.NewColor(channel(col.R, call.Selected), channel(col.G, call.Selected), channel(col.B, call.Selected), 255)
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.DrawMesh(c.mesh, c.mtl, ToRLMatrix(call.Transform))
}

// Unload releases cached GPU meshes. Call once, after the draw loop exits.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, kind)
	}
}

// channel converts a [0,1] palette component to a byte, adding the highlight boost for
// selected nodes.
func channel(v float32, selected bool) uint8 {
	b := int32(v * 255)
	if selected {
		b += selectedBoost
	}
	if b > 255 {
		b = 255
	}
	if b < 0 {
		b = 0
	}
	return uint8(b)
}

// loadLitShader returns a minimal headlight shader: directional diffuse plus ambient,
// enough to read shape without any material tuning. Vertex attributes match raylib
// meshes (vertexPosition, vertexNormal).
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(vec3(0.3, 0.8, 0.6));
  float shade = 0.35 + 0.65 * max(dot(N, L), 0.0);
  finalColor = vec4(colDiffuse.rgb * shade, colDiffuse.a);
}
`
)
