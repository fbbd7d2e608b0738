package node

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vpetrova3/my3d-modeller/internal/geom"
	"github.com/vpetrova3/my3d-modeller/internal/palette"
)

// Kind identifies the drawable shape of a primitive. The set is closed: the renderer
// dispatches on it directly instead of going through open-ended virtual dispatch.
type Kind int

const (
	KindCube Kind = iota
	KindSphere
)

// One discrete scale step, matching the up/down arrow bindings.
const (
	scaleUpFactor   = 1.1
	scaleDownFactor = 0.9
)

// Node is one placeable object in the scene: either a primitive shape or a composite
// that owns an ordered list of child nodes. Its placement is translation·scaling,
// applied in that order, on top of whatever its parent contributes. Every node owns a
// bounding box in its own unit-scale local frame; for composites the box encloses the
// whole group, so picking resolves at the composite's granularity.
type Node struct {
	name        string
	translation mgl32.Mat4
	scaling     mgl32.Mat4
	box         geom.AABB
	colorIndex  int
	selected    bool
	kind        Kind
	children    []*Node
}

// newNode returns a node with identity transforms, a unit bounding box, and a random
// starting color so freshly placed objects can be told apart.
func newNode(name string, kind Kind) *Node {
	return &Node{
		name:        name,
		translation: mgl32.Ident4(),
		scaling:     mgl32.Ident4(),
		box:         geom.New(mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5}),
		colorIndex:  rand.Intn(palette.Size),
		kind:        kind,
	}
}

// Name returns the kind name the node was constructed under ("cube", "sphere", "figure").
func (n *Node) Name() string { return n.name }

// Translate post-multiplies a translation onto the node's translation matrix. The move
// happens in the node's current local frame, so successive calls accumulate as a path
// rather than rebasing from the origin.
func (n *Node) Translate(dx, dy, dz float32) {
	n.translation = n.translation.Mul4(mgl32.Translate3D(dx, dy, dz))
}

// Scale applies one discrete uniform scale step (×1.1 up, ×0.9 down) to the node's
// scaling matrix and its bounding box. A composite scales only its own matrix; children
// keep the relative scale they were built with.
func (n *Node) Scale(up bool) {
	f := float32(scaleDownFactor)
	if up {
		f = scaleUpFactor
	}
	n.scaling = n.scaling.Mul4(mgl32.Scale3D(f, f, f))
	n.box.Scale(f)
}

// Pick tests a cursor ray against the node's bounding box and returns the hit distance.
// The box is authored in the node's unit-scale local frame, so the ray-space transform
// divides the node's own scaling back out: modelview·translation·scaling⁻¹. A singular
// scaling (an axis collapsed to exactly zero) has no inverse; picking then fails closed
// and reports no hit instead of propagating NaNs.
func (n *Node) Pick(origin, direction mgl32.Vec3, modelview mgl32.Mat4) (bool, float32) {
	invScale := n.scaling.Inv()
	if invScale == (mgl32.Mat4{}) {
		return false, 0
	}
	toRay := modelview.Mul4(n.translation).Mul4(invScale)
	return n.box.RayHit(origin, direction, toRay)
}

// Select sets the highlight state.
func (n *Node) Select(state bool) { n.selected = state }

// ToggleSelect flips the highlight state.
func (n *Node) ToggleSelect() { n.selected = !n.selected }

// Selected reports whether the node is currently highlighted.
func (n *Node) Selected() bool { return n.selected }

// CycleColor steps the node's palette index forward or backward, wrapping to the
// opposite end at the palette bounds. Composites cycle their children in lockstep so
// the group visibly changes color together.
func (n *Node) CycleColor(forward bool) {
	step := -1
	if forward {
		step = 1
	}
	n.colorIndex = (n.colorIndex + step + palette.Size) % palette.Size
	for _, c := range n.children {
		c.CycleColor(forward)
	}
}

// ColorIndex returns the node's palette index.
func (n *Node) ColorIndex() int { return n.colorIndex }

// SetColorIndex pins the palette index (seeding preset scenes, tests). The index is
// taken modulo the palette size.
func (n *Node) SetColorIndex(i int) {
	n.colorIndex = ((i % palette.Size) + palette.Size) % palette.Size
	for _, c := range n.children {
		c.SetColorIndex(i)
	}
}

// Position returns the node's local translation, for display in the inspector.
func (n *Node) Position() mgl32.Vec3 {
	return n.translation.Col(3).Vec3()
}

// ScaleFactors returns the diagonal of the node's scaling matrix.
func (n *Node) ScaleFactors() mgl32.Vec3 {
	return mgl32.Vec3{n.scaling.At(0, 0), n.scaling.At(1, 1), n.scaling.At(2, 2)}
}

// Box returns the node's bounding box.
func (n *Node) Box() geom.AABB { return n.box }

// Children returns the composite's children (nil for primitives).
func (n *Node) Children() []*Node { return n.children }

// DrawCall is one request to the renderer: draw Kind under Transform with the palette
// color at ColorIndex, highlighted when Selected.
type DrawCall struct {
	Kind       Kind
	Transform  mgl32.Mat4
	ColorIndex int
	Selected   bool
}

// AppendDrawCalls walks the node depth-first and appends one DrawCall per primitive.
// parent is the accumulated placement of the owner (identity for top-level nodes);
// selected is carried down so a selected composite highlights every child.
func (n *Node) AppendDrawCalls(dst []DrawCall, parent mgl32.Mat4, selected bool) []DrawCall {
	placement := parent.Mul4(n.translation).Mul4(n.scaling)
	sel := selected || n.selected
	if len(n.children) > 0 {
		for _, c := range n.children {
			dst = c.AppendDrawCalls(dst, placement, sel)
		}
		return dst
	}
	return append(dst, DrawCall{
		Kind:       n.kind,
		Transform:  placement,
		ColorIndex: n.colorIndex,
		Selected:   sel,
	})
}
