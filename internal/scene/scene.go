package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vpetrova3/my3d-modeller/internal/node"
)

// PlaceDepth is the camera-space distance at which newly placed nodes spawn along the
// cursor ray.
const PlaceDepth = 15.0

// Scene is the flat collection of top-level nodes plus the single selection. It
// consumes pre-built cursor rays and camera matrices (see internal/view) and never
// touches raw input or the renderer, which keeps every operation testable without a
// window. At most one node is selected at a time; any Pick clears the previous
// selection before evaluating the new ray.
type Scene struct {
	nodes    []*node.Node
	selected int        // index into nodes; -1 = none
	hitDepth float32    // ray distance recorded when the selection was picked
	hitPoint mgl32.Vec3 // camera-space point recorded at pick time, the drag reference
}

// New returns an empty scene with nothing selected.
func New() *Scene {
	return &Scene{selected: -1}
}

// Add appends a top-level node. Insertion order is iteration order, which also breaks
// picking ties: the first node at the minimum hit distance wins.
func (s *Scene) Add(n *node.Node) {
	s.nodes = append(s.nodes, n)
}

// Nodes returns the top-level nodes in insertion order.
func (s *Scene) Nodes() []*node.Node {
	return s.nodes
}

// Selected returns the currently selected node, or nil.
func (s *Scene) Selected() *node.Node {
	if s.selected < 0 {
		return nil
	}
	return s.nodes[s.selected]
}

// Pick selects the nearest node whose bounding box the ray hits. The previous
// selection is always cleared first, so a ray that misses everything leaves the scene
// with no selection. On a hit the distance and the hit point are recorded as the
// reference for subsequent drags.
func (s *Scene) Pick(origin, direction mgl32.Vec3, modelview mgl32.Mat4) {
	if s.selected >= 0 {
		s.nodes[s.selected].Select(false)
		s.selected = -1
	}

	minDist := float32(math32.MaxFloat32)
	closest := -1
	for i, n := range s.nodes {
		hit, dist := n.Pick(origin, direction, modelview)
		if hit && dist < minDist {
			minDist, closest = dist, i
		}
	}
	if closest < 0 {
		return
	}

	s.nodes[closest].Select(true)
	s.selected = closest
	s.hitDepth = minDist
	s.hitPoint = origin.Add(direction.Mul(minDist))
}

// MoveSelected drags the selection to follow a new cursor ray while keeping it at the
// depth recorded at pick time, so the object moves laterally instead of sliding toward
// or away from the camera. The camera-space delta is converted to the node's space as
// a direction (w = 0) through the inverse modelview. No selection, no effect.
func (s *Scene) MoveSelected(origin, direction mgl32.Vec3, invModelview mgl32.Mat4) {
	if s.selected < 0 {
		return
	}
	newPoint := origin.Add(direction.Mul(s.hitDepth))
	delta := newPoint.Sub(s.hitPoint)
	local := invModelview.Mul4x1(delta.Vec4(0)).Vec3()
	s.nodes[s.selected].Translate(local.X(), local.Y(), local.Z())
	s.hitPoint = newPoint
}

// Place spawns a new node of the given kind at PlaceDepth along the cursor ray,
// converting that camera-space point (w = 1) into world space through the inverse
// modelview. The node is appended but not selected. An unknown kind returns the
// constructor's error and leaves the scene unchanged.
func (s *Scene) Place(kind string, origin, direction mgl32.Vec3, invModelview mgl32.Mat4) (*node.Node, error) {
	n, err := node.New(kind)
	if err != nil {
		return nil, err
	}
	s.Add(n)

	at := origin.Add(direction.Mul(PlaceDepth))
	local := invModelview.Mul4x1(at.Vec4(1)).Vec3()
	n.Translate(local.X(), local.Y(), local.Z())
	return n, nil
}

// ScaleSelected applies one scale step to the selection; no selection, no effect.
func (s *Scene) ScaleSelected(up bool) {
	if s.selected < 0 {
		return
	}
	s.nodes[s.selected].Scale(up)
}

// CycleSelectedColor steps the selection's palette color; no selection, no effect.
func (s *Scene) CycleSelectedColor(forward bool) {
	if s.selected < 0 {
		return
	}
	s.nodes[s.selected].CycleColor(forward)
}

// Reset removes every node and clears the selection.
func (s *Scene) Reset() {
	s.nodes = nil
	s.selected = -1
}

// AppendDrawCalls collects renderer requests for every node, in insertion order.
func (s *Scene) AppendDrawCalls(dst []node.DrawCall) []node.DrawCall {
	for _, n := range s.nodes {
		dst = n.AppendDrawCalls(dst, mgl32.Ident4(), false)
	}
	return dst
}
