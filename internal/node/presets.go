package node

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vpetrova3/my3d-modeller/internal/geom"
)

// Placeable kind names, the closed set Scene.Place and the console accept.
const (
	NameCube   = "cube"
	NameSphere = "sphere"
	NameFigure = "figure"
)

// Kinds lists every placeable kind name, in a stable order for help text.
func Kinds() []string {
	return []string{NameCube, NameSphere, NameFigure}
}

// New constructs a node by kind name. An unknown kind is a caller bug and comes back
// as an error rather than a silently missing node.
func New(kind string) (*Node, error) {
	switch kind {
	case NameCube:
		return NewCube(), nil
	case NameSphere:
		return NewSphere(), nil
	case NameFigure:
		return NewFigure(), nil
	default:
		return nil, fmt.Errorf("unknown node kind: %q", kind)
	}
}

// NewCube returns a unit cube primitive.
func NewCube() *Node {
	return newNode(NameCube, KindCube)
}

// NewSphere returns a sphere primitive with diameter 1, matching the cube's footprint.
func NewSphere() *Node {
	return newNode(NameSphere, KindSphere)
}

// NewFigure builds the stacked-figure preset: three spheres along Y with shrinking
// scale, sharing one starting color, under a bounding box tall enough to enclose the
// whole stack. Other presets need only a different child configuration, not a new type.
func NewFigure() *Node {
	n := newNode(NameFigure, KindSphere)

	base := NewSphere()
	mid := NewSphere()
	top := NewSphere()
	base.Translate(0, -0.6, 0)
	mid.Translate(0, 0.1, 0)
	top.Translate(0, 0.75, 0)

	// Child scale composes against the parent's scaling once, at construction; later
	// parent scale steps do not rewrite it.
	mid.scaling = n.scaling.Mul4(mgl32.Scale3D(0.8, 0.8, 0.8))
	top.scaling = n.scaling.Mul4(mgl32.Scale3D(0.7, 0.7, 0.7))

	n.children = []*Node{base, mid, top}
	for _, c := range n.children {
		c.colorIndex = n.colorIndex
	}
	n.box = geom.New(mgl32.Vec3{}, mgl32.Vec3{0.5, 1.1, 0.5})
	return n
}
