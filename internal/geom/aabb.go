package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon guards the slab test against division by a near-zero direction component
// and gives the parallel-ray containment check some float tolerance.
const Epsilon = 1e-6

// rayFar seeds the far end of the clipping interval; hits beyond it are ignored.
const rayFar = 1e6

// AABB is an axis-aligned box in a node's local space: Center plus a non-negative
// HalfExtent per axis. Each node owns exactly one and scales it with itself, so
// picking keeps tracking the drawn size.
type AABB struct {
	Center     mgl32.Vec3
	HalfExtent mgl32.Vec3
}

// New returns a box at center with the given half extents (total width = 2*halfExtent).
func New(center, halfExtent mgl32.Vec3) AABB {
	return AABB{Center: center, HalfExtent: halfExtent}
}

// Scale grows or shrinks the box uniformly by f. No clamping: repeated steps can
// collapse the box to zero or grow it without bound; the caller controls step count.
func (b *AABB) Scale(f float32) {
	b.HalfExtent = b.HalfExtent.Mul(f)
}

// RayHit reports whether origin + t*direction hits this box, and the distance t of the
// nearest hit. toRay maps the box's local space into the space the ray is expressed in
// (typically the modelview composed with the node's placement), so translated, scaled
// and rotated boxes are handled without transforming the ray itself.
//
// Slab method: each local box axis under toRay (the rows of its rotational part) defines
// one slab; the running [tMin, tMax] interval is clipped against each slab in turn and
// the test fails as soon as the interval inverts. A ray parallel to a slab misses unless
// its origin already lies between the slab's faces.
func (b AABB) RayHit(origin, direction mgl32.Vec3, toRay mgl32.Mat4) (bool, float32) {
	lo := b.Center.Sub(b.HalfExtent)
	hi := b.Center.Add(b.HalfExtent)

	tMin, tMax := float32(0), float32(rayFar)
	boxPos := toRay.Col(3).Vec3() // box center in ray space
	delta := boxPos.Sub(origin)

	for i := 0; i < 3; i++ {
		axis := toRay.Row(i).Vec3()
		e := axis.Dot(delta)
		f := direction.Dot(axis)

		if math32.Abs(f) > Epsilon {
			t1 := (e + lo[i]) / f
			t2 := (e + hi[i]) / f
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tMin = math32.Max(tMin, t1)
			tMax = math32.Min(tMax, t2)
			if tMax < tMin {
				return false, 0
			}
			continue
		}
		if -e+lo[i] > Epsilon || -e+hi[i] < -Epsilon {
			return false, 0
		}
	}
	return true, tMin
}
