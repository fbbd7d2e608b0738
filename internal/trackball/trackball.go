package trackball

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Radius of the virtual sphere the cursor is projected onto, in viewport-normalized
	// [-1, 1] units.
	radius = 0.8

	// renormEvery bounds quaternion drift: after this many accumulated drags the
	// rotation is scaled back to unit length. Under exact arithmetic this is a no-op,
	// so the visible orientation never jumps.
	renormEvery = 97
)

// Trackball turns 2D mouse drags into a stable 3D orientation by accumulating a unit
// quaternion, the virtual-trackball model: drag start and end points are projected onto
// a sphere and the great-circle arc between them becomes an incremental rotation.
type Trackball struct {
	rotation mgl32.Quat
	drags    int
}

// New returns a trackball seeded from two angles in degrees: theta tilts about X,
// phi spins about Z. Both zero gives the identity orientation.
func New(theta, phi float32) *Trackball {
	xrot := mgl32.QuatRotate(mgl32.DegToRad(theta), mgl32.Vec3{1, 0, 0})
	zrot := mgl32.QuatRotate(mgl32.DegToRad(phi), mgl32.Vec3{0, 0, 1})
	return &Trackball{rotation: zrot.Mul(xrot)}
}

// DragTo accumulates the rotation for a drag from (x, y) by (dx, dy), all in
// viewport-normalized [-1, 1] coordinates. Start and end points are projected onto the
// virtual sphere; the increment rotates about the axis perpendicular to both by twice
// the half-chord angle. A zero delta changes nothing.
func (t *Trackball) DragTo(x, y, dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}

	start := mgl32.Vec3{x, y, project(radius, x, y)}
	end := mgl32.Vec3{x + dx, y + dy, project(radius, x+dx, y+dy)}

	axis := end.Cross(start)
	// A sub-pixel drag can underflow to identical projected points; normalizing
	// the zero cross product would fill the rotation with NaNs.
	if axis.Len() == 0 {
		return
	}
	span := mgl32.Clamp(start.Sub(end).Len()/(2*radius), -1, 1)
	incr := mgl32.QuatRotate(2*math32.Asin(span), axis.Normalize())

	t.rotation = t.rotation.Mul(incr)

	t.drags++
	if t.drags > renormEvery {
		t.rotation = t.rotation.Normalize()
		t.drags = 0
	}
}

// Rotation returns the accumulated orientation quaternion.
func (t *Trackball) Rotation() mgl32.Quat {
	return t.rotation
}

// Matrix returns the accumulated orientation as a 4×4 rotation matrix, ready to
// compose into the camera's view transform.
func (t *Trackball) Matrix() mgl32.Mat4 {
	return t.rotation.Mat4()
}

// project maps a 2D point at planar distance d from the origin onto the virtual sphere
// of radius r: inside r/√2 the spherical cap, outside a hyperbolic sheet that extends
// the surface smoothly past the equator so drags across the rim stay continuous.
func project(r, x, y float32) float32 {
	d := math32.Hypot(x, y)
	if d < r/math32.Sqrt2 {
		return math32.Sqrt(r*r - d*d)
	}
	t := r / math32.Sqrt2
	return t * t / d
}
