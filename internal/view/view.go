package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vpetrova3/my3d-modeller/internal/trackball"
)

// Perspective and framing constants, the single place the projection is defined.
const (
	// FOVDegrees is the vertical field of view.
	FOVDegrees = 70
	NearPlane  = 0.1
	FarPlane   = 1000

	// Distance is how far the scene is pulled back from the eye along Z. Cursor rays
	// originate at the eye, so this is also where ray origins sit in camera space.
	Distance = 15

	// panScale converts pixel drag deltas into world pan units.
	panScale = 1.0 / 60.0
)

// Camera is the live view state: trackball orientation plus a pan/zoom translation.
// Each frame it produces the modelview matrix (and inverse) handed to every scene
// operation, cursor rays in the same space, and the eye/target/up triple the renderer
// needs. It does no drawing itself, so it tests without a window.
type Camera struct {
	Orbit *trackball.Trackball
	pan   mgl32.Vec3
}

// New returns a camera with the trackball seeded from the given angles (degrees).
func New(theta, phi float32) *Camera {
	return &Camera{Orbit: trackball.New(theta, phi)}
}

// Pan shifts the view parallel to the screen by a pixel delta (middle-button drag).
func (c *Camera) Pan(dx, dy float32) {
	c.pan[0] += dx * panScale
	c.pan[1] += dy * panScale
}

// Zoom moves the scene toward (positive) or away from (negative) the eye by whole
// wheel steps.
func (c *Camera) Zoom(delta float32) {
	c.pan[2] += delta
}

// Modelview returns the camera transform applied to the scene: pan translation
// composed with the trackball rotation. Picking rays are expressed in the space this
// matrix maps into.
func (c *Camera) Modelview() mgl32.Mat4 {
	return mgl32.Translate3D(c.pan.X(), c.pan.Y(), c.pan.Z()).Mul4(c.Orbit.Matrix())
}

// Inverse returns the inverse modelview, used to map camera-space drag deltas and
// spawn points back into world space.
func (c *Camera) Inverse() mgl32.Mat4 {
	return c.Modelview().Inv()
}

// Ray converts a cursor position (pixels, bottom-left origin) into a camera-space ray:
// origin at the eye, unit direction through the cursor on the image plane. The eye
// sits at (0, 0, Distance) because the projection pulls the scene back by Distance.
func (c *Camera) Ray(x, y, width, height float32) (origin, direction mgl32.Vec3) {
	halfV := math32.Tan(mgl32.DegToRad(FOVDegrees) / 2)
	px := (2*x/width - 1) * halfV * (width / height)
	py := (2*y/height - 1) * halfV
	origin = mgl32.Vec3{0, 0, Distance}
	direction = mgl32.Vec3{px, py, -1}.Normalize()
	return origin, direction
}

// EyeTargetUp returns the world-space eye position, look target and up vector that
// draw the same frame the picking math assumes: the full view transform is the
// Distance pull-back composed with the modelview, and these are its inverse applied
// to the canonical camera.
func (c *Camera) EyeTargetUp() (eye, target, up mgl32.Vec3) {
	inv := mgl32.Translate3D(0, 0, -Distance).Mul4(c.Modelview()).Inv()
	eye = inv.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	target = inv.Mul4x1(mgl32.Vec4{0, 0, -1, 1}).Vec3()
	up = inv.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	return eye, target, up
}
