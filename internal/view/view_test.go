package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayThroughCenter(t *testing.T) {
	c := New(0, 0)
	origin, dir := c.Ray(400, 300, 800, 600)

	assert.Equal(t, mgl32.Vec3{0, 0, Distance}, origin)
	assert.InDelta(t, 0, dir.Sub(mgl32.Vec3{0, 0, -1}).Len(), 1e-6,
		"center of the viewport looks straight down -Z")
}

func TestRayDirectionIsUnit(t *testing.T) {
	c := New(0, 0)
	for _, p := range [][2]float32{{0, 0}, {800, 600}, {123, 456}} {
		_, dir := c.Ray(p[0], p[1], 800, 600)
		assert.InDelta(t, 1, dir.Len(), 1e-5)
	}
}

func TestRayCornersDiverge(t *testing.T) {
	c := New(0, 0)
	_, right := c.Ray(800, 300, 800, 600)
	_, left := c.Ray(0, 300, 800, 600)
	assert.Greater(t, right.X(), float32(0))
	assert.Less(t, left.X(), float32(0))

	_, top := c.Ray(400, 600, 800, 600)
	assert.Greater(t, top.Y(), float32(0), "y is bottom-left origin: larger y looks up")
}

func TestModelviewAtRestIsIdentity(t *testing.T) {
	c := New(0, 0)
	assert.InDelta(t, 0, matDelta(c.Modelview(), mgl32.Ident4()), 1e-6)
}

func TestInverseRoundTrips(t *testing.T) {
	c := New(-25, 10)
	c.Pan(120, -60)
	c.Zoom(2)

	prod := c.Modelview().Mul4(c.Inverse())
	assert.InDelta(t, 0, matDelta(prod, mgl32.Ident4()), 1e-4)
}

func TestPanAccumulates(t *testing.T) {
	c := New(0, 0)
	c.Pan(60, 0)
	c.Pan(60, 120)

	mv := c.Modelview()
	require.InDelta(t, 2, mv.Col(3).X(), 1e-5, "two 60px drags = 2 world units")
	assert.InDelta(t, 2, mv.Col(3).Y(), 1e-5)
}

func TestEyeTargetUpAtRest(t *testing.T) {
	c := New(0, 0)
	eye, target, up := c.EyeTargetUp()

	assert.InDelta(t, 0, eye.Sub(mgl32.Vec3{0, 0, Distance}).Len(), 1e-4)
	assert.InDelta(t, 0, target.Sub(mgl32.Vec3{0, 0, Distance - 1}).Len(), 1e-4)
	assert.InDelta(t, 0, up.Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-4)
}

func TestZoomMovesEyeCloser(t *testing.T) {
	c := New(0, 0)
	before, _, _ := c.EyeTargetUp()
	c.Zoom(3)
	after, _, _ := c.EyeTargetUp()
	assert.InDelta(t, 3, before.Z()-after.Z(), 1e-4,
		"zooming in pulls the scene toward the eye")
}

func matDelta(a, b mgl32.Mat4) float32 {
	var max float32
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}
