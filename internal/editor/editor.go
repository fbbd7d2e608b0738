package editor

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vpetrova3/my3d-modeller/internal/hud"
	"github.com/vpetrova3/my3d-modeller/internal/logger"
	"github.com/vpetrova3/my3d-modeller/internal/node"
	"github.com/vpetrova3/my3d-modeller/internal/palette"
	"github.com/vpetrova3/my3d-modeller/internal/primitives"
	"github.com/vpetrova3/my3d-modeller/internal/scene"
	"github.com/vpetrova3/my3d-modeller/internal/view"
)

// Editor converts raw mouse and keyboard state into the scene's abstract operations
// (pick, drag, place, scale, recolor, orbit, pan, zoom) and draws each frame. It is
// the only place input polling happens; the scene and view consume pre-built rays and
// matrices and never see the device layer.
//
// Bindings follow the classic modeller layout: left-click picks, left-drag moves the
// selection, right-drag orbits, middle-drag pans, the wheel zooms; C, S and F place a
// cube, sphere or figure under the cursor; up/down arrows scale the selection and
// left/right arrows cycle its color.
type Editor struct {
	scene *scene.Scene
	cam   *view.Camera
	reg   *primitives.Registry
	pal   *palette.Palette
	hud   *hud.HUD
	log   *logger.Logger

	GridVisible bool

	lastMouse rl.Vector2
	calls     []node.DrawCall // reused per frame
}

// New wires an editor over the scene and camera.
func New(scn *scene.Scene, cam *view.Camera, pal *palette.Palette, log *logger.Logger) *Editor {
	return &Editor{
		scene:       scn,
		cam:         cam,
		reg:         primitives.NewRegistry(),
		pal:         pal,
		hud:         hud.New(),
		log:         log,
		GridVisible: true,
	}
}

// Update polls input and applies this frame's commands. When captured is true (the
// console is open) all editor bindings are suspended so typing does not fall through
// into the viewport.
func (e *Editor) Update(captured bool) {
	pos := rl.GetMousePosition()
	defer func() { e.lastMouse = pos }()
	if captured {
		return
	}

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	// The core uses a bottom-left origin; raylib reports top-left.
	x, y := pos.X, h-pos.Y
	lastX, lastY := e.lastMouse.X, h-e.lastMouse.Y
	dx, dy := x-lastX, y-lastY
	moved := dx != 0 || dy != 0

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		origin, dir := e.cam.Ray(x, y, w, h)
		e.scene.Pick(origin, dir, e.cam.Modelview())

	case rl.IsMouseButtonDown(rl.MouseButtonLeft) && moved:
		origin, dir := e.cam.Ray(x, y, w, h)
		e.scene.MoveSelected(origin, dir, e.cam.Inverse())

	case rl.IsMouseButtonDown(rl.MouseButtonRight) && moved:
		// Trackball coordinates are viewport-normalized to [-1, 1].
		e.cam.Orbit.DragTo((2*lastX-w)/w, (2*lastY-h)/h, 2*dx/w, 2*dy/h)

	case rl.IsMouseButtonDown(rl.MouseButtonMiddle) && moved:
		e.cam.Pan(dx, dy)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		e.cam.Zoom(wheel)
	}

	switch {
	case rl.IsKeyPressed(rl.KeyC):
		e.placeAt(node.NameCube, x, y, w, h)
	case rl.IsKeyPressed(rl.KeyS):
		e.placeAt(node.NameSphere, x, y, w, h)
	case rl.IsKeyPressed(rl.KeyF):
		e.placeAt(node.NameFigure, x, y, w, h)
	case rl.IsKeyPressed(rl.KeyUp):
		e.scene.ScaleSelected(true)
	case rl.IsKeyPressed(rl.KeyDown):
		e.scene.ScaleSelected(false)
	case rl.IsKeyPressed(rl.KeyLeft):
		e.scene.CycleSelectedColor(true)
	case rl.IsKeyPressed(rl.KeyRight):
		e.scene.CycleSelectedColor(false)
	}
}

// placeAt spawns a node of kind under the cursor (bottom-left-origin pixels).
func (e *Editor) placeAt(kind string, x, y, w, h float32) {
	origin, dir := e.cam.Ray(x, y, w, h)
	if _, err := e.scene.Place(kind, origin, dir, e.cam.Inverse()); err != nil {
		e.log.Log("place: " + err.Error())
		return
	}
	e.log.Log("placed " + kind)
}

// PlaceAtCenter spawns a node of kind on the ray through the screen center, for the
// console's place command.
func (e *Editor) PlaceAtCenter(kind string) error {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	origin, dir := e.cam.Ray(w/2, h/2, w, h)
	_, err := e.scene.Place(kind, origin, dir, e.cam.Inverse())
	if err == nil {
		e.log.Log("placed " + kind)
	}
	return err
}

// Draw renders the 3D frame (grid, then every node) followed by the 2D inspector
// overlay. The raylib camera is rebuilt each frame from the same view state the
// picking math uses, so what is drawn is exactly what rays test against.
func (e *Editor) Draw() {
	rl.BeginMode3D(e.rlCamera())
	if e.GridVisible {
		drawGrid()
	}
	e.calls = e.scene.AppendDrawCalls(e.calls[:0])
	for _, call := range e.calls {
		e.reg.Draw(call, e.pal)
	}
	e.drawSelectionBox()
	rl.EndMode3D()

	e.drawHUD()
}

// drawSelectionBox outlines the selected node's bounding box. Nodes carry no
// rotation, so the world-space box is the local box offset by the node's translation.
func (e *Editor) drawSelectionBox() {
	sel := e.scene.Selected()
	if sel == nil {
		return
	}
	box := sel.Box()
	center := sel.Position().Add(box.Center)
	size := box.HalfExtent.Mul(2)
	rl.DrawCubeWiresV(primitives.ToRLVector3(center), primitives.ToRLVector3(size), rl.White)
}

// Unload releases renderer resources. Call after the run loop exits.
func (e *Editor) Unload() {
	e.reg.Unload()
}

// rlCamera converts the view state into the raylib camera for this frame.
func (e *Editor) rlCamera() rl.Camera3D {
	eye, target, up := e.cam.EyeTargetUp()
	return rl.Camera3D{
		Position:   primitives.ToRLVector3(eye),
		Target:     primitives.ToRLVector3(target),
		Up:         primitives.ToRLVector3(up),
		Fovy:       view.FOVDegrees,
		Projection: rl.CameraPerspective,
	}
}

// drawHUD feeds the inspector from the current selection.
func (e *Editor) drawHUD() {
	sel := e.scene.Selected()
	if sel == nil {
		e.hud.Draw(false, hud.Selection{})
		return
	}
	pos := sel.Position()
	scl := sel.ScaleFactors()
	e.hud.Draw(true, hud.Selection{
		Name:       sel.Name(),
		Position:   [3]float32{pos.X(), pos.Y(), pos.Z()},
		Scale:      [3]float32{scl.X(), scl.Y(), scl.Z()},
		ColorIndex: sel.ColorIndex(),
	})
}
