package main

import (
	"github.com/vpetrova3/my3d-modeller/internal/config"
	"github.com/vpetrova3/my3d-modeller/internal/console"
	"github.com/vpetrova3/my3d-modeller/internal/debug"
	"github.com/vpetrova3/my3d-modeller/internal/editor"
	"github.com/vpetrova3/my3d-modeller/internal/graphics"
	"github.com/vpetrova3/my3d-modeller/internal/logger"
	"github.com/vpetrova3/my3d-modeller/internal/node"
	"github.com/vpetrova3/my3d-modeller/internal/palette"
	"github.com/vpetrova3/my3d-modeller/internal/scene"
	"github.com/vpetrova3/my3d-modeller/internal/view"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "3D Modeller"
)

func main() {
	prefs, _ := config.Load()
	log := logger.New()
	pal := palette.Load(palette.DefaultPath)

	scn := scene.New()
	seedScene(scn)

	cam := view.New(prefs.CameraTheta, prefs.CameraPhi)
	ed := editor.New(scn, cam, pal, log)
	ed.GridVisible = prefs.GridVisible

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc

	con := console.New(log, registerCommands(scn, ed, dbg, log, &prefs))

	update := func() {
		con.Update()
		ed.Update(con.IsOpen())
	}
	draw := func() {
		ed.Draw()
		con.Draw()
		dbg.Draw()
	}
	graphics.Run(windowWidth, windowHeight, windowTitle, update, draw)

	ed.Unload()
	if err := config.Save(prefs); err != nil {
		log.Log("save prefs: " + err.Error())
	}
}

// seedScene drops a cube, a sphere and a figure so there is something to interact
// with on first launch.
func seedScene(scn *scene.Scene) {
	c := node.NewCube()
	c.Translate(2, 0, 2)
	c.SetColorIndex(2)
	scn.Add(c)

	s := node.NewSphere()
	s.Translate(-2, 0, 2)
	s.SetColorIndex(3)
	scn.Add(s)

	f := node.NewFigure()
	f.Translate(-2, 0, -2)
	scn.Add(f)
}
