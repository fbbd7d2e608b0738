package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/vpetrova3/my3d-modeller/internal/commands"
	"github.com/vpetrova3/my3d-modeller/internal/config"
	"github.com/vpetrova3/my3d-modeller/internal/debug"
	"github.com/vpetrova3/my3d-modeller/internal/editor"
	"github.com/vpetrova3/my3d-modeller/internal/logger"
	"github.com/vpetrova3/my3d-modeller/internal/node"
	"github.com/vpetrova3/my3d-modeller/internal/scene"
)

// registerCommands builds the console command set. Commands mutate live state and the
// prefs struct, so toggles persist across runs once main saves prefs on exit.
func registerCommands(scn *scene.Scene, ed *editor.Editor, dbg *debug.Debug, log *logger.Logger, prefs *config.Prefs) *commands.Registry {
	reg := commands.NewRegistry()

	placeFS := flag.NewFlagSet("place", flag.ContinueOnError)
	reg.Register("place", placeFS, func() error {
		kind := placeFS.Arg(0)
		if kind == "" {
			return fmt.Errorf("place: missing kind (one of %s)", strings.Join(node.Kinds(), ", "))
		}
		return ed.PlaceAtCenter(kind)
	})

	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridVisible := gridFS.Bool("visible", true, "show the ground grid")
	reg.Register("grid", gridFS, func() error {
		ed.GridVisible = *gridVisible
		prefs.GridVisible = *gridVisible
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFS.Bool("show", true, "show the FPS overlay")
	reg.Register("fps", fpsFS, func() error {
		dbg.ShowFPS = *fpsShow
		prefs.ShowFPS = *fpsShow
		return nil
	})

	memFS := flag.NewFlagSet("mem", flag.ContinueOnError)
	memShow := memFS.Bool("show", true, "show the heap overlay")
	reg.Register("mem", memFS, func() error {
		dbg.ShowMemAlloc = *memShow
		prefs.ShowMemAlloc = *memShow
		return nil
	})

	nodesFS := flag.NewFlagSet("nodes", flag.ContinueOnError)
	reg.Register("nodes", nodesFS, func() error {
		ns := scn.Nodes()
		log.Logf("%d node(s)", len(ns))
		for i, n := range ns {
			marker := " "
			if n.Selected() {
				marker = "*"
			}
			pos := n.Position()
			log.Logf("%s %d: %s at %.2f, %.2f, %.2f", marker, i, n.Name(), pos.X(), pos.Y(), pos.Z())
		}
		return nil
	})

	resetFS := flag.NewFlagSet("reset", flag.ContinueOnError)
	reg.Register("reset", resetFS, func() error {
		scn.Reset()
		log.Log("scene cleared")
		return nil
	})

	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", helpFS, func() error {
		log.Log("commands: " + strings.Join(reg.Names(), ", "))
		log.Log("kinds: " + strings.Join(node.Kinds(), ", "))
		return nil
	})

	return reg
}
