package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Overlay text refreshes every updateInterval frames.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, heap allocation) in the top-right corner. Both
// are off by default and toggled from the console.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays. Call last in the draw loop so the text sits on
// top of the scene and the console.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.fpsText == "" || d.ShowMemAlloc && d.memText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.fpsText, fontSize)
		rl.DrawText(d.fpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		w := rl.MeasureText(d.memText, fontSize)
		rl.DrawText(d.memText, screenW-w-padding, y, fontSize, rl.Green)
	}
}
