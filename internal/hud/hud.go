package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 10
	lineHeight = fontSize + 4
	panelWidth = 240
)

var (
	panelColor = rl.NewColor(24, 24, 24, 220)
	titleColor = rl.White
	labelColor = rl.LightGray
)

// Selection holds the data shown in the inspector panel. The editor fills it from the
// scene's selected node; hud does not depend on the scene packages.
type Selection struct {
	Name       string
	Position   [3]float32
	Scale      [3]float32
	ColorIndex int
}

// HUD draws the selection inspector in the top-left and a one-line key hint along the
// bottom. Stateless: everything is passed per frame.
type HUD struct{}

// New returns a HUD.
func New() *HUD {
	return &HUD{}
}

// Draw renders the inspector when a node is selected, plus the key hints. Call in the
// 2D overlay phase, after EndMode3D.
func (h *HUD) Draw(selected bool, sel Selection) {
	h.drawHints()
	if !selected {
		return
	}

	lines := []string{
		"Inspector",
		"Name: " + sel.Name,
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2]),
		fmt.Sprintf("Scale: %.2f, %.2f, %.2f", sel.Scale[0], sel.Scale[1], sel.Scale[2]),
		fmt.Sprintf("Color: %d", sel.ColorIndex),
	}
	height := int32(len(lines)*lineHeight + 2*padding)
	rl.DrawRectangle(0, 0, panelWidth, height, panelColor)

	y := int32(padding)
	for i, line := range lines {
		color := labelColor
		if i == 0 {
			color = titleColor
		}
		rl.DrawText(line, padding, y, fontSize, color)
		y += lineHeight
	}
}

// drawHints draws the binding summary along the bottom edge.
func (h *HUD) drawHints() {
	const hints = "LMB pick/drag | RMB orbit | MMB pan | wheel zoom | C/S/F place | arrows scale+color | ESC console"
	y := int32(rl.GetScreenHeight()) - lineHeight
	rl.DrawText(hints, padding, y, fontSize-4, rl.RayWhite)
}
