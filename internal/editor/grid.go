package editor

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 20
	gridMajorStep  = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 130
	axisAlpha      = 220
)

// drawGrid draws the ground reference on the XZ plane: minor and major lines plus
// colored axis lines through the origin (X red, Y green, Z blue).
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisAlpha)
	axisY := rl.NewColor(80, 220, 80, axisAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i++ {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)

		start.X, start.Z = float32(-gridExtent), float32(i)
		end.X, end.Z = float32(gridExtent), float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
