package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// backgroundGray is the viewport clear color.
var backgroundGray = rl.NewColor(102, 102, 102, 255)

// Run opens the window and drives the main loop: update (input) each frame, then
// clear and draw. ESC is reserved for the console toggle; quit via the window button.
func Run(width, height int32, title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundGray)
		draw()
		rl.EndDrawing()
	}
}
