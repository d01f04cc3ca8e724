package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "creature viewer"
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update with the frame
// time (input, animation, spawning), then clears the screen and calls draw.
// The clear color stands in for the AR passthrough background.
func Run(update func(dt float32), draw func()) {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 24, 255))
		draw()
		rl.EndDrawing()
	}
}
