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
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws runtime counters in the top-right corner: FPS, heap allocation,
// and registered creature count. Everything is off by default.
type Overlay struct {
	ShowFPS     bool
	ShowMem     bool
	ShowObjects bool

	objectCount func() int
	frameCount  uint32
	fpsText     string
	memText     string
	objText     string
	memStats    runtime.MemStats
}

// New returns an overlay with all counters hidden. objectCount supplies the
// creature count line (e.g. scene.ObjectCount); nil disables that line.
func New(objectCount func() int) *Overlay {
	return &Overlay{objectCount: objectCount}
}

// Draw renders the enabled counters. Call after the 3D scene in the draw loop.
// Text is recomputed every updateInterval frames.
func (o *Overlay) Draw() {
	o.frameCount++
	update := o.frameCount%updateInterval == 0 || o.fpsText == ""
	if update {
		o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&o.memStats)
		o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		if o.objectCount != nil {
			o.objText = fmt.Sprintf("Creatures: %d", o.objectCount())
		}
	}

	y := int32(padding)
	if o.ShowFPS {
		drawRight(o.fpsText, y, rl.Green)
		y += lineHeight
	}
	if o.ShowMem {
		drawRight(o.memText, y, rl.Green)
		y += lineHeight
	}
	if o.ShowObjects && o.objText != "" {
		drawRight(o.objText, y, rl.SkyBlue)
	}
}

// drawRight draws text right-aligned against the screen edge.
func drawRight(text string, y int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	x := int32(rl.GetScreenWidth()) - w - padding
	rl.DrawText(text, x, y, fontSize, color)
}
