package bramble

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	fpsWidgetW = 100
	fpsWidgetH = 32
)

// NewFPSWidget creates a rectangular polygon node that displays the current
// FPS and TPS. Its texture is redrawn every ~0.5 seconds with
// ebitenutil.DebugPrint.
func NewFPSWidget() *Node {
	img := ebiten.NewImage(fpsWidgetW, fpsWidgetH)
	tex := NewTexture("fps_widget", img, true)

	outline := []Vec2{{0, 0}, {fpsWidgetW, 0}, {fpsWidgetW, fpsWidgetH}, {0, fpsWidgetH}}
	_, node := NewFilledPolygon("fps_widget", tex, outline, false)
	tex.Release() // the polygon owns the texture now
	node.RenderLayer = 255

	var lastUpdate float64
	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
