package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays the current FPS and TPS. The text is re-rendered
// into its own small image about every half second.
type fpsWidget struct {
	img   *ebiten.Image
	since float64
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	w := &fpsWidget{img: ebiten.NewImage(100, 32)}
	w.render()
	return w
}

func (w *fpsWidget) update(dt float64) {
	w.since += dt
	if w.since < 0.5 {
		return
	}
	w.since = 0
	w.render()
}

func (w *fpsWidget) render() {
	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(w.img, op)
}
