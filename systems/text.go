package systems

import (
	"image/color"

	cfg "github.com/automoto/flapper/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

func textWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

// drawCentered draws s horizontally centered on the screen with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	x := (cfg.C.Width - textWidth(s, face)) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// drawScaled draws s centered on (cx, baseline) magnified by scale.
func drawScaled(screen *ebiten.Image, s string, face font.Face, cx, baseline float64, scale float32, clr color.Color) {
	w := float64(textWidth(s, face))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, 0)
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(cx, baseline)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, op)
}
