package gamemath

import "math"

// Projection maps y-up world units onto a y-down pixel grid. The world point
// (OriginX, OriginY) lands on pixel (0, 0).
type Projection struct {
	PixelsPerUnit float64
	OriginX       float64
	OriginY       float64
}

func (p Projection) ToPixels(x, y float64) (px, py float64) {
	return (x - p.OriginX) * p.PixelsPerUnit, (p.OriginY - y) * p.PixelsPerUnit
}

// Rebase moves OriginX forward in whole steps until leftX lies less than one
// step ahead of it, and returns the pixel distance every projected point moved
// left by. The origin never moves back.
func (p *Projection) Rebase(leftX, step float64) (shiftPx float64) {
	if step <= 0 {
		return 0
	}
	n := math.Floor((leftX - p.OriginX) / step)
	if n < 1 {
		return 0
	}
	shift := n * step
	p.OriginX += shift
	return shift * p.PixelsPerUnit
}

// RectToPixels converts a world rect given by its center and size into the
// top-left corner and size of the matching pixel rect.
func (p Projection) RectToPixels(cx, cy, w, h float64) (x, y, pw, ph float64) {
	pw = w * p.PixelsPerUnit
	ph = h * p.PixelsPerUnit
	px, py := p.ToPixels(cx, cy)
	return px - pw/2, py - ph/2, pw, ph
}
