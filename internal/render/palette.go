package render

import (
	"image/color"

	"fiscal-sim/internal/core"
)

// Screen palette.
var (
	Background   = color.RGBA{R: 25, G: 40, B: 65, A: 255}
	PanelBG      = color.RGBA{R: 40, G: 60, B: 90, A: 255}
	HeaderBG     = color.RGBA{R: 30, G: 100, B: 170, A: 255}
	ButtonBG     = color.RGBA{R: 50, G: 150, B: 200, A: 255}
	ButtonHover  = color.RGBA{R: 70, G: 170, B: 230, A: 255}
	ButtonActive = color.RGBA{R: 90, G: 190, B: 250, A: 255}
	Text         = color.RGBA{R: 220, G: 240, B: 255, A: 255}
	Highlight    = color.RGBA{R: 255, G: 215, B: 80, A: 255}
	Warning      = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Positive     = color.RGBA{R: 100, G: 255, B: 150, A: 255}
	Negative     = color.RGBA{R: 255, G: 150, B: 100, A: 255}
	Grid         = color.RGBA{R: 80, G: 110, B: 140, A: 255}
	Shade        = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// ToneColor maps a display tone to its text colour.
func ToneColor(t core.Tone) color.RGBA {
	switch t {
	case core.TonePositive:
		return Positive
	case core.ToneNegative:
		return Negative
	default:
		return Text
	}
}

// ColorScale returns the normalised components of c for colour-scaling a
// white source image.
func ColorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
