//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"fiscal-sim/internal/render"
)

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	text.Draw(dst, s, face, x, y+face.Metrics().Ascent.Ceil(), c)
}

// DrawTextRight draws s so that it ends at column right.
func DrawTextRight(dst *ebiten.Image, s string, face font.Face, right, y int, c color.Color) {
	DrawText(dst, s, face, right-TextWidth(face, s), y, c)
}

// DrawPanel fills r and draws a header title inside it.
func DrawPanel(dst *ebiten.Image, r image.Rectangle, title string, face font.Face) {
	fillRect(dst, r, render.PanelBG)
	if title != "" {
		DrawText(dst, title, face, r.Min.X+20, r.Min.Y+10, render.Text)
	}
}

// Draw paints the track, fill, label, value and handle.
func (s *Slider) Draw(dst *ebiten.Image, face font.Face, label, value string) {
	fillRect(dst, s.Track, render.PanelBG)
	strokeRect(dst, s.Track, 1, render.Grid)
	fill := render.Positive
	if s.Hot() {
		fill = render.Negative
	}
	if w := s.FillWidth(); w > 0 {
		vector.DrawFilledRect(dst, float32(s.Track.Min.X), float32(s.Track.Min.Y), float32(w), float32(s.Track.Dy()), fill, false)
	}
	DrawText(dst, label, face, s.Track.Min.X, s.Track.Min.Y-25, render.Text)
	cy := float32(s.Track.Min.Y+s.Track.Max.Y) / 2
	vh := face.Metrics().Height.Ceil()
	DrawTextRight(dst, value, face, s.Track.Max.X+60, int(cy)-vh/2, render.Text)

	hx := float32(s.HandleX())
	vector.DrawFilledCircle(dst, hx, cy, handleRadius, render.Highlight, true)
	vector.StrokeCircle(dst, hx, cy, handleRadius, 2, render.Text, true)
}

// Draw paints the button with its already-translated label.
func (b *Button) Draw(dst *ebiten.Image, face font.Face, label string) {
	bg := render.ButtonBG
	switch {
	case b.pressed:
		bg = render.ButtonActive
	case b.hovered:
		bg = render.ButtonHover
	}
	fillRect(dst, b.Rect, bg)
	strokeRect(dst, b.Rect, 2, render.Text)
	w := TextWidth(face, label)
	h := face.Metrics().Height.Ceil()
	DrawText(dst, label, face, b.Rect.Min.X+(b.Rect.Dx()-w)/2, b.Rect.Min.Y+(b.Rect.Dy()-h)/2, render.Text)
}

// DrawHighlight outlines the button, used while the hover tip is shown.
func (b *Button) DrawHighlight(dst *ebiten.Image) {
	strokeRect(dst, b.Rect, 3, render.Highlight)
}

// ChartLabels are the translated strings drawn on the trend chart.
type ChartLabels struct {
	Title  string
	Series string
	Target string
}

// DrawChart draws the panel, grid, target line and the series.
func DrawChart(dst *ebiten.Image, c render.Chart, fonts Fonts, labels ChartLabels, series []float64) {
	b := c.Bounds
	DrawPanel(dst, b, labels.Title, fonts.Header)
	for _, row := range c.GridRows() {
		vector.StrokeLine(dst, float32(b.Min.X), row, float32(b.Max.X), row, 1, render.Grid, false)
	}
	pts := c.Project(series)
	if len(pts) < 2 {
		return
	}
	ty := c.TargetY(series)
	vector.StrokeLine(dst, float32(b.Min.X), ty, float32(b.Max.X), ty, 2, render.Highlight, false)
	DrawTextRight(dst, labels.Target, fonts.Small, b.Max.X-10, int(ty)-20, render.Highlight)

	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, 3, render.Positive, true)
	}
	for _, pt := range pts {
		vector.DrawFilledCircle(dst, pt.X, pt.Y, 4, render.Positive, true)
	}
	DrawText(dst, labels.Series, fonts.Small, b.Min.X+20, b.Min.Y+30, render.Positive)
}
