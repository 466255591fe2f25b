//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"fiscal-sim/internal/render"
)

const (
	indicatorTop     = 60
	indicatorSpacing = 35
	indicatorInset   = 30
)

// Draw paints the indicator rows computed by the last Update.
func (h *IndicatorPanel) Draw(dst *ebiten.Image, fonts Fonts, title string) {
	DrawPanel(dst, h.Bounds, title, fonts.Header)
	for i, row := range h.rows {
		y := h.Bounds.Min.Y + indicatorTop + i*indicatorSpacing
		DrawText(dst, row.Label, fonts.Normal, h.Bounds.Min.X+indicatorInset, y, render.Text)
		DrawTextRight(dst, row.Value, fonts.Normal, h.Bounds.Max.X-indicatorInset, y, render.ToneColor(row.Tone))
	}
}
