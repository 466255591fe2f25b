//go:build ebiten

package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"fiscal-sim/internal/render"
)

const (
	messageTop     = 60
	messageSpacing = 35
	messageMargin  = 50
)

// Draw shades the screen and paints the box, its wrapped message and the
// two buttons with the given captions.
func (m *MessageBox) Draw(dst *ebiten.Image, fonts Fonts, restart, quit string) {
	if !m.visible {
		return
	}
	fillRect(dst, image.Rect(0, 0, ScreenWidth, ScreenHeight), render.Shade)
	fillRect(dst, m.Box, render.PanelBG)
	strokeRect(dst, m.Box, 3, render.Highlight)

	measure := func(s string) int { return TextWidth(fonts.Normal, s) }
	for i, line := range WrapWords(m.message, m.Box.Dx()-messageMargin, measure) {
		x := m.Box.Min.X + (m.Box.Dx()-measure(line))/2
		DrawText(dst, line, fonts.Normal, x, m.Box.Min.Y+messageTop+i*messageSpacing, render.Text)
	}
	m.Restart.Draw(dst, fonts.Normal, restart)
	m.Quit.Draw(dst, fonts.Normal, quit)
}

// DrawTip draws a hover tip just below and right of the cursor.
func DrawTip(dst *ebiten.Image, face font.Face, tip string, x, y int) {
	DrawText(dst, tip, face, x+15, y+15, render.Highlight)
}
