package ui

import "image"

// Button is a rectangular click target. Label is a message key.
type Button struct {
	Rect  image.Rectangle
	Label string

	hovered bool
	pressed bool
}

// NewButton returns a button covering rect.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Label: label}
}

// Hover records whether the cursor is over the button.
func (b *Button) Hover(x, y int) bool {
	b.hovered = pointInRect(x, y, b.Rect)
	return b.hovered
}

// Press reports a click at (x, y). Buttons fire on press.
func (b *Button) Press(x, y int) bool {
	b.pressed = pointInRect(x, y, b.Rect)
	return b.pressed
}

// Release clears the pressed state.
func (b *Button) Release() { b.pressed = false }

func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }
