package ui

import "image"

// MessageBox is the modal end-of-game box with restart and quit buttons.
type MessageBox struct {
	Box     image.Rectangle
	Restart *Button
	Quit    *Button

	message string
	visible bool
}

// NewMessageBox returns a hidden, centred message box.
func NewMessageBox() *MessageBox {
	box, restart, quit := MessageBoxLayout()
	return &MessageBox{
		Box:     box,
		Restart: NewButton(restart, "button.restart"),
		Quit:    NewButton(quit, "button.quit"),
	}
}

// Show makes the box visible with msg.
func (m *MessageBox) Show(msg string) {
	m.message = msg
	m.visible = true
}

// Hide dismisses the box.
func (m *MessageBox) Hide() {
	m.visible = false
	m.message = ""
}

func (m *MessageBox) Visible() bool   { return m.visible }
func (m *MessageBox) Message() string { return m.message }

// Hover updates the hover state of both buttons.
func (m *MessageBox) Hover(x, y int) {
	m.Restart.Hover(x, y)
	m.Quit.Hover(x, y)
}

// Press resolves a click on the box. Clicks elsewhere, or on a hidden box,
// are pending.
func (m *MessageBox) Press(x, y int) Choice {
	if !m.visible {
		return ChoicePending
	}
	switch {
	case m.Restart.Press(x, y):
		return ChoiceRestart
	case m.Quit.Press(x, y):
		return ChoiceQuit
	default:
		return ChoicePending
	}
}
