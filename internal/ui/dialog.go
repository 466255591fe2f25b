package ui

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Choice is the answer to the end-of-game prompt.
type Choice uint8

const (
	ChoicePending Choice = iota
	ChoiceRestart
	ChoiceQuit
	// ChoiceFailed means no native dialog could be shown; the in-game
	// message box takes over.
	ChoiceFailed
)

// DialogText holds the already-localised strings of a prompt.
type DialogText struct {
	Title   string
	Message string
	Restart string
	Quit    string
}

var question = zenity.Question

// Prompt is a native dialog running on its own goroutine. The game loop
// polls it once per frame.
type Prompt struct {
	done chan Choice
}

// AskRestart opens the end-of-game dialog without blocking the caller.
func AskRestart(t DialogText) *Prompt {
	p := &Prompt{done: make(chan Choice, 1)}
	go func() {
		err := question(t.Message,
			zenity.Title(t.Title),
			zenity.OKLabel(t.Restart),
			zenity.CancelLabel(t.Quit),
			zenity.InfoIcon,
		)
		switch {
		case err == nil:
			p.done <- ChoiceRestart
		case errors.Is(err, zenity.ErrCanceled):
			p.done <- ChoiceQuit
		default:
			p.done <- ChoiceFailed
		}
	}()
	return p
}

// Poll returns the answer once the dialog has closed.
func (p *Prompt) Poll() Choice {
	if p == nil {
		return ChoicePending
	}
	select {
	case c := <-p.done:
		return c
	default:
		return ChoicePending
	}
}
