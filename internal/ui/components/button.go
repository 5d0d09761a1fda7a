package components

import (
	"github.com/abhisek/wordwise/internal/ui/theme"
)

// Button is a styled, keyboard-triggered action label.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button bound to key.
func NewButton(label, key string, active bool) Button {
	return Button{Label: label, Key: key, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
