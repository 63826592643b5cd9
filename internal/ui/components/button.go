package components

import (
	"github.com/abhisek/modulajar/internal/ui/theme"
)

// Button is a one-line push button. The owning screen decides what enter
// does; Button only renders its state.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string, focused, disabled bool) Button {
	return Button{Label: label, Focused: focused, Disabled: disabled}
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
	case b.Focused:
		return theme.ButtonActive.Render("▸" + label)
	}
	return theme.ButtonInactive.Render(label)
}
