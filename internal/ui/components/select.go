package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

// Select is a single-line picker that cycles through a fixed list of
// options with the left and right keys.
type Select struct {
	Options []string
	Index   int
	// Blank is shown when the selected option is the empty string.
	Blank string
}

// NewSelect creates a Select positioned on value. Unknown values select
// the first option.
func NewSelect(options []string, value string) Select {
	s := Select{Options: options}
	s.SetValue(value)
	return s
}

// Update cycles the selection. Space behaves like right.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
	case "right", "l", "space":
		s.Index = (s.Index + 1) % len(s.Options)
	}
	return s, nil
}

// Value returns the selected option, or "" when there are none.
func (s Select) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// SetValue moves the selection to value if it is one of the options.
func (s *Select) SetValue(value string) {
	s.Index = 0
	for i, o := range s.Options {
		if o == value {
			s.Index = i
			return
		}
	}
}

// View renders the selected option between arrows.
func (s Select) View(focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = theme.Focused
		arrows = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	label := s.Value()
	if label == "" {
		label = s.Blank
	}
	return arrows.Render("◂ ") + style.Render(label) + arrows.Render(" ▸")
}
