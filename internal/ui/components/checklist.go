package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

// Checklist is a horizontal multi-select. Left and right move the cursor,
// space toggles the option under it.
type Checklist struct {
	Options []string
	Cursor  int
	checked map[string]bool
}

// NewChecklist creates a Checklist with the given options pre-checked.
func NewChecklist(options []string, checked []string) Checklist {
	c := Checklist{Options: options, checked: make(map[string]bool)}
	for _, v := range checked {
		c.checked[v] = true
	}
	return c
}

// Update handles cursor movement and toggling. The second return value
// reports the option that was toggled, or "" if none was.
func (c Checklist) Update(msg tea.Msg) (Checklist, string) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, ""
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", "x":
		opt := c.Options[c.Cursor]
		c.Toggle(opt)
		return c, opt
	}
	return c, ""
}

// Toggle flips the checked state of option.
func (c *Checklist) Toggle(option string) {
	if c.checked == nil {
		c.checked = make(map[string]bool)
	}
	if c.checked[option] {
		delete(c.checked, option)
		return
	}
	c.checked[option] = true
}

// IsChecked reports whether option is checked.
func (c Checklist) IsChecked(option string) bool {
	return c.checked[option]
}

// Checked returns the checked options in display order.
func (c Checklist) Checked() []string {
	var out []string
	for _, o := range c.Options {
		if c.checked[o] {
			out = append(out, o)
		}
	}
	return out
}

// View renders the options, wrapping to width when it is positive.
func (c Checklist) View(focused bool, width int) string {
	var lines []string
	line := ""
	for i, o := range c.Options {
		box := "[ ] "
		if c.checked[o] {
			box = "[x] "
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if c.checked[o] {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if focused && i == c.Cursor {
			style = theme.Focused
		}
		item := style.Render(box + o)

		if width > 0 && line != "" && lipgloss.Width(line)+2+lipgloss.Width(item) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += "  "
		}
		line += item
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
