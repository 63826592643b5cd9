package components

import (
	"strconv"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

// TextInput is a single-line field on the form and the revise prompt.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewTextInput returns a focused input. limit caps the number of runes; 0
// leaves it unbounded.
func NewTextInput(placeholder string, numericOnly bool, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Focus()
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards msg to the input. Numeric inputs swallow printable keys
// that are not digits.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if k, ok := msg.(tea.KeyPressMsg); ok && k.Text != "" {
			for _, r := range k.Text {
				if !unicode.IsDigit(r) {
					return t, nil
				}
			}
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, dimmed when it does not have focus.
func (t TextInput) View() string {
	if !t.Model.Focused() && t.Model.Value() != "" {
		return lipgloss.NewStyle().Foreground(theme.Text).Render(t.Model.Value())
	}
	return t.Model.View()
}

func (t TextInput) Value() string { return t.Model.Value() }

// NumericValue parses the value as a base-10 integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

func (t *TextInput) SetValue(v string) { t.Model.SetValue(v) }

// Reset clears the value and moves the cursor home.
func (t *TextInput) Reset() { t.Model.Reset() }

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

func (t *TextInput) Blur() { t.Model.Blur() }

func (t TextInput) Focused() bool { return t.Model.Focused() }
