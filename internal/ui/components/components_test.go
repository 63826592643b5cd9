package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

var (
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

func TestSelect_Cycles(t *testing.T) {
	s := NewSelect([]string{"a", "b", "c"}, "b")
	assert.Equal(t, "b", s.Value())

	s, _ = s.Update(keyRight)
	assert.Equal(t, "c", s.Value())
	s, _ = s.Update(keyRight)
	assert.Equal(t, "a", s.Value(), "wraps forward")
	s, _ = s.Update(keyLeft)
	assert.Equal(t, "c", s.Value(), "wraps backward")
}

func TestSelect_UnknownValue(t *testing.T) {
	s := NewSelect([]string{"a", "b"}, "zzz")
	assert.Equal(t, "a", s.Value())

	empty := NewSelect(nil, "")
	empty, _ = empty.Update(keyRight)
	assert.Equal(t, "", empty.Value())
}

func TestChecklist_Toggle(t *testing.T) {
	c := NewChecklist([]string{"x1", "x2", "x3"}, []string{"x3"})

	c, toggled := c.Update(keySpace)
	assert.Equal(t, "x1", toggled)
	assert.Equal(t, []string{"x1", "x3"}, c.Checked())

	c, _ = c.Update(keyRight)
	c, _ = c.Update(keyRight)
	c, _ = c.Update(keyRight) // clamps at the end
	assert.Equal(t, 2, c.Cursor)

	c, toggled = c.Update(keySpace)
	assert.Equal(t, "x3", toggled)
	assert.Equal(t, []string{"x1"}, c.Checked())
	assert.False(t, c.IsChecked("x3"))
}

func TestChecklist_ViewWraps(t *testing.T) {
	c := NewChecklist([]string{"Keimanan", "Kewargaan", "Kreativitas"}, nil)
	assert.Contains(t, c.View(false, 0), "[ ] Keimanan")
	assert.Contains(t, c.View(false, 20), "\n")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One"},
		{Label: "Two", Disabled: true},
		{Label: "Three"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_WrapsAndShortcuts(t *testing.T) {
	ran := ""
	act := func(name string) func() tea.Cmd {
		return func() tea.Cmd { ran = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "Satu", Hint: "pertama", Action: act("satu")},
		{Label: "Dua", Action: act("dua"), Disabled: true},
		{Label: "Tiga", Action: act("tiga")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected, "up from the top wraps")
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected, "down from the bottom wraps")
	assert.Equal(t, "pertama", m.Current().Hint)

	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Empty(t, ran, "disabled item ignores its shortcut")
	m, _ = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, "tiga", ran)
	assert.Equal(t, 2, m.Selected)
	assert.Equal(t, []string{"Satu", "Dua", "Tiga"}, m.Labels())
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("1", true, 2)
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	ti, _ = ti.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, "3", ti.Value())

	n, err := ti.NumericValue()
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestProgressBar_Fill(t *testing.T) {
	half := NewProgressBar("", 0.5, true, 26).View()
	assert.Equal(t, 10, strings.Count(half, "━"))
	assert.Equal(t, 10, strings.Count(half, "─"))
	assert.Contains(t, half, "50%")

	over := NewProgressBar("", 1.5, false, 8).View()
	assert.Equal(t, 8, strings.Count(over, "━"))
	assert.NotContains(t, over, "─")
}

func TestButton_States(t *testing.T) {
	assert.Contains(t, NewButton("Buat Modul Ajar", true, false).View(), "▸ Buat Modul Ajar")
	assert.NotContains(t, NewButton("Buat Modul Ajar", false, false).View(), "▸")
	assert.NotContains(t, NewButton("Buat Modul Ajar", true, true).View(), "▸")
}
