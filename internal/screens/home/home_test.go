package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/modulajar/internal/router"
	"github.com/abhisek/modulajar/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "got %T", msg)
	return push.Screen
}

func TestNewModuleOpensForm(t *testing.T) {
	h := New(Factories{NewModule: func() screen.Screen { return &stubScreen{title: "form"} }}, Info{KeyConfigured: true})

	_, cmd := h.Update(keyEnter)
	assert.Equal(t, "form", pushed(t, cmd).Title())
}

func TestHistoryFallsBackToPlaceholder(t *testing.T) {
	h := New(Factories{}, Info{})

	h.Update(keyDown)
	_, cmd := h.Update(keyEnter)
	assert.Equal(t, "Riwayat Modul", pushed(t, cmd).Title())
}

func TestDigitShortcutOpensHistory(t *testing.T) {
	h := New(Factories{History: func() screen.Screen { return &stubScreen{title: "riwayat"} }}, Info{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Equal(t, "riwayat", pushed(t, cmd).Title())
	assert.Contains(t, h.View(110, 40), "Buka, revisi, atau ekspor modul tersimpan")
}

func TestExitQuits(t *testing.T) {
	h := New(Factories{}, Info{})
	h.Update(keyDown)
	h.Update(keyDown)

	_, cmd := h.Update(keyEnter)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsStatsAndKeyWarning(t *testing.T) {
	h := New(Factories{}, Info{SavedModules: 3, LastTitle: "IPA - Siklus Air"})
	out := h.View(110, 40)

	assert.Contains(t, out, "3 MODUL TERSIMPAN")
	assert.Contains(t, out, "IPA - Siklus Air")
	assert.Contains(t, out, "API Key belum diatur")

	ready := New(Factories{}, Info{KeyConfigured: true}).View(110, 40)
	assert.NotContains(t, ready, "API Key belum diatur")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestRefreshReloadsInfo(t *testing.T) {
	saved := 1
	h := New(Factories{Info: func() Info { return Info{SavedModules: saved, KeyConfigured: true} }}, Info{})
	assert.Contains(t, h.View(110, 40), "1 MODUL TERSIMPAN")

	saved = 2
	h.Update(RefreshMsg{})
	assert.Contains(t, h.View(110, 40), "2 MODUL TERSIMPAN")
}
