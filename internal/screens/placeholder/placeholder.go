// Package placeholder shows a notice in place of a screen that cannot be
// built in the current run.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/screen"
	"github.com/abhisek/modulajar/internal/ui/layout"
	"github.com/abhisek/modulajar/internal/ui/theme"
)

// DefaultReason is shown when New gets an empty reason.
const DefaultReason = "Fitur ini membutuhkan penyimpanan lokal.\nPeriksa opsi --db lalu coba lagi."

// Screen is a static notice. Esc returns through the app's back handling.
type Screen struct {
	title  string
	reason string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New returns a notice titled title explaining reason.
func New(title, reason string) *Screen {
	if reason == "" {
		reason = DefaultReason
	}
	return &Screen{title: title, reason: reason}
}

func (p *Screen) Init() tea.Cmd { return nil }

func (p *Screen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }

func (p *Screen) View(width, height int) string {
	body := theme.Section.Render("╌╌ Belum Tersedia ╌╌") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(p.reason)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (p *Screen) Title() string { return p.title }

func (p *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Kembali"}}
}
