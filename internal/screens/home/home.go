// Package home is the start menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/modulajar/internal/router"
	"github.com/abhisek/modulajar/internal/screen"
	"github.com/abhisek/modulajar/internal/screens/placeholder"
	"github.com/abhisek/modulajar/internal/ui/components"
	"github.com/abhisek/modulajar/internal/ui/layout"
)

// Info is the dashboard shown above the menu.
type Info struct {
	SavedModules  int
	LastTitle     string
	KeyConfigured bool
}

// Factories build the screens the menu opens. History may be nil when no
// local store is available. Info, when set, reloads the dashboard.
type Factories struct {
	NewModule func() screen.Screen
	History   func() screen.Screen
	Info      func() Info
}

// RefreshMsg asks the home screen to reload its dashboard.
type RefreshMsg struct{}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	info     Info
	loadInfo func() Info
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. info is used when f.Info is nil.
func New(f Factories, info Info) *HomeScreen {
	push := func(build func() screen.Screen, fallback, reason string) func() tea.Cmd {
		return func() tea.Cmd {
			var s screen.Screen
			if build != nil {
				s = build()
			}
			if s == nil {
				s = placeholder.New(fallback, reason)
			}
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "BUAT MODUL AJAR", Hint: "Isi form lalu susun modul ajar baru", Action: push(f.NewModule, "Form Modul Ajar", "Layanan pembuat modul belum siap.")},
		{Label: "RIWAYAT MODUL", Hint: "Buka, revisi, atau ekspor modul tersimpan", Action: push(f.History, "Riwayat Modul", "")},
		{Label: "KELUAR", Hint: "Tutup aplikasi", Action: func() tea.Cmd { return tea.Quit }},
	}

	if f.Info != nil {
		info = f.Info()
	}
	return &HomeScreen{
		menu:     components.NewMenu(items),
		info:     info,
		loadInfo: f.Info,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(RefreshMsg); ok {
		if h.loadInfo != nil {
			h.info = h.loadInfo()
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))

	variant := IconReady
	if !h.info.KeyConfigured {
		variant = IconNeedsKey
	}
	if !compact {
		sections = append(sections, RenderIcon(variant))
	}

	sections = append(sections, renderStatsBar(h.info.SavedModules, h.info.LastTitle, cw, compact))

	labels := h.menu.Labels()
	if compact {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(labels, h.menu.Selected, cw))
	}
	sections = append(sections, renderHint(h.menu.Current().Hint, cw))

	if !h.info.KeyConfigured {
		sections = append(sections, renderKeyBanner(cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Beranda"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pilih"},
		{Key: "1-3", Description: "Langsung"},
		{Key: "Enter", Description: "Buka"},
		{Key: "Ctrl+C", Description: "Keluar"},
	}
}
