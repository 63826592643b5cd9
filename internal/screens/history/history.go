// Package history lists lesson plans saved in the local store.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/router"
	"github.com/abhisek/modulajar/internal/screen"
	"github.com/abhisek/modulajar/internal/store"
	"github.com/abhisek/modulajar/internal/ui/layout"
	"github.com/abhisek/modulajar/internal/ui/theme"
)

// pageSize bounds how many modules are listed.
const pageSize = 50

type historyLoadedMsg struct {
	Modules []store.ModuleEvent
	Err     error
}

// Opener builds the screen that shows a stored module.
type Opener func(ev store.ModuleEvent) screen.Screen

// HistoryScreen displays saved modules, newest first.
type HistoryScreen struct {
	repo     store.ModuleRepo
	open     Opener
	modules  []store.ModuleEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.ModuleRepo, open Opener) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		open:     open,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		modules, err := repo.ListModules(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Modules: modules, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Riwayat Modul"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Buka"},
		{Key: "Spasi", Description: "Detail"},
		{Key: "↑↓", Description: "Pilih"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.modules = msg.Modules
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.modules)-1 {
				s.selected++
			}
		case "space":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "enter":
			if s.open == nil || s.selected >= len(s.modules) {
				return s, nil
			}
			next := s.open(s.modules[s.selected])
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nGagal memuat riwayat: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Memuat riwayat...")
	}
	if len(s.modules) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Belum ada modul tersimpan. Buat modul ajar pertama Anda!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, m := range s.modules {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		kind := "baru  "
		if m.Kind == store.ModuleRevised {
			kind = "revisi"
		}
		line := fmt.Sprintf("%s%s  %s  [%s]  %s",
			prefix, m.Timestamp.Local().Format("02 Jan 2006 15:04"), shortID(m.UUID), kind, m.Title)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetail(m))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetail(m store.ModuleEvent) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	var lines []string
	if m.Subject != "" || m.Topic != "" {
		lines = append(lines, fmt.Sprintf("      %s · %s · %s", m.Subject, m.Topic, m.GradeLevel))
	}
	if m.ParentUUID != "" {
		lines = append(lines, "      revisi dari "+shortID(m.ParentUUID))
	}
	if m.Instruction != "" {
		lines = append(lines, fmt.Sprintf("      instruksi: %q", m.Instruction))
	}
	if len(lines) == 0 {
		lines = append(lines, "      tidak ada detail")
	}
	return dim.Render(strings.Join(lines, "\n")) + "\n"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
