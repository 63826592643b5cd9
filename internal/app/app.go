// Package app wires the screens into the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/router"
	"github.com/abhisek/modulajar/internal/screen"
	"github.com/abhisek/modulajar/internal/screens/form"
	"github.com/abhisek/modulajar/internal/screens/history"
	"github.com/abhisek/modulajar/internal/screens/home"
	"github.com/abhisek/modulajar/internal/screens/result"
	"github.com/abhisek/modulajar/internal/screens/welcome"
	"github.com/abhisek/modulajar/internal/store"
	"github.com/abhisek/modulajar/internal/ui/layout"
)

// ModuleService generates and revises lesson plans.
type ModuleService interface {
	form.Generator
	result.Reviser
}

// Deps are the services the screens run against.
type Deps struct {
	Service ModuleService
	// Modules is the history store. It may be nil.
	Modules   store.ModuleRepo
	Today     time.Time
	ExportDir string
	// Initial pre-fills the form, for example from a request file.
	Initial *lessonplan.LessonRequest
	// KeyConfigured reports whether an API key resolved at startup.
	KeyConfigured bool
	// Status is shown on the right of the header, e.g. the model name.
	Status    string
	SkipIntro bool
	Log       *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   Deps
	ctx    context.Context
	cancel context.CancelFunc
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(ctx context.Context, deps Deps) AppModel {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Today.IsZero() {
		deps.Today = time.Now()
	}
	ctx, cancel := context.WithCancel(ctx)
	m := AppModel{deps: deps, ctx: ctx, cancel: cancel}

	homeFactory := func() screen.Screen { return m.newHome() }
	var first screen.Screen = welcome.New(homeFactory)
	if deps.SkipIntro {
		first = m.newHome()
	}
	m.router = router.New(first)
	return m
}

func (m AppModel) newHome() screen.Screen {
	f := home.Factories{
		NewModule: m.newForm,
		Info:      m.homeInfo,
	}
	if m.deps.Modules != nil {
		f.History = func() screen.Screen {
			return history.New(m.deps.Modules, m.openStored)
		}
	}
	return home.New(f, home.Info{KeyConfigured: m.deps.KeyConfigured})
}

func (m AppModel) homeInfo() home.Info {
	info := home.Info{KeyConfigured: m.deps.KeyConfigured}
	if m.deps.Modules == nil {
		return info
	}
	mods, err := m.deps.Modules.ListModules(m.ctx, store.QueryOpts{})
	if err != nil {
		m.deps.Log.Warn("loading module history", zap.Error(err))
		return info
	}
	info.SavedModules = len(mods)
	if len(mods) > 0 {
		info.LastTitle = mods[0].Title
	}
	return info
}

func (m AppModel) newForm() screen.Screen {
	req := lessonplan.NewRequest(m.deps.Today)
	if m.deps.Initial != nil {
		req = *m.deps.Initial
	}
	return form.New(m.ctx, m.deps.Service, req, m.newResult)
}

func (m AppModel) newResult(req lessonplan.LessonRequest, mod generation.GeneratedModule) screen.Screen {
	m.deps.Log.Info("module generated", zap.String("title", mod.Title), zap.Int("bytes", len(mod.Content)))
	return result.New(m.ctx, m.deps.Service, mod, result.Options{
		Request:   &req,
		Repo:      m.deps.Modules,
		ExportDir: m.deps.ExportDir,
	})
}

func (m AppModel) openStored(ev store.ModuleEvent) screen.Screen {
	mod := generation.GeneratedModule{Title: ev.Title, Content: ev.Content}
	return result.New(m.ctx, m.deps.Service, mod, result.Options{
		Origin:    &ev,
		Repo:      m.deps.Modules,
		ExportDir: m.deps.ExportDir,
	})
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "esc":
			// A busy screen gets Esc to cancel its work.
			if b, ok := m.router.Active().(screen.BusyReporter); ok && b.Busy() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		if m.router.Depth() == 1 {
			return m, tea.Batch(cmd, func() tea.Msg { return home.RefreshMsg{} })
		}
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := m.deps.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok && sp.Status() != "" {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Kembali"},
			{Key: "Ctrl+C", Description: "Keluar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Lanjut"},
		{Key: "Ctrl+C", Description: "Keluar"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	m := newAppModel(ctx, deps)
	defer m.cancel()
	defer m.router.CloseAll()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
