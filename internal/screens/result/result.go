// Package result shows a generated lesson plan and lets the teacher revise,
// save and export it.
package result

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/modulajar/internal/export"
	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/screen"
	"github.com/abhisek/modulajar/internal/store"
	"github.com/abhisek/modulajar/internal/ui/components"
	"github.com/abhisek/modulajar/internal/ui/layout"
)

// Reviser rewrites a lesson plan following an instruction.
type Reviser interface {
	Revise(ctx context.Context, current, instruction string) (*generation.GeneratedModule, error)
}

// Options describe where the shown module came from and where it goes.
type Options struct {
	// Request is set for modules fresh from the form.
	Request *lessonplan.LessonRequest
	// Origin is set for modules opened from history.
	Origin *store.ModuleEvent
	// Repo stores saved modules. It may be nil.
	Repo      store.ModuleRepo
	ExportDir string
}

type focusArea int

const (
	focusDocument focusArea = iota
	focusInstruction
)

// ResultScreen displays a module with a revision prompt.
type ResultScreen struct {
	ctx  context.Context
	rev  Reviser
	opts Options

	mod             generation.GeneratedModule
	parentUUID      string
	lastInstruction string
	revised         bool
	saved           bool

	vp      viewport.Model
	input   components.TextInput
	focus   focusArea
	errMsg  string
	status  string
	busy    bool
	seq     int
	cancel  context.CancelFunc
	spinner spinner.Model
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.BusyReporter = (*ResultScreen)(nil)
var _ screen.Closer = (*ResultScreen)(nil)

// New creates a result screen for mod. Revise calls derive from ctx.
func New(ctx context.Context, rev Reviser, mod generation.GeneratedModule, opts Options) *ResultScreen {
	if ctx == nil {
		ctx = context.Background()
	}
	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(10))
	vp.SoftWrap = true
	vp.SetContent(mod.Content)

	input := components.NewTextInput("Contoh: Tambahkan ice breaking di awal pertemuan", false, 0)
	input.Blur()

	r := &ResultScreen{
		ctx:     ctx,
		rev:     rev,
		opts:    opts,
		mod:     mod,
		vp:      vp,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if opts.Origin != nil {
		r.parentUUID = opts.Origin.UUID
		r.saved = true
	}
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Hasil Modul Ajar"
}

func (r *ResultScreen) Busy() bool {
	return r.busy
}

// Module returns the module currently shown.
func (r *ResultScreen) Module() generation.GeneratedModule {
	return r.mod
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	if r.busy {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Batalkan"},
			{Key: "Ctrl+C", Description: "Keluar"},
		}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: "Dokumen/Revisi"}}
	if r.focus == focusInstruction {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Revisi"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓ PgUp/PgDn", Description: "Gulir"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Simpan & Ekspor"},
		layout.KeyHint{Key: "Esc", Description: "Kembali"},
	)
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revisedMsg:
		return r.handleRevised(msg)

	case savedMsg:
		return r.handleSaved(msg)

	case spinner.TickMsg:
		if !r.busy {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	if r.focus == focusInstruction {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *ResultScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if r.busy {
		if key == "esc" {
			r.cancelRevision()
		}
		return r, nil
	}

	switch key {
	case "tab", "shift+tab":
		return r, r.toggleFocus()
	case "ctrl+s":
		return r, r.save()
	}

	if r.focus == focusInstruction {
		if key == "enter" {
			return r.revise()
		}
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}

	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return r, cmd
}

func (r *ResultScreen) toggleFocus() tea.Cmd {
	if r.focus == focusDocument {
		r.focus = focusInstruction
		return r.input.Focus()
	}
	r.focus = focusDocument
	r.input.Blur()
	return nil
}

func (r *ResultScreen) revise() (screen.Screen, tea.Cmd) {
	instruction := strings.TrimSpace(r.input.Value())
	if instruction == "" {
		r.errMsg = "Mohon isi instruksi revisi."
		return r, nil
	}

	r.errMsg = ""
	r.status = ""
	r.busy = true
	r.seq++
	ctx, cancel := context.WithCancel(r.ctx)
	r.cancel = cancel

	seq, rev, current := r.seq, r.rev, r.mod.Content
	return r, tea.Batch(
		r.spinner.Tick,
		func() tea.Msg {
			mod, err := rev.Revise(ctx, current, instruction)
			return revisedMsg{seq: seq, instruction: instruction, Module: mod, Err: err}
		},
	)
}

// Close abandons an in-flight revision when the screen leaves the stack.
func (r *ResultScreen) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.busy = false
	r.seq++
}

func (r *ResultScreen) cancelRevision() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.busy = false
	r.seq++
	r.status = generation.UserMessage(context.Canceled)
}

func (r *ResultScreen) handleRevised(msg revisedMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != r.seq {
		return r, nil
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.busy = false

	if msg.Err != nil {
		r.errMsg = generation.UserMessage(msg.Err)
		return r, nil
	}
	if msg.Module == nil {
		return r, nil
	}

	r.mod = *msg.Module
	r.lastInstruction = msg.instruction
	r.revised = true
	r.saved = false
	r.vp.SetContent(r.mod.Content)
	r.vp.GotoTop()
	r.input.Reset()
	r.status = "Modul berhasil direvisi."
	return r, nil
}

// record builds the history entry for the module on screen.
func (r *ResultScreen) record() store.ModuleEventData {
	data := store.ModuleEventData{
		Kind:       store.ModuleGenerated,
		ParentUUID: r.parentUUID,
		Title:      r.mod.Title,
		Content:    r.mod.Content,
	}
	if r.revised || r.parentUUID != "" {
		data.Kind = store.ModuleRevised
		data.Instruction = r.lastInstruction
	}

	switch {
	case r.opts.Request != nil:
		req := *r.opts.Request
		data.Subject = req.Subject
		data.Topic = req.Topic
		data.GradeLevel = req.GradeLevel
		if data.Kind == store.ModuleGenerated {
			if b, err := json.Marshal(req); err == nil {
				data.RequestJSON = string(b)
			}
		}
	case r.opts.Origin != nil:
		data.Subject = r.opts.Origin.Subject
		data.Topic = r.opts.Origin.Topic
		data.GradeLevel = r.opts.Origin.GradeLevel
	}
	return data
}

func (r *ResultScreen) save() tea.Cmd {
	if r.saved && r.opts.Repo != nil {
		r.status = "Modul ini sudah tersimpan di riwayat."
		return nil
	}

	ctx, repo, dir, mod, data := r.ctx, r.opts.Repo, r.opts.ExportDir, r.mod, r.record()
	return func() tea.Msg {
		var ev *store.ModuleEvent
		suffix := ""
		if repo != nil {
			var err error
			ev, err = repo.AppendModule(ctx, data)
			if err != nil {
				return savedMsg{Err: fmt.Errorf("menyimpan riwayat: %w", err)}
			}
			suffix = shortID(ev.UUID)
		}
		if dir == "" {
			return savedMsg{Event: ev}
		}
		paths, err := export.WriteFiles(dir, mod, suffix)
		return savedMsg{Event: ev, Paths: paths, Err: err}
	}
}

func (r *ResultScreen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	if msg.Event != nil {
		r.saved = true
		r.parentUUID = msg.Event.UUID
		r.revised = false
		r.lastInstruction = ""
	}
	if msg.Err != nil {
		r.errMsg = "Gagal menyimpan: " + msg.Err.Error()
		return r, nil
	}

	r.errMsg = ""
	var parts []string
	if msg.Event != nil {
		parts = append(parts, "Tersimpan di riwayat ("+shortID(msg.Event.UUID)+").")
	}
	if msg.Paths.HTML != "" {
		parts = append(parts, "HTML: "+msg.Paths.HTML)
	}
	r.status = strings.Join(parts, " ")
	return r, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
