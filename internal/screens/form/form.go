// Package form is the lesson plan input screen.
package form

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/router"
	"github.com/abhisek/modulajar/internal/screen"
	"github.com/abhisek/modulajar/internal/ui/layout"
)

// Generator produces a lesson plan from a request.
type Generator interface {
	Generate(ctx context.Context, req lessonplan.LessonRequest) (*generation.GeneratedModule, error)
}

// ResultFactory builds the screen pushed after a successful generation.
type ResultFactory func(req lessonplan.LessonRequest, mod generation.GeneratedModule) screen.Screen

// FormScreen collects a LessonRequest and submits it for generation.
type FormScreen struct {
	ctx  context.Context
	gen  Generator
	next ResultFactory

	req    lessonplan.LessonRequest
	rows   []row
	focus  int
	errMsg string
	status string

	busy    bool
	seq     int
	cancel  context.CancelFunc
	spinner spinner.Model
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.BusyReporter = (*FormScreen)(nil)
var _ screen.Closer = (*FormScreen)(nil)

// New creates a form pre-filled from req. Generation calls derive from ctx.
func New(ctx context.Context, gen Generator, req lessonplan.LessonRequest, next ResultFactory) *FormScreen {
	if ctx == nil {
		ctx = context.Background()
	}
	f := &FormScreen{
		ctx:     ctx,
		gen:     gen,
		next:    next,
		req:     req,
		rows:    buildRows(req),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.focusRow(0)
}

func (f *FormScreen) Title() string {
	return "Form Modul Ajar"
}

func (f *FormScreen) Busy() bool {
	return f.busy
}

// Request returns the request as currently filled in.
func (f *FormScreen) Request() lessonplan.LessonRequest {
	return f.req
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.busy {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Batalkan"},
			{Key: "Ctrl+C", Description: "Keluar"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Pindah"},
	}
	switch f.rows[f.focus].kind {
	case rowSelect:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Pilih"})
	case rowChecklist:
		hints = append(hints, layout.KeyHint{Key: "←→ Spasi", Description: "Centang"})
	case rowToggle:
		hints = append(hints, layout.KeyHint{Key: "Spasi", Description: "Ubah"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Buat"},
		layout.KeyHint{Key: "Esc", Description: "Kembali"},
	)
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return f.handleGenerated(msg)

	case spinner.TickMsg:
		if !f.busy {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	if r := &f.rows[f.focus]; r.kind == rowText {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if f.busy {
		if key == "esc" {
			f.cancelGeneration()
		}
		return f, nil
	}

	switch key {
	case "ctrl+s":
		return f.submit()
	case "tab", "down":
		return f, f.move(1)
	case "shift+tab", "up":
		return f, f.move(-1)
	}

	r := &f.rows[f.focus]
	switch r.kind {
	case rowText:
		if key == "enter" {
			return f, f.move(1)
		}
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		f.req, _ = f.req.WithField(r.field, r.input.Value())
		return f, cmd

	case rowSelect:
		if key == "enter" {
			return f, f.move(1)
		}
		r.sel, _ = r.sel.Update(msg)
		f.req, _ = f.req.WithField(r.field, r.sel.Value())

	case rowChecklist:
		if key == "enter" {
			return f, f.move(1)
		}
		var toggled string
		r.list, toggled = r.list.Update(msg)
		if toggled != "" {
			f.req, _ = f.req.ToggleSetMember(r.set, toggled, r.list.IsChecked(toggled))
		}

	case rowToggle:
		if key == "space" || key == "enter" {
			f.setToggle(f.focus, !r.on)
		}

	case rowSubmit:
		if key == "enter" {
			return f.submit()
		}
	}
	return f, nil
}

// setToggle flips an auto-generate toggle. Switching it off restores the
// text typed into the linked row.
func (f *FormScreen) setToggle(i int, on bool) {
	r := &f.rows[i]
	r.on = on
	if on {
		f.req, _ = f.req.WithField(r.field, "true")
		return
	}
	if r.linked >= 0 {
		linked := f.rows[r.linked]
		f.req, _ = f.req.WithField(linked.field, linked.input.Value())
		return
	}
	f.req, _ = f.req.WithField(r.field, "false")
}

// hidden reports whether row i is replaced by an active auto toggle.
func (f *FormScreen) hidden(i int) bool {
	d := f.rows[i].dependsOn
	return d >= 0 && f.rows[d].on
}

// move shifts focus by delta visible rows, wrapping around.
func (f *FormScreen) move(delta int) tea.Cmd {
	n := len(f.rows)
	next := f.focus
	for range n {
		next = (next + delta + n) % n
		if !f.hidden(next) {
			break
		}
	}
	return f.focusRow(next)
}

func (f *FormScreen) focusRow(i int) tea.Cmd {
	if cur := &f.rows[f.focus]; cur.kind == rowText {
		cur.input.Blur()
	}
	f.focus = i
	if r := &f.rows[i]; r.kind == rowText {
		return r.input.Focus()
	}
	return nil
}

// focusNamed moves focus to the row a validation error points at.
func (f *FormScreen) focusNamed(name string) tea.Cmd {
	for i, r := range f.rows {
		if r.name() == name && !f.hidden(i) {
			return f.focusRow(i)
		}
	}
	return nil
}

func (f *FormScreen) submit() (screen.Screen, tea.Cmd) {
	if f.busy {
		return f, nil
	}
	f.status = ""

	if err := f.req.Validate(); err != nil {
		f.errMsg = generation.UserMessage(err)
		var verr *lessonplan.ValidationError
		if errors.As(err, &verr) {
			return f, f.focusNamed(verr.Field)
		}
		return f, nil
	}

	f.errMsg = ""
	f.busy = true
	f.seq++
	ctx, cancel := context.WithCancel(f.ctx)
	f.cancel = cancel

	seq, req, gen := f.seq, f.req, f.gen
	return f, tea.Batch(
		f.spinner.Tick,
		func() tea.Msg {
			mod, err := gen.Generate(ctx, req)
			return generatedMsg{seq: seq, Module: mod, Err: err}
		},
	)
}

// Close abandons an in-flight generation when the form leaves the stack.
func (f *FormScreen) Close() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.busy = false
	f.seq++
}

func (f *FormScreen) cancelGeneration() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.busy = false
	f.seq++
	f.status = generation.UserMessage(context.Canceled)
}

func (f *FormScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != f.seq {
		return f, nil
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.busy = false

	if msg.Err != nil {
		f.errMsg = generation.UserMessage(msg.Err)
		return f, nil
	}
	if msg.Module == nil || f.next == nil {
		return f, nil
	}

	f.errMsg = ""
	f.status = "Modul ajar berhasil dibuat."
	result := f.next(f.req, *msg.Module)
	return f, func() tea.Msg {
		return router.PushScreenMsg{Screen: result}
	}
}
