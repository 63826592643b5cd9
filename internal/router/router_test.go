package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/modulajar/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	closed  int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Close()               { s.closed++ }

func TestPushPop(t *testing.T) {
	home := &stubScreen{title: "beranda"}
	form := &stubScreen{title: "form"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: form})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "form", r.Active().Title())
	assert.True(t, form.initRan)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "beranda", r.View(80, 24))
	assert.Equal(t, 1, form.closed, "popped screen is closed")
	assert.Zero(t, home.closed)
}

func TestPopKeepsRoot(t *testing.T) {
	home := &stubScreen{title: "beranda"}
	r := New(home)

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Zero(t, home.closed)
}

func TestReplace(t *testing.T) {
	welcome := &stubScreen{title: "welcome"}
	form := &stubScreen{title: "form"}
	r := New(welcome)
	r.Push(form)

	home := &stubScreen{title: "beranda"}
	r.Update(ReplaceScreenMsg{Screen: home})

	assert.Equal(t, 2, r.Depth(), "replace keeps the depth")
	assert.Equal(t, "beranda", r.Active().Title())
	assert.True(t, home.initRan)
	assert.Equal(t, 1, form.closed)
	assert.Zero(t, welcome.closed)
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "beranda"}
	form := &stubScreen{title: "form"}
	r := New(home)
	r.Push(form)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	require.Len(t, form.got, 1)
	assert.Empty(t, home.got)
}

func TestCloseAll(t *testing.T) {
	a, b := &stubScreen{title: "a"}, &stubScreen{title: "b"}
	r := New(a)
	r.Push(b)

	r.CloseAll()
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}
