package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/modulajar/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BusyReporter is an optional interface for screens that run background
// work. While Busy reports true, Esc is delivered to the screen instead of
// navigating back, so the screen can cancel the work.
type BusyReporter interface {
	Busy() bool
}

// StatusProvider is an optional interface for screens that want a short
// status shown on the right side of the header.
type StatusProvider interface {
	Status() string
}

// Closer is an optional interface for screens holding resources, such as an
// in-flight request. The router calls Close when the screen leaves the
// stack.
type Closer interface {
	Close()
}
