package result

import (
	"github.com/abhisek/modulajar/internal/export"
	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/store"
)

// revisedMsg carries the outcome of a revise call.
type revisedMsg struct {
	seq         int
	instruction string
	Module      *generation.GeneratedModule
	Err         error
}

// savedMsg reports a finished save.
type savedMsg struct {
	Event *store.ModuleEvent
	Paths export.Paths
	Err   error
}
