package form

import "github.com/abhisek/modulajar/internal/generation"

// generatedMsg carries the outcome of a generate call. seq identifies the
// submission so late results of a cancelled call are dropped.
type generatedMsg struct {
	seq    int
	Module *generation.GeneratedModule
	Err    error
}
