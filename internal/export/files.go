package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/modulajar/internal/generation"
)

// Paths are the files written by WriteFiles.
type Paths struct {
	Markdown string
	HTML     string
}

// WriteFiles writes mod as <slug>[-<suffix>].md and .html into dir,
// creating dir when needed.
func WriteFiles(dir string, mod generation.GeneratedModule, suffix string) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("creating export dir: %w", err)
	}

	base := Filename(mod.Title)
	if suffix != "" {
		base += "-" + suffix
	}
	p := Paths{
		Markdown: filepath.Join(dir, base+".md"),
		HTML:     filepath.Join(dir, base+".html"),
	}

	if err := os.WriteFile(p.Markdown, []byte(mod.Content), 0o644); err != nil {
		return Paths{}, fmt.Errorf("writing markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := RenderHTML(mod, &buf); err != nil {
		return Paths{}, err
	}
	if err := os.WriteFile(p.HTML, buf.Bytes(), 0o644); err != nil {
		return Paths{}, fmt.Errorf("writing html: %w", err)
	}
	return p, nil
}

// WriteHTMLFile renders mod into a single HTML file at path.
func WriteHTMLFile(path string, mod generation.GeneratedModule) error {
	var buf bytes.Buffer
	if err := RenderHTML(mod, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
