package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/modulajar/internal/generation"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	mod := generation.GeneratedModule{Title: "IPA - Siklus Air", Content: "# MODUL AJAR\n\nIsi."}

	p, err := WriteFiles(dir, mod, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ipa-siklus-air-abcd1234.md"), p.Markdown)

	md, err := os.ReadFile(p.Markdown)
	require.NoError(t, err)
	assert.Equal(t, mod.Content, string(md))

	page, err := os.ReadFile(p.HTML)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>MODUL AJAR</h1>")
}

func TestWriteHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modul.html")
	require.NoError(t, WriteHTMLFile(path, generation.GeneratedModule{Title: "T", Content: "Halo"}))

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<p>Halo</p>")
}
