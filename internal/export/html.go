// Package export renders lesson plans into printable documents.
package export

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/abhisek/modulajar/internal/generation"
)

// mdRenderer keeps raw HTML: the model output relies on <br/> inside
// table cells and on the alignment marker.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
		goldmarkHTML.WithUnsafe(),
	),
)

const pageHead = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: "Times New Roman", serif; font-size: 12pt; line-height: 1.5; max-width: 210mm; margin: 0 auto; padding: 20mm; color: #000; }
h1 { text-align: center; font-size: 16pt; }
h2 { font-size: 14pt; border-bottom: 1px solid #000; }
table { border-collapse: collapse; width: 100%%; margin: 1em 0; }
th, td { border: 1px solid #000; padding: 6px 8px; vertical-align: top; }
th { background: #f0f0f0; }
blockquote { border-left: 3px solid #999; margin-left: 0; padding-left: 1em; }
.align-right { text-align: right; }
@media print { body { padding: 0; } }
</style>
</head>
<body>
`

const pageFoot = `</body>
</html>
`

// RenderHTML writes mod as a standalone printable HTML page.
func RenderHTML(mod generation.GeneratedModule, w io.Writer) error {
	var body bytes.Buffer
	if err := mdRenderer.Convert([]byte(alignRight(mod.Content)), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w, pageHead, html.EscapeString(mod.Title)); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, pageFoot)
	return err
}

// alignRight wraps each paragraph that starts with the alignment marker in
// a right-aligned block. A line opening with an HTML comment would
// otherwise be swallowed as a raw HTML block and lose its Markdown.
func alignRight(src string) string {
	if !strings.Contains(src, generation.AlignRightMarker) {
		return src
	}
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines)+4)
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		rest, ok := strings.CutPrefix(trimmed, generation.AlignRightMarker)
		if !ok {
			out = append(out, line)
			continue
		}
		out = append(out, `<div class="align-right">`, "", rest, "", "</div>")
	}
	return strings.Join(out, "\n")
}

// Filename turns a module title into a filesystem-safe slug without an
// extension.
func Filename(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "modul-ajar"
	}
	return slug
}
