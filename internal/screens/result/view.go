package result

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Section.Render("  " + r.mod.Title)
	if r.revised && !r.saved {
		title += theme.Hint.Render("  (belum disimpan)")
	}
	b.WriteString(title)
	b.WriteString("\n")

	var bottom []string
	prompt := theme.Label.Render("  Instruksi revisi: ")
	if r.focus == focusInstruction {
		prompt = theme.Focused.Render("  Instruksi revisi: ")
	}
	bottom = append(bottom, prompt+r.input.View())
	switch {
	case r.busy:
		bottom = append(bottom, "  "+r.spinner.View()+" "+
			lipgloss.NewStyle().Foreground(theme.Accent).Render("Sedang merevisi modul... (Esc untuk batal)"))
	case r.errMsg != "":
		bottom = append(bottom, "  "+theme.ErrorText.Render(r.errMsg))
	case r.status != "":
		bottom = append(bottom, "  "+theme.SuccessText.Render(r.status))
	}

	// title + document border + bottom lines
	docHeight := height - 1 - 2 - len(bottom)
	if docHeight < 3 {
		docHeight = 3
	}
	docWidth := width - 4
	if docWidth < 20 {
		docWidth = 20
	}
	r.vp.SetWidth(docWidth - 4)
	r.vp.SetHeight(docHeight)

	doc := theme.Document
	if r.focus == focusDocument {
		doc = doc.BorderForeground(theme.Primary)
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(doc.Width(docWidth).Render(r.vp.View())))
	b.WriteString("\n")
	b.WriteString(strings.Join(bottom, "\n"))
	return b.String()
}
