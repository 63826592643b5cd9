package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/components"
	"github.com/abhisek/modulajar/internal/ui/theme"
)

const labelWidth = 30

func (f *FormScreen) View(width, height int) string {
	lines, focusLine := f.renderRows(width - 4)

	footer := []string{"  " + components.NewProgressBar("Kelengkapan", f.req.Completeness(), true, min(width-4, 60)).View()}
	if f.busy {
		footer = append(footer, "  "+f.spinner.View()+" "+
			lipgloss.NewStyle().Foreground(theme.Accent).Render("Sedang menyusun modul ajar... (Esc untuk batal)"))
	}
	if f.errMsg != "" {
		footer = append(footer, "  "+theme.ErrorText.Render(f.errMsg))
	}
	if f.status != "" && !f.busy {
		footer = append(footer, "  "+theme.Hint.Render(f.status))
	}

	avail := height - len(footer) - 1
	if avail < 1 {
		avail = 1
	}
	lines = window(lines, focusLine, avail)

	return strings.Join(lines, "\n") + "\n\n" + strings.Join(footer, "\n")
}

// renderRows returns one entry per output line and the line of the
// focused row.
func (f *FormScreen) renderRows(width int) ([]string, int) {
	var lines []string
	focusLine := 0

	for i, r := range f.rows {
		if f.hidden(i) {
			continue
		}
		if r.section != "" {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, "  "+theme.Section.Render(r.section))
		}

		focused := i == f.focus
		if focused {
			focusLine = len(lines)
		}

		marker := "    "
		if focused {
			marker = lipgloss.NewStyle().Foreground(theme.Accent).Render("  ▸ ")
		}

		if r.kind == rowSubmit {
			lines = append(lines, "")
			if focused {
				focusLine = len(lines)
			}
			lines = append(lines, marker+f.renderSubmit(focused))
			continue
		}

		label := theme.Label.Width(labelWidth).Render(r.label)
		if focused {
			label = theme.Focused.Width(labelWidth).Render(r.label)
		}

		switch r.kind {
		case rowText:
			lines = append(lines, marker+label+r.input.View())
		case rowSelect:
			lines = append(lines, marker+label+r.sel.View(focused))
		case rowToggle:
			box := "[ ] "
			if r.on {
				box = "[x] "
			}
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if focused {
				style = theme.Focused
			}
			lines = append(lines, marker+style.Render(box+r.label))
		case rowChecklist:
			lines = append(lines, marker+label)
			for _, l := range strings.Split(r.list.View(focused, width-6), "\n") {
				lines = append(lines, "      "+l)
			}
		}

		if focused && r.hint != "" {
			lines = append(lines, "      "+theme.Hint.Render(r.hint))
		}
	}
	return lines, focusLine
}

func (f *FormScreen) renderSubmit(focused bool) string {
	return components.NewButton(f.rows[len(f.rows)-1].label, focused, f.busy).View()
}

// window returns at most n lines of lines, keeping focus visible.
func window(lines []string, focus, n int) []string {
	if len(lines) <= n {
		return lines
	}
	start := focus - n/3
	if start < 0 {
		start = 0
	}
	if start+n > len(lines) {
		start = len(lines) - n
	}
	return lines[start : start+n]
}
