// Package layout draws the frame around every screen: a header bar with
// the product name, screen title and status, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

// The form needs room for a label column and an input beside it.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Brand is the product name shown on the left of the header.
const Brand = "Modul Ajar"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal terlalu kecil!\n\nPerbesar jendela hingga\nminimal %d x %d\n\nSaat ini: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader renders the header bar: brand on the left, title centred,
// status on the right. The status is shortened first when space runs out,
// then the title.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)

	brand := "  " + Brand
	status = clip(status, max(inner/3, 0))
	title = clip(title, max(inner-len([]rune(brand))-lipgloss.Width(status)-2, 0))

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	leftLen, centerLen, rightLen := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max(min((inner-centerLen)/2-leftLen, inner-leftLen-centerLen-rightLen-1), 1)
	rightGap := max(inner-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return barStyle.Width(width).Render(content)
}

// RenderFooter renders the key hints. Hints that do not fit are dropped
// from the end.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := max(width-4, 0)
	content := ""
	for i, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		sep := "  "
		if i > 0 {
			sep = "   "
		}
		if lipgloss.Width(content+sep+part) > inner {
			break
		}
		content += sep + part
	}
	return barStyle.Width(width).Render(content)
}

// ContentHeight is the height left for the screen between header and
// footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}

// clip shortens s to n cells, marking the cut with an ellipsis.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
