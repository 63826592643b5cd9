package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

// IconVariant selects which book art to display.
type IconVariant int

const (
	IconReady    IconVariant = iota // key configured
	IconNeedsKey                    // no API key yet
)

const iconReady = `┌──────┬──────┐
│ ≡≡≡≡ │ ≡≡≡≡ │
│ ≡≡≡  │ ≡≡≡≡ │
│ ≡≡≡≡ │ ≡≡   │
└──────┴──────┘`

const iconNeedsKey = `┌──────┬──────┐
│ ≡≡≡≡ │ ≡≡≡≡ │ !
│ ≡≡≡  │ ≡≡≡≡ │
│ ≡≡≡≡ │ ≡≡   │
└──────┴──────┘`

// RenderIcon returns the book art for the given variant.
func RenderIcon(v IconVariant) string {
	art, fg := iconReady, theme.Secondary
	if v == IconNeedsKey {
		art, fg = iconNeedsKey, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
