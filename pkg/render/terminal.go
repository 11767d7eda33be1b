package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Terminal style names accepted by NewTerminal.
const (
	StyleAuto    = styles.AutoStyle
	StyleDark    = styles.DarkStyle
	StyleLight   = styles.LightStyle
	StyleDracula = styles.DraculaStyle
	StyleNoTTY   = styles.NoTTYStyle
	StyleASCII   = styles.AsciiStyle
)

// DefaultWordWrap is the wrap width used when none is configured.
const DefaultWordWrap = 80

// Terminal renders Markdown as ANSI-styled text for terminal previews.
type Terminal struct {
	tr *glamour.TermRenderer
}

// NewTerminal returns a terminal renderer using the named glamour style.
// A width of zero or less uses DefaultWordWrap; an empty style uses StyleDracula.
func NewTerminal(style string, width int) (*Terminal, error) {
	if style == "" {
		style = StyleDracula
	}
	if width <= 0 {
		width = DefaultWordWrap
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("terminal renderer: %w", err)
	}
	return &Terminal{tr: tr}, nil
}

// ValidStyle reports whether name is a built-in glamour style.
func ValidStyle(name string) bool {
	if name == StyleAuto {
		return true
	}
	_, ok := styles.DefaultStyles[name]
	return ok
}

// Render implements Renderer.
func (t *Terminal) Render(text string) (string, error) {
	return t.tr.Render(text)
}
