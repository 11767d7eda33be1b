// Package render converts Markdown text into a displayable preview.
//
// HTML previews go through goldmark and are sanitized with bluemonday;
// terminal previews use glamour. Safe wraps any Renderer so callers always
// get displayable output, falling back to escaped raw text.
package render

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// Renderer converts Markdown text to its preview representation.
type Renderer interface {
	Render(text string) (string, error)
}

// Func adapts a function to the Renderer interface.
type Func func(text string) (string, error)

// Render implements Renderer.
func (f Func) Render(text string) (string, error) { return f(text) }

// Flavor selects the Markdown dialect.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// ErrUnknownFlavor is returned by ParseFlavor for unsupported dialects.
var ErrUnknownFlavor = errors.New("unknown markdown flavor")

// ParseFlavor maps a configuration value to a Flavor. Empty selects GFM.
func ParseFlavor(name string) (Flavor, error) {
	switch f := Flavor(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FlavorGFM, nil
	case FlavorCommonMark, FlavorGFM:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFlavor, name)
	}
}

// Fallback returns text HTML-escaped inside a pre element.
func Fallback(text string) string {
	return "<pre>" + html.EscapeString(text) + "</pre>"
}

// Safe renders text with r. If r fails or panics, the escaped raw text is
// returned instead together with the failure.
func Safe(r Renderer, text string) (out string, err error) {
	if r == nil {
		return Fallback(text), errors.New("render: no renderer")
	}

	defer func() {
		if p := recover(); p != nil {
			out = Fallback(text)
			err = fmt.Errorf("render: panic: %v", p)
		}
	}()

	out, err = r.Render(text)
	if err != nil {
		return Fallback(text), fmt.Errorf("render: %w", err)
	}
	return out, nil
}
