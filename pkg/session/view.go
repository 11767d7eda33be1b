package session

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownView is returned by ParseViewMode for unrecognized names.
var ErrUnknownView = errors.New("unknown view mode")

// ViewMode is what the host displays next to the editor.
type ViewMode int

const (
	// ViewPreview shows the rendered Markdown.
	ViewPreview ViewMode = iota
	// ViewRaw shows the Markdown source.
	ViewRaw
)

func (v ViewMode) String() string {
	switch v {
	case ViewPreview:
		return "preview"
	case ViewRaw:
		return "raw"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(v))
	}
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewPreview {
		return ViewRaw
	}
	return ViewPreview
}

// ParseViewMode maps "preview" or "raw" to a ViewMode. Empty selects ViewPreview.
func ParseViewMode(name string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "preview":
		return ViewPreview, nil
	case "raw", "source":
		return ViewRaw, nil
	default:
		return ViewPreview, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
}
