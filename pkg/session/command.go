package session

import "github.com/yaklabco/mdnote/pkg/format"

// Command is an input event handled by Session.Handle.
type Command interface {
	Name() string
}

// TextChanged replaces the whole document text.
type TextChanged struct {
	Text string
}

// ApplyFormat applies a formatting operation to a selection of the current text.
type ApplyFormat struct {
	Op        format.Operation
	Selection format.Selection
}

// Undo restores the previous history snapshot.
type Undo struct{}

// ToggleView switches between the preview and raw source views.
type ToggleView struct{}

// AdjustFontSize changes the font size by Delta, never going below the minimum.
type AdjustFontSize struct {
	Delta int
}

// Select moves the selection without changing the text.
type Select struct {
	Selection format.Selection
}

func (TextChanged) Name() string    { return "text_changed" }
func (ApplyFormat) Name() string    { return "apply_format" }
func (Undo) Name() string           { return "undo" }
func (ToggleView) Name() string     { return "toggle_view" }
func (AdjustFontSize) Name() string { return "adjust_font_size" }
func (Select) Name() string         { return "select" }
