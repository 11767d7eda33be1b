// Package textedit provides the rune-offset splice primitive used by the
// formatter and the editor session.
package textedit

import "unicode/utf8"

// Edit replaces the runes [Start, End) of a text with NewText.
type Edit struct {
	// Start is the rune index where the edit begins (inclusive).
	Start int

	// End is the rune index where the edit ends (exclusive).
	End int

	// NewText is the replacement text.
	NewText string
}

// Replace returns an edit that replaces runes [start, end) with newText.
func Replace(start, end int, newText string) Edit {
	return Edit{Start: start, End: end, NewText: newText}
}

// Insert returns an edit that inserts text at the given rune offset.
func Insert(offset int, text string) Edit {
	return Replace(offset, offset, text)
}

// Delete returns an edit that removes runes [start, end).
func Delete(start, end int) Edit {
	return Replace(start, end, "")
}

// IsEmpty reports whether the edit covers no runes.
func (e Edit) IsEmpty() bool {
	return e.Start == e.End
}

// CaretAfter returns the rune offset immediately after the inserted text.
func (e Edit) CaretAfter() int {
	return e.Start + utf8.RuneCountInString(e.NewText)
}

// RuneLen returns the length of s in runes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Normalize returns text with every byte that is not part of a valid UTF-8
// sequence replaced by U+FFFD. Each invalid byte becomes one replacement rune,
// so rune offsets into text stay valid for the result.
func Normalize(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	return string([]rune(text))
}
