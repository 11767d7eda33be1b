package textedit

import "strings"

// Apply splices the edit into text and returns the result.
// The edit must fit the text; see Validate.
func Apply(text string, edit Edit) (string, error) {
	runes := []rune(text)
	if err := Validate(edit, len(runes)); err != nil {
		return text, err
	}

	var out strings.Builder
	out.Grow(len(text) + len(edit.NewText))

	out.WriteString(string(runes[:edit.Start]))
	out.WriteString(edit.NewText)
	out.WriteString(string(runes[edit.End:]))

	return out.String(), nil
}

// Slice returns runes [start, end) of text, clamped to its bounds.
func Slice(text string, start, end int) string {
	runes := []rune(text)
	start, end = Clamp(start, end, len(runes))
	return string(runes[start:end])
}
