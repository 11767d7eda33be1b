package pretty

import "strings"

// FormatError formats an error for stderr.
func (s *Styles) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return s.Error.Render("error:") + " " + err.Error() + "\n"
}

// FormatWarning formats a non-fatal message for stderr.
func (s *Styles) FormatWarning(msg string) string {
	return s.Warning.Render("warning:") + " " + msg + "\n"
}

// FormatSuccess formats a confirmation line.
func (s *Styles) FormatSuccess(msg string) string {
	return s.Success.Render(msg) + "\n"
}

// FormatCaretContext shows the line of text containing the rune offset caret
// with a "^" marker under the caret column.
func (s *Styles) FormatCaretContext(text string, caret int) string {
	const indent = "    "

	runes := []rune(text)
	caret = max(0, min(caret, len(runes)))

	lineStart := caret
	for lineStart > 0 && runes[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := caret
	for lineEnd < len(runes) && runes[lineEnd] != '\n' {
		lineEnd++
	}

	line := string(runes[lineStart:lineEnd])
	column := caret - lineStart

	var builder strings.Builder
	builder.WriteString(indent + s.Snippet.Render(line) + "\n")
	builder.WriteString(indent + strings.Repeat(" ", column) + s.Caret.Render("^") + "\n")
	return builder.String()
}
