package pretty

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yaklabco/mdnote/pkg/document"
)

// Table formatting constants.
const (
	tablePadding     = 2
	indexWidth       = 3
	timestampLayout  = "2006-01-02 15:04:05"
	timestampWidth   = len(timestampLayout)
	minCharsWidth    = 5
	minSnippetWidth  = 20
	heavySeparator   = "="
	defaultTermWidth = 100
	ellipsis         = "..."
)

// TableFormatter formats the recent-documents list as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
	location  *time.Location
}

// NewTableFormatter creates a new table formatter. Timestamps are shown in loc
// (time.Local when nil).
func NewTableFormatter(styles *Styles, termWidth int, loc *time.Location) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	if loc == nil {
		loc = time.Local
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
		location:  loc,
	}
}

// FormatDocuments renders list newest first, one row per document, with
// its restore index, save time, length in characters and first line.
func (t *TableFormatter) FormatDocuments(list document.List) string {
	if len(list) == 0 {
		return t.styles.Dim.Render("No saved documents") + "\n"
	}

	charsWidth := minCharsWidth
	for _, doc := range list {
		charsWidth = max(charsWidth, len(fmt.Sprint(utf8.RuneCountInString(doc.Content))))
	}
	fixed := indexWidth + timestampWidth + charsWidth + tablePadding*4
	snippetWidth := max(minSnippetWidth, t.termWidth-fixed)

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %-*s  %*s  %s",
		indexWidth, "#",
		timestampWidth, "SAVED",
		charsWidth, "CHARS",
		"FIRST LINE",
	)
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")

	separator := t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, fixed+snippetWidth))
	builder.WriteString(separator + "\n")

	for i, doc := range list {
		index := t.styles.Index.Render(fmt.Sprintf("%-*d", indexWidth, i))
		stamp := t.styles.Timestamp.Render(doc.Time().In(t.location).Format(timestampLayout))
		chars := fmt.Sprintf("%*d", charsWidth, utf8.RuneCountInString(doc.Content))
		snippet := t.styles.Snippet.Render(truncateString(FirstLine(doc.Content), snippetWidth))

		builder.WriteString(fmt.Sprintf(" %s  %s  %s  %s\n", index, stamp, chars, snippet))
	}

	builder.WriteString(separator + "\n")
	return builder.String()
}

// FirstLine returns the first non-blank line of text, trimmed.
func FirstLine(text string) string {
	for line := range strings.SplitSeq(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// truncateString truncates str to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if utf8.RuneCountInString(str) <= maxLen {
		return str
	}
	runes := []rune(str)
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
