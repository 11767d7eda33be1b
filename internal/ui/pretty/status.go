package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdnote/pkg/session"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// snapshotWidth bounds history entries in FormatHistory.
const snapshotWidth = 60

// FormatStatus formats a one-line summary of the session state.
// Example: "rev 3 | 42 chars | sel 5-9 | font 16 | view preview | undo".
func (s *Styles) FormatStatus(sess *session.Session) string {
	sel := sess.Selection()

	position := fmt.Sprintf("caret %d", sel.End)
	if !sel.IsEmpty() {
		position = fmt.Sprintf("sel %d-%d", sel.Start, sel.End)
	}

	parts := []string{
		s.field("rev", sess.Revision()),
		s.field("chars", textedit.RuneLen(sess.Text())),
		s.Caret.Render(position),
		s.field("font", sess.FontSize()),
		s.field("view", sess.ViewMode()),
	}
	if sess.CanUndo() {
		parts = append(parts, s.Success.Render("undo"))
	} else {
		parts = append(parts, s.Dim.Render("no undo"))
	}

	return strings.Join(parts, s.Dim.Render(" | "))
}

func (s *Styles) field(label string, value any) string {
	return s.Label.Render(label) + " " + s.Value.Render(fmt.Sprint(value))
}

// FormatHistory lists undo snapshots oldest first, marking the cursor with "*".
func (s *Styles) FormatHistory(snapshots []string, cursor int) string {
	var builder strings.Builder

	for i, snapshot := range snapshots {
		marker := "  "
		line := s.Snippet.Render(truncateString(quoteSnapshot(snapshot), snapshotWidth))
		if i == cursor {
			marker = s.Current.Render("* ")
			line = s.Current.Render(truncateString(quoteSnapshot(snapshot), snapshotWidth))
		}
		builder.WriteString(fmt.Sprintf("%s%s %s\n", marker, s.Index.Render(fmt.Sprintf("%3d", i)), line))
	}

	return builder.String()
}

func quoteSnapshot(text string) string {
	return strings.ReplaceAll(text, "\n", `\n`)
}
