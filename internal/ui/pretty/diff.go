package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdnote/pkg/diff"
)

// FormatDiff renders d as a styled unified diff followed by a change count.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return s.Dim.Render("No changes") + "\n"
	}

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render("--- "+d.From) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ "+d.To) + "\n")

	for _, hunk := range d.Hunks {
		builder.WriteString(s.DiffHunk.Render(hunk.Header()) + "\n")
		for _, line := range hunk.Lines {
			builder.WriteString(s.diffLineStyle(line.Kind).Render(line.Kind.Prefix()+line.Content) + "\n")
		}
	}

	builder.WriteString(fmt.Sprintf("%s, %s\n",
		s.DiffAdd.Render(fmt.Sprintf("%d additions", d.Additions)),
		s.DiffRemove.Render(fmt.Sprintf("%d deletions", d.Deletions)),
	))
	return builder.String()
}

func (s *Styles) diffLineStyle(kind diff.LineKind) lipgloss.Style {
	switch kind {
	case diff.Added:
		return s.DiffAdd
	case diff.Removed:
		return s.DiffRemove
	default:
		return s.DiffContext
	}
}
