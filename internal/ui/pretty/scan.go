package pretty

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdnote/pkg/scan"
)

// scanColumns are the numeric columns of FormatScan.
//
//nolint:gochecknoglobals // read-only table layout
var scanColumns = []string{"WORDS", "HEADINGS", "LINKS", "CODE", "TASKS"}

const scanColumnWidth = 8

// FormatScan renders one row per scanned file followed by a totals row.
// Paths are shown relative to baseDir when possible.
func (t *TableFormatter) FormatScan(result *scan.Result, baseDir string) string {
	if result == nil || len(result.Files) == 0 {
		return t.styles.Dim.Render("No Markdown files found") + "\n"
	}

	fixed := (scanColumnWidth + tablePadding) * len(scanColumns)
	pathWidth := max(minSnippetWidth, t.termWidth-fixed)

	var builder strings.Builder

	header := fmt.Sprintf("%-*s", pathWidth, "FILE")
	for _, col := range scanColumns {
		header += fmt.Sprintf("  %*s", scanColumnWidth, col)
	}
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")

	separator := t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, pathWidth+fixed))
	builder.WriteString(separator + "\n")

	for _, file := range result.Files {
		name := t.styles.Snippet.Render(fmt.Sprintf("%-*s", pathWidth, truncateString(displayPath(file.Path, baseDir), pathWidth)))
		if file.Stats == nil {
			builder.WriteString(name + "  " + t.styles.Error.Render(file.Error) + "\n")
			continue
		}

		stats := file.Stats
		builder.WriteString(name)
		builder.WriteString(scanRow(
			stats.Words,
			len(stats.Headings),
			stats.Links,
			len(stats.CodeBlocks),
			fmt.Sprintf("%d/%d", stats.TasksDone, stats.Tasks),
		))
		builder.WriteString("\n")
	}

	builder.WriteString(separator + "\n")

	totals := result.Totals
	label := fmt.Sprintf("%d files", totals.FilesAnalyzed)
	if totals.FilesErrored > 0 {
		label += fmt.Sprintf(", %d failed", totals.FilesErrored)
	}
	builder.WriteString(t.styles.Bold.Render(fmt.Sprintf("%-*s", pathWidth, label)))
	builder.WriteString(scanRow(
		totals.Words,
		totals.Headings,
		totals.Links,
		totals.CodeBlocks,
		fmt.Sprintf("%d/%d", totals.TasksDone, totals.Tasks),
	))
	builder.WriteString("\n")

	return builder.String()
}

func scanRow(values ...any) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "  %*v", scanColumnWidth, v)
	}
	return b.String()
}

func displayPath(path, baseDir string) string {
	if baseDir == "" {
		return path
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
