// Package diff computes line-based unified diffs between two document versions.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// LineKind classifies a line in a hunk.
type LineKind int

const (
	Context LineKind = iota
	Added
	Removed
)

// Prefix returns the unified diff marker for the kind.
func (k LineKind) Prefix() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a hunk, without its marker or newline.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a contiguous region of change with surrounding context.
// Start fields are 1-based line numbers.
type Hunk struct {
	FromStart, FromCount int
	ToStart, ToCount     int
	Lines                []Line
}

// Header returns the "@@ -a,b +c,d @@" line.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.FromStart, h.FromCount, h.ToStart, h.ToCount)
}

// Diff is the result of comparing two texts.
type Diff struct {
	From, To  string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Compute compares from and to line by line. fromLabel and toLabel name the
// versions in the header. It returns nil when the texts have the same lines.
func Compute(fromLabel, toLabel, from, to string) *Diff {
	ops := editScript(splitLines(from), splitLines(to))

	changed := false
	for _, op := range ops {
		if op.Kind != Context {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{From: fromLabel, To: toLabel, Hunks: hunks(ops)}
	for _, op := range ops {
		switch op.Kind {
		case Added:
			d.Additions++
		case Removed:
			d.Deletions++
		}
	}
	return d
}

// HasChanges reports whether d contains any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders d in unified diff format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", d.From, d.To)
	for _, h := range d.Hunks {
		b.WriteString(h.Header())
		b.WriteByte('\n')
		for _, l := range h.Lines {
			b.WriteString(l.Kind.Prefix())
			b.WriteString(l.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// splitLines splits s into lines, ignoring one trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// editScript returns the line operations turning a into b, derived from
// a longest-common-subsequence table.
func editScript(a, b []string) []Line {
	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]Line, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, Line{Context, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, Line{Removed, a[i]})
			i++
		default:
			ops = append(ops, Line{Added, b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, Line{Removed, a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, Line{Added, b[j]})
	}
	return ops
}

// hunks groups ops into hunks, merging changes separated by at most
// 2*contextLines unchanged lines.
func hunks(ops []Line) []Hunk {
	var out []Hunk

	for start := 0; start < len(ops); {
		first := nextChange(ops, start)
		if first < 0 {
			break
		}

		// Extend while the gap to the next change is small enough to share context.
		last := first
		for {
			end := last
			for end < len(ops) && ops[end].Kind != Context {
				end++
			}
			next := nextChange(ops, end)
			if next < 0 || next-end > 2*contextLines {
				last = end
				break
			}
			last = next
		}

		from := max(first-contextLines, 0)
		to := min(last+contextLines, len(ops))
		out = append(out, buildHunk(ops, from, to))
		start = to
	}

	return out
}

func nextChange(ops []Line, from int) int {
	for i := from; i < len(ops); i++ {
		if ops[i].Kind != Context {
			return i
		}
	}
	return -1
}

func buildHunk(ops []Line, from, to int) Hunk {
	h := Hunk{FromStart: 1, ToStart: 1}
	for _, op := range ops[:from] {
		if op.Kind != Added {
			h.FromStart++
		}
		if op.Kind != Removed {
			h.ToStart++
		}
	}

	h.Lines = append([]Line(nil), ops[from:to]...)
	for _, op := range h.Lines {
		if op.Kind != Added {
			h.FromCount++
		}
		if op.Kind != Removed {
			h.ToCount++
		}
	}

	// Unified diff convention: an empty side starts at the line before.
	if h.FromCount == 0 {
		h.FromStart--
	}
	if h.ToCount == 0 {
		h.ToStart--
	}
	return h
}
