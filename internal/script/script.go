// Package script parses the line-oriented command scripts replayed by
// "mdnote run" through a single editor session.
//
// Each non-blank line holds one verb and its arguments; lines starting with
// '#' are comments. Text payloads run to the end of the line and may be
// written as a Go-quoted string to include escapes such as \n.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/session"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("script syntax error")

// Verbs that produce output or act outside Session.Handle.
const (
	VerbShow    = "show"
	VerbStatus  = "status"
	VerbHistory = "history"
	VerbRestore = "restore"
)

type argKind int

const (
	argNone argKind = iota
	argText
	argInts
	argWord
)

type verbSpec struct {
	kind    argKind
	minArgs int
	maxArgs int
}

//nolint:gochecknoglobals // read-only lookup table
var verbs = map[string]verbSpec{
	"text":      {kind: argText},
	"append":    {kind: argText},
	"select":    {kind: argInts, minArgs: 2, maxArgs: 2},
	"caret":     {kind: argInts, minArgs: 1, maxArgs: 1},
	"bold":      {kind: argNone},
	"italic":    {kind: argNone},
	"link":      {kind: argNone},
	"image":     {kind: argNone},
	"heading":   {kind: argInts, minArgs: 1, maxArgs: 1},
	"undo":      {kind: argNone},
	"toggle":    {kind: argNone},
	"font":      {kind: argInts, minArgs: 1, maxArgs: 1},
	VerbRestore: {kind: argInts, minArgs: 1, maxArgs: 1},
	VerbShow:    {kind: argWord, maxArgs: 1},
	VerbStatus:  {kind: argNone},
	VerbHistory: {kind: argNone},
}

// Step is one parsed script line.
type Step struct {
	// Line is the 1-based source line.
	Line int
	Verb string

	// Text holds the payload of text/append and the optional format of show.
	Text string

	// Ints holds numeric arguments.
	Ints []int
}

func (s Step) String() string {
	return fmt.Sprintf("line %d: %s", s.Line, s.Verb)
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		step, err := parseLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return steps, nil
}

func parseLine(lineNo int, line string) (Step, error) {
	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)

	def, ok := verbs[verb]
	if !ok {
		return Step{}, fmt.Errorf("%w: line %d: unknown verb %q", ErrSyntax, lineNo, verb)
	}

	step := Step{Line: lineNo, Verb: verb}
	fields := strings.Fields(rest)

	switch def.kind {
	case argNone:
		if len(fields) > 0 {
			return Step{}, fmt.Errorf("%w: line %d: %s takes no arguments", ErrSyntax, lineNo, verb)
		}
	case argText:
		text, err := unquote(rest)
		if err != nil {
			return Step{}, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNo, err)
		}
		step.Text = text
	case argWord:
		if len(fields) > def.maxArgs {
			return Step{}, fmt.Errorf("%w: line %d: %s takes at most %d argument", ErrSyntax, lineNo, verb, def.maxArgs)
		}
		if len(fields) == 1 {
			step.Text = fields[0]
		}
	case argInts:
		if len(fields) < def.minArgs || len(fields) > def.maxArgs {
			return Step{}, fmt.Errorf("%w: line %d: %s takes %d numeric argument(s)", ErrSyntax, lineNo, verb, def.minArgs)
		}
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Step{}, fmt.Errorf("%w: line %d: %q is not a number", ErrSyntax, lineNo, f)
			}
			step.Ints = append(step.Ints, n)
		}
	}

	return step, nil
}

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("bad quoted text %s", s)
	}
	return out, nil
}

// Command returns the session command for the step, evaluated against the
// current state of sess. It returns nil for show, status, history and restore.
func (s Step) Command(sess *session.Session) session.Command {
	switch s.Verb {
	case "text":
		return session.TextChanged{Text: s.Text}
	case "append":
		return session.TextChanged{Text: sess.Text() + s.Text}
	case "select":
		return session.Select{Selection: format.Selection{Start: s.Ints[0], End: s.Ints[1]}}
	case "caret":
		return session.Select{Selection: format.Caret(s.Ints[0])}
	case "bold":
		return session.ApplyFormat{Op: format.Bold(), Selection: sess.Selection()}
	case "italic":
		return session.ApplyFormat{Op: format.Italic(), Selection: sess.Selection()}
	case "link":
		return session.ApplyFormat{Op: format.Link(), Selection: sess.Selection()}
	case "image":
		return session.ApplyFormat{Op: format.Image(), Selection: sess.Selection()}
	case "heading":
		return session.ApplyFormat{Op: format.Heading(s.Ints[0]), Selection: sess.Selection()}
	case "undo":
		return session.Undo{}
	case "toggle":
		return session.ToggleView{}
	case "font":
		return session.AdjustFontSize{Delta: s.Ints[0]}
	default:
		return nil
	}
}

// Verbs returns the accepted verbs, for help output.
func Verbs() []string {
	return []string{
		"text", "append", "select", "caret",
		"bold", "italic", "link", "image", "heading",
		"undo", "toggle", "font", VerbRestore,
		VerbShow, VerbStatus, VerbHistory,
	}
}
