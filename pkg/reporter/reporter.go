// Package reporter writes the current document of a session in one of
// several output formats.
package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/session"
)

// Reporter formats and writes a session's current document.
type Reporter interface {
	Report(ctx context.Context, sess *session.Session) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Format == "" {
		opts.Format = defaults.Format
	}
	if !opts.Format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	switch opts.Format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatPretty:
		return NewPrettyReporter(opts)
	case FormatRaw:
		return &textReporter{opts: opts, pick: (*session.Session).Text}, nil
	case FormatHTML:
		return &textReporter{opts: opts, pick: (*session.Session).Preview}, nil
	default:
		return &textReporter{opts: opts, pick: (*session.Session).View}, nil
	}
}

// textReporter writes one string taken from the session, newline terminated.
type textReporter struct {
	opts Options
	pick func(*session.Session) string
}

func (r *textReporter) Report(_ context.Context, sess *session.Session) error {
	return writeTerminated(r.opts, r.pick(sess))
}

// PrettyReporter renders the raw Markdown for a terminal with glamour.
type PrettyReporter struct {
	opts     Options
	terminal *render.Terminal
}

// NewPrettyReporter creates a reporter for FormatPretty.
func NewPrettyReporter(opts Options) (*PrettyReporter, error) {
	terminal, err := render.NewTerminal(opts.Style, opts.WordWrap)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	return &PrettyReporter{opts: opts, terminal: terminal}, nil
}

// Report implements Reporter. Rendering failures fall back to the raw text.
func (r *PrettyReporter) Report(_ context.Context, sess *session.Session) error {
	out, err := r.terminal.Render(sess.Text())
	if err != nil {
		out = sess.Text()
	}
	return writeTerminated(r.opts, out)
}

func writeTerminated(opts Options, s string) (err error) {
	bw := bufio.NewWriterSize(opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if _, err := bw.WriteString(s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if !strings.HasSuffix(s, "\n") {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
