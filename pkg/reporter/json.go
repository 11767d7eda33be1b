package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdnote/pkg/outline"
	"github.com/yaklabco/mdnote/pkg/session"
)

// JSONVersion is the current JSON output format version.
const JSONVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string        `json:"version"`
	Revision  int           `json:"revision"`
	View      string        `json:"view"`
	FontSize  int           `json:"font_size"`
	Selection JSONSelection `json:"selection"`
	CanUndo   bool          `json:"can_undo"`
	Documents int           `json:"documents"`
	Text      string        `json:"text"`
	HTML      string        `json:"html"`
	Stats     outline.Stats `json:"stats"`
}

// JSONSelection is a rune-offset range.
type JSONSelection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// JSONReporter formats the session state as JSON.
type JSONReporter struct {
	opts     Options
	analyzer *outline.Analyzer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts:     opts,
		analyzer: outline.New(opts.Flavor),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, sess *session.Session) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.BuildOutput(sess)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// BuildOutput collects the JSON document for sess.
func (r *JSONReporter) BuildOutput(sess *session.Session) *JSONOutput {
	sel := sess.Selection()
	return &JSONOutput{
		Version:   JSONVersion,
		Revision:  sess.Revision(),
		View:      sess.ViewMode().String(),
		FontSize:  sess.FontSize(),
		Selection: JSONSelection{Start: sel.Start, End: sel.End},
		CanUndo:   sess.CanUndo(),
		Documents: len(sess.Documents()),
		Text:      sess.Text(),
		HTML:      sess.Preview(),
		Stats:     r.analyzer.Analyze(sess.Text()),
	}
}
