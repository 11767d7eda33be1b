package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/reporter"
	"github.com/yaklabco/mdnote/pkg/session"
)

func newSession(t *testing.T, text string) *session.Session {
	t.Helper()

	ctx := context.Background()
	sess := session.New(ctx, session.Options{Logger: logging.Discard()})
	require.NoError(t, sess.Handle(ctx, session.TextChanged{Text: text}))
	return sess
}

func report(t *testing.T, sess *session.Session, opts reporter.Options) string {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	rep, err := reporter.New(opts)
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), sess))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to view", input: "", want: reporter.FormatView},
		{name: "view", input: "view", want: reporter.FormatView},
		{name: "raw", input: "raw", want: reporter.FormatRaw},
		{name: "text alias", input: "text", want: reporter.FormatRaw},
		{name: "html", input: "html", want: reporter.FormatHTML},
		{name: "pretty", input: "pretty", want: reporter.FormatPretty},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}

func TestRawAndHTML(t *testing.T) {
	t.Parallel()

	sess := newSession(t, "# Hi\n\nthere")

	assert.Equal(t, "# Hi\n\nthere\n", report(t, sess, reporter.Options{Format: reporter.FormatRaw}))

	html := report(t, sess, reporter.Options{Format: reporter.FormatHTML})
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<p>there</p>")
}

func TestViewFollowsMode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess := newSession(t, "*x*")

	assert.Contains(t, report(t, sess, reporter.Options{}), "<em>x</em>")

	require.NoError(t, sess.Handle(ctx, session.ToggleView{}))
	assert.Equal(t, "*x*\n", report(t, sess, reporter.Options{}))
}

func TestPretty(t *testing.T) {
	t.Parallel()

	sess := newSession(t, "# Heading\n\nbody text")
	out := report(t, sess, reporter.Options{
		Format:   reporter.FormatPretty,
		Style:    render.StyleNoTTY,
		WordWrap: 40,
	})

	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "body text")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess := newSession(t, "# Title\n\nSee [x](https://x.y)")
	require.NoError(t, sess.Handle(ctx, session.Select{Selection: format.Selection{Start: 2, End: 7}}))

	out := report(t, sess, reporter.Options{Format: reporter.FormatJSON, Flavor: render.FlavorGFM})

	var got reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, reporter.JSONVersion, got.Version)
	assert.Equal(t, 1, got.Revision)
	assert.Equal(t, "preview", got.View)
	assert.Equal(t, session.DefaultFontSize, got.FontSize)
	assert.Equal(t, reporter.JSONSelection{Start: 2, End: 7}, got.Selection)
	assert.Equal(t, 1, got.Documents)
	assert.True(t, got.CanUndo)
	assert.Equal(t, "# Title\n\nSee [x](https://x.y)", got.Text)
	assert.Contains(t, got.HTML, `href="https://x.y"`)
	require.Len(t, got.Stats.Headings, 1)
	assert.Equal(t, "Title", got.Stats.Headings[0].Text)
	assert.Equal(t, 1, got.Stats.Links)
}

func TestJSONCompact(t *testing.T) {
	t.Parallel()

	sess := newSession(t, "a")
	out := report(t, sess, reporter.Options{Format: reporter.FormatJSON, Compact: true})

	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("\n")), "compact output is a single line")
}
