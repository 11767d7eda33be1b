package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/render"
)

func TestHTMLRender(t *testing.T) {
	t.Parallel()

	r := render.NewHTML(render.HTMLOptions{Flavor: render.FlavorGFM, DetectLanguages: true})

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "heading and emphasis",
			input:    "# Hi\n\n**bold** and _it_",
			contains: []string{"<h1>Hi</h1>", "<strong>bold</strong>", "<em>it</em>"},
		},
		{
			name:     "link placeholder",
			input:    "[link](https://example.com)",
			contains: []string{`<a href="https://example.com"`, ">link</a>"},
		},
		{
			name:     "image placeholder",
			input:    "![alt text](https://example.com/image.jpg)",
			contains: []string{`src="https://example.com/image.jpg"`, `alt="alt text"`},
		},
		{
			name:        "script block is dropped",
			input:       "<script>alert(1)</script>\n\nafter",
			contains:    []string{"after"},
			notContains: []string{"<script", "alert(1)"},
		},
		{
			name:        "inline event handler is dropped",
			input:       `text <img src=x onerror=alert(1)> more`,
			notContains: []string{"onerror", "<img"},
		},
		{
			name:        "javascript url is dropped",
			input:       "[x](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
		{
			name:     "labelled fence keeps its class",
			input:    "```go\nx := 1\n```",
			contains: []string{`<code class="language-go">`},
		},
		{
			name:     "unlabelled fence gets detected class",
			input:    "```\npackage main\n\nfunc main() {}\n```",
			contains: []string{`<code class="language-go">`},
		},
		{
			name:        "unknown fence stays unlabelled",
			input:       "```\nhello there\n```",
			contains:    []string{"<pre><code>hello there"},
			notContains: []string{"language-"},
		},
		{
			name:        "hostile info string is stripped",
			input:       "```go\" onclick=\"x\nx\n```",
			notContains: []string{"onclick"},
		},
		{
			name:        "code content is escaped",
			input:       "```\n<b>x</b>\n```",
			contains:    []string{"&lt;b&gt;"},
			notContains: []string{"<b>"},
		},
		{
			name:     "gfm table",
			input:    "| a |\n|---|\n| b |\n",
			contains: []string{"<table>", "<td>b</td>"},
		},
		{
			name:     "gfm strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := r.Render(tt.input)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, bad := range tt.notContains {
				assert.NotContains(t, out, bad)
			}
		})
	}
}

func TestHTMLCommonMarkFlavor(t *testing.T) {
	t.Parallel()

	r := render.NewHTML(render.HTMLOptions{Flavor: render.FlavorCommonMark})

	out, err := r.Render("| a |\n|---|\n| b |\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "<table>")

	out, err = r.Render("```\npackage main\n```")
	require.NoError(t, err)
	assert.NotContains(t, out, "language-", "detection is off")
}

func TestHTMLEmpty(t *testing.T) {
	t.Parallel()

	out, err := render.NewHTML(render.HTMLOptions{}).Render("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
