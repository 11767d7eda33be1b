package outline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/outline"
	"github.com/yaklabco/mdnote/pkg/render"
)

const sample = "# Title\n" +
	"\n" +
	"Some *text* with [a link](https://x.y) and ![img](i.png).\n" +
	"\n" +
	"## Sub `code`\n" +
	"\n" +
	"```go\n" +
	"func main() {}\n" +
	"```\n" +
	"\n" +
	"```\n" +
	"package main\n" +
	"\n" +
	"func x() {}\n" +
	"```\n" +
	"\n" +
	"- [ ] todo\n" +
	"- [x] done\n" +
	"\n" +
	"| a | b |\n" +
	"|---|---|\n" +
	"| 1 | 2 |\n"

func TestAnalyzeGFM(t *testing.T) {
	t.Parallel()

	stats := outline.New(render.FlavorGFM).Analyze(sample)

	assert.Equal(t, 22, stats.Lines)
	assert.Equal(t, []outline.Heading{
		{Level: 1, Text: "Title", Line: 1},
		{Level: 2, Text: "Sub code", Line: 5},
	}, stats.Headings)
	assert.Equal(t, 1, stats.Links)
	assert.Equal(t, 1, stats.Images)
	assert.Equal(t, 1, stats.Tables)
	assert.Equal(t, 2, stats.Tasks)
	assert.Equal(t, 1, stats.TasksDone)

	require.Len(t, stats.CodeBlocks, 2)
	assert.Equal(t, outline.CodeBlock{Language: "go", Line: 7}, stats.CodeBlocks[0])
	assert.Equal(t, outline.CodeBlock{Language: "go", Detected: true, Line: 11}, stats.CodeBlocks[1])
}

func TestAnalyzeCommonMark(t *testing.T) {
	t.Parallel()

	stats := outline.New(render.FlavorCommonMark).Analyze(sample)

	assert.Zero(t, stats.Tables, "tables are a GFM extension")
	assert.Zero(t, stats.Tasks, "task lists are a GFM extension")
	assert.Len(t, stats.Headings, 2)
}

func TestAnalyzeCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		runes int
		words int
		lines int
	}{
		{"empty", "", 0, 0, 0},
		{"single line", "hello world", 11, 2, 1},
		{"trailing newline", "a\nb\n", 4, 2, 2},
		{"multibyte", "héllo wörld", 11, 2, 1},
		{"blank lines", "\n\n", 2, 0, 2},
	}

	a := outline.New(render.FlavorGFM)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := a.Analyze(tt.in)
			assert.Equal(t, tt.runes, stats.Runes)
			assert.Equal(t, tt.words, stats.Words)
			assert.Equal(t, tt.lines, stats.Lines)
			assert.NotNil(t, stats.Headings)
			assert.NotNil(t, stats.CodeBlocks)
		})
	}
}

func TestAnalyzeSetextHeading(t *testing.T) {
	t.Parallel()

	stats := outline.New(render.FlavorGFM).Analyze("intro\n\nTitle\n=====\n")

	require.Len(t, stats.Headings, 1)
	assert.Equal(t, outline.Heading{Level: 1, Text: "Title", Line: 3}, stats.Headings[0])
}

func TestAnalyzeEmptyFence(t *testing.T) {
	t.Parallel()

	stats := outline.New(render.FlavorGFM).Analyze("```\n```\n")

	require.Len(t, stats.CodeBlocks, 1)
	assert.Equal(t, outline.CodeBlock{Language: "text", Detected: true}, stats.CodeBlocks[0])
}
