// Package outline summarizes a Markdown document: its heading outline and
// simple counts used by the stats command and JSON output.
package outline

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdnote/pkg/langdetect"
	"github.com/yaklabco/mdnote/pkg/render"
)

// Heading is one entry of the document outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// CodeBlock describes a fenced or indented code block. Line is 0 for an
// empty block.
type CodeBlock struct {
	// Language is the fence label, or the detected language when unlabelled.
	Language string `json:"language"`
	Detected bool   `json:"detected,omitempty"`
	Line     int    `json:"line"`
}

// Stats summarizes a document.
type Stats struct {
	Runes      int         `json:"runes"`
	Words      int         `json:"words"`
	Lines      int         `json:"lines"`
	Headings   []Heading   `json:"headings"`
	Links      int         `json:"links"`
	Images     int         `json:"images"`
	CodeBlocks []CodeBlock `json:"code_blocks"`
	Tables     int         `json:"tables"`
	Tasks      int         `json:"tasks"`
	TasksDone  int         `json:"tasks_done"`
}

// Analyzer parses documents with the same dialect as the HTML renderer.
type Analyzer struct {
	md goldmark.Markdown
}

// New returns an Analyzer for flavor. GFM enables tables and task lists.
func New(flavor render.Flavor) *Analyzer {
	var opts []goldmark.Option
	if flavor != render.FlavorCommonMark {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return &Analyzer{md: goldmark.New(opts...)}
}

// Analyze returns the outline and counts for markdown.
func (a *Analyzer) Analyze(markdown string) Stats {
	source := []byte(markdown)
	stats := Stats{
		Runes:      utf8.RuneCountInString(markdown),
		Words:      len(strings.Fields(markdown)),
		Lines:      countLines(markdown),
		Headings:   []Heading{},
		CodeBlocks: []CodeBlock{},
	}

	root := a.md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			stats.Headings = append(stats.Headings, Heading{
				Level: n.Level,
				Text:  strings.TrimSpace(plainText(n, source)),
				Line:  blockLine(n, source),
			})
		case *ast.Link, *ast.AutoLink:
			stats.Links++
		case *ast.Image:
			stats.Images++
		case *ast.FencedCodeBlock:
			block := codeBlock(n, n.Language(source), source)
			// Content starts on the line after the opening fence.
			block.Line = max(block.Line-1, 0)
			stats.CodeBlocks = append(stats.CodeBlocks, block)
		case *ast.CodeBlock:
			stats.CodeBlocks = append(stats.CodeBlocks, codeBlock(n, nil, source))
		case *extast.Table:
			stats.Tables++
		case *extast.TaskCheckBox:
			stats.Tasks++
			if n.IsChecked {
				stats.TasksDone++
			}
		}
		return ast.WalkContinue, nil
	})

	return stats
}

func codeBlock(n ast.Node, label, source []byte) CodeBlock {
	block := CodeBlock{Line: blockLine(n, source)}
	if len(label) > 0 {
		block.Language = string(label)
		return block
	}

	var body bytes.Buffer
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		body.Write(seg.Value(source))
	}
	block.Language = langdetect.Detect(body.Bytes())
	block.Detected = true
	return block
}

// plainText concatenates the text of n's inline descendants.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Value(source))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// blockLine returns the 1-based line where block n starts, or 0 when unknown.
func blockLine(n ast.Node, source []byte) int {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0
	}
	return bytes.Count(source[:lines.At(0).Start], []byte("\n")) + 1
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
