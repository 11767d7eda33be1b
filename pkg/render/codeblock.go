package render

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdnote/pkg/langdetect"
)

// codeBlockRenderer renders fenced code blocks, inventing a language class
// for blocks whose info string is empty.
type codeBlockRenderer struct {
	detect func([]byte) string
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}

	n, ok := node.(*ast.FencedCodeBlock)
	if !ok {
		return ast.WalkContinue, nil
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	label := n.Language(source)
	if len(label) == 0 && r.detect != nil {
		if lang := r.detect(code.Bytes()); lang != langdetect.Unknown {
			label = []byte(lang)
		}
	}

	_, _ = w.WriteString("<pre><code")
	if len(label) > 0 {
		_, _ = w.WriteString(` class="language-`)
		html.DefaultWriter.Write(w, label)
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('>')
	html.DefaultWriter.RawWrite(w, code.Bytes())

	return ast.WalkContinue, nil
}
