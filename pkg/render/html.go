package render

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdnote/pkg/langdetect"
)

// codeClassPattern limits code element classes to language labels.
var codeClassPattern = regexp.MustCompile(`^language-[\w+-]+$`)

// HTMLOptions configures NewHTML.
type HTMLOptions struct {
	// Flavor selects CommonMark or GFM parsing. Empty selects GFM.
	Flavor Flavor

	// DetectLanguages labels unlabelled fenced code blocks with a detected language class.
	DetectLanguages bool
}

// HTML renders sanitized HTML. Raw HTML in the source is never passed through.
type HTML struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewHTML returns an HTML renderer for opts.
func NewHTML(opts HTMLOptions) *HTML {
	var gmOpts []goldmark.Option

	if opts.Flavor != FlavorCommonMark {
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.GFM))
	}

	if opts.DetectLanguages {
		gmOpts = append(gmOpts, goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(
				util.Prioritized(&codeBlockRenderer{detect: langdetect.Detect}, 100),
			),
		))
	}

	return &HTML{
		md:     goldmark.New(gmOpts...),
		policy: Policy(),
	}
}

// Policy returns the sanitization policy applied to rendered HTML.
func Policy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(codeClassPattern).OnElements("code")
	return p
}

// Render implements Renderer.
func (h *HTML) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return string(h.policy.SanitizeBytes(buf.Bytes())), nil
}
