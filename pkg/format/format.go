// Package format implements selection-aware Markdown formatting.
//
// Given the current text, a selection and an operation, Apply computes the
// new text and the caret offset that lands right after the inserted syntax.
// Non-empty selections are wrapped; empty selections get a placeholder
// inserted at the caret. All offsets are rune offsets.
package format

import (
	"strings"

	"github.com/yaklabco/mdnote/pkg/textedit"
)

// Placeholder URLs used when the formatter is not configured.
const (
	DefaultLinkURL  = "https://example.com"
	DefaultImageURL = "https://example.com/image.jpg"
)

// Placeholder text inserted when nothing is selected.
const (
	placeholderBold     = "bold"
	placeholderItalic   = "italic"
	placeholderLink     = "link"
	placeholderImageAlt = "alt text"
)

// Selection is a rune range [Start, End) of the text. Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Clamp returns the selection normalized and bounded to a text of length runes.
func (s Selection) Clamp(length int) Selection {
	start, end := textedit.Clamp(s.Start, s.End, length)
	return Selection{Start: start, End: end}
}

// Result is the outcome of a formatting operation.
type Result struct {
	// Text is the new document text.
	Text string

	// Caret is the rune offset right after the inserted syntax.
	Caret int

	// Inserted is the text that replaced the selection.
	Inserted string

	// Changed is false when the operation was a no-op.
	Changed bool
}

// Formatter applies formatting operations. The zero value uses the default placeholder URLs.
type Formatter struct {
	LinkURL  string
	ImageURL string
}

// New returns a Formatter with the given placeholder URLs.
// Empty values fall back to DefaultLinkURL and DefaultImageURL.
func New(linkURL, imageURL string) Formatter {
	return Formatter{LinkURL: linkURL, ImageURL: imageURL}
}

// Apply formats text with the zero-value Formatter.
func Apply(text string, sel Selection, op Operation) Result {
	return Formatter{}.Apply(text, sel, op)
}

// Apply computes the new text and caret for op applied to sel.
// Out-of-range selections are clamped; invalid operations return the text unchanged
// with the caret at the selection start. Invalid UTF-8 bytes come back as U+FFFD,
// one per byte, so the result never differs from text elsewhere in encoding only.
func (f Formatter) Apply(text string, sel Selection, op Operation) Result {
	original := text
	text = textedit.Normalize(text)

	sel = sel.Clamp(textedit.RuneLen(text))
	unchanged := Result{Text: text, Caret: sel.Start, Changed: text != original}

	inserted, ok := f.syntax(op, textedit.Slice(text, sel.Start, sel.End))
	if !ok {
		return unchanged
	}

	edit := textedit.Replace(sel.Start, sel.End, inserted)
	out, err := textedit.Apply(text, edit)
	if err != nil {
		return unchanged
	}

	return Result{
		Text:     out,
		Caret:    edit.CaretAfter(),
		Inserted: inserted,
		Changed:  out != original,
	}
}

// syntax returns the text that replaces selected for op.
func (f Formatter) syntax(op Operation, selected string) (string, bool) {
	if !op.Valid() {
		return "", false
	}

	switch op.Kind {
	case KindBold:
		return "**" + orDefault(selected, placeholderBold) + "**", true
	case KindItalic:
		return "_" + orDefault(selected, placeholderItalic) + "_", true
	case KindLink:
		return "[" + orDefault(selected, placeholderLink) + "](" + f.linkURL() + ")", true
	case KindImage:
		return "![" + orDefault(selected, placeholderImageAlt) + "](" + f.imageURL() + ")", true
	case KindHeading:
		return strings.Repeat("#", op.Level) + " " + selected, true
	default:
		return "", false
	}
}

func (f Formatter) linkURL() string {
	return orDefault(f.LinkURL, DefaultLinkURL)
}

func (f Formatter) imageURL() string {
	return orDefault(f.ImageURL, DefaultImageURL)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
