package format_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

func TestApplyWrapsSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		sel  format.Selection
		op   format.Operation
		want string
	}{
		{"bold", "abcdefgh", format.Selection{Start: 2, End: 6}, format.Bold(), "ab**cdef**gh"},
		{"italic", "abcdefgh", format.Selection{Start: 2, End: 6}, format.Italic(), "ab_cdef_gh"},
		{"link", "see docs", format.Selection{Start: 4, End: 8}, format.Link(), "see [docs](https://example.com)"},
		{"image", "a cat", format.Selection{Start: 2, End: 5}, format.Image(), "a ![cat](https://example.com/image.jpg)"},
		{"heading 2", "Title\nbody", format.Selection{Start: 0, End: 5}, format.Heading(2), "## Title\nbody"},
		{"heading 6", "x", format.Selection{Start: 0, End: 1}, format.Heading(6), "###### x"},
		{"multibyte selection", "héllo wörld", format.Selection{Start: 6, End: 11}, format.Bold(), "héllo **wörld**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := format.Apply(tt.text, tt.sel, tt.op)
			assert.Equal(t, tt.want, res.Text)
			assert.True(t, res.Changed)
			assert.Equal(t, tt.sel.Start+textedit.RuneLen(res.Inserted), res.Caret)
		})
	}
}

func TestApplyInsertsPlaceholderAtCaret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		op       format.Operation
		inserted string
	}{
		{"bold", format.Bold(), "**bold**"},
		{"italic", format.Italic(), "_italic_"},
		{"link", format.Link(), "[link](https://example.com)"},
		{"image", format.Image(), "![alt text](https://example.com/image.jpg)"},
		{"heading", format.Heading(3), "### "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := format.Apply("abgh", format.Caret(2), tt.op)
			assert.Equal(t, "ab"+tt.inserted+"gh", res.Text)
			assert.Equal(t, tt.inserted, res.Inserted)
			assert.Equal(t, 2+textedit.RuneLen(tt.inserted), res.Caret)
		})
	}
}

func TestApplyCaretMath(t *testing.T) {
	t.Parallel()

	texts := []string{"", "a", "abcdefgh", "naïve café", "line one\nline two"}
	ops := []format.Operation{
		format.Bold(), format.Italic(), format.Link(), format.Image(),
		format.Heading(1), format.Heading(4), format.Heading(0), format.Heading(7),
	}

	for _, text := range texts {
		n := textedit.RuneLen(text)
		for start := 0; start <= n; start++ {
			for end := start; end <= n; end++ {
				for _, op := range ops {
					res := format.Apply(text, format.Selection{Start: start, End: end}, op)
					require.Equal(t, start+textedit.RuneLen(res.Inserted), res.Caret,
						"text=%q sel=[%d,%d] op=%s", text, start, end, op)
				}
			}
		}
	}
}

func TestApplyHeadingOutOfRangeIsNoOp(t *testing.T) {
	t.Parallel()

	for _, level := range []int{0, -1, 7, 42} {
		res := format.Apply("abcdef", format.Selection{Start: 1, End: 4}, format.Heading(level))
		assert.Equal(t, "abcdef", res.Text, "level %d", level)
		assert.Equal(t, 1, res.Caret, "level %d", level)
		assert.False(t, res.Changed, "level %d", level)
		assert.Empty(t, res.Inserted, "level %d", level)
	}
}

func TestApplyUnknownKindIsNoOp(t *testing.T) {
	t.Parallel()

	res := format.Apply("abc", format.Caret(1), format.Operation{Kind: "strike"})
	assert.Equal(t, "abc", res.Text)
	assert.Equal(t, 1, res.Caret)
	assert.False(t, res.Changed)
}

func TestApplyClampsSelection(t *testing.T) {
	t.Parallel()

	t.Run("end past text", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("abc", format.Selection{Start: 1, End: 99}, format.Bold())
		assert.Equal(t, "a**bc**", res.Text)
		assert.Equal(t, 7, res.Caret)
	})

	t.Run("negative start", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("abc", format.Selection{Start: -5, End: 1}, format.Italic())
		assert.Equal(t, "_a_bc", res.Text)
		assert.Equal(t, 3, res.Caret)
	})

	t.Run("reversed selection", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("abcdef", format.Selection{Start: 4, End: 2}, format.Bold())
		assert.Equal(t, "ab**cd**ef", res.Text)
		assert.Equal(t, 8, res.Caret)
	})

	t.Run("caret past text", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("abc", format.Caret(10), format.Bold())
		assert.Equal(t, "abc**bold**", res.Text)
		assert.Equal(t, 11, res.Caret)
	})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	text := "keep me"
	_ = format.Apply(text, format.Selection{Start: 0, End: 4}, format.Bold())
	assert.Equal(t, "keep me", text)
}

func TestFormatterCustomURLs(t *testing.T) {
	t.Parallel()

	f := format.New("https://go.dev", "https://go.dev/gopher.png")

	res := f.Apply("", format.Caret(0), format.Link())
	assert.Equal(t, "[link](https://go.dev)", res.Text)

	res = f.Apply("logo", format.Selection{Start: 0, End: 4}, format.Image())
	assert.Equal(t, "![logo](https://go.dev/gopher.png)", res.Text)

	res = format.New("", "").Apply("", format.Caret(0), format.Link())
	assert.Equal(t, "[link]("+format.DefaultLinkURL+")", res.Text)
}

func TestParseOperation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level int
		want  format.Operation
	}{
		{"bold", 0, format.Bold()},
		{"B", 0, format.Bold()},
		{" italic ", 0, format.Italic()},
		{"link", 0, format.Link()},
		{"img", 0, format.Image()},
		{"heading", 2, format.Heading(2)},
		{"h3", 0, format.Heading(3)},
		{"H6", 0, format.Heading(6)},
		{"h9", 0, format.Heading(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := format.ParseOperation(tt.name, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := format.ParseOperation("strike", 0)
	require.ErrorIs(t, err, format.ErrUnknownOperation)
}

func TestOperationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bold", format.Bold().String())
	assert.Equal(t, "heading(2)", format.Heading(2).String())
}

func TestApplyInvalidUTF8(t *testing.T) {
	t.Parallel()

	t.Run("bytes outside selection", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("caf\xe9 ok", format.Selection{Start: 5, End: 7}, format.Bold())
		assert.Equal(t, "caf� **ok**", res.Text)
		assert.Equal(t, 11, res.Caret)
		assert.True(t, res.Changed)
		assert.True(t, utf8.ValidString(res.Text))
	})

	t.Run("offsets count each invalid byte", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("\xff\xfeab", format.Selection{Start: 2, End: 4}, format.Italic())
		assert.Equal(t, "��_ab_", res.Text)
		assert.Equal(t, 6, res.Caret)
	})

	t.Run("no-op operation still normalizes", func(t *testing.T) {
		t.Parallel()
		res := format.Apply("a\xff", format.Caret(1), format.Heading(0))
		assert.Equal(t, "a�", res.Text)
		assert.Equal(t, 1, res.Caret)
		assert.Empty(t, res.Inserted)
	})
}
