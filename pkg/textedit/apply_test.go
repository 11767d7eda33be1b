package textedit_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdnote/pkg/textedit"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		edit textedit.Edit
		want string
	}{
		{
			name: "single replacement",
			text: "hello world",
			edit: textedit.Replace(0, 5, "hi"),
			want: "hi world",
		},
		{
			name: "single insertion",
			text: "hello world",
			edit: textedit.Insert(5, " beautiful"),
			want: "hello beautiful world",
		},
		{
			name: "single deletion",
			text: "hello world",
			edit: textedit.Delete(5, 11),
			want: "hello",
		},
		{
			name: "insert at start",
			text: "world",
			edit: textedit.Insert(0, "hello "),
			want: "hello world",
		},
		{
			name: "insert at end",
			text: "hello",
			edit: textedit.Insert(5, " world"),
			want: "hello world",
		},
		{
			name: "insert into empty text",
			text: "",
			edit: textedit.Insert(0, "**bold**"),
			want: "**bold**",
		},
		{
			name: "offsets count runes not bytes",
			text: "héllo wörld",
			edit: textedit.Replace(6, 11, "**wörld**"),
			want: "héllo **wörld**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := textedit.Apply(tt.text, tt.edit)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyRejectsInvalidRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		edit textedit.Edit
	}{
		{"negative start", textedit.Replace(-1, 2, "x")},
		{"end before start", textedit.Replace(3, 1, "x")},
		{"end past text", textedit.Replace(0, 99, "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := textedit.Apply("abc", tt.edit)
			var vErr *textedit.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if got != "abc" {
				t.Errorf("text changed on invalid edit: %q", got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		start, end, length int
		wantStart, wantEnd int
	}{
		{"in bounds", 1, 3, 5, 1, 3},
		{"reversed", 4, 2, 5, 2, 4},
		{"negative start", -3, 2, 5, 0, 2},
		{"end past length", 2, 9, 5, 2, 5},
		{"both past length", 7, 9, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := textedit.Clamp(tt.start, tt.end, tt.length)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Clamp() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestEditCaretAfter(t *testing.T) {
	t.Parallel()

	edit := textedit.Insert(2, "**bold**")
	if got := edit.CaretAfter(); got != 10 {
		t.Errorf("CaretAfter() = %d, want 10", got)
	}

	edit = textedit.Insert(1, "_é_")
	if got := edit.CaretAfter(); got != 4 {
		t.Errorf("CaretAfter() = %d, want 4", got)
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	if got := textedit.Slice("abcdefgh", 2, 6); got != "cdef" {
		t.Errorf("Slice() = %q, want %q", got, "cdef")
	}
	if got := textedit.Slice("añb", 1, 2); got != "ñ" {
		t.Errorf("Slice() = %q, want %q", got, "ñ")
	}
	if got := textedit.Slice("abc", 2, 10); got != "c" {
		t.Errorf("Slice() = %q, want %q", got, "c")
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid ascii", input: "abc", want: "abc"},
		{name: "valid multibyte", input: "café", want: "café"},
		{name: "latin1 byte", input: "caf\xe9", want: "caf�"},
		{name: "one rune per invalid byte", input: "\xff\xfeab", want: "��ab"},
		{name: "truncated sequence", input: "a\xe2\x82", want: "a��"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := textedit.Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if textedit.RuneLen(got) != textedit.RuneLen(tt.input) {
				t.Errorf("Normalize(%q) changed rune length %d -> %d",
					tt.input, textedit.RuneLen(tt.input), textedit.RuneLen(got))
			}
		})
	}
}
