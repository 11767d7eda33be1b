// Package langdetect guesses the programming language of code snippets so
// unlabelled fenced code blocks in previews can carry a language class.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined with confidence.
const Unknown = "text"

// candidates restricts the enry classifier to languages commonly pasted into notes.
//
//nolint:gochecknoglobals // read-only lookup table
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// rule is a cheap textual signature checked before the classifier runs.
type rule struct {
	lang  string
	match func(raw []byte, trimmed []byte, text string) bool
}

// rules are evaluated in order; the first match wins.
//
//nolint:gochecknoglobals // read-only lookup table
var rules = []rule{
	{"go", func(_, trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(_, _ []byte, text string) bool {
		if strings.Contains(text, "def ") && strings.Contains(text, "):") {
			return true
		}
		if strings.Contains(text, "__name__") {
			return true
		}
		return strings.HasPrefix(strings.TrimSpace(text), "from ") && strings.Contains(text, " import ")
	}},
	{"html", func(_, trimmed []byte, _ string) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.Contains(lower, []byte("<!doctype html")) ||
			bytes.Contains(lower, []byte("<html")) ||
			bytes.Contains(lower, []byte("<body>"))
	}},
	{"json", func(_, trimmed []byte, _ string) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`":`))
	}},
	{"dockerfile", func(raw, trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(raw, []byte("\nRUN "))
	}},
	{"sql", func(_, _ []byte, text string) bool {
		upper := strings.ToUpper(strings.TrimSpace(text))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(_, _ []byte, text string) bool {
		return strings.Contains(text, "fn main()") || strings.Contains(text, "println!") ||
			strings.Contains(text, "let mut ")
	}},
	{"javascript", func(_, _ []byte, text string) bool {
		return strings.Contains(text, "=>") || strings.Contains(text, "console.log") ||
			strings.Contains(text, "function ")
	}},
	{"yaml", func(raw, _ []byte, _ string) bool {
		return yamlPairs(raw) >= 2
	}},
}

// Detect returns a lowercase fence label for content, or Unknown.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return Label(lang)
	}

	text := string(content)
	for _, r := range rules {
		if r.match(content, trimmed, text) {
			return r.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return Label(lang)
	}

	return Unknown
}

// Known reports whether Detect found a language for content.
func Known(content []byte) bool {
	return Detect(content) != Unknown
}

// FromFilename returns the fence label implied by a file name, or Unknown.
func FromFilename(name string) string {
	if name == "" || name == "-" {
		return Unknown
	}
	base := filepath.Base(name)
	if lang, safe := enry.GetLanguageByFilename(base); safe {
		return Label(lang)
	}
	if lang, safe := enry.GetLanguageByExtension(base); safe {
		return Label(lang)
	}
	return Unknown
}

// Label converts an enry language name into a class-safe fence label.
func Label(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "":
		return Unknown
	}
	return strings.ReplaceAll(strings.ToLower(lang), " ", "-")
}

// yamlPairs counts lines that look like YAML mappings or list items.
func yamlPairs(content []byte) int {
	count := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
			continue
		}
		if bytes.Contains(line, []byte(": ")) || bytes.HasSuffix(line, []byte(":")) {
			if !bytes.ContainsAny(line, "(){") && line[0] != '"' {
				count++
			}
		}
	}
	return count
}
