package reporter

import "fmt"

// Format represents an output format for the current document.
type Format string

// Output formats supported by the reporter.
const (
	// FormatView follows the session view mode: HTML preview or raw text.
	FormatView   Format = "view"
	FormatRaw    Format = "raw"
	FormatHTML   Format = "html"
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "view", "":
		return FormatView, nil
	case "raw", "text":
		return FormatRaw, nil
	case "html":
		return FormatHTML, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: view, raw, html, pretty, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatView, FormatRaw, FormatHTML, FormatPretty, FormatJSON:
		return true
	default:
		return false
	}
}
