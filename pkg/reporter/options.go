package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdnote/pkg/render"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Style is the glamour style for FormatPretty.
	Style string

	// WordWrap is the wrap width for FormatPretty.
	WordWrap int

	// Flavor selects the dialect used for JSON stats.
	Flavor render.Flavor

	// Compact disables JSON indentation.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:   os.Stdout,
		Format:   FormatView,
		Style:    render.StyleDracula,
		WordWrap: render.DefaultWordWrap,
		Flavor:   render.FlavorGFM,
	}
}
