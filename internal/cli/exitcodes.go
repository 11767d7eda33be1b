package cli

import (
	"errors"

	"github.com/yaklabco/mdnote/internal/script"
	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/fsutil"
	"github.com/yaklabco/mdnote/pkg/session"
)

// Exit codes for mdnote.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a command failed for any other reason.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage or script syntax.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUsage marks errors caused by invalid arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration errors.
	ErrConfig = errors.New("configuration error")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage),
		errors.Is(err, script.ErrSyntax),
		errors.Is(err, format.ErrUnknownOperation),
		errors.Is(err, session.ErrIndexOutOfRange):
		return ExitInvalidUsage
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}
