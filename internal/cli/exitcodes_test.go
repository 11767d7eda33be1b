package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnote/internal/cli"
	"github.com/yaklabco/mdnote/internal/script"
	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/fsutil"
	"github.com/yaklabco/mdnote/pkg/session"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "config", err: fmt.Errorf("%w: bad", cli.ErrConfig), want: cli.ExitConfigError},
		{name: "usage", err: fmt.Errorf("%w: bad", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "script syntax", err: fmt.Errorf("%w: line 1", script.ErrSyntax), want: cli.ExitInvalidUsage},
		{name: "unknown operation", err: format.ErrUnknownOperation, want: cli.ExitInvalidUsage},
		{name: "index", err: fmt.Errorf("line 3: %w", session.ErrIndexOutOfRange), want: cli.ExitInvalidUsage},
		{name: "not found", err: fmt.Errorf("read x: %w", fsutil.ErrNotFound), want: cli.ExitIOError},
		{name: "permission", err: fsutil.ErrPermissionDenied, want: cli.ExitIOError},
		{name: "directory", err: fsutil.ErrIsDirectory, want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
