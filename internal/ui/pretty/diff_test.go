package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/diff"
)

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	d := diff.Compute("#1", "#0", "a\nb\n", "a\nc\n")
	want := "--- #1\n+++ #0\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n1 additions, 1 deletions\n"
	assert.Equal(t, want, styles.FormatDiff(d))

	assert.Equal(t, "No changes\n", styles.FormatDiff(nil))
}
