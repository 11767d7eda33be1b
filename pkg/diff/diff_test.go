package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/diff"
)

func TestComputeNoChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to string
	}{
		{"both empty", "", ""},
		{"identical", "a\nb\n", "a\nb\n"},
		{"trailing newline only", "a\nb", "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := diff.Compute("a", "b", tt.from, tt.to)
			assert.Nil(t, d)
			assert.False(t, d.HasChanges())
			assert.Empty(t, d.String())
		})
	}
}

func TestComputeSingleChange(t *testing.T) {
	t.Parallel()

	d := diff.Compute("old", "new", "one\ntwo\nthree\n", "one\n2\nthree\n")
	require.NotNil(t, d)

	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)
	assert.Equal(t, "--- old\n+++ new\n@@ -1,3 +1,3 @@\n one\n-two\n+2\n three\n", d.String())
}

func TestComputeFromEmpty(t *testing.T) {
	t.Parallel()

	d := diff.Compute("a", "b", "", "# Title\nbody")
	require.NotNil(t, d)

	require.Len(t, d.Hunks, 1)
	assert.Equal(t, "@@ -0,0 +1,2 @@", d.Hunks[0].Header())
	assert.Equal(t, 2, d.Additions)
	assert.Zero(t, d.Deletions)
}

func TestComputeToEmpty(t *testing.T) {
	t.Parallel()

	d := diff.Compute("a", "b", "x\ny\n", "")
	require.NotNil(t, d)

	assert.Equal(t, "@@ -1,2 +0,0 @@", d.Hunks[0].Header())
	assert.Equal(t, 2, d.Deletions)
}

func TestComputeSeparateHunks(t *testing.T) {
	t.Parallel()

	var from, to []string
	for i := range 20 {
		line := string(rune('a' + i))
		from = append(from, line)
		switch i {
		case 1:
			to = append(to, "B")
		case 17:
			to = append(to, "R")
		default:
			to = append(to, line)
		}
	}

	d := diff.Compute("a", "b", strings.Join(from, "\n"), strings.Join(to, "\n"))
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 2)

	assert.Equal(t, "@@ -1,5 +1,5 @@", d.Hunks[0].Header())
	assert.Equal(t, "@@ -15,6 +15,6 @@", d.Hunks[1].Header())
}

func TestComputeMergesNearbyChanges(t *testing.T) {
	t.Parallel()

	from := "a\nb\nc\nd\ne\nf\ng\nh\n"
	to := "A\nb\nc\nd\ne\nf\ng\nH\n"

	d := diff.Compute("a", "b", from, to)
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 1, "six context lines between changes share one hunk")
	assert.Equal(t, "@@ -1,8 +1,8 @@", d.Hunks[0].Header())
}

func TestLineKindPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", diff.Context.Prefix())
	assert.Equal(t, "+", diff.Added.Prefix())
	assert.Equal(t, "-", diff.Removed.Prefix())
}
