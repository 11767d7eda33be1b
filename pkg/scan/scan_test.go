package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/outline"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/scan"
)

// tree creates files (relative path -> content) under a new temp dir.
func tree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{
		"a.md":             "a",
		"b.markdown":       "b",
		"c.txt":            "c",
		"docs/d.md":        "d",
		"docs/draft/e.md":  "e",
		".hidden/f.md":     "f",
		"docs/.g.md":       "g",
		"vendor/x/h.MD":    "h",
		"notes/2024/i.md":  "i",
		"notes/archive.md": "j",
	})

	tests := []struct {
		name    string
		opts    scan.Options
		want    []string
		wantErr bool
	}{
		{
			name: "defaults",
			opts: scan.Options{},
			want: []string{
				"a.md", "b.markdown", "docs/d.md", "docs/draft/e.md",
				"notes/2024/i.md", "notes/archive.md", "vendor/x/h.MD",
			},
		},
		{
			name: "subtree exclude",
			opts: scan.Options{Exclude: []string{"vendor/**", "docs/draft/**"}},
			want: []string{"a.md", "b.markdown", "docs/d.md", "notes/2024/i.md", "notes/archive.md"},
		},
		{
			name: "name at any depth",
			opts: scan.Options{Exclude: []string{"**/archive.md", "**/2024/**"}},
			want: []string{"a.md", "b.markdown", "docs/d.md", "docs/draft/e.md", "vendor/x/h.MD"},
		},
		{
			name: "base name pattern",
			opts: scan.Options{Exclude: []string{"*.markdown", "e.md"}},
			want: []string{"a.md", "docs/d.md", "notes/2024/i.md", "notes/archive.md", "vendor/x/h.MD"},
		},
		{
			name: "explicit paths are deduplicated",
			opts: scan.Options{Paths: []string{"docs", "docs/d.md", "a.md"}},
			want: []string{"a.md", "docs/d.md", "docs/draft/e.md"},
		},
		{
			name: "explicit non-markdown file is ignored",
			opts: scan.Options{Paths: []string{"c.txt"}},
			want: []string{},
		},
		{
			name: "custom extensions",
			opts: scan.Options{Extensions: []string{".txt"}},
			want: []string{"c.txt"},
		},
		{
			name:    "missing path",
			opts:    scan.Options{Paths: []string{"nope"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			opts.WorkingDir = root

			files, err := scan.Discover(context.Background(), opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, files))
		})
	}
}

func TestDiscoverSymlinks(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{"notes/a.md": "a"})
	outside := tree(t, map[string]string{"b.md": "b"})

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "notes", "a.md"), filepath.Join(root, "alias.md")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.md"), filepath.Join(root, "broken.md")))

	files, err := scan.Discover(context.Background(), scan.Options{WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"alias.md", "notes/a.md"}, rel(t, root, files))

	files, err = scan.Discover(context.Background(), scan.Options{WorkingDir: root, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(outside, "b.md"))
}

func TestDiscoverCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scan.Discover(ctx, scan.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	t.Parallel()

	root := tree(t, map[string]string{
		"one.md":     "# One\n\nSee [two](two.md).\n\n- [x] done\n- [ ] todo\n",
		"two.md":     "# Two\n\n## Details\n\n```go\nx := 1\n```\n",
		"sub/три.md": "слова и ещё слова\n",
	})

	for _, jobs := range []int{0, 1, 8} {
		scanner := scan.New(outline.New(render.FlavorGFM))
		result, err := scanner.Run(context.Background(), scan.Options{WorkingDir: root, Jobs: jobs})
		require.NoError(t, err)

		require.Len(t, result.Files, 3)
		assert.Equal(t, []string{"one.md", "sub/три.md", "two.md"},
			rel(t, root, []string{result.Files[0].Path, result.Files[1].Path, result.Files[2].Path}))

		totals := result.Totals
		assert.Equal(t, 3, totals.FilesDiscovered)
		assert.Equal(t, 3, totals.FilesAnalyzed)
		assert.Zero(t, totals.FilesErrored)
		assert.Equal(t, 3, totals.Headings)
		assert.Equal(t, 1, totals.Links)
		assert.Equal(t, 1, totals.CodeBlocks)
		assert.Equal(t, 2, totals.Tasks)
		assert.Equal(t, 1, totals.TasksDone)
		assert.False(t, result.HasErrors())
	}
}

func TestRunEmpty(t *testing.T) {
	t.Parallel()

	result, err := scan.New(outline.New(render.FlavorGFM)).Run(context.Background(), scan.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Zero(t, result.Totals.FilesDiscovered)
}
