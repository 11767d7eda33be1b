package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/document"
	"github.com/yaklabco/mdnote/pkg/store"
)

func sampleList(n int) document.List {
	var list document.List
	for i := range n {
		list = document.Put(document.Document{
			Timestamp: 1700000000000 + int64(i),
			Content:   fmt.Sprintf("# Note %d\n\nbody ✓", i),
		}, list)
	}
	return list
}

func openAll(t *testing.T) map[string]store.Store {
	t.Helper()

	dir := t.TempDir()

	file, err := store.NewFile(filepath.Join(dir, "file", store.DefaultFileName), true)
	require.NoError(t, err)

	sqlite, err := store.OpenSQLite(context.Background(), filepath.Join(dir, "db", store.DefaultSQLiteName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestStoreContract(t *testing.T) {
	t.Parallel()

	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			list, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, list)

			want := sampleList(document.Capacity)
			require.NoError(t, s.Save(ctx, want))

			got, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			want = document.Put(document.Document{Timestamp: 1, Content: "latest"}, want)
			require.NoError(t, s.Save(ctx, want))

			got, err = s.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got, document.Capacity)
			assert.Equal(t, "latest", got[0].Content)
		})
	}
}

func TestMemoryMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "broken json", raw: "{broken"},
		{name: "empty entry", raw: `[{}]`},
		{name: "unknown fields", raw: `[{"foo":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := store.NewMemoryWith([]byte(tt.raw))

			list, err := s.Load(context.Background())
			require.ErrorIs(t, err, store.ErrMalformed)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestMemoryFailSave(t *testing.T) {
	t.Parallel()

	boom := fmt.Errorf("quota exceeded")
	s := store.NewMemory()
	s.FailSave = boom

	err := s.Save(context.Background(), sampleList(1))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, s.Raw())
}

func TestFileMalformedWithoutBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), store.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s, err := store.NewFile(path, false)
	require.NoError(t, err)

	list, err := s.Load(context.Background())
	require.ErrorIs(t, err, store.ErrMalformed)
	assert.Empty(t, list)
}

func TestFileMalformedFallsBackToBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), store.DefaultFileName)

	s, err := store.NewFile(path, true)
	require.NoError(t, err)

	first := sampleList(2)
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, sampleList(3)))

	require.NoError(t, os.WriteFile(path, []byte("[{"), 0o600))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestFileSaveAfterRecoveryKeepsBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), store.DefaultFileName)

	s, err := store.NewFile(path, true)
	require.NoError(t, err)

	first := sampleList(1)
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, sampleList(2)))
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))

	recovered, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, first, recovered)

	next := document.Put(document.Document{Timestamp: 1800000000000, Content: "after"}, recovered)
	require.NoError(t, s.Save(ctx, next))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	backupList, err := document.Unmarshal(backup)
	require.NoError(t, err)
	assert.Equal(t, first, backupList)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	// Once the primary is valid again, rotation resumes.
	require.NoError(t, s.Save(ctx, sampleList(3)))
	backup, err = os.ReadFile(path + ".bak")
	require.NoError(t, err)
	backupList, err = document.Unmarshal(backup)
	require.NoError(t, err)
	assert.Equal(t, next, backupList)
}

func TestFileWritesPlainJSON(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", store.DefaultFileName)

	s, err := store.NewFile(path, false)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, document.List{{Timestamp: 5, Content: "x"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"timestamp":5,"content":"x"}]`, string(data))
	assert.Equal(t, path, s.Path())
}

func TestSQLiteMalformed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := store.OpenSQLite(ctx, filepath.Join(t.TempDir(), store.DefaultSQLiteName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.PutRaw(ctx, "nope"))

	list, err := s.Load(ctx)
	require.ErrorIs(t, err, store.ErrMalformed)
	assert.Empty(t, list)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), store.DefaultSQLiteName)

	s, err := store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	want := sampleList(4)
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    store.Backend
		wantErr bool
	}{
		{"", store.BackendFile, false},
		{"file", store.BackendFile, false},
		{"SQLite", store.BackendSQLite, false},
		{" memory ", store.BackendMemory, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		got, err := store.ParseBackend(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, store.ErrUnknownBackend)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, backend := range store.Backends() {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			s, closer, err := store.Open(ctx, store.Options{Backend: backend, DataDir: dir})
			require.NoError(t, err)
			t.Cleanup(func() { _ = closer.Close() })

			require.NoError(t, s.Save(ctx, sampleList(1)))

			path := store.Options{Backend: backend, DataDir: dir}.ResolvedPath()
			if backend == store.BackendMemory {
				assert.Empty(t, path)
				return
			}
			assert.FileExists(t, path)
		})
	}

	_, _, err := store.Open(ctx, store.Options{Backend: "redis"})
	require.ErrorIs(t, err, store.ErrUnknownBackend)
}
