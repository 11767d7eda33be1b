package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/document"
	"github.com/yaklabco/mdnote/pkg/fsutil"
)

// File stores the record as a single JSON file written atomically.
// With backups enabled, the previous file content is kept in a sidecar
// and used when the primary cannot be decoded.
type File struct {
	path   string
	backup bool
}

// NewFile returns a File store at path, creating its directory if needed.
func NewFile(path string, backup bool) (*File, error) {
	if path == "" {
		return nil, errors.New("file store: empty path")
	}
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	return &File{path: path, backup: backup}, nil
}

// Path returns the primary file location.
func (f *File) Path() string { return f.path }

// Load implements Store.
func (f *File) Load(ctx context.Context) (document.List, error) {
	data, err := fsutil.ReadFile(ctx, f.path)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			return document.List{}, nil
		}
		return document.List{}, fmt.Errorf("load %s: %w", f.path, err)
	}

	list, err := decode(data)
	if err == nil {
		return list, nil
	}

	if f.backup {
		if restored, ok := f.loadBackup(ctx); ok {
			logging.FromContext(ctx).Warn("document store is malformed; using backup",
				logging.FieldPath, f.path, logging.FieldError, err)
			return restored, nil
		}
	}

	return document.List{}, fmt.Errorf("load %s: %w", f.path, err)
}

func (f *File) loadBackup(ctx context.Context) (document.List, bool) {
	data, err := fsutil.ReadBackup(ctx, f.path)
	if err != nil {
		return nil, false
	}
	list, err := decode(data)
	if err != nil {
		return nil, false
	}
	return list, true
}

// Save implements Store.
func (f *File) Save(ctx context.Context, list document.List) error {
	data, err := document.Marshal(list)
	if err != nil {
		return err
	}

	// A malformed primary must not replace the backup it was recovered from.
	if f.backup && f.primaryDecodes(ctx) {
		if _, err := fsutil.RotateBackup(ctx, f.path); err != nil {
			return fmt.Errorf("save %s: %w", f.path, err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, f.path, data, 0); err != nil {
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	return nil
}

// primaryDecodes reports whether the primary file is absent, unreadable or a
// valid document list, i.e. whether rotating it into the backup is safe.
func (f *File) primaryDecodes(ctx context.Context) bool {
	data, err := fsutil.ReadFile(ctx, f.path)
	if err != nil {
		return true
	}
	_, err = decode(data)
	return err == nil
}
