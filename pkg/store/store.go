// Package store persists the recent-documents list.
//
// Every backend holds a single keyed record, Key, whose value is the JSON
// encoding produced by document.Marshal.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdnote/pkg/document"
)

// Key is the record name under which the document list is stored.
const Key = "notes"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrMalformed indicates the persisted record could not be decoded.
	ErrMalformed = errors.New("malformed document store")

	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Store loads and saves the recent-documents list.
//
// Load returns an empty list when nothing has been saved yet. When the
// persisted record cannot be decoded, Load returns an empty list together
// with an error wrapping ErrMalformed.
type Store interface {
	Load(ctx context.Context) (document.List, error)
	Save(ctx context.Context, list document.List) error
}

// Backend names a storage implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Default file names inside the data directory.
const (
	DefaultFileName   = "notes.json"
	DefaultSQLiteName = "mdnote.db"
)

// Backends lists the accepted backend names.
func Backends() []Backend {
	return []Backend{BackendMemory, BackendFile, BackendSQLite}
}

// ParseBackend maps a configuration value to a Backend. Empty selects BackendFile.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case "":
		return BackendFile, nil
	case BackendMemory, BackendFile, BackendSQLite:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Options selects and configures a backend for Open.
type Options struct {
	// Backend is the storage implementation.
	Backend Backend

	// DataDir is used to derive Path when Path is empty.
	DataDir string

	// Path overrides the storage location.
	Path string

	// Backup keeps a sidecar copy of the previous state (file backend only).
	Backup bool
}

// ResolvedPath returns the storage location for opts, or "" for the memory backend.
func (o Options) ResolvedPath() string {
	if o.Path != "" {
		return o.Path
	}
	switch o.Backend {
	case BackendSQLite:
		return filepath.Join(o.DataDir, DefaultSQLiteName)
	case BackendMemory:
		return ""
	default:
		return filepath.Join(o.DataDir, DefaultFileName)
	}
}

// Open returns the Store described by opts. The returned Closer releases
// backend resources and must be called when the store is no longer needed.
func Open(ctx context.Context, opts Options) (Store, io.Closer, error) {
	backend, err := ParseBackend(string(opts.Backend))
	if err != nil {
		return nil, nil, err
	}
	opts.Backend = backend

	switch backend {
	case BackendMemory:
		return NewMemory(), nopCloser{}, nil
	case BackendSQLite:
		s, err := OpenSQLite(ctx, opts.ResolvedPath())
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		s, err := NewFile(opts.ResolvedPath(), opts.Backup)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	}
}

func decode(data []byte) (document.List, error) {
	list, err := document.Unmarshal(data)
	if err != nil {
		return document.List{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return list, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
