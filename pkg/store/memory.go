package store

import (
	"context"
	"sync"

	"github.com/yaklabco/mdnote/pkg/document"
)

// Memory keeps the encoded record in process memory.
// It round-trips through the JSON codec so it behaves like the durable backends.
type Memory struct {
	mu   sync.Mutex
	data []byte

	// FailSave, when set, is returned by every Save call.
	FailSave error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns an in-memory store preloaded with raw record bytes.
func NewMemoryWith(raw []byte) *Memory {
	return &Memory{data: append([]byte(nil), raw...)}
}

// Load implements Store.
func (m *Memory) Load(ctx context.Context) (document.List, error) {
	if err := ctx.Err(); err != nil {
		return document.List{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return decode(m.data)
}

// Save implements Store.
func (m *Memory) Save(ctx context.Context, list document.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}

	data, err := document.Marshal(list)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// Raw returns a copy of the stored record bytes.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
