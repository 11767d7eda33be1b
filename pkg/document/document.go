// Package document defines persisted note snapshots and the bounded list
// of recent documents.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrIncompleteEntry is returned by Unmarshal for an entry lacking a
// timestamp or content field.
var ErrIncompleteEntry = errors.New("document entry missing timestamp or content")

// Capacity is the maximum number of documents kept in a List.
const Capacity = 10

// Document is an immutable snapshot of the editor text.
type Document struct {
	// Timestamp is the creation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Content is the full document text.
	Content string `json:"content"`
}

// New returns a Document holding content, stamped with at.
func New(content string, at time.Time) Document {
	return Document{Timestamp: at.UnixMilli(), Content: content}
}

// Time returns the document timestamp as a time.Time.
func (d Document) Time() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// List holds recent documents, newest first, never more than Capacity.
type List []Document

// Put returns a new list with doc prepended and the oldest entries past Capacity dropped.
// The input list is not modified.
func Put(doc Document, list List) List {
	keep := min(len(list), Capacity-1)

	out := make(List, 0, keep+1)
	out = append(out, doc)
	out = append(out, list[:keep]...)

	return out
}

// MostRecent returns the newest document, or false when the list is empty.
func MostRecent(list List) (Document, bool) {
	if len(list) == 0 {
		return Document{}, false
	}
	return list[0], true
}

// Marshal encodes list as a JSON array of {"timestamp", "content"} objects.
// A nil list encodes as an empty array.
func Marshal(list List) ([]byte, error) {
	if list == nil {
		list = List{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode documents: %w", err)
	}
	return data, nil
}

// Unmarshal decodes data produced by Marshal. Empty input and JSON null
// decode to an empty list; lists longer than Capacity are cut to the newest entries.
func Unmarshal(data []byte) (List, error) {
	if len(data) == 0 {
		return List{}, nil
	}

	var entries []wireEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}

	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}

	list := make(List, 0, len(entries))
	for i, e := range entries {
		if e.Timestamp == nil || e.Content == nil {
			return nil, fmt.Errorf("decode documents: entry %d: %w", i, ErrIncompleteEntry)
		}
		list = append(list, Document{Timestamp: *e.Timestamp, Content: *e.Content})
	}
	return list, nil
}

// wireEntry distinguishes absent fields from zero values.
type wireEntry struct {
	Timestamp *int64  `json:"timestamp"`
	Content   *string `json:"content"`
}
