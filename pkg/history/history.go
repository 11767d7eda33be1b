// Package history keeps the linear undo history of a single document.
//
// History is a list of text snapshots and a cursor pointing at the snapshot
// that is currently shown. Recording a new text discards everything after the
// cursor, so there is no redo.
package history

// History is a snapshot list with a cursor. It is not safe for concurrent use.
type History struct {
	snapshots []string
	cursor    int
	limit     int
}

// New returns a History seeded with initial. A limit of zero or less keeps every snapshot.
func New(initial string, limit int) *History {
	return &History{
		snapshots: []string{initial},
		limit:     limit,
	}
}

// Record appends text after the cursor, dropping any snapshots beyond it.
// Recording the text that is already current does nothing and returns false.
func (h *History) Record(text string) bool {
	if text == h.snapshots[h.cursor] {
		return false
	}

	h.snapshots = append(h.snapshots[:h.cursor+1], text)

	if h.limit > 0 && len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = append([]string(nil), h.snapshots[drop:]...)
	}

	h.cursor = len(h.snapshots) - 1
	return true
}

// Undo moves the cursor back one snapshot and returns it.
// At the oldest snapshot it returns the current text and false.
func (h *History) Undo() (string, bool) {
	if h.cursor == 0 {
		return h.snapshots[0], false
	}
	h.cursor--
	return h.snapshots[h.cursor], true
}

// Current returns the snapshot under the cursor.
func (h *History) Current() string { return h.snapshots[h.cursor] }

// Cursor returns the index of the current snapshot.
func (h *History) Cursor() int { return h.cursor }

// Len returns the number of snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// Limit returns the configured snapshot cap, zero when unbounded.
func (h *History) Limit() int { return h.limit }

// Snapshots returns a copy of all snapshots, oldest first.
func (h *History) Snapshots() []string {
	out := make([]string, len(h.snapshots))
	copy(out, h.snapshots)
	return out
}
