// Package session is the editor engine: it owns the current text, selection,
// view mode, font size, and undo history, and turns typed commands into text
// changes that are recorded and persisted.
//
// A Session is single-threaded; callers must not invoke it concurrently.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/document"
	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/history"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/store"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnknownCommand is returned by Handle for command types it does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrIndexOutOfRange is returned by Restore for an index outside the document list.
	ErrIndexOutOfRange = errors.New("document index out of range")
)

// Font size defaults.
const (
	DefaultFontSize    = 16
	DefaultMinFontSize = 8
)

// Options configures New. Zero values select defaults.
type Options struct {
	// Store persists the recent-documents list. Nil uses an in-memory store.
	Store store.Store

	// Renderer produces previews. Nil uses a GFM HTML renderer.
	Renderer render.Renderer

	// Formatter applies formatting operations.
	Formatter format.Formatter

	// Logger receives debug and warning output. Nil uses the default logger.
	Logger *log.Logger

	// Clock stamps new documents. Nil uses time.Now.
	Clock func() time.Time

	FontSize     int
	MinFontSize  int
	View         ViewMode
	HistoryLimit int

	// PersistUndo stores the text restored by Undo as a new document.
	PersistUndo bool
}

// Session holds the state of one editing session.
type Session struct {
	store       store.Store
	renderer    render.Renderer
	formatter   format.Formatter
	logger      *log.Logger
	clock       func() time.Time
	persistUndo bool

	text     string
	revision int
	sel      format.Selection
	view     ViewMode
	fontSize int
	minFont  int
	history  *history.History
	docs     document.List

	preview      string
	previewRev   int
	previewValid bool
	previewErr   error
	renderCount  int

	loadErr    error
	persistErr error
}

// New creates a session and loads the most recent document from the store.
// Load failures are logged and leave the session empty; they are reported by LoadError.
func New(ctx context.Context, opts Options) *Session {
	s := &Session{
		store:       opts.Store,
		renderer:    opts.Renderer,
		formatter:   opts.Formatter,
		logger:      opts.Logger,
		clock:       opts.Clock,
		persistUndo: opts.PersistUndo,
		view:        opts.View,
		fontSize:    opts.FontSize,
		minFont:     opts.MinFontSize,
	}

	if s.store == nil {
		s.store = store.NewMemory()
	}
	if s.renderer == nil {
		s.renderer = render.NewHTML(render.HTMLOptions{Flavor: render.FlavorGFM})
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.minFont <= 0 {
		s.minFont = DefaultMinFontSize
	}
	if s.fontSize <= 0 {
		s.fontSize = DefaultFontSize
	}
	s.fontSize = max(s.minFont, s.fontSize)

	docs, err := s.store.Load(ctx)
	if err != nil {
		s.loadErr = err
		s.logger.Warn("could not load documents; starting empty", logging.FieldError, err)
		docs = document.List{}
	}
	s.docs = docs

	if doc, ok := document.MostRecent(docs); ok {
		s.text = doc.Content
	}
	s.history = history.New(s.text, opts.HistoryLimit)
	s.sel = format.Caret(textedit.RuneLen(s.text))

	s.logger.Debug("session started",
		logging.FieldDocuments, len(s.docs),
		logging.FieldView, s.view,
		logging.FieldFontSize, s.fontSize)

	return s
}

// Handle applies cmd to the session.
// Persistence failures do not make Handle fail; see LastPersistError.
func (s *Session) Handle(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case TextChanged:
		s.commit(ctx, c.Text)
		s.sel = s.sel.Clamp(textedit.RuneLen(s.text))

	case ApplyFormat:
		res := s.formatter.Apply(s.text, c.Selection, c.Op)
		if res.Changed {
			s.commit(ctx, res.Text)
		}
		s.sel = format.Caret(res.Caret)
		s.logger.Debug("format applied",
			logging.FieldOperation, c.Op, logging.FieldCaret, res.Caret)

	case Undo:
		s.undo(ctx)

	case ToggleView:
		s.view = s.view.Toggle()

	case AdjustFontSize:
		s.fontSize = max(s.minFont, s.fontSize+c.Delta)

	case Select:
		s.sel = c.Selection.Clamp(textedit.RuneLen(s.text))

	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	s.logger.Debug("command handled",
		logging.FieldCommand, cmd.Name(),
		logging.FieldRevision, s.revision,
		logging.FieldCaret, s.sel.End)

	return nil
}

// Restore makes the document at index of the recent list current.
// It counts as a text change: it is recorded in history and persisted.
func (s *Session) Restore(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.docs) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.docs))
	}

	s.commit(ctx, s.docs[index].Content)
	s.sel = format.Caret(textedit.RuneLen(s.text))

	s.logger.Debug("document restored", logging.FieldIndex, index)
	return nil
}

// commit makes text current, records it and persists it. Unchanged text is ignored.
// Invalid UTF-8 is replaced before anything is recorded.
func (s *Session) commit(ctx context.Context, text string) {
	text = textedit.Normalize(text)
	if text == s.text {
		return
	}

	s.setText(text)
	s.history.Record(text)
	s.persist(ctx, text)
}

func (s *Session) undo(ctx context.Context) {
	text, ok := s.history.Undo()
	if !ok {
		return
	}

	s.setText(text)
	s.sel = format.Caret(textedit.RuneLen(text))

	if s.persistUndo {
		s.persist(ctx, text)
	}
}

func (s *Session) setText(text string) {
	s.text = text
	s.revision++
}

func (s *Session) persist(ctx context.Context, text string) {
	docs := document.Put(document.New(text, s.clock()), s.docs)
	s.docs = docs

	if err := s.store.Save(ctx, docs); err != nil {
		s.persistErr = err
		s.logger.Warn("could not save documents; continuing", logging.FieldError, err)
		return
	}
	s.persistErr = nil
}

// Text returns the current document text.
func (s *Session) Text() string { return s.text }

// Revision increments on every change of the current text.
func (s *Session) Revision() int { return s.revision }

// Selection returns the current selection.
func (s *Session) Selection() format.Selection { return s.sel }

// Caret returns the caret offset, the end of the current selection.
func (s *Session) Caret() int { return s.sel.End }

// FontSize returns the current font size.
func (s *Session) FontSize() int { return s.fontSize }

// MinFontSize returns the font size floor.
func (s *Session) MinFontSize() int { return s.minFont }

// ViewMode returns the current view mode.
func (s *Session) ViewMode() ViewMode { return s.view }

// CanUndo reports whether an Undo command would change the text.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// History returns the undo snapshots, oldest first, and the cursor.
func (s *Session) History() ([]string, int) {
	return s.history.Snapshots(), s.history.Cursor()
}

// Documents returns a copy of the recent-documents list, newest first.
func (s *Session) Documents() document.List {
	return append(document.List{}, s.docs...)
}

// LoadError returns the error that occurred while loading documents, if any.
func (s *Session) LoadError() error { return s.loadErr }

// LastPersistError returns the error of the most recent save, or nil if it succeeded.
func (s *Session) LastPersistError() error { return s.persistErr }

// Preview returns the rendered current text. Rendering happens on first
// request per text revision; later calls reuse the result. A renderer failure
// yields escaped raw text and is reported by PreviewError.
func (s *Session) Preview() string {
	if s.previewValid && s.previewRev == s.revision {
		return s.preview
	}

	out, err := render.Safe(s.renderer, s.text)
	s.renderCount++
	if err != nil {
		s.logger.Warn("preview render failed; showing raw text", logging.FieldError, err)
	}

	s.preview = out
	s.previewErr = err
	s.previewRev = s.revision
	s.previewValid = true

	return out
}

// PreviewError returns the failure of the last render, if any.
func (s *Session) PreviewError() error { return s.previewErr }

// RenderCount returns how many times the renderer has been invoked.
func (s *Session) RenderCount() int { return s.renderCount }

// View returns what the host should display: the preview in ViewPreview
// and the raw text in ViewRaw. The renderer is not invoked in ViewRaw.
func (s *Session) View() string {
	if s.view == ViewPreview {
		return s.Preview()
	}
	return s.text
}
