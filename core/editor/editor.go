package editor

import (
	"errors"
	"sync"

	"github.com/gridio/go-grid-editor/core/config"
	"github.com/gridio/go-grid-editor/core/grid"
	"github.com/gridio/go-grid-editor/core/history"
	"github.com/gridio/go-grid-editor/core/selection"
	"github.com/gridio/go-grid-editor/core/table"
	"github.com/gridio/go-grid-editor/pkg/lib/logging"
)

var log = logging.Logger("grid-editor")

// ErrNoDocument is returned by structural commands issued before NewTable
// or SetDocument installed a document.
var ErrNoDocument = errors.New("no document")

// ObserverFunc is notified with the new document after every change. The
// core assumes no particular reactivity system; the host hooks its own
// re-render into this callback. Observers run outside the editor lock and
// may read editor state (Document, CanUndo) freely.
type ObserverFunc func(doc *grid.Grid)

// Editor is the current-state holder: it owns the live document, the
// selection engine and the undo/redo stack, and serializes the
// read-compute-install-record sequence behind a single-writer mutex so a
// multi-threaded host stays consistent.
type Editor struct {
	mu  sync.Mutex
	cfg *config.Config

	doc       *grid.Grid
	sel       *selection.Engine
	hist      history.History
	observers []ObserverFunc
}

func NewEditor(options ...func(*config.Config)) *Editor {
	cfg := config.New(options...)
	return &Editor{
		cfg:  cfg,
		hist: history.NewHistory(cfg.HistoryLimit),
	}
}

// NewDefaultTable creates a table of the configured default dimensions.
func (e *Editor) NewDefaultTable() error {
	return e.NewTable(e.cfg.DefaultRows, e.cfg.DefaultColumns, e.cfg.DefaultHeaderRow)
}

// NewTable replaces the current document with a fresh rows x columns grid
// and resets selection and history.
func (e *Editor) NewTable(rows, columns int, hasHeader bool) error {
	doc, err := grid.Create(rows, columns, hasHeader)
	if err != nil {
		return err
	}

	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
	e.sel = selection.NewEngine(doc)
	if e.cfg.MultiSelect {
		e.sel.SetMultiSelect(true)
	}
	e.hist.Reset()
	notify = e.notify()
	return nil
}

// SetDocument installs an externally built document, typically from an
// importer. The document must already satisfy the uniform-columns invariant.
func (e *Editor) SetDocument(doc *grid.Grid) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
	e.sel = selection.NewEngine(doc)
	if e.cfg.MultiSelect {
		e.sel.SetMultiSelect(true)
	}
	e.hist.Reset()
	notify = e.notify()
	return nil
}

// Document returns the current document. Callers must treat it as
// read-only; it is replaced wholesale on every edit.
func (e *Editor) Document() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// Selection exposes the selection engine. The engine shares the editor's
// single-writer discipline: drive it from the same goroutine that issues
// commands.
func (e *Editor) Selection() *selection.Engine {
	return e.sel
}

func (e *Editor) activePosition() (grid.Position, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sel == nil {
		return grid.Position{}, false
	}
	return e.sel.Active()
}

// Subscribe registers an observer called after every document change.
func (e *Editor) Subscribe(fn ObserverFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, fn)
}

// notify snapshots the observer list and the current document and returns
// a closure delivering the notification. The closure must be invoked after
// the mutex is released: observers routinely read editor state (CanUndo,
// Document) and would deadlock against a held lock.
func (e *Editor) notify() func() {
	if len(e.observers) == 0 {
		return func() {}
	}
	observers := make([]ObserverFunc, len(e.observers))
	copy(observers, e.observers)
	doc := e.doc
	return func() {
		for _, fn := range observers {
			fn(doc)
		}
	}
}

// install adopts a new document and records the operation. A nil operation
// means the edit was a no-op; nothing is installed or recorded. The
// returned closure carries the observer notification out of the lock.
func (e *Editor) install(doc *grid.Grid, op *history.Operation) func() {
	if op == nil {
		return func() {}
	}
	e.doc = doc
	e.sel.SetBounds(doc)
	e.hist.Add(op)
	log.Debugf("applied %s: %s", op.Kind, op.Description)
	return e.notify()
}

func (e *Editor) UpdateCell(row, col int, patch grid.CellPatch) {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return
	}
	doc, op := table.UpdateCell(e.doc, row, col, patch)
	notify = e.install(doc, op)
}

func (e *Editor) SetCellContent(row, col int, content string) {
	e.UpdateCell(row, col, grid.CellPatch{Content: &content})
}

func (e *Editor) InsertRow(index int) error {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return ErrNoDocument
	}
	doc, op, err := table.InsertRow(e.doc, index)
	if err != nil {
		return err
	}
	notify = e.install(doc, op)
	return nil
}

func (e *Editor) DeleteRow(index int) error {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return ErrNoDocument
	}
	doc, op, err := table.DeleteRow(e.doc, index)
	if err != nil {
		return err
	}
	notify = e.install(doc, op)
	return nil
}

func (e *Editor) InsertColumn(index int) error {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return ErrNoDocument
	}
	doc, op, err := table.InsertColumn(e.doc, index)
	if err != nil {
		return err
	}
	notify = e.install(doc, op)
	return nil
}

func (e *Editor) DeleteColumn(index int) error {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return ErrNoDocument
	}
	doc, op, err := table.DeleteColumn(e.doc, index)
	if err != nil {
		return err
	}
	notify = e.install(doc, op)
	return nil
}

func (e *Editor) Sort(columnIndex int, direction table.SortDirection) error {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return ErrNoDocument
	}
	doc, op, err := table.SortByColumn(e.doc, columnIndex, direction)
	if err != nil {
		return err
	}
	notify = e.install(doc, op)
	return nil
}

// Undo applies the Before snapshot of the most recent operation. With an
// empty undo stack it is a silent no-op, mirroring the disabled toolbar
// button driven by CanUndo.
func (e *Editor) Undo() bool {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	op, err := e.hist.Previous()
	if err != nil {
		return false
	}
	e.doc = op.Before
	e.sel.SetBounds(e.doc)
	notify = e.notify()
	return true
}

func (e *Editor) Redo() bool {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	op, err := e.hist.Next()
	if err != nil {
		return false
	}
	e.doc = op.After
	e.sel.SetBounds(e.doc)
	notify = e.notify()
	return true
}

func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanUndo()
}

func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanRedo()
}
