package editor

import (
	"fmt"

	"github.com/gridio/go-grid-editor/core/history"
	"github.com/gridio/go-grid-editor/core/table"
)

// Toolbar-facing commands: each derives its arguments from the current
// selection, the way a "delete row" button reads the active cell.

// MergeSelection merges the bounding box of all selected ranges into its
// anchor cell. Disjoint ranges collapse into one rectangle; gaps are not
// preserved. No selection, or a single-cell selection, is a no-op.
func (e *Editor) MergeSelection() {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil || e.sel == nil {
		return
	}
	rng, ok := e.sel.SelectionBounds()
	if !ok {
		return
	}
	doc, op := table.MergeCells(e.doc, rng)
	notify = e.install(doc, op)
}

// SplitActiveCell splits the merged cell under the cursor.
func (e *Editor) SplitActiveCell() {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil || e.sel == nil {
		return
	}
	pos, ok := e.sel.Active()
	if !ok {
		return
	}
	doc, op := table.SplitCell(e.doc, pos.Row, pos.Col)
	notify = e.install(doc, op)
}

// CopySelection snapshots the bounding box of the current selection.
func (e *Editor) CopySelection() (table.Clipboard, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil || e.sel == nil {
		return table.Clipboard{}, false
	}
	rng, ok := e.sel.SelectionBounds()
	if !ok {
		return table.Clipboard{}, false
	}
	return table.CopyCells(e.doc, rng), true
}

// Paste overlays the clipboard starting at the active cell.
func (e *Editor) Paste(payload table.Clipboard) {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil || e.sel == nil {
		return
	}
	pos, ok := e.sel.Active()
	if !ok {
		return
	}
	doc, op := table.PasteCells(e.doc, pos.Row, pos.Col, payload)
	notify = e.install(doc, op)
}

// PasteAt overlays the clipboard at an explicit position.
func (e *Editor) PasteAt(row, col int, payload table.Clipboard) {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return
	}
	doc, op := table.PasteCells(e.doc, row, col, payload)
	notify = e.install(doc, op)
}

// DeleteActiveRow removes the row under the cursor.
func (e *Editor) DeleteActiveRow() error {
	pos, ok := e.activePosition()
	if !ok {
		return nil
	}
	return e.DeleteRow(pos.Row)
}

// DeleteActiveColumn removes the column under the cursor.
func (e *Editor) DeleteActiveColumn() error {
	pos, ok := e.activePosition()
	if !ok {
		return nil
	}
	return e.DeleteColumn(pos.Col)
}

// InsertRowBelow inserts a blank row under the cursor, or appends when
// nothing is selected.
func (e *Editor) InsertRowBelow() error {
	pos, ok := e.activePosition()
	if !ok {
		return e.InsertRow(e.Document().RowCount())
	}
	return e.InsertRow(pos.Row + 1)
}

// InsertColumnRight inserts a blank column to the right of the cursor, or
// appends when nothing is selected.
func (e *Editor) InsertColumnRight() error {
	pos, ok := e.activePosition()
	if !ok {
		return e.InsertColumn(e.Document().Columns)
	}
	return e.InsertColumn(pos.Col + 1)
}

// ClearSelectedCells blanks the content of every selected cell.
func (e *Editor) ClearSelectedCells() {
	notify := func() {}
	defer func() { notify() }()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil || e.sel == nil {
		return
	}
	rng, ok := e.sel.SelectionBounds()
	if !ok {
		return
	}
	r, ok := rng.Clamp(e.doc)
	if !ok {
		return
	}

	out := e.doc.Copy()
	for row := r.Start.Row; row <= r.End.Row; row++ {
		for col := r.Start.Col; col <= r.End.Col; col++ {
			if !e.sel.IsSelected(row, col) {
				continue
			}
			out.Rows[row].Cells[col].Content = ""
		}
	}
	if out.Equal(e.doc) {
		return
	}
	op := history.NewOperation(history.KindUpdateCell,
		fmt.Sprintf("clear cells (%d,%d)-(%d,%d)", r.Start.Row, r.Start.Col, r.End.Row, r.End.Col),
		e.doc, out)
	notify = e.install(out, op)
}
