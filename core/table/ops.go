package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gridio/go-grid-editor/core/grid"
	"github.com/gridio/go-grid-editor/core/history"
	"github.com/gridio/go-grid-editor/pkg/lib/logging"
	"github.com/gridio/go-grid-editor/util/slice"
)

var log = logging.Logger("grid-table")

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	// Deleting the last remaining row or column is refused so downstream
	// sort/merge logic never sees a 0xN or Nx0 grid.
	ErrLastRow    = errors.New("cannot delete the last row")
	ErrLastColumn = errors.New("cannot delete the last column")
)

// Operations are pure: the input grid is never mutated, the result is a new
// document plus a snapshot-based reverse operation for the history stack.
// No-op outcomes return the input grid and a nil operation; nil operations
// must not be recorded.

// InsertRow inserts a blank row at index, shifting subsequent rows down.
// index may equal RowCount to append.
func InsertRow(doc *grid.Grid, index int) (*grid.Grid, *history.Operation, error) {
	if index < 0 || index > doc.RowCount() {
		return nil, nil, fmt.Errorf("insert row at %d of %d: %w", index, doc.RowCount(), ErrIndexOutOfRange)
	}

	out := doc.Copy()
	out.Rows = slice.Insert(out.Rows, index, grid.BlankRow(out.Columns, false))

	op := history.NewOperation(history.KindInsertRow, fmt.Sprintf("insert row %d", index), doc, out)
	return out, op, nil
}

// DeleteRow removes the row at index. The captured snapshot re-inserts the
// row's content on undo.
func DeleteRow(doc *grid.Grid, index int) (*grid.Grid, *history.Operation, error) {
	if index < 0 || index >= doc.RowCount() {
		return nil, nil, fmt.Errorf("delete row %d of %d: %w", index, doc.RowCount(), ErrIndexOutOfRange)
	}
	if doc.RowCount() == 1 {
		return nil, nil, ErrLastRow
	}

	out := doc.Copy()
	out.Rows = slice.RemoveAt(out.Rows, index)
	if index == 0 {
		out.HasHeader = out.RowCount() > 0 && out.Rows[0].IsHeader
	}

	op := history.NewOperation(history.KindDeleteRow, fmt.Sprintf("delete row %d", index), doc, out)
	return out, op, nil
}

// InsertColumn inserts a blank column at index in every row. index may equal
// Columns to append.
func InsertColumn(doc *grid.Grid, index int) (*grid.Grid, *history.Operation, error) {
	if index < 0 || index > doc.Columns {
		return nil, nil, fmt.Errorf("insert column at %d of %d: %w", index, doc.Columns, ErrIndexOutOfRange)
	}

	out := doc.Copy()
	out.Columns++
	for i := range out.Rows {
		cell := grid.BlankCell()
		cell.IsHeader = out.Rows[i].IsHeader
		out.Rows[i].Cells = slice.Insert(out.Rows[i].Cells, index, cell)
	}

	op := history.NewOperation(history.KindInsertColumn, fmt.Sprintf("insert column %d", index), doc, out)
	return out, op, nil
}

// DeleteColumn removes the column at index from every row.
func DeleteColumn(doc *grid.Grid, index int) (*grid.Grid, *history.Operation, error) {
	if index < 0 || index >= doc.Columns {
		return nil, nil, fmt.Errorf("delete column %d of %d: %w", index, doc.Columns, ErrIndexOutOfRange)
	}
	if doc.Columns == 1 {
		return nil, nil, ErrLastColumn
	}

	out := doc.Copy()
	out.Columns--
	for i := range out.Rows {
		out.Rows[i].Cells = slice.RemoveAt(out.Rows[i].Cells, index)
	}

	op := history.NewOperation(history.KindDeleteColumn, fmt.Sprintf("delete column %d", index), doc, out)
	return out, op, nil
}

// MergeCells merges the range into its top-left anchor cell. Non-blank
// content of covered cells is concatenated into the anchor, space-joined in
// row-major order; the covered cells stay in the grid but become inert.
// A single-cell range is a no-op.
func MergeCells(doc *grid.Grid, rng grid.Range) (*grid.Grid, *history.Operation) {
	r, ok := rng.Clamp(doc)
	if !ok || r.Single() {
		return doc, nil
	}

	out := doc.Copy()
	var parts []string
	for row := r.Start.Row; row <= r.End.Row; row++ {
		for col := r.Start.Col; col <= r.End.Col; col++ {
			cell := &out.Rows[row].Cells[col]
			if !cell.IsBlank() {
				parts = append(parts, cell.Content)
			}
			cell.Content = ""
			cell.RowSpan = 1
			cell.ColSpan = 1
		}
	}

	anchor := &out.Rows[r.Start.Row].Cells[r.Start.Col]
	anchor.Content = strings.Join(parts, " ")
	anchor.RowSpan = r.End.Row - r.Start.Row + 1
	anchor.ColSpan = r.End.Col - r.Start.Col + 1

	log.Debugf("merged %dx%d cells at (%d,%d)", anchor.RowSpan, anchor.ColSpan, r.Start.Row, r.Start.Col)

	op := history.NewOperation(history.KindMerge,
		fmt.Sprintf("merge cells (%d,%d)-(%d,%d)", r.Start.Row, r.Start.Col, r.End.Row, r.End.Col),
		doc, out)
	return out, op
}

// SplitCell resets the spans of a merged anchor cell and blanks the cells it
// covered. Splitting is lossy: the concatenated content stays in the anchor,
// nothing is redistributed. A 1x1 cell is a no-op.
func SplitCell(doc *grid.Grid, row, col int) (*grid.Grid, *history.Operation) {
	cell, ok := doc.CellAt(row, col)
	if !ok || !cell.IsMerged() {
		return doc, nil
	}

	out := doc.Copy()
	for r := row; r < row+cell.RowSpan && r < out.RowCount(); r++ {
		for c := col; c < col+cell.ColSpan && c < out.Columns; c++ {
			if r == row && c == col {
				continue
			}
			covered := &out.Rows[r].Cells[c]
			covered.Content = ""
			covered.RowSpan = 1
			covered.ColSpan = 1
		}
	}
	anchor := &out.Rows[row].Cells[col]
	anchor.RowSpan = 1
	anchor.ColSpan = 1

	op := history.NewOperation(history.KindSplit,
		fmt.Sprintf("split cell (%d,%d)", row, col),
		doc, out)
	return out, op
}

// UpdateCell wraps grid.UpdateCell with history recording. Invalid positions
// and patches that change nothing yield a nil operation.
func UpdateCell(doc *grid.Grid, row, col int, patch grid.CellPatch) (*grid.Grid, *history.Operation) {
	out := grid.UpdateCell(doc, row, col, patch)
	if out == doc || out.Equal(doc) {
		return doc, nil
	}
	op := history.NewOperation(history.KindUpdateCell,
		fmt.Sprintf("update cell (%d,%d)", row, col),
		doc, out)
	return out, op
}
