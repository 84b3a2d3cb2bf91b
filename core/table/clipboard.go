package table

import (
	"fmt"
	"time"

	"github.com/gridio/go-grid-editor/core/grid"
	"github.com/gridio/go-grid-editor/core/history"
)

// Clipboard is a rectangular snapshot of cells taken by CopyCells. It stays
// valid after the source document is replaced or discarded.
type Clipboard struct {
	Cells    [][]grid.Cell
	Source   grid.Range
	CopiedAt time.Time
}

func (c Clipboard) Rows() int {
	return len(c.Cells)
}

func (c Clipboard) Columns() int {
	if len(c.Cells) == 0 {
		return 0
	}
	return len(c.Cells[0])
}

// CopyCells snapshots the normalized range. Positions of the range that fall
// outside the grid are captured as blank cells rather than failing, so a
// selection that outlives a shrink still copies.
func CopyCells(doc *grid.Grid, rng grid.Range) Clipboard {
	r := rng.Normalize()
	out := Clipboard{
		Source:   r,
		CopiedAt: time.Now(),
	}
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := make([]grid.Cell, 0, r.End.Col-r.Start.Col+1)
		for col := r.Start.Col; col <= r.End.Col; col++ {
			cell, ok := doc.CellAt(row, col)
			if !ok {
				cell = grid.BlankCell()
			}
			line = append(line, cell)
		}
		out.Cells = append(out.Cells, line)
	}
	return out
}

// PasteCells overlays the clipboard onto the grid starting at (row, col).
// Destinations outside the current bounds are silently skipped; the grid
// never grows. A paste that lands entirely outside, or changes nothing,
// is a no-op.
func PasteCells(doc *grid.Grid, row, col int, payload Clipboard) (*grid.Grid, *history.Operation) {
	if payload.Rows() == 0 {
		return doc, nil
	}

	out := doc.Copy()
	var touched bool
	for i, line := range payload.Cells {
		for j, cell := range line {
			r, c := row+i, col+j
			if !out.CellExists(r, c) {
				continue
			}
			out.Rows[r].Cells[c] = cell
			touched = true
		}
	}
	if !touched || out.Equal(doc) {
		return doc, nil
	}

	op := history.NewOperation(history.KindPaste,
		fmt.Sprintf("paste %dx%d cells at (%d,%d)", payload.Rows(), payload.Columns(), row, col),
		doc, out)
	return out, op
}
