package selection

import (
	"github.com/gridio/go-grid-editor/core/grid"
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirLineStart // Home: first column of the active row
	DirLineEnd   // End: last column of the active row
)

// Move handles arrow-key navigation. The active cell moves one step in the
// given direction, clamped to the grid bounds: it never wraps and never
// goes negative. With extend set the selection is stretched from the active
// cell towards the moving head instead, Shift-arrow style. Both paths
// funnel through SelectCell. Without an active cell, Move selects the origin.
func (e *Engine) Move(dir Direction, extend bool) {
	if e.bounds.RowCount() == 0 || e.bounds.ColumnCount() == 0 {
		return
	}
	if e.active == nil {
		e.SelectCell(0, 0, false)
		return
	}

	base := *e.active
	if extend && e.extendHead != nil {
		base = *e.extendHead
	}

	row, col := base.Row, base.Col
	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	case DirLineStart:
		col = 0
	case DirLineEnd:
		col = e.bounds.ColumnCount() - 1
	}
	row = clamp(row, e.bounds.RowCount()-1)
	col = clamp(col, e.bounds.ColumnCount()-1)

	e.SelectCell(row, col, extend)
	if extend {
		e.extendHead = &grid.Position{Row: row, Col: col}
	}
}

func positionOf(row, col int) grid.Position {
	return grid.Position{Row: row, Col: col}
}
