package selection

import (
	"github.com/gridio/go-grid-editor/core/grid"
)

type Mode int

const (
	ModeCell Mode = iota
	ModeRow
	ModeColumn
	ModeTable
)

// Bounds is the slice of the document the engine needs: its dimensions.
// The engine never reads cell content.
type Bounds interface {
	RowCount() int
	ColumnCount() int
}

// Rect is an opaque pixel rectangle supplied by the caller during drag
// selection for its own overlay rendering. The engine stores it, nothing
// more; all geometry stays on the caller's side.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Engine tracks the active cell, the selected ranges and drag-in-progress
// state over a grid of the given bounds. Invalid positions are ignored
// rather than reported: the UI routinely fires stale events.
type Engine struct {
	bounds Bounds

	ranges      []grid.Range
	active      *grid.Position
	extendHead  *grid.Position
	mode        Mode
	multiSelect bool

	dragging    bool
	dragStart   grid.Position
	dragCurrent grid.Position
	dragRect    Rect
}

func NewEngine(bounds Bounds) *Engine {
	return &Engine{bounds: bounds}
}

// SetBounds rebinds the engine after the document was replaced and clamps
// the active cell and ranges to the new dimensions. Selections that fell
// entirely outside the grid are dropped.
func (e *Engine) SetBounds(bounds Bounds) {
	e.bounds = bounds

	if e.active != nil && !e.exists(e.active.Row, e.active.Col) {
		e.active = &grid.Position{
			Row: clamp(e.active.Row, bounds.RowCount()-1),
			Col: clamp(e.active.Col, bounds.ColumnCount()-1),
		}
	}

	kept := e.ranges[:0]
	for _, r := range e.ranges {
		if clamped, ok := e.clampRange(r); ok {
			kept = append(kept, clamped)
		}
	}
	e.ranges = kept
}

func (e *Engine) SetMultiSelect(enabled bool) {
	e.multiSelect = enabled
}

// SelectCell makes (row, col) the active cell. With extend set and an
// active cell present, the selection becomes the range from the active cell
// to the target instead of moving the anchor.
func (e *Engine) SelectCell(row, col int, extend bool) {
	if !e.exists(row, col) {
		return
	}

	if extend && e.active != nil {
		r := grid.NewRange(e.active.Row, e.active.Col, row, col)
		if e.multiSelect {
			e.ranges = append(e.ranges, r.Normalize())
		} else {
			e.ranges = []grid.Range{r.Normalize()}
		}
		e.mode = ModeCell
		return
	}

	e.active = &grid.Position{Row: row, Col: col}
	e.extendHead = nil
	e.mode = ModeCell
	if e.multiSelect {
		e.ranges = append(e.ranges, grid.NewRange(row, col, row, col))
	} else {
		e.ranges = []grid.Range{grid.NewRange(row, col, row, col)}
	}
}

// SelectRange selects the rectangle and anchors the active cell at the
// caller's first corner (clamped), not the normalized top-left: dragging
// up-left must keep the drag start as the anchor.
func (e *Engine) SelectRange(r0, c0, r1, c1 int) {
	r, ok := e.clampRange(grid.NewRange(r0, c0, r1, c1))
	if !ok {
		return
	}
	if e.multiSelect {
		e.ranges = append(e.ranges, r)
	} else {
		e.ranges = []grid.Range{r}
	}
	e.active = &grid.Position{
		Row: clamp(r0, e.bounds.RowCount()-1),
		Col: clamp(c0, e.bounds.ColumnCount()-1),
	}
	e.mode = ModeCell
}

func (e *Engine) SelectRow(index int, extend bool) {
	if index < 0 || index >= e.bounds.RowCount() || e.bounds.ColumnCount() == 0 {
		return
	}
	r := grid.NewRange(index, 0, index, e.bounds.ColumnCount()-1)
	if extend || e.multiSelect {
		e.ranges = append(e.ranges, r)
	} else {
		e.ranges = []grid.Range{r}
	}
	e.active = &grid.Position{Row: index, Col: 0}
	e.mode = ModeRow
}

func (e *Engine) SelectColumn(index int, extend bool) {
	if index < 0 || index >= e.bounds.ColumnCount() || e.bounds.RowCount() == 0 {
		return
	}
	r := grid.NewRange(0, index, e.bounds.RowCount()-1, index)
	if extend || e.multiSelect {
		e.ranges = append(e.ranges, r)
	} else {
		e.ranges = []grid.Range{r}
	}
	e.active = &grid.Position{Row: 0, Col: index}
	e.mode = ModeColumn
}

func (e *Engine) SelectAll() {
	if e.bounds.RowCount() == 0 || e.bounds.ColumnCount() == 0 {
		return
	}
	e.ranges = []grid.Range{grid.NewRange(0, 0, e.bounds.RowCount()-1, e.bounds.ColumnCount()-1)}
	e.mode = ModeTable
}

func (e *Engine) Clear() {
	e.ranges = nil
	e.active = nil
	e.extendHead = nil
	e.mode = ModeCell
}

// Active returns the keyboard anchor, or false when nothing is active.
func (e *Engine) Active() (grid.Position, bool) {
	if e.active == nil {
		return grid.Position{}, false
	}
	return *e.active, true
}

func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) Ranges() []grid.Range {
	out := make([]grid.Range, len(e.ranges))
	copy(out, e.ranges)
	return out
}

func (e *Engine) HasSelection() bool {
	return len(e.ranges) > 0
}

// IsSelected reports whether the position falls within any stored range.
func (e *Engine) IsSelected(row, col int) bool {
	p := grid.Position{Row: row, Col: col}
	for _, r := range e.ranges {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func (e *Engine) IsActive(row, col int) bool {
	return e.active != nil && e.active.Row == row && e.active.Col == col
}

// SelectionBounds returns the minimal bounding range covering all stored
// ranges. Merge and copy act on this bounding box even when the stored
// ranges are disjoint; gaps between them are not preserved.
func (e *Engine) SelectionBounds() (grid.Range, bool) {
	if len(e.ranges) == 0 {
		return grid.Range{}, false
	}
	out := e.ranges[0].Normalize()
	for _, r := range e.ranges[1:] {
		out = out.Union(r)
	}
	return out, true
}

func (e *Engine) exists(row, col int) bool {
	return row >= 0 && row < e.bounds.RowCount() && col >= 0 && col < e.bounds.ColumnCount()
}

func (e *Engine) clampRange(r grid.Range) (grid.Range, bool) {
	n := r.Normalize()
	rows, cols := e.bounds.RowCount(), e.bounds.ColumnCount()
	if n.Start.Row >= rows || n.Start.Col >= cols || n.End.Row < 0 || n.End.Col < 0 {
		return grid.Range{}, false
	}
	if n.Start.Row < 0 {
		n.Start.Row = 0
	}
	if n.Start.Col < 0 {
		n.Start.Col = 0
	}
	if n.End.Row >= rows {
		n.End.Row = rows - 1
	}
	if n.End.Col >= cols {
		n.End.Col = cols - 1
	}
	return n, true
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
