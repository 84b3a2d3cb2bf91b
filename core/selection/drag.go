package selection

// Drag selection: StartDrag pins the logical start cell, UpdateDrag tracks
// the cell under the pointer plus the caller's overlay rectangle, EndDrag
// commits the spanned range. The engine is Idle between StartDrag/EndDrag
// pairs; a stray UpdateDrag or EndDrag while idle does nothing.

func (e *Engine) StartDrag(row, col int) {
	if !e.exists(row, col) {
		return
	}
	e.dragging = true
	e.dragStart = positionOf(row, col)
	e.dragCurrent = e.dragStart
	e.dragRect = Rect{}
}

func (e *Engine) UpdateDrag(row, col int, displayRect Rect) {
	if !e.dragging {
		return
	}
	e.dragRect = displayRect
	if !e.exists(row, col) {
		return
	}
	e.dragCurrent = positionOf(row, col)
}

// EndDrag commits the dragged range and returns to idle. Returns false when
// no drag was in progress.
func (e *Engine) EndDrag() bool {
	if !e.dragging {
		return false
	}
	e.dragging = false
	e.SelectRange(e.dragStart.Row, e.dragStart.Col, e.dragCurrent.Row, e.dragCurrent.Col)
	return true
}

func (e *Engine) CancelDrag() {
	e.dragging = false
}

func (e *Engine) Dragging() bool {
	return e.dragging
}

// DragRect returns the last display rectangle passed to UpdateDrag.
func (e *Engine) DragRect() Rect {
	return e.dragRect
}
