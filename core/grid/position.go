package grid

// Position addresses a single cell, 0-based.
type Position struct {
	Row int
	Col int
}

// Range is a rectangular, inclusive region of the grid. Callers are not
// required to order Start/End; consuming code normalizes first.
type Range struct {
	Start Position
	End   Position
}

func NewRange(r0, c0, r1, c1 int) Range {
	return Range{Start: Position{Row: r0, Col: c0}, End: Position{Row: r1, Col: c1}}
}

// Normalize returns an equivalent range with Start at the top-left corner.
func (r Range) Normalize() Range {
	out := r
	if out.Start.Row > out.End.Row {
		out.Start.Row, out.End.Row = out.End.Row, out.Start.Row
	}
	if out.Start.Col > out.End.Col {
		out.Start.Col, out.End.Col = out.End.Col, out.Start.Col
	}
	return out
}

// Single reports whether the range covers exactly one cell.
func (r Range) Single() bool {
	n := r.Normalize()
	return n.Start == n.End
}

func (r Range) Contains(p Position) bool {
	n := r.Normalize()
	return p.Row >= n.Start.Row && p.Row <= n.End.Row &&
		p.Col >= n.Start.Col && p.Col <= n.End.Col
}

// Union returns the minimal bounding range covering both ranges.
func (r Range) Union(other Range) Range {
	a, b := r.Normalize(), other.Normalize()
	out := a
	if b.Start.Row < out.Start.Row {
		out.Start.Row = b.Start.Row
	}
	if b.Start.Col < out.Start.Col {
		out.Start.Col = b.Start.Col
	}
	if b.End.Row > out.End.Row {
		out.End.Row = b.End.Row
	}
	if b.End.Col > out.End.Col {
		out.End.Col = b.End.Col
	}
	return out
}

// Clamp intersects the range with the grid bounds. The second value is
// false when nothing of the range lies inside the grid.
func (r Range) Clamp(g *Grid) (Range, bool) {
	n := r.Normalize()
	if n.Start.Row >= g.RowCount() || n.Start.Col >= g.Columns || n.End.Row < 0 || n.End.Col < 0 {
		return Range{}, false
	}
	if n.Start.Row < 0 {
		n.Start.Row = 0
	}
	if n.Start.Col < 0 {
		n.Start.Col = 0
	}
	if n.End.Row >= g.RowCount() {
		n.End.Row = g.RowCount() - 1
	}
	if n.End.Col >= g.Columns {
		n.End.Col = g.Columns - 1
	}
	return n, true
}
