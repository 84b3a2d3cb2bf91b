package grid

import (
	"errors"

	"github.com/globalsign/mgo/bson"
	"github.com/mohae/deepcopy"
)

var ErrInvalidDimension = errors.New("grid must have at least one row and one column")

// Style carries per-cell presentation attributes. The model passes them
// through untouched; only the renderer interprets them.
type Style struct {
	Align      string
	Valign     string
	Color      string
	Background string
	Padding    float64
	Width      float64
	Height     float64
}

type Cell struct {
	Content  string
	RowSpan  int
	ColSpan  int
	IsHeader bool
	Style    Style
}

// BlankCell returns an empty unmerged cell.
func BlankCell() Cell {
	return Cell{RowSpan: 1, ColSpan: 1}
}

func (c Cell) IsBlank() bool {
	return c.Content == ""
}

// IsMerged reports whether the cell anchors a merged region.
func (c Cell) IsMerged() bool {
	return c.RowSpan > 1 || c.ColSpan > 1
}

type Row struct {
	Cells      []Cell
	IsHeader   bool
	Height     float64
	Background string
}

// Grid is the authoritative table document. It is treated as an immutable
// value: every structural edit produces a new Grid, the input is never
// changed in place.
//
// Invariant: len(row.Cells) == Columns for every row.
type Grid struct {
	Id        string
	Columns   int
	HasHeader bool
	Rows      []Row
}

// NewId generates a document id. Ids carry no semantics inside the core.
func NewId() string {
	return bson.NewObjectId().Hex()
}

// Create builds a rows x columns grid of blank cells. When hasHeader is set,
// row 0 and each of its cells are flagged as header.
func Create(rows, columns int, hasHeader bool) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrInvalidDimension
	}

	g := &Grid{
		Id:        NewId(),
		Columns:   columns,
		HasHeader: hasHeader,
	}
	g.Rows = make([]Row, 0, rows)
	for i := 0; i < rows; i++ {
		header := hasHeader && i == 0
		g.Rows = append(g.Rows, BlankRow(columns, header))
	}
	return g, nil
}

// BlankRow builds a row of columns blank cells.
func BlankRow(columns int, header bool) Row {
	cells := make([]Cell, columns)
	for i := range cells {
		cells[i] = BlankCell()
		cells[i].IsHeader = header
	}
	return Row{Cells: cells, IsHeader: header}
}

func (g *Grid) RowCount() int {
	return len(g.Rows)
}

func (g *Grid) ColumnCount() int {
	return g.Columns
}

// CellExists reports whether the position lies inside the grid. Input
// handlers call this before acting on possibly stale positions.
func (g *Grid) CellExists(row, col int) bool {
	return row >= 0 && row < len(g.Rows) && col >= 0 && col < g.Columns
}

// CellAt returns the cell at the position. The second value is false when
// the position is out of bounds; callers must treat that as a no-op, not
// as an error.
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	if !g.CellExists(row, col) {
		return Cell{}, false
	}
	return g.Rows[row].Cells[col], true
}

// Copy returns a deep copy of the grid, id included.
func (g *Grid) Copy() *Grid {
	return deepcopy.Copy(g).(*Grid)
}

// Equal reports structural equality, ignoring the document id.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Columns != other.Columns || g.HasHeader != other.HasHeader || len(g.Rows) != len(other.Rows) {
		return false
	}
	for i := range g.Rows {
		a, b := g.Rows[i], other.Rows[i]
		if a.IsHeader != b.IsHeader || a.Height != b.Height || a.Background != b.Background {
			return false
		}
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for j := range a.Cells {
			if a.Cells[j] != b.Cells[j] {
				return false
			}
		}
	}
	return true
}

// Validate checks the uniform cell-count invariant. Importers run it on
// everything they produce; operations keep it by construction.
func (g *Grid) Validate() error {
	for i := range g.Rows {
		if len(g.Rows[i].Cells) != g.Columns {
			return errors.New("grid row cell count does not match column count")
		}
	}
	return nil
}

// CellPatch describes a partial cell update. Nil fields are left untouched.
type CellPatch struct {
	Content  *string
	RowSpan  *int
	ColSpan  *int
	IsHeader *bool
	Style    *Style
}

// UpdateCell returns a new grid with the patch merged into the target cell.
// An invalid position returns the input grid unchanged. All content and
// format edits funnel through here.
func UpdateCell(g *Grid, row, col int, patch CellPatch) *Grid {
	if !g.CellExists(row, col) {
		return g
	}

	out := g.Copy()
	cell := &out.Rows[row].Cells[col]
	if patch.Content != nil {
		cell.Content = *patch.Content
	}
	if patch.RowSpan != nil && *patch.RowSpan >= 1 {
		cell.RowSpan = *patch.RowSpan
	}
	if patch.ColSpan != nil && *patch.ColSpan >= 1 {
		cell.ColSpan = *patch.ColSpan
	}
	if patch.IsHeader != nil {
		cell.IsHeader = *patch.IsHeader
	}
	if patch.Style != nil {
		cell.Style = *patch.Style
	}
	return out
}
