package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridio/go-grid-editor/core/grid"
)

func TestCopyCells(t *testing.T) {
	t.Run("snapshots the normalized range", func(t *testing.T) {
		// given
		g := mkTestGrid(t, [][]string{{"a", "b"}, {"c", "d"}}, false)

		// when
		payload := CopyCells(g, grid.NewRange(1, 1, 0, 0))

		// then
		assert.Equal(t, 2, payload.Rows())
		assert.Equal(t, 2, payload.Columns())
		assert.Equal(t, "a", payload.Cells[0][0].Content)
		assert.Equal(t, "d", payload.Cells[1][1].Content)
		assert.Equal(t, grid.NewRange(0, 0, 1, 1), payload.Source)
		assert.False(t, payload.CopiedAt.IsZero())
	})

	t.Run("out of bounds positions captured as blanks", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"a"}}, false)
		payload := CopyCells(g, grid.NewRange(0, 0, 1, 1))
		assert.Equal(t, "a", payload.Cells[0][0].Content)
		assert.Empty(t, payload.Cells[0][1].Content)
		assert.Empty(t, payload.Cells[1][0].Content)
		assert.Equal(t, 1, payload.Cells[1][1].RowSpan)
	})

	t.Run("snapshot survives source edits", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"a"}}, false)
		payload := CopyCells(g, grid.NewRange(0, 0, 0, 0))
		g.Rows[0].Cells[0].Content = "changed"
		assert.Equal(t, "a", payload.Cells[0][0].Content)
	})
}

func TestPasteCells(t *testing.T) {
	t.Run("overlays at the target", func(t *testing.T) {
		// given
		src := mkTestGrid(t, [][]string{{"x", "y"}}, false)
		dst := mkTestGrid(t, [][]string{{"a", "b"}, {"c", "d"}}, false)
		payload := CopyCells(src, grid.NewRange(0, 0, 0, 1))

		// when
		out, op := PasteCells(dst, 1, 0, payload)

		// then
		require.NotNil(t, op)
		assert.Equal(t, [][]string{{"a", "b"}, {"x", "y"}}, contents(out))
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, contents(dst), "input untouched")
	})

	t.Run("destinations outside bounds are skipped, no growth", func(t *testing.T) {
		src := mkTestGrid(t, [][]string{{"x", "y"}, {"z", "w"}}, false)
		dst := mkTestGrid(t, [][]string{{"a", "b"}, {"c", "d"}}, false)
		payload := CopyCells(src, grid.NewRange(0, 0, 1, 1))

		out, op := PasteCells(dst, 1, 1, payload)

		require.NotNil(t, op)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "x"}}, contents(out))
		assert.Equal(t, 2, out.RowCount())
		assert.Equal(t, 2, out.Columns)
	})

	t.Run("paste entirely outside is a no-op", func(t *testing.T) {
		src := mkTestGrid(t, [][]string{{"x"}}, false)
		dst := mkTestGrid(t, [][]string{{"a"}}, false)
		payload := CopyCells(src, grid.NewRange(0, 0, 0, 0))

		out, op := PasteCells(dst, 5, 5, payload)
		assert.Same(t, dst, out)
		assert.Nil(t, op)
	})

	t.Run("empty payload is a no-op", func(t *testing.T) {
		dst := mkTestGrid(t, [][]string{{"a"}}, false)
		out, op := PasteCells(dst, 0, 0, Clipboard{})
		assert.Same(t, dst, out)
		assert.Nil(t, op)
	})

	t.Run("pasting identical content yields no operation", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"a"}}, false)
		payload := CopyCells(g, grid.NewRange(0, 0, 0, 0))
		out, op := PasteCells(g, 0, 0, payload)
		assert.Same(t, g, out)
		assert.Nil(t, op)
	})

	t.Run("inverse restores the pre-paste snapshot", func(t *testing.T) {
		src := mkTestGrid(t, [][]string{{"x"}}, false)
		dst := mkTestGrid(t, [][]string{{"a"}, {"b"}}, false)
		payload := CopyCells(src, grid.NewRange(0, 0, 0, 0))

		out, op := PasteCells(dst, 0, 0, payload)
		require.NotNil(t, op)
		assert.True(t, op.Before.Equal(dst))
		assert.True(t, op.After.Equal(out))
	})
}
