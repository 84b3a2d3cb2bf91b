package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByColumn(t *testing.T) {
	t.Run("numeric ascending with stable ties", func(t *testing.T) {
		// given
		g := mkTestGrid(t, [][]string{
			{"10", "first"},
			{"2", "second"},
			{"2", "third"},
			{"1", "fourth"},
		}, false)

		// when
		out, op, err := SortByColumn(g, 0, SortAscending)

		// then
		require.NoError(t, err)
		require.NotNil(t, op)
		assert.Equal(t, [][]string{
			{"1", "fourth"},
			{"2", "second"},
			{"2", "third"},
			{"10", "first"},
		}, contents(out))
	})

	t.Run("descending", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"1"}, {"3"}, {"2"}}, false)
		out, _, err := SortByColumn(g, 0, SortDescending)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"3"}, {"2"}, {"1"}}, contents(out))
	})

	t.Run("header row never moves", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"name"}, {"zed"}, {"amy"}}, true)
		out, _, err := SortByColumn(g, 0, SortAscending)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"name"}, {"amy"}, {"zed"}}, contents(out))
		assert.True(t, out.Rows[0].IsHeader)
	})

	t.Run("header rows group at the top in their original order", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"name"}, {"zed"}, {"units"}, {"amy"}}, true)
		g.Rows[2].IsHeader = true

		out, _, err := SortByColumn(g, 0, SortAscending)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"name"}, {"units"}, {"amy"}, {"zed"}}, contents(out))
		assert.True(t, out.Rows[0].IsHeader)
		assert.True(t, out.Rows[1].IsHeader)
	})

	t.Run("mixed values fall back to string comparison", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"banana"}, {"10"}, {"apple"}}, false)
		out, _, err := SortByColumn(g, 0, SortAscending)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"10"}, {"apple"}, {"banana"}}, contents(out))
	})

	t.Run("case-insensitive collation", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"Banana"}, {"apple"}, {"Cherry"}}, false)
		out, _, err := SortByColumn(g, 0, SortAscending)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"apple"}, {"Banana"}, {"Cherry"}}, contents(out))
	})

	t.Run("direction none is a no-op", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"b"}, {"a"}}, false)
		out, op, err := SortByColumn(g, 0, SortNone)
		require.NoError(t, err)
		assert.Same(t, g, out)
		assert.Nil(t, op)
	})

	t.Run("already sorted yields no operation", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"a"}, {"b"}}, false)
		out, op, err := SortByColumn(g, 0, SortAscending)
		require.NoError(t, err)
		assert.Same(t, g, out)
		assert.Nil(t, op)
	})

	t.Run("invalid column", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"a"}}, false)
		_, _, err := SortByColumn(g, 3, SortAscending)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("inverse restores the original row order", func(t *testing.T) {
		g := mkTestGrid(t, [][]string{{"c"}, {"a"}, {"b"}}, false)
		out, op, err := SortByColumn(g, 0, SortAscending)
		require.NoError(t, err)
		require.NotNil(t, op)
		assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, contents(out))
		assert.Equal(t, [][]string{{"c"}, {"a"}, {"b"}}, contents(op.Before))
	})
}
