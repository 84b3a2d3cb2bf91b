package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertArrays(t *testing.T) {
	t.Run("array of arrays", func(t *testing.T) {
		// given
		data := []byte(`[["a","b"],["c","d"]]`)

		// when
		doc, err := Convert(data)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, doc.RowCount())
		assert.Equal(t, 2, doc.Columns)
		assert.False(t, doc.HasHeader)
		cell, _ := doc.CellAt(1, 0)
		assert.Equal(t, "c", cell.Content)
	})

	t.Run("scalars are stringified", func(t *testing.T) {
		doc, err := Convert([]byte(`[[1, true, null, "x", 2.5]]`))
		require.NoError(t, err)
		row := doc.Rows[0]
		assert.Equal(t, "1", row.Cells[0].Content)
		assert.Equal(t, "true", row.Cells[1].Content)
		assert.Equal(t, "", row.Cells[2].Content)
		assert.Equal(t, "x", row.Cells[3].Content)
		assert.Equal(t, "2.5", row.Cells[4].Content)
	})

	t.Run("ragged arrays are padded", func(t *testing.T) {
		doc, err := Convert([]byte(`[["a","b","c"],["d"]]`))
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Columns)
		require.NoError(t, doc.Validate())
	})
}

func TestConvertObjects(t *testing.T) {
	t.Run("keys become the header row in first-seen order", func(t *testing.T) {
		// given
		data := []byte(`[{"name":"alice","age":30},{"name":"bob","age":25}]`)

		// when
		doc, err := Convert(data)

		// then
		require.NoError(t, err)
		assert.True(t, doc.HasHeader)
		assert.Equal(t, 3, doc.RowCount())
		assert.Equal(t, 2, doc.Columns)

		header, _ := doc.CellAt(0, 0)
		assert.Equal(t, "name", header.Content)
		header, _ = doc.CellAt(0, 1)
		assert.Equal(t, "age", header.Content)

		cell, _ := doc.CellAt(1, 0)
		assert.Equal(t, "alice", cell.Content)
		cell, _ = doc.CellAt(2, 1)
		assert.Equal(t, "25", cell.Content)
	})

	t.Run("union of keys across objects", func(t *testing.T) {
		data := []byte(`[{"a":1},{"b":2,"a":3}]`)
		doc, err := Convert(data)
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Columns)

		// missing values come out blank
		cell, _ := doc.CellAt(1, 1)
		assert.Empty(t, cell.Content)
		cell, _ = doc.CellAt(2, 1)
		assert.Equal(t, "2", cell.Content)
	})

	t.Run("nested values are embedded as json", func(t *testing.T) {
		data := []byte(`[{"a":{"x":1},"b":[1,2]}]`)
		doc, err := Convert(data)
		require.NoError(t, err)
		cell, _ := doc.CellAt(1, 0)
		assert.JSONEq(t, `{"x":1}`, cell.Content)
		cell, _ = doc.CellAt(1, 1)
		assert.JSONEq(t, `[1,2]`, cell.Content)
	})
}

func TestConvertErrors(t *testing.T) {
	t.Run("not an array", func(t *testing.T) {
		_, err := Convert([]byte(`{"a":1}`))
		assert.Error(t, err)
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := Convert([]byte(`[]`))
		assert.ErrorIs(t, err, ErrNoDataToImport)
	})

	t.Run("malformed rows are reported", func(t *testing.T) {
		_, err := Convert([]byte(`[["ok"], "not a row"]`))
		assert.Error(t, err)
	})
}

func TestKeyOrder(t *testing.T) {
	keys := keyOrder([]byte(`{"z":1,"a":{"inner":2},"m":[1,{"deep":3}],"b":"s"}`))
	assert.Equal(t, []string{"z", "a", "m", "b"}, keys)
}
