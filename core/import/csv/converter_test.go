package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("comma separated with header", func(t *testing.T) {
		// given
		input := "name,age\nalice,30\nbob,25\n"

		// when
		doc, err := Convert(strings.NewReader(input), Options{UseFirstRowForHeader: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, doc.RowCount())
		assert.Equal(t, 2, doc.Columns)
		assert.True(t, doc.HasHeader)
		assert.True(t, doc.Rows[0].IsHeader)

		cell, _ := doc.CellAt(0, 0)
		assert.Equal(t, "name", cell.Content)
		assert.True(t, cell.IsHeader)
		cell, _ = doc.CellAt(2, 1)
		assert.Equal(t, "25", cell.Content)
		require.NoError(t, doc.Validate())
	})

	t.Run("semicolon detected", func(t *testing.T) {
		doc, err := Convert(strings.NewReader("a;b;c\n1;2;3\n"), Options{})
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Columns)
		cell, _ := doc.CellAt(1, 2)
		assert.Equal(t, "3", cell.Content)
	})

	t.Run("explicit delimiter wins over detection", func(t *testing.T) {
		doc, err := Convert(strings.NewReader("a;b,c\n"), Options{Delimiter: ','})
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Columns)
		cell, _ := doc.CellAt(0, 0)
		assert.Equal(t, "a;b", cell.Content)
	})

	t.Run("quoted fields keep embedded delimiters", func(t *testing.T) {
		doc, err := Convert(strings.NewReader("\"last, first\",note\nx,y\n"), Options{})
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Columns)
		cell, _ := doc.CellAt(0, 0)
		assert.Equal(t, "last, first", cell.Content)
	})

	t.Run("ragged rows are padded to the widest", func(t *testing.T) {
		doc, err := Convert(strings.NewReader("a,b,c\nd\ne,f\n"), Options{})
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Columns)
		require.NoError(t, doc.Validate())
		cell, _ := doc.CellAt(1, 1)
		assert.Empty(t, cell.Content)
	})

	t.Run("rows over the limit are truncated", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 10; i++ {
			sb.WriteString("x\n")
		}
		doc, err := Convert(strings.NewReader(sb.String()), Options{MaxRows: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, doc.RowCount())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Convert(strings.NewReader(""), Options{})
		assert.ErrorIs(t, err, ErrNoDataToImport)
	})
}

func TestConvertPasteBuffer(t *testing.T) {
	doc, err := ConvertPasteBuffer("a\tb\nc\td", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Columns)
	assert.Equal(t, 2, doc.RowCount())
	cell, _ := doc.CellAt(1, 0)
	assert.Equal(t, "c", cell.Content)
}

func TestDetectDelimiter(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  rune
	}{
		{"comma", "a,b,c\n", ','},
		{"semicolon", "a;b;c\n", ';'},
		{"tab", "a\tb\tc\n", '\t'},
		{"pipe", "a|b|c\n", '|'},
		{"default comma", "abc\n", ','},
		{"majority wins", "a;b;c,d\n", ';'},
		{"quoted content does not vote", "\"a,b,c\";x\n", ';'},
		{"delimiter between quoted fields", "\"a;1\",\"b;2\",\"c;3\"\n", ','},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detectDelimiter(tc.input))
		})
	}
}
