package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/gridio/go-grid-editor/core/grid"
	"github.com/gridio/go-grid-editor/pkg/lib/logging"
)

var log = logging.Logger("grid-import-csv")

var ErrNoDataToImport = errors.New("no data to import")

const (
	defaultMaxRows    = 1000
	defaultMaxColumns = 1000
)

var candidateDelimiters = []rune{',', ';', '\t', '|'}

type Options struct {
	// Delimiter overrides detection when non-zero.
	Delimiter            rune
	UseFirstRowForHeader bool
	MaxRows              int
	MaxColumns           int
}

// Convert parses CSV text into a grid document. Quoting follows encoding/csv
// (RFC 4180 with lazy quotes); ragged rows are padded to the widest row so
// the produced document always satisfies the uniform-columns invariant.
// Tables larger than the limits are truncated, not rejected.
func Convert(r io.Reader, opts Options) (*grid.Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read csv input")
	}

	text := string(raw)
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = detectDelimiter(text)
	}

	csvReader := csv.NewReader(strings.NewReader(text))
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse csv")
	}

	return fromRecords(records, opts)
}

// ConvertPasteBuffer parses a tab-separated paste buffer the way browsers
// produce it from spreadsheet copies.
func ConvertPasteBuffer(text string, opts Options) (*grid.Grid, error) {
	opts.Delimiter = '\t'
	return Convert(strings.NewReader(text), opts)
}

func fromRecords(records [][]string, opts Options) (*grid.Grid, error) {
	if len(records) == 0 {
		return nil, ErrNoDataToImport
	}

	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	maxColumns := opts.MaxColumns
	if maxColumns <= 0 {
		maxColumns = defaultMaxColumns
	}

	if len(records) > maxRows {
		log.Warnf("truncating import: %d rows over the limit of %d", len(records), maxRows)
		records = records[:maxRows]
	}

	var columns int
	for _, rec := range records {
		if len(rec) > columns {
			columns = len(rec)
		}
	}
	if columns == 0 {
		return nil, ErrNoDataToImport
	}
	if columns > maxColumns {
		log.Warnf("truncating import: %d columns over the limit of %d", columns, maxColumns)
		columns = maxColumns
	}

	doc := &grid.Grid{
		Id:        grid.NewId(),
		Columns:   columns,
		HasHeader: opts.UseFirstRowForHeader,
	}
	for i, rec := range records {
		header := opts.UseFirstRowForHeader && i == 0
		row := grid.BlankRow(columns, header)
		for j := 0; j < columns && j < len(rec); j++ {
			row.Cells[j].Content = rec[j]
		}
		doc.Rows = append(doc.Rows, row)
	}

	if err := doc.Validate(); err != nil {
		return nil, errors.Wrap(err, "normalized csv table")
	}
	return doc, nil
}

// detectDelimiter picks the candidate occurring most often in the first
// line, defaulting to comma. Quoted sections are skipped so delimiters
// inside field content do not vote.
func detectDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = stripQuoted(line)

	best := ','
	bestCount := 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func stripQuoted(line string) string {
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			b.WriteRune(r)
		}
	}
	return b.String()
}
