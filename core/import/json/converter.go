package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/gridio/go-grid-editor/core/grid"
)

var ErrNoDataToImport = errors.New("no data to import")

// Convert parses a JSON document into a grid. Two shapes are accepted:
// an array of arrays of scalars, and an array of objects whose keys become
// the header row (key order follows the first object in which each key
// appears). Values are stringified; rows are padded so the result always
// satisfies the uniform-columns invariant.
func Convert(data []byte) (*grid.Grid, error) {
	var rawRows []json.RawMessage
	if err := json.Unmarshal(data, &rawRows); err != nil {
		return nil, errors.Wrap(err, "parse json: expected a top-level array")
	}
	if len(rawRows) == 0 {
		return nil, ErrNoDataToImport
	}

	if bytes.HasPrefix(bytes.TrimSpace(rawRows[0]), []byte("{")) {
		return fromObjects(rawRows)
	}
	return fromArrays(rawRows)
}

func fromArrays(rawRows []json.RawMessage) (*grid.Grid, error) {
	var result *multierror.Error

	records := make([][]string, 0, len(rawRows))
	for i, raw := range rawRows {
		var values []interface{}
		if err := json.Unmarshal(raw, &values); err != nil {
			result = multierror.Append(result, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		records = append(records, lo.Map(values, func(v interface{}, _ int) string {
			return stringify(v)
		}))
	}
	if len(records) == 0 {
		if err := result.ErrorOrNil(); err != nil {
			return nil, err
		}
		return nil, ErrNoDataToImport
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return buildGrid(records, false)
}

func fromObjects(rawRows []json.RawMessage) (*grid.Grid, error) {
	var result *multierror.Error

	var keys []string
	seen := map[string]bool{}
	rows := make([]map[string]interface{}, 0, len(rawRows))

	for i, raw := range rawRows {
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err != nil {
			result = multierror.Append(result, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		for _, k := range keyOrder(raw) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		rows = append(rows, obj)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(keys) == 0 {
		return nil, ErrNoDataToImport
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, keys)
	for _, obj := range rows {
		records = append(records, lo.Map(keys, func(k string, _ int) string {
			return stringify(obj[k])
		}))
	}

	return buildGrid(records, true)
}

func buildGrid(records [][]string, hasHeader bool) (*grid.Grid, error) {
	var columns int
	for _, rec := range records {
		if len(rec) > columns {
			columns = len(rec)
		}
	}
	if columns == 0 {
		return nil, ErrNoDataToImport
	}

	doc := &grid.Grid{
		Id:        grid.NewId(),
		Columns:   columns,
		HasHeader: hasHeader,
	}
	for i, rec := range records {
		header := hasHeader && i == 0
		row := grid.BlankRow(columns, header)
		for j := 0; j < len(rec) && j < columns; j++ {
			row.Cells[j].Content = rec[j]
		}
		doc.Rows = append(doc.Rows, row)
	}

	if err := doc.Validate(); err != nil {
		return nil, errors.Wrap(err, "normalized json table")
	}
	return doc, nil
}

// keyOrder extracts object keys in their order of appearance, which
// map-based decoding loses.
func keyOrder(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var keys []string
	depth := 0
	expectKey := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
			// back at the top level of the object, the next token is a key
			expectKey = depth == 1
			continue
		}
		if depth != 1 {
			continue
		}
		if expectKey {
			if k, ok := tok.(string); ok {
				keys = append(keys, k)
			}
			expectKey = false
		} else {
			// just consumed a scalar value
			expectKey = true
		}
	}
	return keys
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
