package editor

import (
	"io"

	importcsv "github.com/gridio/go-grid-editor/core/import/csv"
	importjson "github.com/gridio/go-grid-editor/core/import/json"
)

// Import entry points build a document with the configured limits and
// install it, replacing selection and history.

func (e *Editor) ImportCSV(r io.Reader, useFirstRowForHeader bool) error {
	doc, err := importcsv.Convert(r, importcsv.Options{
		UseFirstRowForHeader: useFirstRowForHeader,
		MaxRows:              e.cfg.MaxImportRows,
		MaxColumns:           e.cfg.MaxImportColumns,
	})
	if err != nil {
		return err
	}
	return e.SetDocument(doc)
}

// ImportPasteBuffer installs a document parsed from a tab-separated paste
// buffer, the format spreadsheets put on the clipboard.
func (e *Editor) ImportPasteBuffer(text string, useFirstRowForHeader bool) error {
	doc, err := importcsv.ConvertPasteBuffer(text, importcsv.Options{
		UseFirstRowForHeader: useFirstRowForHeader,
		MaxRows:              e.cfg.MaxImportRows,
		MaxColumns:           e.cfg.MaxImportColumns,
	})
	if err != nil {
		return err
	}
	return e.SetDocument(doc)
}

func (e *Editor) ImportJSON(data []byte) error {
	doc, err := importjson.Convert(data)
	if err != nil {
		return err
	}
	return e.SetDocument(doc)
}
