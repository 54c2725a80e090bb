package tabular

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// XLSXOptions configures the XLSX parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // rows dropped before the header
}

// ReadXLSX reads one sheet of an XLSX workbook. The first row after SkipRows
// is the header. Fully blank rows are ignored.
func ReadXLSX(path string, opts XLSXOptions) (*model.Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, model.NewError(model.ErrInputParse, path, eris.Wrap(err, "xlsx: open file"))
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, model.NewError(model.ErrInputParse, path, err)
	}

	var header []string
	var records [][]string
	for i, row := range sheet.Rows {
		if i < opts.SkipRows || row == nil {
			continue
		}
		cells := rowToStrings(row)
		if isBlank(cells) {
			continue
		}
		if header == nil {
			header = cells
			continue
		}
		records = append(records, cells)
	}

	if header == nil {
		return nil, model.NewError(model.ErrInputEmpty, path, nil)
	}
	return buildTable(path, header, records)
}

// WriteXLSX writes the table to a single-sheet workbook.
func WriteXLSX(w io.Writer, t *model.Table) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}

	header := sheet.AddRow()
	for _, c := range t.Columns() {
		header.AddCell().SetString(c)
	}
	for i := 0; i < t.Len(); i++ {
		row := sheet.AddRow()
		for _, v := range t.Row(i) {
			row.AddCell().SetString(v.String())
		}
	}

	return eris.Wrap(f.Write(w), "xlsx: write workbook")
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	// Trailing empty cells carry no columns.
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
