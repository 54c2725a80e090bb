// Package tabular reads and writes the CSV and XLSX tables the merger works on.
package tabular

import (
	"bufio"
	"encoding/csv"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// CSVOptions configures the CSV parser.
type CSVOptions struct {
	Delimiter  rune // default ','
	SkipRows   int  // raw lines dropped before the header
	LazyQuotes bool
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses a CSV stream whose first record (after SkipRows lines) is the
// header. A UTF-8 or UTF-16 byte order mark is honoured and stripped. Input
// without a UTF-16 mark must be valid UTF-8; invalid bytes are a parse error
// naming the record. source names the input in errors.
func ReadCSV(r io.Reader, source string, opts CSVOptions) (*model.Table, error) {
	br := decodeInput(bufio.NewReader(r))

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, model.NewError(model.ErrInputEmpty, source, nil)
			}
			return nil, model.NewError(model.ErrInputParse, source, eris.Wrap(err, "csv: skip row"))
		}
	}

	reader := csv.NewReader(br)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, model.NewError(model.ErrInputEmpty, source, nil)
	}
	if err != nil {
		return nil, model.NewError(model.ErrInputParse, source, eris.Wrap(err, "csv: read header"))
	}
	if !validUTF8(header) {
		return nil, model.NewError(model.ErrInputParse, source, eris.New("csv: header is not valid UTF-8"))
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, model.NewError(model.ErrInputParse, source, eris.Wrap(err, "csv: read row"))
		}
		if !validUTF8(record) {
			return nil, model.NewError(model.ErrInputParse, source,
				eris.Errorf("csv: data row %d is not valid UTF-8", len(records)+1))
		}
		records = append(records, record)
	}

	return buildTable(source, header, records)
}

// decodeInput transcodes UTF-16 input to UTF-8 and strips a UTF-8 byte order
// mark. UTF-8 bytes pass through untouched so invalid sequences stay visible.
func decodeInput(br *bufio.Reader) *bufio.Reader {
	head, _ := br.Peek(len(utf8BOM))
	switch {
	case bytes.HasPrefix(head, utf8BOM):
		_, _ = br.Discard(len(utf8BOM))
		return br
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}), bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return bufio.NewReader(transform.NewReader(br, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	}
	return br
}

func validUTF8(fields []string) bool {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return false
		}
	}
	return true
}

// WriteCSV writes the header and every row. Nulls are written as empty cells.
func WriteCSV(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns()); err != nil {
		return eris.Wrap(err, "csv: write header")
	}

	record := make([]string, len(t.Columns()))
	for i := 0; i < t.Len(); i++ {
		for j, v := range t.Row(i) {
			record[j] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return eris.Wrapf(err, "csv: write row %d", i+1)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "csv: flush")
}
