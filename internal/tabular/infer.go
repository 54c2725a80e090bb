package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// nullSentinels are cell texts read as null. Matches the NA markers most
// spreadsheet and dataframe exports emit.
var nullSentinels = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

var boolLiterals = map[string]bool{
	"True": true, "TRUE": true, "true": true,
	"False": true, "FALSE": true, "false": true,
}

// IsNullSentinel reports whether a raw cell reads as null.
func IsNullSentinel(s string) bool {
	return nullSentinels[s]
}

func looksNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return false
	}
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") || strings.HasPrefix(lower, "0o") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// inferKind picks a column kind from its non-null cells: number when every
// cell parses as a number, bool when every cell is a bool literal, else text.
func inferKind(cells []string) model.Kind {
	allNumber, allBool, seen := true, true, false
	for _, c := range cells {
		if IsNullSentinel(c) {
			continue
		}
		seen = true
		if allNumber && !looksNumeric(c) {
			allNumber = false
		}
		if allBool && !boolLiterals[c] {
			allBool = false
		}
		if !allNumber && !allBool {
			break
		}
	}
	switch {
	case !seen:
		return model.KindText
	case allNumber:
		return model.KindNumber
	case allBool:
		return model.KindBool
	default:
		return model.KindText
	}
}

func cellValue(raw string, kind model.Kind) model.Value {
	if IsNullSentinel(raw) {
		return model.Null()
	}
	switch kind {
	case model.KindNumber:
		return model.Number(raw)
	case model.KindBool:
		return model.Bool(raw)
	default:
		return model.Text(raw)
	}
}

// normalizeHeader names blank header cells "Unnamed: N" and makes repeated
// names unique.
func normalizeHeader(header []string) []string {
	named := make([]string, len(header))
	for i, h := range header {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		named[i] = h
	}
	return model.MangleColumns(named)
}

// buildTable types each column and assembles the table. Records longer than
// the header are rejected; shorter ones are padded with nulls.
func buildTable(source string, header []string, records [][]string) (*model.Table, error) {
	cols := normalizeHeader(header)
	for i, rec := range records {
		if len(rec) > len(cols) {
			return nil, model.NewError(model.ErrInputParse, source,
				eris.Errorf("data row %d: expected %d fields, saw %d", i+1, len(cols), len(rec)))
		}
	}

	kinds := make([]model.Kind, len(cols))
	column := make([]string, 0, len(records))
	for j := range cols {
		column = column[:0]
		for _, rec := range records {
			if j < len(rec) {
				column = append(column, rec[j])
			}
		}
		kinds[j] = inferKind(column)
	}

	t, err := model.NewTable(cols)
	if err != nil {
		return nil, model.NewError(model.ErrInputParse, source, err)
	}
	for _, rec := range records {
		row := make(model.Row, len(cols))
		for j := range cols {
			if j < len(rec) {
				row[j] = cellValue(rec[j], kinds[j])
			}
		}
		if err := t.Append(row); err != nil {
			return nil, model.NewError(model.ErrInputParse, source, err)
		}
	}
	return t, nil
}
