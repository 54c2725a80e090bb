// Package merge implements the roster reconciliation stages and the pipeline
// that runs them: filter, normalize, join, reconcile, project, dedupe, write.
package merge

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// NormalizeKey lowercases and trims text values. Any other value, null
// included, is returned unchanged.
func NormalizeKey(v model.Value) model.Value {
	if !v.IsText() {
		return v
	}
	lower := cases.Lower(language.Und).String(v.Raw)
	return model.Text(strings.TrimSpace(lower))
}

// NormalizeColumn returns a copy of t with NormalizeKey applied to column col.
func NormalizeColumn(t *model.Table, col string) (*model.Table, error) {
	j, ok := t.ColumnIndex(col)
	if !ok {
		return nil, model.MissingError(model.ErrSchemaViolation, "key normalization", []string{col})
	}
	return mapRows(t, t.Columns(), func(_ int, row model.Row) model.Row {
		row[j] = NormalizeKey(row[j])
		return row
	})
}

// mapRows builds a new table with the given columns, passing a private copy
// of each source row to fn. fn may modify and extend the copy.
func mapRows(t *model.Table, columns []string, fn func(i int, row model.Row) model.Row) (*model.Table, error) {
	out, err := model.NewTable(columns)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.Len(); i++ {
		src := t.Row(i)
		row := make(model.Row, len(src), max(len(src), len(columns)))
		copy(row, src)
		if err := out.Append(fn(i, row)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
