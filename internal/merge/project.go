package merge

import (
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// Project returns a table holding exactly columns, in that order. If any of
// columns is missing from t the whole projection fails with a schema
// violation naming every missing column.
func Project(t *model.Table, columns []string) (*model.Table, error) {
	if missing := t.MissingColumns(columns); len(missing) > 0 {
		return nil, model.MissingError(model.ErrSchemaViolation, "merged table", missing)
	}

	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i], _ = t.ColumnIndex(c)
	}

	out, err := model.NewTable(columns)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.Len(); i++ {
		src := t.Row(i)
		row := make(model.Row, len(columns))
		for k, j := range idx {
			row[k] = src[j]
		}
		if err := out.Append(row); err != nil {
			return nil, err
		}
	}
	return out, nil
}
