package merge

import (
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// DedupeLast keeps, for each distinct value of col, only the last row holding
// it. Surviving rows keep their relative order. Null values form one group.
func DedupeLast(t *model.Table, col string) (*model.Table, error) {
	j, ok := t.ColumnIndex(col)
	if !ok {
		return nil, model.MissingError(model.ErrSchemaViolation, "deduplication", []string{col})
	}

	last := make(map[string]int, t.Len())
	for i := 0; i < t.Len(); i++ {
		last[t.Row(i)[j].GroupKey()] = i
	}

	out, err := model.NewTable(t.Columns())
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		if last[row[j].GroupKey()] != i {
			continue
		}
		if err := out.Append(row); err != nil {
			return nil, err
		}
	}
	return out, nil
}
