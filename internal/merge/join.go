package merge

import (
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// JoinOn describes an inner join between a left and right table.
type JoinOn struct {
	LeftKey      string
	RightKey     string
	RightColumns []string // right columns carried into the result
}

// InnerJoin emits, for every left row in order, one row per right row whose
// key equals the left row's key, in right-table order. Only text keys match;
// null and non-text keys never do. Result columns are all left columns
// followed by on.RightColumns. A name present on both sides is suffixed
// "_x" on the left and "_y" on the right. Neither input is modified.
func InnerJoin(left, right *model.Table, on JoinOn) (*model.Table, error) {
	lk, ok := left.ColumnIndex(on.LeftKey)
	if !ok {
		return nil, model.MissingError(model.ErrSchemaViolation, "join left table", []string{on.LeftKey})
	}
	rk, ok := right.ColumnIndex(on.RightKey)
	if !ok {
		return nil, model.MissingError(model.ErrSchemaViolation, "join right table", []string{on.RightKey})
	}
	if missing := right.MissingColumns(on.RightColumns); len(missing) > 0 {
		return nil, model.MissingError(model.ErrSchemaViolation, "join right table", missing)
	}

	rightIdx := make([]int, len(on.RightColumns))
	for i, c := range on.RightColumns {
		rightIdx[i], _ = right.ColumnIndex(c)
	}

	out, err := model.NewTable(joinColumns(left.Columns(), on.RightColumns))
	if err != nil {
		return nil, err
	}

	matches := make(map[string][]int)
	for i := 0; i < right.Len(); i++ {
		key := right.Row(i)[rk]
		if !key.IsText() {
			continue
		}
		matches[key.Raw] = append(matches[key.Raw], i)
	}

	width := len(left.Columns()) + len(on.RightColumns)
	for i := 0; i < left.Len(); i++ {
		lrow := left.Row(i)
		key := lrow[lk]
		if !key.IsText() {
			continue
		}
		for _, ri := range matches[key.Raw] {
			rrow := right.Row(ri)
			row := make(model.Row, 0, width)
			row = append(row, lrow...)
			for _, j := range rightIdx {
				row = append(row, rrow[j])
			}
			if err := out.Append(row); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Suffixes given to column names present on both sides of a join.
const (
	leftSuffix  = "_x"
	rightSuffix = "_y"
)

func joinColumns(left, right []string) []string {
	inRight := make(map[string]bool, len(right))
	for _, c := range right {
		inRight[c] = true
	}
	inLeft := make(map[string]bool, len(left))
	for _, c := range left {
		inLeft[c] = true
	}

	cols := make([]string, 0, len(left)+len(right))
	for _, c := range left {
		if inRight[c] {
			c += leftSuffix
		}
		cols = append(cols, c)
	}
	for _, c := range right {
		if inLeft[c] {
			c += rightSuffix
		}
		cols = append(cols, c)
	}
	return cols
}
