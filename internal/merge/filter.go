package merge

import (
	"regexp"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// callerPattern matches placeholder names created for phone callers: the word
// "Caller", a "+1" number, or anything starting with a digit.
var callerPattern = regexp.MustCompile(`^(Caller|\+1|\p{Nd})`)

// IsCallerName reports whether a name value marks a placeholder caller row.
// Null names never match.
func IsCallerName(v model.Value) bool {
	if v.IsNull() {
		return false
	}
	return callerPattern.MatchString(v.Raw)
}

// FilterCallers returns the rows of t whose name column is not a caller
// placeholder, in their original order.
func FilterCallers(t *model.Table) (*model.Table, error) {
	j, ok := t.ColumnIndex(ColName)
	if !ok {
		return nil, model.MissingError(model.ErrSchemaViolation, "row filter", []string{ColName})
	}

	out, err := model.NewTable(t.Columns())
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		if IsCallerName(row[j]) {
			continue
		}
		if err := out.Append(row); err != nil {
			return nil, err
		}
	}
	return out, nil
}
