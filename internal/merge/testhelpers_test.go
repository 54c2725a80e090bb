package merge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func tableOf(t *testing.T, cols []string, rows ...model.Row) *model.Table {
	t.Helper()
	tbl, err := model.NewTable(cols)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, tbl.Append(r))
	}
	return tbl
}

func columnStrings(t *testing.T, tbl *model.Table, col string) []string {
	t.Helper()
	vals, ok := tbl.Column(col)
	require.True(t, ok, "column %q missing", col)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

var (
	txt = model.Text
	num = model.Number
	nul = model.Null
)
