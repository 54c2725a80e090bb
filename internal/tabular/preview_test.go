package tabular

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func TestPreview(t *testing.T) {
	tbl, err := model.NewTable([]string{"id", "organization"})
	require.NoError(t, err)
	require.NoError(t, tbl.Append(model.Row{model.Number("1"), model.Null()}))
	require.NoError(t, tbl.Append(model.Row{model.Number("2"), model.Text(strings.Repeat("x", 40))}))
	require.NoError(t, tbl.Append(model.Row{model.Number("3"), model.Text("Acme")}))

	var buf bytes.Buffer
	Preview(&buf, "Merged", tbl, 2)

	out := buf.String()
	assert.Contains(t, out, "Merged (3 rows x 2 columns):")
	assert.Contains(t, out, "organization")
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, strings.Repeat("x", 29)+"...")
	assert.NotContains(t, out, "Acme")
	assert.Contains(t, out, "... 1 more rows")
}

func TestPreview_ClipsByRune(t *testing.T) {
	tbl, err := model.NewTable([]string{"organization"})
	require.NoError(t, err)
	require.NoError(t, tbl.Append(model.Row{model.Text(strings.Repeat("é", 40))}))

	var buf bytes.Buffer
	Preview(&buf, "Merged", tbl, 1)

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("é", 29)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 30))
}
