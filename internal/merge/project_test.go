package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func TestProject_SelectsAndReorders(t *testing.T) {
	t.Parallel()
	in := tableOf(t, []string{"b", "extra", "a"},
		model.Row{txt("b1"), txt("x"), txt("a1")},
	)

	out, err := Project(in, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, out.Columns())
	assert.Equal(t, model.Row{txt("a1"), txt("b1")}, out.Row(0))
}

func TestProject_ReportsEveryMissingColumn(t *testing.T) {
	t.Parallel()
	in := tableOf(t, []string{"id", "email"})

	_, err := Project(in, []string{"id", "phone", "email", "tags"})
	require.Error(t, err)

	merr, ok := model.AsError(err)
	require.True(t, ok)
	assert.Equal(t, model.ErrSchemaViolation, merr.Kind)
	assert.Equal(t, []string{"phone", "tags"}, merr.Missing)
}

func TestOutputColumns(t *testing.T) {
	t.Parallel()
	assert.Len(t, OutputColumns, 38)
	assert.Equal(t, "id", OutputColumns[0])
	assert.Equal(t, "organization", OutputColumns[len(OutputColumns)-1])

	seen := make(map[string]bool)
	for _, c := range OutputColumns {
		assert.False(t, seen[c], "duplicate output column %q", c)
		seen[c] = true
	}
	for _, c := range PrimaryColumns {
		assert.True(t, seen[c], "primary column %q not in output", c)
	}
}
