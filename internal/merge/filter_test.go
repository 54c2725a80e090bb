package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func TestIsCallerName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   model.Value
		want bool
	}{
		{"caller prefix", txt("Caller 555-0100"), true},
		{"caller exact", txt("Caller"), true},
		{"plus one", txt("+15551234567"), true},
		{"leading digit", txt("5551234567"), true},
		{"arabic-indic digit", txt("٣ calls"), true},
		{"regular name", txt("Bob"), false},
		{"lowercase caller", txt("caller 1"), false},
		{"leading space", txt(" Caller"), false},
		{"plus two", txt("+2 something"), false},
		{"contains caller", txt("The Caller"), false},
		{"empty", txt(""), false},
		{"null", nul(), false},
		{"numeric cell", num("42"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCallerName(tt.in))
		})
	}
}

func TestFilterCallers(t *testing.T) {
	t.Parallel()
	in := tableOf(t, []string{"id", "name"},
		model.Row{num("1"), txt("Caller 123")},
		model.Row{num("2"), txt("Bob")},
		model.Row{num("3"), txt("+15550000")},
		model.Row{num("4"), nul()},
		model.Row{num("5"), txt("Alice")},
	)

	out, err := FilterCallers(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "4", "5"}, columnStrings(t, out, "id"))
	assert.Equal(t, in.Columns(), out.Columns())
	assert.Equal(t, 5, in.Len())
}

func TestFilterCallers_MissingName(t *testing.T) {
	t.Parallel()
	_, err := FilterCallers(tableOf(t, []string{"id"}))
	require.Error(t, err)
	assert.Equal(t, model.ErrSchemaViolation, model.KindOf(err))
}
