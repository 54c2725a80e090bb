package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func TestInferKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells []string
		want  model.Kind
	}{
		{"integers", []string{"1", "2", "3"}, model.KindNumber},
		{"floats with nulls", []string{"1.5", "", "NaN", "-2e3"}, model.KindNumber},
		{"bools", []string{"True", "false", "TRUE"}, model.KindBool},
		{"mixed", []string{"1", "abc"}, model.KindText},
		{"emails", []string{"a@x.com"}, model.KindText},
		{"all null", []string{"", "N/A"}, model.KindText},
		{"hex is text", []string{"0x1F"}, model.KindText},
		{"underscore is text", []string{"1_000"}, model.KindText},
		{"phone is text", []string{"+1 555 0100"}, model.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inferKind(tt.cells))
		})
	}
}

func TestIsNullSentinel(t *testing.T) {
	for _, s := range []string{"", "N/A", "NA", "NULL", "null", "NaN", "nan", "None", "#N/A", "<NA>"} {
		assert.True(t, IsNullSentinel(s), s)
	}
	for _, s := range []string{" ", "none", "0", "Acme", "n.a."} {
		assert.False(t, IsNullSentinel(s), s)
	}
}

func TestBuildTable_NumericColumnKeepsRaw(t *testing.T) {
	tbl, err := buildTable("t.csv", []string{"id"}, [][]string{{"007"}, {""}})
	assert.NoError(t, err)
	assert.Equal(t, model.Number("007"), tbl.Get(0, "id"))
	assert.True(t, tbl.Get(1, "id").IsNull())
}
