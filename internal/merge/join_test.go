package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func directoryTable(t *testing.T, rows ...model.Row) *model.Table {
	t.Helper()
	return tableOf(t, []string{"DisplayName", "UserPrincipalName", "Company", "EmployeeID"}, rows...)
}

func TestInnerJoin_MatchesOnlyEqualKeys(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email"},
		model.Row{num("1"), txt("a@x.com")},
		model.Row{num("2"), txt("nobody@x.com")},
		model.Row{num("3"), txt("b@x.com")},
	)
	right := directoryTable(t,
		model.Row{txt("B"), txt("b@x.com"), txt("Beta"), txt("E2")},
		model.Row{txt("A"), txt("a@x.com"), txt("Acme"), txt("E1")},
	)

	out, err := InnerJoin(left, right, DirectoryJoin)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "email", "UserPrincipalName", "Company", "EmployeeID"}, out.Columns())
	assert.Equal(t, []string{"1", "3"}, columnStrings(t, out, "id"))
	assert.Equal(t, []string{"Acme", "Beta"}, columnStrings(t, out, "Company"))
	assert.False(t, out.HasColumn("DisplayName"))
}

func TestInnerJoin_OneRowPerMatch(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email"},
		model.Row{num("1"), txt("a@x.com")},
	)
	right := directoryTable(t,
		model.Row{txt("A1"), txt("a@x.com"), txt("First"), txt("E1")},
		model.Row{txt("A2"), txt("a@x.com"), txt("Second"), txt("E2")},
	)

	out, err := InnerJoin(left, right, DirectoryJoin)
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second"}, columnStrings(t, out, "Company"))
}

func TestInnerJoin_NullAndNonTextKeysNeverMatch(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email"},
		model.Row{num("1"), nul()},
		model.Row{num("2"), num("7")},
	)
	right := directoryTable(t,
		model.Row{txt("N"), nul(), txt("Null Co"), txt("E1")},
		model.Row{txt("S"), num("7"), txt("Seven"), txt("E7")},
	)

	out, err := InnerJoin(left, right, DirectoryJoin)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestInnerJoin_IsCaseSensitiveWithoutNormalization(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email"}, model.Row{num("1"), txt("A@X.com")})
	right := directoryTable(t, model.Row{txt("A"), txt("a@x.com"), txt("Acme"), txt("E1")})

	out, err := InnerJoin(left, right, DirectoryJoin)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestInnerJoin_CollidingColumnsSuffixed(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email", "Company"},
		model.Row{num("1"), txt("a@x.com"), txt("Roster Co")},
	)
	right := directoryTable(t, model.Row{txt("A"), txt("a@x.com"), txt("Directory Co"), txt("E1")})

	out, err := InnerJoin(left, right, DirectoryJoin)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "email", "Company_x", "UserPrincipalName", "Company_y", "EmployeeID"}, out.Columns())
	assert.Equal(t, txt("Roster Co"), out.Get(0, "Company_x"))
	assert.Equal(t, txt("Directory Co"), out.Get(0, "Company_y"))
}

func TestInnerJoin_MissingColumns(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email"})
	right := tableOf(t, []string{"UserPrincipalName"})

	_, err := InnerJoin(tableOf(t, []string{"id"}), right, DirectoryJoin)
	require.Error(t, err)
	assert.Equal(t, model.ErrSchemaViolation, model.KindOf(err))

	_, err = InnerJoin(left, right, DirectoryJoin)
	require.Error(t, err)
	assert.Equal(t, model.ErrSchemaViolation, model.KindOf(err))
	assert.Contains(t, err.Error(), "Company")
	assert.Contains(t, err.Error(), "EmployeeID")
}

func TestInnerJoin_DoesNotModifyInputs(t *testing.T) {
	t.Parallel()
	left := tableOf(t, []string{"id", "email"}, model.Row{num("1"), txt("a@x.com")})
	right := directoryTable(t, model.Row{txt("A"), txt("a@x.com"), txt("Acme"), txt("E1")})

	_, err := InnerJoin(left, right, DirectoryJoin)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "email"}, left.Columns())
	assert.Equal(t, 4, len(right.Columns()))
}
