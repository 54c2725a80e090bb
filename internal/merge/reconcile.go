package merge

import (
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// ResolveOrganization prefers the directory company over the roster
// organization. Any non-null company wins, including empty text.
func ResolveOrganization(company, organization model.Value) model.Value {
	if !company.IsNull() {
		return company
	}
	return organization
}

// ResolveExternalID routes the directory employee ID to external_id. A null
// employee ID becomes empty text so external_id is never null.
func ResolveExternalID(employeeID model.Value) model.Value {
	if employeeID.IsNull() {
		return model.Text("")
	}
	return employeeID
}

// Reconcile applies ResolveOrganization and ResolveExternalID to every row of
// a joined table. When the roster carried its own Company or EmployeeID, the
// join suffixed the directory copy with "_y" and that copy is the one read.
// Company and EmployeeID columns that are absent read as null. organization
// and external_id are overwritten in place, or appended when the table lacks
// them. No other column is touched.
func Reconcile(t *model.Table) (*model.Table, error) {
	company := directoryColumn(t, ColCompany)
	employeeID := directoryColumn(t, ColEmployeeID)

	cols := t.Columns()
	orgIdx, hasOrg := t.ColumnIndex(ColOrganization)
	if !hasOrg {
		orgIdx = len(cols)
		cols = append(cols, ColOrganization)
	}
	extIdx, hasExt := t.ColumnIndex(ColExternalID)
	if !hasExt {
		extIdx = len(cols)
		cols = append(cols, ColExternalID)
	}

	return mapRows(t, cols, func(i int, row model.Row) model.Row {
		row = row[:len(cols)]
		row[orgIdx] = ResolveOrganization(t.Get(i, company), t.Get(i, ColOrganization))
		row[extIdx] = ResolveExternalID(t.Get(i, employeeID))
		return row
	})
}

// directoryColumn returns the name a directory column carries after the join.
func directoryColumn(t *model.Table, col string) string {
	if suffixed := col + rightSuffix; t.HasColumn(suffixed) {
		return suffixed
	}
	return col
}
