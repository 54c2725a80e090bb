package model

import (
	"strconv"

	"github.com/rotisserie/eris"
)

// Row is one record, positionally aligned with its table's columns.
type Row []Value

// Table is an ordered set of named columns and ordered rows. Stages never
// mutate a table they receive; they build and return a new one.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewTable creates an empty table. Column names must be unique.
func NewTable(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, eris.Errorf("table: duplicate column %q", c)
		}
		index[c] = i
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols, index: index}, nil
}

// MangleColumns renames repeated header names to name.1, name.2, ... so that
// every column is addressable.
func MangleColumns(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := h
		for seen[name] {
			counts[h]++
			name = h + "." + strconv.Itoa(counts[h])
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row. The returned slice must not be modified.
func (t *Table) Row(i int) Row { return t.rows[i] }

// ColumnIndex returns the position of a column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// MissingColumns returns the names in want that the table lacks, in order.
func (t *Table) MissingColumns(want []string) []string {
	var missing []string
	for _, c := range want {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Get returns the value of column name in row i. Absent columns read as null.
func (t *Table) Get(i int, name string) Value {
	j, ok := t.index[name]
	if !ok || j >= len(t.rows[i]) {
		return Null()
	}
	return t.rows[i][j]
}

// Append adds a row, padding short rows with nulls.
func (t *Table) Append(row Row) error {
	if len(row) > len(t.columns) {
		return eris.Errorf("table: row has %d values, table has %d columns", len(row), len(t.columns))
	}
	r := make(Row, len(t.columns))
	copy(r, row)
	t.rows = append(t.rows, r)
	return nil
}

// Column returns every value of the named column in row order.
func (t *Table) Column(name string) ([]Value, bool) {
	j, ok := t.index[name]
	if !ok {
		return nil, false
	}
	vals := make([]Value, len(t.rows))
	for i, r := range t.rows {
		vals[i] = r[j]
	}
	return vals, true
}
