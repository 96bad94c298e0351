// Package tariff implements the structural editing operations for the
// tariff-page tables: row/column CRUD, bulk resize and company/table
// management. All operations work on in-memory values; persistence is the
// caller's concern. Operations either succeed or leave their input unchanged.
package tariff

import (
	"errors"
	"fmt"
)

// Hard dimension caps for a single table.
const (
	MaxRows    = 100
	MaxColumns = 20
)

var (
	ErrLastRow        = errors.New("cannot delete the last remaining row")
	ErrLastColumn     = errors.New("cannot delete the last remaining column")
	ErrRowOutOfRange  = errors.New("row index out of range")
	ErrColOutOfRange  = errors.New("column index out of range")
	ErrTooManyRows    = fmt.Errorf("table cannot have more than %d rows", MaxRows)
	ErrTooManyColumns = fmt.Errorf("table cannot have more than %d columns", MaxColumns)
	ErrEmptyDimension = errors.New("table must keep at least one row and one column")

	ErrCompanyOutOfRange = errors.New("company index out of range")
	ErrTableOutOfRange   = errors.New("table index out of range")
)

// Table mirrors models.TariffTable; redeclared here so the editor has no
// dependency on the persistence layer.
type Table struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Company groups tables under one group-company name.
type Company struct {
	Name   string  `json:"name"`
	Tables []Table `json:"tables"`
}

// NewTable returns the minimal valid table: one column, one empty row.
func NewTable(title string) Table {
	return Table{
		Title:   title,
		Columns: []string{"Column 1"},
		Rows:    [][]any{{""}},
	}
}

// AddRow appends an empty row sized to the current column count.
func AddRow(t *Table) error {
	if len(t.Rows) >= MaxRows {
		return ErrTooManyRows
	}
	t.Rows = append(t.Rows, emptyRow(len(t.Columns)))
	return nil
}

// DeleteRow removes the row at idx. Deleting the last remaining row is
// refused so a table never ends up with zero rows.
func DeleteRow(t *Table, idx int) error {
	if idx < 0 || idx >= len(t.Rows) {
		return ErrRowOutOfRange
	}
	if len(t.Rows) <= 1 {
		return ErrLastRow
	}
	t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
	return nil
}

// AddColumn appends a column header and extends every row with an empty cell.
func AddColumn(t *Table, header string) error {
	if len(t.Columns) >= MaxColumns {
		return ErrTooManyColumns
	}
	if header == "" {
		header = fmt.Sprintf("Column %d", len(t.Columns)+1)
	}
	t.Columns = append(t.Columns, header)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], "")
	}
	return nil
}

// DeleteColumn removes the column at idx from the header and every row.
// Deleting the last remaining column is refused.
func DeleteColumn(t *Table, idx int) error {
	if idx < 0 || idx >= len(t.Columns) {
		return ErrColOutOfRange
	}
	if len(t.Columns) <= 1 {
		return ErrLastColumn
	}
	t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
	for i := range t.Rows {
		if idx < len(t.Rows[i]) {
			t.Rows[i] = append(t.Rows[i][:idx], t.Rows[i][idx+1:]...)
		}
	}
	return nil
}

// Resize sets the row and column counts directly, truncating or padding
// existing cells. A request outside 1..MaxRows x 1..MaxColumns is rejected
// without touching the table.
func Resize(t *Table, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrEmptyDimension
	}
	if rows > MaxRows {
		return ErrTooManyRows
	}
	if cols > MaxColumns {
		return ErrTooManyColumns
	}

	// Columns: truncate or pad with generated headers
	if cols <= len(t.Columns) {
		t.Columns = t.Columns[:cols]
	} else {
		for i := len(t.Columns); i < cols; i++ {
			t.Columns = append(t.Columns, fmt.Sprintf("Column %d", i+1))
		}
	}

	// Rows: truncate or pad, then normalize every row to the column count
	if rows <= len(t.Rows) {
		t.Rows = t.Rows[:rows]
	} else {
		for i := len(t.Rows); i < rows; i++ {
			t.Rows = append(t.Rows, emptyRow(cols))
		}
	}
	for i := range t.Rows {
		t.Rows[i] = fitRow(t.Rows[i], cols)
	}

	return nil
}

// AddCompany appends a company with no tables yet.
func AddCompany(companies []Company, name string) []Company {
	return append(companies, Company{Name: name, Tables: []Table{}})
}

// DeleteCompany removes the company at idx.
func DeleteCompany(companies []Company, idx int) ([]Company, error) {
	if idx < 0 || idx >= len(companies) {
		return companies, ErrCompanyOutOfRange
	}
	return append(companies[:idx], companies[idx+1:]...), nil
}

// RenameCompany sets the name of the company at idx.
func RenameCompany(companies []Company, idx int, name string) error {
	if idx < 0 || idx >= len(companies) {
		return ErrCompanyOutOfRange
	}
	companies[idx].Name = name
	return nil
}

// AddTable appends a minimal new table to the company.
func AddTable(c *Company, title string) {
	c.Tables = append(c.Tables, NewTable(title))
}

// DeleteTable removes the table at idx from the company.
func DeleteTable(c *Company, idx int) error {
	if idx < 0 || idx >= len(c.Tables) {
		return ErrTableOutOfRange
	}
	c.Tables = append(c.Tables[:idx], c.Tables[idx+1:]...)
	return nil
}

// Validate checks the structural invariants of a full companies document:
// every table has 1..MaxRows rows and 1..MaxColumns columns, and every row's
// length matches the column count. Returns one message per violation keyed
// by the table's position.
func Validate(companies []Company) map[string]string {
	problems := make(map[string]string)

	for ci, company := range companies {
		for ti, table := range company.Tables {
			key := fmt.Sprintf("companies[%d].tables[%d]", ci, ti)

			switch {
			case len(table.Columns) == 0:
				problems[key] = "table has no columns"
				continue
			case len(table.Columns) > MaxColumns:
				problems[key] = ErrTooManyColumns.Error()
				continue
			case len(table.Rows) == 0:
				problems[key] = "table has no rows"
				continue
			case len(table.Rows) > MaxRows:
				problems[key] = ErrTooManyRows.Error()
				continue
			}

			for ri, row := range table.Rows {
				if len(row) != len(table.Columns) {
					problems[fmt.Sprintf("%s.rows[%d]", key, ri)] = fmt.Sprintf(
						"row has %d cells, expected %d", len(row), len(table.Columns))
				}
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

func emptyRow(cols int) []any {
	row := make([]any, cols)
	for i := range row {
		row[i] = ""
	}
	return row
}

func fitRow(row []any, cols int) []any {
	if len(row) == cols {
		return row
	}
	if len(row) > cols {
		return row[:cols]
	}
	for len(row) < cols {
		row = append(row, "")
	}
	return row
}
