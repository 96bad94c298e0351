package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRectangular(t *testing.T, table Table) {
	t.Helper()
	for i, row := range table.Rows {
		assert.Len(t, row, len(table.Columns), "row %d length must equal column count", i)
	}
}

func TestNewTable_MinimalShape(t *testing.T) {
	table := NewTable("Freight")

	assert.Equal(t, "Freight", table.Title)
	assert.Equal(t, []string{"Column 1"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assertRectangular(t, table)
}

func TestAddRow_KeepsRowsRectangular(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, AddColumn(&table, "Rate"))
	require.NoError(t, AddColumn(&table, "Currency"))

	require.NoError(t, AddRow(&table))
	require.NoError(t, AddRow(&table))

	assert.Len(t, table.Rows, 3)
	assertRectangular(t, table)
}

func TestAddRow_RefusedAtCap(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, Resize(&table, MaxRows, 1))

	err := AddRow(&table)

	assert.ErrorIs(t, err, ErrTooManyRows)
	assert.Len(t, table.Rows, MaxRows)
}

func TestDeleteRow_RefusesLastRow(t *testing.T) {
	table := NewTable("Freight")

	err := DeleteRow(&table, 0)

	assert.ErrorIs(t, err, ErrLastRow)
	assert.Len(t, table.Rows, 1)
}

func TestDeleteRow_OutOfRange(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, AddRow(&table))

	assert.ErrorIs(t, DeleteRow(&table, -1), ErrRowOutOfRange)
	assert.ErrorIs(t, DeleteRow(&table, 2), ErrRowOutOfRange)
	assert.Len(t, table.Rows, 2)
}

func TestDeleteRow_OutOfRangeOnSingleRowTable(t *testing.T) {
	table := NewTable("Freight")

	// A bad index wins over the last-row refusal.
	assert.ErrorIs(t, DeleteRow(&table, 7), ErrRowOutOfRange)
	assert.ErrorIs(t, DeleteRow(&table, -1), ErrRowOutOfRange)
	assert.Len(t, table.Rows, 1)
}

func TestDeleteColumn_OutOfRangeOnSingleColumnTable(t *testing.T) {
	table := NewTable("Freight")

	assert.ErrorIs(t, DeleteColumn(&table, 3), ErrColOutOfRange)
	assert.ErrorIs(t, DeleteColumn(&table, -1), ErrColOutOfRange)
	assert.Len(t, table.Columns, 1)
}

func TestAddColumn_ExtendsEveryRow(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, AddRow(&table))
	require.NoError(t, AddRow(&table))

	require.NoError(t, AddColumn(&table, "Rate"))
	require.NoError(t, AddColumn(&table, ""))

	assert.Equal(t, []string{"Column 1", "Rate", "Column 3"}, table.Columns)
	assertRectangular(t, table)
}

func TestAddColumn_RefusedAtCap(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, Resize(&table, 1, MaxColumns))

	err := AddColumn(&table, "extra")

	assert.ErrorIs(t, err, ErrTooManyColumns)
	assert.Len(t, table.Columns, MaxColumns)
}

func TestDeleteColumn_RefusesLastColumn(t *testing.T) {
	table := NewTable("Freight")

	err := DeleteColumn(&table, 0)

	assert.ErrorIs(t, err, ErrLastColumn)
	assert.Len(t, table.Columns, 1)
}

func TestDeleteColumn_RemovesCellFromEveryRow(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, AddColumn(&table, "Rate"))
	require.NoError(t, AddColumn(&table, "Currency"))
	require.NoError(t, AddRow(&table))
	table.Rows[0] = []any{"20ft", 100, "USD"}
	table.Rows[1] = []any{"40ft", 180, "USD"}

	require.NoError(t, DeleteColumn(&table, 1))

	assert.Equal(t, []string{"Column 1", "Currency"}, table.Columns)
	assert.Equal(t, []any{"20ft", "USD"}, table.Rows[0])
	assert.Equal(t, []any{"40ft", "USD"}, table.Rows[1])
	assertRectangular(t, table)
}

func TestResize_PadsAndTruncates(t *testing.T) {
	table := NewTable("Freight")
	table.Rows[0] = []any{"20ft"}

	require.NoError(t, Resize(&table, 3, 2))

	assert.Len(t, table.Rows, 3)
	assert.Len(t, table.Columns, 2)
	assert.Equal(t, []any{"20ft", ""}, table.Rows[0])
	assertRectangular(t, table)

	require.NoError(t, Resize(&table, 1, 1))

	assert.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Column 1"}, table.Columns)
	assertRectangular(t, table)
}

func TestResize_RejectedWithoutMutation(t *testing.T) {
	table := NewTable("Freight")
	require.NoError(t, AddColumn(&table, "Rate"))
	require.NoError(t, AddRow(&table))
	before := Table{
		Title:   table.Title,
		Columns: append([]string{}, table.Columns...),
		Rows:    [][]any{append([]any{}, table.Rows[0]...), append([]any{}, table.Rows[1]...)},
	}

	assert.ErrorIs(t, Resize(&table, MaxRows+1, 2), ErrTooManyRows)
	assert.ErrorIs(t, Resize(&table, 2, MaxColumns+1), ErrTooManyColumns)
	assert.ErrorIs(t, Resize(&table, 0, 2), ErrEmptyDimension)
	assert.ErrorIs(t, Resize(&table, 2, 0), ErrEmptyDimension)

	assert.Equal(t, before, table)
}

func TestCompanyOperations(t *testing.T) {
	var companies []Company

	companies = AddCompany(companies, "Marlink Shipping")
	companies = AddCompany(companies, "Marlink Logistics")
	require.Len(t, companies, 2)

	require.NoError(t, RenameCompany(companies, 1, "Marlink Freight"))
	assert.Equal(t, "Marlink Freight", companies[1].Name)

	assert.ErrorIs(t, RenameCompany(companies, 5, "x"), ErrCompanyOutOfRange)

	AddTable(&companies[0], "Import rates")
	require.Len(t, companies[0].Tables, 1)
	assertRectangular(t, companies[0].Tables[0])

	assert.ErrorIs(t, DeleteTable(&companies[0], 3), ErrTableOutOfRange)
	require.NoError(t, DeleteTable(&companies[0], 0))
	assert.Empty(t, companies[0].Tables)

	companies, err := DeleteCompany(companies, 0)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Marlink Freight", companies[0].Name)

	_, err = DeleteCompany(companies, 9)
	assert.ErrorIs(t, err, ErrCompanyOutOfRange)
}

func TestValidate(t *testing.T) {
	good := []Company{{
		Name: "Marlink Shipping",
		Tables: []Table{{
			Title:   "Import",
			Columns: []string{"Container", "Rate"},
			Rows:    [][]any{{"20ft", 100}, {"40ft", 180}},
		}},
	}}
	assert.Nil(t, Validate(good))

	bad := []Company{{
		Name: "Marlink Shipping",
		Tables: []Table{
			{Title: "NoCols", Columns: nil, Rows: [][]any{{"x"}}},
			{Title: "NoRows", Columns: []string{"A"}, Rows: nil},
			{Title: "Ragged", Columns: []string{"A", "B"}, Rows: [][]any{{"only one"}}},
		},
	}}

	problems := Validate(bad)
	require.NotNil(t, problems)
	assert.Contains(t, problems, "companies[0].tables[0]")
	assert.Contains(t, problems, "companies[0].tables[1]")
	assert.Contains(t, problems, "companies[0].tables[2].rows[0]")
}

func TestValidate_OversizeTable(t *testing.T) {
	rows := make([][]any, MaxRows+1)
	for i := range rows {
		rows[i] = []any{""}
	}
	oversize := []Company{{
		Name:   "Marlink Shipping",
		Tables: []Table{{Title: "Big", Columns: []string{"A"}, Rows: rows}},
	}}

	problems := Validate(oversize)
	require.NotNil(t, problems)
	assert.Contains(t, problems["companies[0].tables[0]"], "100")
}
