package tabledata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Column describes one column of a Table.
type Column struct {
	Name string
}

// Table is an in-memory Dataset. Rows keep insertion order; every row
// holds exactly one value per column.
type Table struct {
	columns []Column
	rows    [][]any
}

// New creates an empty table with the given column names.
func New(names ...string) *Table {
	t := &Table{columns: make([]Column, len(names))}
	for i, n := range names {
		t.columns[i] = Column{Name: n}
	}
	return t
}

// Build creates a table with cols columns named "Col<c>" and rows rows
// whose cells read "R<r>C<c>".
func Build(cols, rows int) *Table {
	names := make([]string, max(cols, 0))
	for c := range names {
		names[c] = fmt.Sprintf("Col%d", c)
	}
	t := New(names...)
	for r := 0; r < rows; r++ {
		row := make([]any, len(names))
		for c := range row {
			row[c] = fmt.Sprintf("R%dC%d", r, c)
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// ── Dataset ──

func (t *Table) RowCount() int    { return len(t.rows) }
func (t *Table) ColumnCount() int { return len(t.columns) }

// Cell returns the value at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) any {
	if !InBounds(t, row, col) {
		return nil
	}
	return t.rows[row][col]
}

// ColumnName returns the header of col, or "" when out of range.
func (t *Table) ColumnName(col int) string {
	if col < 0 || col >= len(t.columns) {
		return ""
	}
	return t.columns[col].Name
}

// ── Mutation ──

// AddColumn appends a column; existing rows get a nil value for it.
func (t *Table) AddColumn(name string) int {
	t.columns = append(t.columns, Column{Name: name})
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], nil)
	}
	return len(t.columns) - 1
}

// AddRow appends a row. Short rows are padded with nil, long rows are
// truncated to the column count. Returns the new row index.
func (t *Table) AddRow(values ...any) int {
	row := make([]any, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
	return len(t.rows) - 1
}

// SetCell replaces a value. Out-of-range writes are silently ignored.
func (t *Table) SetCell(row, col int, v any) {
	if InBounds(t, row, col) {
		t.rows[row][col] = v
	}
}

// RemoveRow deletes a row, shifting later rows up.
func (t *Table) RemoveRow(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	t.rows = append(t.rows[:row], t.rows[row+1:]...)
}

// ── Loading ──

// ErrNoHeader is returned by ReadCSV when the input has no records.
var ErrNoHeader = errors.New("csv has no header record")

// ReadCSV loads a table whose first record holds the column names. Ragged
// records are accepted and padded or truncated to the header width.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := New(header...)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", t.RowCount()+1, err)
		}
		values := make([]any, len(rec))
		for i, f := range rec {
			values[i] = f
		}
		t.AddRow(values...)
	}
	return t, nil
}

// OpenCSV reads the CSV file at path.
func OpenCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
