// Package tabledata provides the tabular data source consumed by the
// table view: a read-only Dataset interface plus an in-memory Table with
// named columns, stable row order and CSV loading.
package tabledata

import "fmt"

// Dataset is the minimal read interface the table view needs. Both counts
// are never negative. Cell may return nil for an absent value.
type Dataset interface {
	RowCount() int
	ColumnCount() int
	Cell(row, col int) any
	ColumnName(col int) string
}

// Empty is a Dataset with no rows and no columns.
type Empty struct{}

func (Empty) RowCount() int         { return 0 }
func (Empty) ColumnCount() int      { return 0 }
func (Empty) Cell(int, int) any     { return nil }
func (Empty) ColumnName(int) string { return "" }

// InBounds reports whether (row, col) addresses a cell of ds.
func InBounds(ds Dataset, row, col int) bool {
	return row >= 0 && row < ds.RowCount() && col >= 0 && col < ds.ColumnCount()
}

// Text returns the default printable form of a cell value. nil renders as
// the empty string.
func Text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
