// Package tableview is the selection-and-viewport engine behind a
// terminal table widget. It tracks the selected cell (or a rectangular
// region spanned by an anchor and the active cell) and keeps the scroll
// offsets valid as the dataset and the visible area change size.
//
// Nothing in this package draws. Rendering layers ask IsSelected once per
// visible cell and read the offsets and ColumnLayout to decide what to
// paint where.
//
// The engine is not safe for concurrent use; drive it from the UI loop.
package tableview

import (
	"errors"
	"image"
)

// ErrNegativeDimension is returned when a dataset or visible area is
// installed with a negative row or column count.
var ErrNegativeDimension = errors.New("negative dimension")

// Region is a closed rectangle of cells: every (row, col) with
// RowLo <= row <= RowHi and ColLo <= col <= ColHi is inside.
type Region struct {
	RowLo, RowHi int
	ColLo, ColHi int
}

// NormalizeRegion returns the region spanned by two corners given in any
// order.
func NormalizeRegion(row1, col1, row2, col2 int) Region {
	return Region{
		RowLo: min(row1, row2),
		RowHi: max(row1, row2),
		ColLo: min(col1, col2),
		ColHi: max(col1, col2),
	}
}

// CellRegion is the 1x1 region at (row, col).
func CellRegion(row, col int) Region {
	return Region{RowLo: row, RowHi: row, ColLo: col, ColHi: col}
}

// Contains reports whether (row, col) lies inside r.
func (r Region) Contains(row, col int) bool {
	return r.RowLo <= row && row <= r.RowHi && r.ColLo <= col && col <= r.ColHi
}

// Rows is the number of rows covered.
func (r Region) Rows() int { return r.RowHi - r.RowLo + 1 }

// Cols is the number of columns covered.
func (r Region) Cols() int { return r.ColHi - r.ColLo + 1 }

// Rect converts r to a half-open image.Rectangle with X as the column axis
// and Y as the row axis.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.ColLo, r.RowLo, r.ColHi+1, r.RowHi+1)
}

// Clip limits r to the rows [0, rows) and columns [0, cols). ok is false
// when nothing of r remains.
func (r Region) Clip(rows, cols int) (Region, bool) {
	out := Region{
		RowLo: max(r.RowLo, 0),
		RowHi: min(r.RowHi, rows-1),
		ColLo: max(r.ColLo, 0),
		ColHi: min(r.ColHi, cols-1),
	}
	if out.RowLo > out.RowHi || out.ColLo > out.ColHi {
		return Region{}, false
	}
	return out, true
}

// clampIndex limits v to [0, max(0, count-1)]; an empty axis forces 0.
func clampIndex(v, count int) int {
	if count <= 0 || v < 0 {
		return 0
	}
	if v > count-1 {
		return count - 1
	}
	return v
}
