package tableview

import "fmt"

// Viewport owns the scroll offsets of a table and keeps them valid.
//
// RowOffset is always in [0, max(0, RowCount-1)] and exactly 0 for an
// empty axis; ColumnOffset likewise. Out-of-range requests are clamped,
// never rejected, so callers can scroll by a delta and let the viewport
// fix the result.
type Viewport struct {
	rowCount, colCount       int
	visibleRows, visibleCols int
	rowOffset, colOffset     int
}

// SetDataset installs new table dimensions and resets both offsets to 0.
// Negative dimensions are a caller bug and leave the viewport untouched.
func (v *Viewport) SetDataset(rowCount, columnCount int) error {
	if rowCount < 0 || columnCount < 0 {
		return fmt.Errorf("set dataset %dx%d: %w", rowCount, columnCount, ErrNegativeDimension)
	}
	v.rowCount = rowCount
	v.colCount = columnCount
	v.rowOffset = 0
	v.colOffset = 0
	v.EnsureValidScrollOffsets()
	return nil
}

// SetVisibleArea records how many rows and terminal columns are on
// screen, then re-validates the offsets.
func (v *Viewport) SetVisibleArea(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("set visible area %dx%d: %w", rows, cols, ErrNegativeDimension)
	}
	v.visibleRows = rows
	v.visibleCols = cols
	v.EnsureValidScrollOffsets()
	return nil
}

// SetRowOffset stores value clamped into the valid row range.
func (v *Viewport) SetRowOffset(value int) {
	v.rowOffset = clampIndex(value, v.rowCount)
}

// SetColumnOffset stores value clamped into the valid column range.
func (v *Viewport) SetColumnOffset(value int) {
	v.colOffset = clampIndex(value, v.colCount)
}

// EnsureValidScrollOffsets re-applies clamping to the stored offsets.
// Calling it again without an intervening change is a no-op.
func (v *Viewport) EnsureValidScrollOffsets() {
	v.rowOffset = clampIndex(v.rowOffset, v.rowCount)
	v.colOffset = clampIndex(v.colOffset, v.colCount)
}

// ScrollBy moves both offsets by a delta and clamps the result.
func (v *Viewport) ScrollBy(dRows, dCols int) {
	v.SetRowOffset(v.rowOffset + dRows)
	v.SetColumnOffset(v.colOffset + dCols)
}

// EnsureCellVisible moves the offsets the least amount needed to bring
// (row, col) into view, given that colsInView whole columns fit starting
// at the current column offset. A zero visible height or colsInView leaves
// that axis alone. The result is clamped like any other assignment.
func (v *Viewport) EnsureCellVisible(row, col, colsInView int) {
	if row < v.rowOffset {
		v.SetRowOffset(row)
	} else if v.visibleRows > 0 && row >= v.rowOffset+v.visibleRows {
		v.SetRowOffset(row - v.visibleRows + 1)
	}

	if col < v.colOffset {
		v.SetColumnOffset(col)
	} else if colsInView > 0 && col >= v.colOffset+colsInView {
		v.SetColumnOffset(col - colsInView + 1)
	}
}

// RowVisible reports whether row lies in the visible row window.
func (v *Viewport) RowVisible(row int) bool {
	return row >= v.rowOffset && row < v.rowOffset+v.visibleRows
}

func (v *Viewport) RowOffset() int      { return v.rowOffset }
func (v *Viewport) ColumnOffset() int   { return v.colOffset }
func (v *Viewport) RowCount() int       { return v.rowCount }
func (v *Viewport) ColumnCount() int    { return v.colCount }
func (v *Viewport) VisibleRows() int    { return v.visibleRows }
func (v *Viewport) VisibleColumns() int { return v.visibleCols }
