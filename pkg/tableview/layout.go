package tableview

// ColumnSpan places one table column on screen, in table-local terminal
// columns. Columns are separated by a single rule cell at X+Width.
type ColumnSpan struct {
	Column int
	X      int
	Width  int
	// Clipped is set when the column did not fit and Width was cut to the
	// remaining space. Only the first column on screen is ever clipped.
	Clipped bool
}

// End is the first screen column after the span's content.
func (s ColumnSpan) End() int { return s.X + s.Width }

// ColumnLayout decides which columns are drawn, starting at ColumnOffset,
// within the visible width. Each column is as wide as the widest of its
// header and its visible cells, bounded by its style and MaxCellWidth. The
// first column is always included, clipped if necessary.
func (tv *TableView) ColumnLayout() []ColumnSpan {
	width := tv.viewport.VisibleColumns()
	if tv.table.ColumnCount() == 0 || width <= 0 {
		return nil
	}

	var spans []ColumnSpan
	x := 0
	for col := tv.viewport.ColumnOffset(); col < tv.table.ColumnCount() && x < width; col++ {
		w := tv.columnWidth(col)
		if x+w > width {
			if len(spans) > 0 {
				break
			}
			spans = append(spans, ColumnSpan{Column: col, X: x, Width: width - x, Clipped: true})
			break
		}
		spans = append(spans, ColumnSpan{Column: col, X: x, Width: w})
		x += w + 1
	}
	return spans
}

// columnWidth measures col over the header and the rows in view.
func (tv *TableView) columnWidth(col int) int {
	w := 0
	if tv.ShowHeaders {
		w = DisplayWidth(tv.HeaderText(col))
	}
	first := tv.viewport.RowOffset()
	last := min(first+tv.viewport.VisibleRows(), tv.table.RowCount())
	for row := first; row < last; row++ {
		w = max(w, DisplayWidth(tv.CellText(row, col)))
	}

	st := tv.ColumnStyle(col)
	if st.MinWidth > 0 {
		w = max(w, st.MinWidth)
	}
	if st.MaxWidth > 0 {
		w = min(w, st.MaxWidth)
	}
	if tv.MaxCellWidth > 0 {
		w = min(w, tv.MaxCellWidth)
	}
	return max(w, 1)
}

// columnsInView counts the columns drawn whole at the current offset. A
// lone clipped column still counts as one so scrolling can make progress.
func (tv *TableView) columnsInView() int {
	n := 0
	for _, s := range tv.ColumnLayout() {
		if !s.Clipped {
			n++
		}
	}
	return max(n, 1)
}

// ScreenToCell maps table-local screen coordinates to a cell. A click on a
// column rule belongs to the column on its left. ok is false for the
// header lines and for space beyond the data.
func (tv *TableView) ScreenToCell(x, y int) (row, col int, ok bool) {
	dataY := y - tv.HeaderHeight()
	if x < 0 || dataY < 0 || dataY >= tv.viewport.VisibleRows() {
		return 0, 0, false
	}
	row = tv.viewport.RowOffset() + dataY
	if row >= tv.table.RowCount() {
		return 0, 0, false
	}
	for _, s := range tv.ColumnLayout() {
		if x >= s.X && x <= s.End() {
			return row, s.Column, true
		}
	}
	return 0, 0, false
}

// HeaderToColumn maps a click on the header line to a column.
func (tv *TableView) HeaderToColumn(x, y int) (col int, ok bool) {
	if !tv.ShowHeaders || y != 0 || x < 0 {
		return 0, false
	}
	for _, s := range tv.ColumnLayout() {
		if x >= s.X && x <= s.End() {
			return s.Column, true
		}
	}
	return 0, false
}

// CellToScreen is the inverse of ScreenToCell: the table-local position of
// a cell's first character. ok is false when the cell is off-screen.
func (tv *TableView) CellToScreen(row, col int) (x, y int, ok bool) {
	if !tv.viewport.RowVisible(row) || row >= tv.table.RowCount() {
		return 0, 0, false
	}
	for _, s := range tv.ColumnLayout() {
		if s.Column == col {
			return s.X, row - tv.viewport.RowOffset() + tv.HeaderHeight(), true
		}
	}
	return 0, 0, false
}
