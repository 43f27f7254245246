package tableview

// Cursor movement as driven by keyboard handlers. Every move clamps the
// target into the table and then scrolls it into view.

// ChangeSelectionByOffset moves the active cell by (dCol, dRow). With
// extend the anchor stays put and the region stretches.
func (tv *TableView) ChangeSelectionByOffset(dCol, dRow int, extend bool) {
	if tv.empty() {
		return
	}
	tv.SetSelection(tv.SelectedColumn()+dCol, tv.SelectedRow()+dRow, extend)
	tv.EnsureSelectedCellIsVisible()
}

// PageUp moves the active cell up by one screen of rows.
func (tv *TableView) PageUp(extend bool) {
	tv.ChangeSelectionByOffset(0, -tv.pageRows(), extend)
}

// PageDown moves the active cell down by one screen of rows.
func (tv *TableView) PageDown(extend bool) {
	tv.ChangeSelectionByOffset(0, tv.pageRows(), extend)
}

func (tv *TableView) pageRows() int {
	return max(tv.viewport.VisibleRows(), 1)
}

// ChangeSelectionToStartOfRow moves to the first column of the current row.
func (tv *TableView) ChangeSelectionToStartOfRow(extend bool) {
	tv.moveTo(0, tv.SelectedRow(), extend)
}

// ChangeSelectionToEndOfRow moves to the last column of the current row.
func (tv *TableView) ChangeSelectionToEndOfRow(extend bool) {
	tv.moveTo(tv.table.ColumnCount()-1, tv.SelectedRow(), extend)
}

// ChangeSelectionToStartOfTable moves to the top-left cell.
func (tv *TableView) ChangeSelectionToStartOfTable(extend bool) {
	tv.moveTo(0, 0, extend)
}

// ChangeSelectionToEndOfTable moves to the bottom-right cell.
func (tv *TableView) ChangeSelectionToEndOfTable(extend bool) {
	tv.moveTo(tv.table.ColumnCount()-1, tv.table.RowCount()-1, extend)
}

func (tv *TableView) moveTo(col, row int, extend bool) {
	if tv.empty() {
		return
	}
	tv.SetSelection(col, row, extend)
	tv.EnsureSelectedCellIsVisible()
}

// SelectAll spans the whole table: the anchor goes to the top-left cell
// and the active cell to the bottom-right one. Without multi-select it
// does nothing.
func (tv *TableView) SelectAll() {
	if tv.empty() || !tv.MultiSelect() {
		return
	}
	tv.selection.SetAnchor(0, 0)
	tv.SetSelection(tv.table.ColumnCount()-1, tv.table.RowCount()-1, true)
	tv.EnsureSelectedCellIsVisible()
}

// EnsureSelectedCellIsVisible scrolls so that the active cell is on
// screen. Columns are judged with ColumnLayout, so wide columns may need
// the offset to advance more than one step.
func (tv *TableView) EnsureSelectedCellIsVisible() {
	if tv.empty() {
		return
	}
	row, col := tv.SelectedRow(), tv.SelectedColumn()
	for {
		before := tv.viewport.ColumnOffset()
		tv.viewport.EnsureCellVisible(row, col, tv.columnsInView())
		if tv.viewport.ColumnOffset() == before {
			return
		}
	}
}
