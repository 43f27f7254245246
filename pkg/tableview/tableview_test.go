package tableview

import (
	"fmt"
	"testing"

	"github.com/wesen/tableview/pkg/tabledata"
)

func newView(t *testing.T, ds tabledata.Dataset, height, width int) *TableView {
	t.Helper()
	tv := New()
	if err := tv.SetTable(ds); err != nil {
		t.Fatalf("SetTable: %v", err)
	}
	if err := tv.SetVisibleArea(height, width); err != nil {
		t.Fatalf("SetVisibleArea: %v", err)
	}
	return tv
}

// ── Dataset installation ──

func TestTableViewLoadSmallerTable(t *testing.T) {
	tv := newView(t, tabledata.Build(25, 50), 12, 25)

	tv.SetRowOffset(20)
	tv.SetColumnOffset(10)
	tv.EnsureValidScrollOffsets()
	if tv.RowOffset() != 20 || tv.ColumnOffset() != 10 {
		t.Fatalf("expected (20,10), got (%d,%d)", tv.RowOffset(), tv.ColumnOffset())
	}

	if err := tv.SetTable(tabledata.Build(2, 2)); err != nil {
		t.Fatalf("SetTable: %v", err)
	}
	if tv.RowOffset() != 0 || tv.ColumnOffset() != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", tv.RowOffset(), tv.ColumnOffset())
	}

	tv.SetRowOffset(20)
	tv.SetColumnOffset(10)
	if tv.RowOffset() != 1 || tv.ColumnOffset() != 1 {
		t.Fatalf("expected (1,1), got (%d,%d)", tv.RowOffset(), tv.ColumnOffset())
	}
}

func TestSetTableResetsSelection(t *testing.T) {
	tv := newView(t, tabledata.Build(5, 5), 10, 40)
	tv.SetMultiSelect(true)
	tv.SetSelection(1, 1, false)
	tv.SetSelection(3, 4, true)

	var got []SelectedCellChangedEvent
	tv.OnSelectedCellChanged(func(e SelectedCellChangedEvent) { got = append(got, e) })

	if err := tv.SetTable(tabledata.Build(2, 2)); err != nil {
		t.Fatalf("SetTable: %v", err)
	}
	if tv.SelectedRow() != 0 || tv.SelectedColumn() != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	if len(got) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(got))
	}
	if cells := tv.SelectedCells(); len(cells) != 1 {
		t.Errorf("expected a single selected cell, got %v", cells)
	}
}

func TestSetTableNil(t *testing.T) {
	tv := New()
	if err := tv.SetTable(nil); err != nil {
		t.Fatalf("SetTable(nil): %v", err)
	}
	if tv.Table().RowCount() != 0 {
		t.Fatal("expected empty table")
	}
	if _, ok := tv.SelectedRegion(); ok {
		t.Error("empty table must have no selected region")
	}
	tv.ChangeSelectionByOffset(1, 1, false)
	tv.SelectAll()
	if tv.SelectedRow() != 0 || tv.SelectedColumn() != 0 {
		t.Error("moves on an empty table must be no-ops")
	}
}

func TestRefreshClampsAfterShrink(t *testing.T) {
	tbl := tabledata.Build(2, 10)
	tv := newView(t, tbl, 5, 40)
	tv.SetSelection(1, 9, false)
	tv.SetRowOffset(8)

	for range 5 {
		tbl.RemoveRow(0)
	}
	if err := tv.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if tv.SelectedRow() != 4 || tv.SelectedColumn() != 1 {
		t.Errorf("expected selection (4,1), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	if tv.RowOffset() != 4 {
		t.Errorf("expected row offset 4, got %d", tv.RowOffset())
	}
}

func TestClampedSetters(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 50), 10, 40)
	tv.SetSelectedRow(100)
	tv.SetSelectedColumn(-4)
	if tv.SelectedRow() != 49 || tv.SelectedColumn() != 0 {
		t.Fatalf("expected (49,0), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	tv.SetSelection(7, -1, false)
	if tv.SelectedRow() != 0 || tv.SelectedColumn() != 2 {
		t.Fatalf("expected (0,2), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
}

func TestSetVisibleAreaReservesHeader(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 50), 10, 40)
	if tv.Viewport().VisibleRows() != 8 {
		t.Errorf("expected 8 data rows, got %d", tv.Viewport().VisibleRows())
	}
	tv.ShowHeaders = false
	_ = tv.SetVisibleArea(10, 40)
	if tv.Viewport().VisibleRows() != 10 {
		t.Errorf("expected 10 data rows, got %d", tv.Viewport().VisibleRows())
	}
	tv.ShowHeaders = true
	_ = tv.SetVisibleArea(1, 40)
	if tv.Viewport().VisibleRows() != 0 {
		t.Errorf("expected 0 data rows, got %d", tv.Viewport().VisibleRows())
	}
}

// ── Layout ──

func TestColumnLayout(t *testing.T) {
	tests := []struct {
		width int
		want  []ColumnSpan
	}{
		{25, []ColumnSpan{{Column: 0, X: 0, Width: 4}, {Column: 1, X: 5, Width: 4}, {Column: 2, X: 10, Width: 4}}},
		{9, []ColumnSpan{{Column: 0, X: 0, Width: 4}, {Column: 1, X: 5, Width: 4}}},
		{7, []ColumnSpan{{Column: 0, X: 0, Width: 4}}},
		{3, []ColumnSpan{{Column: 0, X: 0, Width: 3, Clipped: true}}},
		{0, nil},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("width=%d", tc.width), func(t *testing.T) {
			tv := newView(t, tabledata.Build(3, 5), 10, tc.width)
			got := tv.ColumnLayout()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d spans, got %d: %+v", len(tc.want), len(got), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("span %d: expected %+v, got %+v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestColumnLayoutFollowsOffset(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 5), 10, 25)
	tv.SetColumnOffset(2)
	spans := tv.ColumnLayout()
	if len(spans) != 1 || spans[0].Column != 2 || spans[0].X != 0 {
		t.Fatalf("expected column 2 at x=0, got %+v", spans)
	}
}

func TestColumnWidthStyles(t *testing.T) {
	tbl := tabledata.New("name", "qty")
	tbl.AddRow("watermelon", 3)
	tbl.AddRow("fig", 12)
	tv := newView(t, tbl, 10, 80)

	tv.SetColumnStyle("name", ColumnStyle{MaxWidth: 5})
	tv.SetColumnStyle("qty", ColumnStyle{
		MinWidth:  6,
		Alignment: AlignRight,
		Format:    func(v any) string { return fmt.Sprintf("%03d", v) },
	})

	spans := tv.ColumnLayout()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", spans)
	}
	if spans[0].Width != 5 {
		t.Errorf("name: expected width 5, got %d", spans[0].Width)
	}
	if spans[1].Width != 6 || spans[1].X != 6 {
		t.Errorf("qty: expected x=6 width=6, got %+v", spans[1])
	}
	if got := tv.CellText(0, 1); got != "003" {
		t.Errorf("expected formatted \"003\", got %q", got)
	}
	if tv.ColumnStyle(1).Alignment != AlignRight {
		t.Error("expected right alignment for qty")
	}

	tv.MaxCellWidth = 4
	if w := tv.ColumnLayout()[1].Width; w != 4 {
		t.Errorf("MaxCellWidth: expected 4, got %d", w)
	}
}

func TestCellTextSanitized(t *testing.T) {
	tbl := tabledata.New("a\tb")
	tbl.AddRow("line1\nline2\r\nend")
	tbl.AddRow("\x1b[31mred\x1b[0m")
	tbl.AddRow(nil)
	tv := newView(t, tbl, 10, 80)

	tests := []struct {
		row  int
		want string
	}{
		{0, "line1 line2 end"},
		{1, "red"},
		{2, ""},
	}
	for _, tc := range tests {
		if got := tv.CellText(tc.row, 0); got != tc.want {
			t.Errorf("row %d: expected %q, got %q", tc.row, tc.want, got)
		}
	}
	if got := tv.HeaderText(0); got != "a b" {
		t.Errorf("header: expected %q, got %q", "a b", got)
	}
}

func TestScreenToCell(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 5), 10, 25)

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"first cell", 0, 2, 0, 0, true},
		{"second column", 6, 2, 0, 1, true},
		{"rule belongs left", 4, 3, 1, 0, true},
		{"header", 0, 0, 0, 0, false},
		{"underline", 0, 1, 0, 0, false},
		{"below data", 0, 7, 0, 0, false},
		{"right of columns", 20, 2, 0, 0, false},
		{"negative x", -1, 2, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, col, ok := tv.ScreenToCell(tc.x, tc.y)
			if ok != tc.ok || row != tc.row || col != tc.col {
				t.Errorf("ScreenToCell(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
					tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
			}
		})
	}
}

func TestScreenToCellRoundTrip(t *testing.T) {
	tv := newView(t, tabledata.Build(4, 30), 8, 30)
	tv.SetRowOffset(7)
	tv.SetColumnOffset(1)
	for row := 7; row < 13; row++ {
		for col := 1; col < 4; col++ {
			x, y, ok := tv.CellToScreen(row, col)
			if !ok {
				t.Fatalf("cell (%d,%d) expected on screen", row, col)
			}
			r, c, ok := tv.ScreenToCell(x, y)
			if !ok || r != row || c != col {
				t.Errorf("round trip (%d,%d) -> (%d,%d) -> (%d,%d,%v)", row, col, x, y, r, c, ok)
			}
		}
	}
	if _, _, ok := tv.CellToScreen(6, 1); ok {
		t.Error("row above offset must be off-screen")
	}
	if _, _, ok := tv.CellToScreen(7, 0); ok {
		t.Error("column left of offset must be off-screen")
	}
}

func TestHeaderToColumn(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 5), 10, 25)
	if col, ok := tv.HeaderToColumn(11, 0); !ok || col != 2 {
		t.Errorf("expected column 2, got %d ok=%v", col, ok)
	}
	if _, ok := tv.HeaderToColumn(1, 2); ok {
		t.Error("data line must not map to a header")
	}
}

// ── Selection through the view ──

func TestFullRowSelect(t *testing.T) {
	tv := newView(t, tabledata.Build(4, 5), 10, 40)
	tv.FullRowSelect = true
	tv.SetSelection(1, 2, false)

	for col := 0; col < 4; col++ {
		if !tv.IsSelected(col, 2) {
			t.Errorf("column %d of row 2 should be selected", col)
		}
	}
	if tv.IsSelected(4, 2) || tv.IsSelected(1, 1) {
		t.Error("selection leaked outside the row")
	}
	if cells := tv.SelectedCells(); len(cells) != 4 {
		t.Errorf("expected 4 cells, got %v", cells)
	}
}

func TestSelectedCellsRowMajor(t *testing.T) {
	tv := newView(t, tabledata.Build(4, 5), 10, 40)
	tv.SetMultiSelect(true)
	tv.SetSelection(2, 3, false)
	tv.SetSelection(1, 2, true)

	want := []CellRef{{2, 1}, {2, 2}, {3, 1}, {3, 2}}
	got := tv.SelectedCells()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSelectAll(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 4), 10, 40)
	tv.SetSelection(1, 1, false)
	tv.SelectAll()
	if n := len(tv.SelectedCells()); n != 1 {
		t.Fatalf("single select: expected 1 cell, got %d", n)
	}

	tv.SetMultiSelect(true)
	tv.SelectAll()
	r, ok := tv.SelectedRegion()
	if !ok || r != (Region{RowLo: 0, RowHi: 3, ColLo: 0, ColHi: 2}) {
		t.Fatalf("expected whole table, got %+v ok=%v", r, ok)
	}
	if tv.SelectedRow() != 3 || tv.SelectedColumn() != 2 {
		t.Errorf("active cell should be bottom-right, got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
}

// ── Movement ──

func TestChangeSelectionByOffset(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 10), 20, 40)
	tv.ChangeSelectionByOffset(1, 2, false)
	if tv.SelectedRow() != 2 || tv.SelectedColumn() != 1 {
		t.Fatalf("expected (2,1), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	tv.ChangeSelectionByOffset(10, 10, false)
	if tv.SelectedRow() != 9 || tv.SelectedColumn() != 2 {
		t.Fatalf("expected clamp to (9,2), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	tv.ChangeSelectionByOffset(-10, -10, false)
	if tv.SelectedRow() != 0 || tv.SelectedColumn() != 0 {
		t.Fatalf("expected clamp to (0,0), got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
}

func TestShiftMovementExtends(t *testing.T) {
	tv := newView(t, tabledata.Build(5, 10), 20, 60)
	tv.SetMultiSelect(true)
	tv.SetSelection(1, 1, false)
	tv.ChangeSelectionByOffset(1, 0, true)
	tv.ChangeSelectionByOffset(0, 2, true)

	r, _ := tv.SelectedRegion()
	if r != (Region{RowLo: 1, RowHi: 3, ColLo: 1, ColHi: 2}) {
		t.Fatalf("unexpected region %+v", r)
	}

	tv.ChangeSelectionByOffset(1, 0, false)
	if n := len(tv.SelectedCells()); n != 1 {
		t.Errorf("plain move must collapse the region, got %d cells", n)
	}
}

func TestRowAndTableEnds(t *testing.T) {
	tv := newView(t, tabledata.Build(6, 30), 10, 80)
	tv.SetSelection(3, 4, false)

	tv.ChangeSelectionToEndOfRow(false)
	if tv.SelectedRow() != 4 || tv.SelectedColumn() != 5 {
		t.Errorf("end of row: got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	tv.ChangeSelectionToStartOfRow(false)
	if tv.SelectedRow() != 4 || tv.SelectedColumn() != 0 {
		t.Errorf("start of row: got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	tv.ChangeSelectionToEndOfTable(false)
	if tv.SelectedRow() != 29 || tv.SelectedColumn() != 5 {
		t.Errorf("end of table: got (%d,%d)", tv.SelectedRow(), tv.SelectedColumn())
	}
	if !tv.Viewport().RowVisible(29) {
		t.Errorf("last row not visible at offset %d", tv.RowOffset())
	}
	tv.ChangeSelectionToStartOfTable(false)
	if tv.SelectedRow() != 0 || tv.SelectedColumn() != 0 || tv.RowOffset() != 0 {
		t.Errorf("start of table: got (%d,%d) offset %d", tv.SelectedRow(), tv.SelectedColumn(), tv.RowOffset())
	}
}

func TestPaging(t *testing.T) {
	tv := newView(t, tabledata.Build(3, 50), 12, 40)

	tv.PageDown(false)
	if tv.SelectedRow() != 10 || tv.RowOffset() != 1 {
		t.Fatalf("page down: expected row 10 offset 1, got row %d offset %d", tv.SelectedRow(), tv.RowOffset())
	}
	tv.PageDown(false)
	if tv.SelectedRow() != 20 || tv.RowOffset() != 11 {
		t.Fatalf("page down: expected row 20 offset 11, got row %d offset %d", tv.SelectedRow(), tv.RowOffset())
	}
	tv.PageUp(false)
	if tv.SelectedRow() != 10 || tv.RowOffset() != 10 {
		t.Fatalf("page up: expected row 10 offset 10, got row %d offset %d", tv.SelectedRow(), tv.RowOffset())
	}
}

func TestEnsureSelectedCellIsVisible(t *testing.T) {
	tv := newView(t, tabledata.Build(10, 50), 7, 12)

	tv.ChangeSelectionByOffset(7, 30, false)
	if _, _, ok := tv.CellToScreen(30, 7); !ok {
		t.Fatalf("cell (30,7) off-screen at offsets (%d,%d)", tv.RowOffset(), tv.ColumnOffset())
	}

	tv.ChangeSelectionByOffset(-6, -29, false)
	if _, _, ok := tv.CellToScreen(1, 1); !ok {
		t.Fatalf("cell (1,1) off-screen at offsets (%d,%d)", tv.RowOffset(), tv.ColumnOffset())
	}
	if tv.ColumnOffset() != 1 || tv.RowOffset() != 1 {
		t.Errorf("expected offsets (1,1), got (%d,%d)", tv.RowOffset(), tv.ColumnOffset())
	}
}
