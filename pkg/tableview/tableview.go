package tableview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/wesen/tableview/pkg/tabledata"
)

// ColumnStyle customizes how one column is laid out and printed.
type ColumnStyle struct {
	Alignment Alignment
	// MinWidth and MaxWidth bound the computed column width; 0 means no
	// bound.
	MinWidth int
	MaxWidth int
	// Format turns a raw cell value into display text. nil uses
	// tabledata.Text.
	Format func(v any) string
}

// CellRef addresses one cell.
type CellRef struct {
	Row, Col int
}

// TableView binds a Viewport and a Selection to a dataset. Installing a
// dataset resets both; selection moves made through the TableView are
// clamped to the table, unlike moves made on the bare Selection.
type TableView struct {
	table     tabledata.Dataset
	viewport  Viewport
	selection Selection

	// FullRowSelect makes every column of a selected row count as
	// selected.
	FullRowSelect bool
	// ShowHeaders reserves a header line and an underline above the rows.
	ShowHeaders bool
	// MaxCellWidth caps every column's width; 0 means no cap.
	MaxCellWidth int

	styles map[string]ColumnStyle
}

// New creates a TableView over an empty dataset with headers shown.
func New() *TableView {
	return &TableView{
		table:       tabledata.Empty{},
		ShowHeaders: true,
		styles:      make(map[string]ColumnStyle),
	}
}

// ── Dataset ──

// Table returns the installed dataset, never nil.
func (tv *TableView) Table() tabledata.Dataset { return tv.table }

// SetTable swaps the dataset. Offsets go back to (0, 0) and the selection
// collapses to cell (0, 0). A nil dataset installs an empty one.
func (tv *TableView) SetTable(ds tabledata.Dataset) error {
	if ds == nil {
		ds = tabledata.Empty{}
	}
	if err := tv.viewport.SetDataset(ds.RowCount(), ds.ColumnCount()); err != nil {
		return fmt.Errorf("set table: %w", err)
	}
	tv.table = ds
	tv.selection.Reset()
	return nil
}

// Refresh re-reads the dataset's dimensions after the caller mutated it
// in place. Offsets and selection are clamped, not reset.
func (tv *TableView) Refresh() error {
	rows, cols := tv.table.RowCount(), tv.table.ColumnCount()
	if rows < 0 || cols < 0 {
		return fmt.Errorf("refresh %dx%d: %w", rows, cols, ErrNegativeDimension)
	}
	ro, co := tv.viewport.RowOffset(), tv.viewport.ColumnOffset()
	if err := tv.viewport.SetDataset(rows, cols); err != nil {
		return err
	}
	tv.viewport.SetRowOffset(ro)
	tv.viewport.SetColumnOffset(co)
	tv.EnsureValidSelection()
	return nil
}

func (tv *TableView) empty() bool {
	return tv.table.RowCount() == 0 || tv.table.ColumnCount() == 0
}

// ── Viewport ──

func (tv *TableView) Viewport() *Viewport { return &tv.viewport }

func (tv *TableView) RowOffset() int        { return tv.viewport.RowOffset() }
func (tv *TableView) ColumnOffset() int     { return tv.viewport.ColumnOffset() }
func (tv *TableView) SetRowOffset(v int)    { tv.viewport.SetRowOffset(v) }
func (tv *TableView) SetColumnOffset(v int) { tv.viewport.SetColumnOffset(v) }

// EnsureValidScrollOffsets re-clamps both offsets against the table.
func (tv *TableView) EnsureValidScrollOffsets() { tv.viewport.EnsureValidScrollOffsets() }

// SetVisibleArea records the size of the drawing region in terminal cells,
// header lines included.
func (tv *TableView) SetVisibleArea(height, width int) error {
	if height < 0 || width < 0 {
		return fmt.Errorf("set visible area %dx%d: %w", height, width, ErrNegativeDimension)
	}
	return tv.viewport.SetVisibleArea(max(height-tv.HeaderHeight(), 0), width)
}

// HeaderHeight is the number of lines above the first data row.
func (tv *TableView) HeaderHeight() int {
	if tv.ShowHeaders {
		return 2
	}
	return 0
}

// ── Selection ──

func (tv *TableView) Selection() *Selection { return &tv.selection }

func (tv *TableView) SelectedRow() int    { return tv.selection.SelectedRow() }
func (tv *TableView) SelectedColumn() int { return tv.selection.SelectedColumn() }

func (tv *TableView) SetSelectedRow(row int) {
	tv.selection.SetSelectedRow(clampIndex(row, tv.table.RowCount()))
}

func (tv *TableView) SetSelectedColumn(col int) {
	tv.selection.SetSelectedColumn(clampIndex(col, tv.table.ColumnCount()))
}

func (tv *TableView) MultiSelect() bool      { return tv.selection.MultiSelect() }
func (tv *TableView) SetMultiSelect(on bool) { tv.selection.SetMultiSelect(on) }

// SetSelection clamps (column, row) into the table and forwards to
// Selection.SetSelection.
func (tv *TableView) SetSelection(column, row int, extend bool) {
	tv.selection.SetSelection(
		clampIndex(column, tv.table.ColumnCount()),
		clampIndex(row, tv.table.RowCount()),
		extend,
	)
}

// EnsureValidSelection clamps the active cell and the anchor into the
// table.
func (tv *TableView) EnsureValidSelection() {
	rows, cols := tv.table.RowCount(), tv.table.ColumnCount()
	if ar, ac, ok := tv.selection.Anchor(); ok {
		tv.selection.SetAnchor(clampIndex(ar, rows), clampIndex(ac, cols))
	}
	tv.selection.SetSelectedColumn(clampIndex(tv.selection.SelectedColumn(), cols))
	tv.selection.SetSelectedRow(clampIndex(tv.selection.SelectedRow(), rows))
}

// OnSelectedCellChanged subscribes fn to active-cell changes.
func (tv *TableView) OnSelectedCellChanged(fn func(SelectedCellChangedEvent)) (unsubscribe func()) {
	return tv.selection.Subscribe(fn)
}

// SelectedRegion is the normalized selection clipped to the table. ok is
// false for an empty table.
func (tv *TableView) SelectedRegion() (Region, bool) {
	r := tv.selection.Region()
	if tv.FullRowSelect {
		r.ColLo, r.ColHi = 0, tv.table.ColumnCount()-1
	}
	return r.Clip(tv.table.RowCount(), tv.table.ColumnCount())
}

// IsSelected reports whether (column, row) is selected, honoring
// FullRowSelect.
func (tv *TableView) IsSelected(column, row int) bool {
	if tv.FullRowSelect {
		r := tv.selection.Region()
		return r.RowLo <= row && row <= r.RowHi && column >= 0 && column < tv.table.ColumnCount()
	}
	return tv.selection.IsSelected(column, row)
}

// SelectedCells lists every selected cell in row-major order.
func (tv *TableView) SelectedCells() []CellRef {
	r, ok := tv.SelectedRegion()
	if !ok {
		return nil
	}
	cells := make([]CellRef, 0, r.Rows()*r.Cols())
	for row := r.RowLo; row <= r.RowHi; row++ {
		for col := r.ColLo; col <= r.ColHi; col++ {
			cells = append(cells, CellRef{Row: row, Col: col})
		}
	}
	return cells
}

// ── Column styles and cell text ──

// SetColumnStyle attaches st to the column named name.
func (tv *TableView) SetColumnStyle(name string, st ColumnStyle) {
	tv.styles[name] = st
}

// ColumnStyle returns the style of col; the zero style when none is set.
func (tv *TableView) ColumnStyle(col int) ColumnStyle {
	return tv.styles[tv.table.ColumnName(col)]
}

// CellText is the single-line display text of a cell: formatted, with
// escape sequences stripped and line breaks and tabs turned into spaces.
func (tv *TableView) CellText(row, col int) string {
	v := tv.table.Cell(row, col)
	var s string
	if f := tv.ColumnStyle(col).Format; f != nil {
		s = f(v)
	} else {
		s = tabledata.Text(v)
	}
	return sanitize(s)
}

// HeaderText is the sanitized header of col.
func (tv *TableView) HeaderText(col int) string {
	return sanitize(tv.table.ColumnName(col))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func sanitize(s string) string {
	return ansi.Strip(lineBreaks.Replace(s))
}
