package tableview

import "testing"

func multiSelection() *Selection {
	s := &Selection{}
	s.SetMultiSelect(true)
	return s
}

// ── Notifications ──

// Re-assigning the current value is silent; a real change fires once.
func TestSelectedCellChangedNotFiredForSameValue(t *testing.T) {
	var s Selection
	calls := 0
	s.Subscribe(func(SelectedCellChangedEvent) { calls++ })

	s.SetSelectedColumn(0)
	s.SetSelectedRow(0)
	if calls != 0 {
		t.Fatalf("expected no notification, got %d", calls)
	}

	s.SetSelectedColumn(10)
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
	s.SetSelectedColumn(10)
	if calls != 1 {
		t.Fatalf("repeat assignment fired again: %d", calls)
	}
}

func TestSelectedCellChangedColumnIndexes(t *testing.T) {
	var s Selection
	var got []SelectedCellChangedEvent
	s.Subscribe(func(e SelectedCellChangedEvent) { got = append(got, e) })

	s.SetSelectedColumn(10)
	want := SelectedCellChangedEvent{OldRow: 0, OldCol: 0, NewRow: 0, NewCol: 10}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected [%+v], got %+v", want, got)
	}
}

func TestSelectedCellChangedRowIndexes(t *testing.T) {
	var s Selection
	s.SetSelectedColumn(4)
	var got []SelectedCellChangedEvent
	s.Subscribe(func(e SelectedCellChangedEvent) { got = append(got, e) })

	s.SetSelectedRow(10)
	want := SelectedCellChangedEvent{OldRow: 0, OldCol: 4, NewRow: 10, NewCol: 4}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected [%+v], got %+v", want, got)
	}
}

func TestSetSelectionDiagonalNotifiesPerAxis(t *testing.T) {
	var s Selection
	var got []SelectedCellChangedEvent
	s.Subscribe(func(e SelectedCellChangedEvent) { got = append(got, e) })

	s.SetSelection(2, 3, false)
	want := []SelectedCellChangedEvent{
		{OldRow: 0, OldCol: 0, NewRow: 0, NewCol: 2},
		{OldRow: 0, OldCol: 2, NewRow: 3, NewCol: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSubscribersRunInOrder(t *testing.T) {
	var s Selection
	var order []int
	for i := range 3 {
		s.Subscribe(func(SelectedCellChangedEvent) { order = append(order, i) })
	}
	s.SetSelectedRow(1)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("expected [0 1 2], got %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	var s Selection
	a, b := 0, 0
	unsubA := s.Subscribe(func(SelectedCellChangedEvent) { a++ })
	s.Subscribe(func(SelectedCellChangedEvent) { b++ })

	s.SetSelectedRow(1)
	unsubA()
	unsubA()
	s.SetSelectedRow(2)

	if a != 1 || b != 2 {
		t.Fatalf("expected a=1 b=2, got a=%d b=%d", a, b)
	}
}

func TestReentrantWriteSettles(t *testing.T) {
	var s Selection
	calls := 0
	s.Subscribe(func(e SelectedCellChangedEvent) {
		calls++
		// Snap every row to an even value; the guarded setter stops the
		// recursion once the value is stable.
		if e.NewRow%2 != 0 {
			s.SetSelectedRow(e.NewRow + 1)
		}
	})
	s.SetSelectedRow(3)
	if s.SelectedRow() != 4 {
		t.Fatalf("expected row 4, got %d", s.SelectedRow())
	}
	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}
}

// ── Regions ──

// Three-cell vertical region.
func TestIsSelectedVertical(t *testing.T) {
	s := multiSelection()
	s.SetSelection(1, 1, false)
	s.SetSelection(1, 3, true)

	for row := 0; row <= 4; row++ {
		for col := 0; col <= 2; col++ {
			want := col == 1 && row >= 1 && row <= 3
			if got := s.IsSelected(col, row); got != want {
				t.Errorf("IsSelected(%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

// Two-cell horizontal region.
func TestIsSelectedHorizontal(t *testing.T) {
	s := multiSelection()
	s.SetSelection(1, 0, false)
	s.SetSelection(2, 0, true)

	for row := 0; row <= 1; row++ {
		for col := 0; col <= 3; col++ {
			want := row == 0 && (col == 1 || col == 2)
			if got := s.IsSelected(col, row); got != want {
				t.Errorf("IsSelected(%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

// 2x2 box.
func TestIsSelectedBox(t *testing.T) {
	s := multiSelection()
	s.SetSelection(0, 0, false)
	s.SetSelection(1, 1, true)

	for row := 0; row <= 2; row++ {
		for col := 0; col <= 2; col++ {
			want := col <= 1 && row <= 1
			if got := s.IsSelected(col, row); got != want {
				t.Errorf("IsSelected(%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

func TestIsSelectedAllCornerOrders(t *testing.T) {
	corners := []struct{ anchorCol, anchorRow, activeCol, activeRow int }{
		{2, 2, 4, 5}, // anchor top-left
		{4, 5, 2, 2}, // anchor bottom-right
		{4, 2, 2, 5}, // anchor top-right
		{2, 5, 4, 2}, // anchor bottom-left
	}
	for _, c := range corners {
		s := multiSelection()
		s.SetSelection(c.anchorCol, c.anchorRow, false)
		s.SetSelection(c.activeCol, c.activeRow, true)

		want := Region{RowLo: 2, RowHi: 5, ColLo: 2, ColHi: 4}
		if r := s.Region(); r != want {
			t.Errorf("corners %+v: expected %+v, got %+v", c, want, r)
		}
		if !s.IsSelected(3, 4) || s.IsSelected(1, 4) || s.IsSelected(3, 6) {
			t.Errorf("corners %+v: membership wrong", c)
		}
	}
}

func TestExtendToSamePointIsSingleCell(t *testing.T) {
	s := multiSelection()
	s.SetSelection(3, 4, false)
	s.SetSelection(3, 4, true)
	if r := s.Region(); r != CellRegion(4, 3) {
		t.Fatalf("expected 1x1 at (4,3), got %+v", r)
	}
}

func TestExtendWithoutAnchorUsesActiveCell(t *testing.T) {
	s := multiSelection()
	s.SetSelectedRow(2)
	s.SetSelectedColumn(1)

	s.SetSelection(3, 4, true)
	row, col, ok := s.Anchor()
	if !ok || row != 2 || col != 1 {
		t.Fatalf("expected anchor (2,1), got (%d,%d) ok=%v", row, col, ok)
	}
	if r := s.Region(); r != (Region{RowLo: 2, RowHi: 4, ColLo: 1, ColHi: 3}) {
		t.Fatalf("unexpected region %+v", r)
	}
}

func TestNewGestureReplacesAnchor(t *testing.T) {
	s := multiSelection()
	s.SetSelection(0, 0, false)
	s.SetSelection(2, 2, true)
	s.SetSelection(5, 5, false)
	if r := s.Region(); r != CellRegion(5, 5) {
		t.Fatalf("non-extending call must start fresh, got %+v", r)
	}
}

func TestMultiSelectOffIgnoresAnchor(t *testing.T) {
	var s Selection
	s.SetSelection(0, 0, false)
	s.SetSelection(2, 2, true)
	if r := s.Region(); r != CellRegion(2, 2) {
		t.Fatalf("single select: expected 1x1 at (2,2), got %+v", r)
	}
	if s.IsSelected(0, 0) || !s.IsSelected(2, 2) {
		t.Error("single select membership wrong")
	}

	m := multiSelection()
	m.SetSelection(0, 0, false)
	m.SetSelection(2, 2, true)
	m.SetMultiSelect(false)
	if m.IsSelected(1, 1) {
		t.Error("disabling multi-select must collapse the region")
	}
	if _, _, ok := m.Anchor(); ok {
		t.Error("disabling multi-select must drop the anchor")
	}
}

func TestSelectionReset(t *testing.T) {
	s := multiSelection()
	s.SetSelection(1, 1, false)
	s.SetSelection(4, 6, true)

	var got []SelectedCellChangedEvent
	s.Subscribe(func(e SelectedCellChangedEvent) { got = append(got, e) })
	s.Reset()

	if s.SelectedRow() != 0 || s.SelectedColumn() != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", s.SelectedRow(), s.SelectedColumn())
	}
	if _, _, ok := s.Anchor(); ok {
		t.Error("reset must clear the anchor")
	}
	if len(got) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(got))
	}
}
