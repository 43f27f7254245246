package tableview

// SelectedCellChangedEvent reports a change of the active cell. The axis
// that did not change carries its current value in both Old and New.
type SelectedCellChangedEvent struct {
	OldRow, OldCol int
	NewRow, NewCol int
}

type subscriber struct {
	id int
	fn func(SelectedCellChangedEvent)
}

// Selection tracks the active cell and an optional anchor. With
// multi-select on and an anchor present, the selected region is the
// rectangle between the two; otherwise it is the active cell alone.
//
// Coordinates are accepted as given; bounds are the caller's concern.
type Selection struct {
	row, col             int
	anchorRow, anchorCol int
	hasAnchor            bool
	multiSelect          bool

	subs   []subscriber
	nextID int
}

// ── Active cell ──

func (s *Selection) SelectedRow() int    { return s.row }
func (s *Selection) SelectedColumn() int { return s.col }

// SetSelectedRow moves the active cell to row. Assigning the current value
// does nothing and notifies no one.
func (s *Selection) SetSelectedRow(row int) {
	if row == s.row {
		return
	}
	ev := SelectedCellChangedEvent{OldRow: s.row, OldCol: s.col, NewRow: row, NewCol: s.col}
	s.row = row
	s.emit(ev)
}

// SetSelectedColumn moves the active cell to col. Assigning the current
// value does nothing and notifies no one.
func (s *Selection) SetSelectedColumn(col int) {
	if col == s.col {
		return
	}
	ev := SelectedCellChangedEvent{OldRow: s.row, OldCol: s.col, NewRow: s.row, NewCol: col}
	s.col = col
	s.emit(ev)
}

// SetSelection is the gesture primitive. Without extend it starts a fresh
// selection with the anchor on (row, column). With extend the anchor stays
// where the last non-extending call put it and only the active cell moves;
// if no anchor exists yet, the current active cell becomes the anchor.
// With multi-select off only the active cell moves.
//
// Column moves before row, so a diagonal move notifies twice.
func (s *Selection) SetSelection(column, row int, extend bool) {
	if s.multiSelect {
		switch {
		case !extend:
			s.anchorRow, s.anchorCol, s.hasAnchor = row, column, true
		case !s.hasAnchor:
			s.anchorRow, s.anchorCol, s.hasAnchor = s.row, s.col, true
		}
	}
	s.SetSelectedColumn(column)
	s.SetSelectedRow(row)
}

// ── Anchor and mode ──

// Anchor returns the anchor cell; ok is false when none is set.
func (s *Selection) Anchor() (row, col int, ok bool) {
	return s.anchorRow, s.anchorCol, s.hasAnchor
}

// SetAnchor places the anchor explicitly without moving the active cell.
func (s *Selection) SetAnchor(row, col int) {
	s.anchorRow, s.anchorCol, s.hasAnchor = row, col, true
}

// ClearAnchor collapses the region back to the active cell.
func (s *Selection) ClearAnchor() {
	s.anchorRow, s.anchorCol, s.hasAnchor = 0, 0, false
}

func (s *Selection) MultiSelect() bool { return s.multiSelect }

// SetMultiSelect toggles rectangular selection. Turning it off drops the
// anchor so that a later re-enable starts from a single cell.
func (s *Selection) SetMultiSelect(on bool) {
	s.multiSelect = on
	if !on {
		s.ClearAnchor()
	}
}

// Reset returns the active cell to (0, 0) and clears the anchor, as done
// when a new dataset is installed.
func (s *Selection) Reset() {
	s.ClearAnchor()
	s.SetSelectedColumn(0)
	s.SetSelectedRow(0)
}

// ── Queries ──

// Region returns the normalized selected rectangle.
func (s *Selection) Region() Region {
	if s.multiSelect && s.hasAnchor {
		return NormalizeRegion(s.row, s.col, s.anchorRow, s.anchorCol)
	}
	return CellRegion(s.row, s.col)
}

// IsSelected reports whether (column, row) lies in the selected region.
func (s *Selection) IsSelected(column, row int) bool {
	return s.Region().Contains(row, column)
}

// ── Notifications ──

// Subscribe registers fn for SelectedCellChanged notifications. Callbacks
// run synchronously, in subscription order, before the setter returns.
// The returned function removes the subscription.
func (s *Selection) Subscribe(fn func(SelectedCellChangedEvent)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Selection) emit(ev SelectedCellChangedEvent) {
	// Snapshot so callbacks may subscribe or unsubscribe mid-delivery.
	subs := s.subs
	for _, sub := range subs {
		sub.fn(ev)
	}
}
