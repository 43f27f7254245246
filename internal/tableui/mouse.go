package tableui

import (
	tea "charm.land/bubbletea/v2"
)

// handleMouse maps mouse events inside the table region onto the
// selection. Clicks select, shift+click and drags extend, the wheel
// scrolls without moving the selection.
func handleMouse(m Model, msg tea.MouseMsg) Model {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if _, ok := msg.(tea.MouseReleaseMsg); ok {
		m.dragging = false
		return m
	}

	region, ok := m.layout().Hit(mouse.X, mouse.Y)
	if !ok || region.Name != regionTable {
		return m
	}
	p := region.Local(mouse.X, mouse.Y)
	tv := m.Table

	switch msg.(type) {
	case tea.MouseWheelMsg:
		shift := mouse.Mod.Contains(tea.ModShift)
		switch {
		case mouse.Button == tea.MouseWheelUp && shift,
			mouse.Button == tea.MouseWheelLeft:
			tv.Viewport().ScrollBy(0, -wheelColsStep)
		case mouse.Button == tea.MouseWheelDown && shift,
			mouse.Button == tea.MouseWheelRight:
			tv.Viewport().ScrollBy(0, wheelColsStep)
		case mouse.Button == tea.MouseWheelUp:
			tv.Viewport().ScrollBy(-wheelStep, 0)
		case mouse.Button == tea.MouseWheelDown:
			tv.Viewport().ScrollBy(wheelStep, 0)
		}

	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return m
		}
		extend := mouse.Mod.Contains(tea.ModShift)
		if row, col, ok := tv.ScreenToCell(p.X, p.Y); ok {
			tv.SetSelection(col, row, extend)
			tv.EnsureSelectedCellIsVisible()
			m.dragging = true
			return m
		}
		if col, ok := tv.HeaderToColumn(p.X, p.Y); ok {
			tv.SetSelection(col, tv.SelectedRow(), extend)
			tv.EnsureSelectedCellIsVisible()
		}

	case tea.MouseMotionMsg:
		if !m.dragging {
			return m
		}
		if row, col, ok := tv.ScreenToCell(p.X, p.Y); ok {
			tv.SetSelection(col, row, true)
			tv.EnsureSelectedCellIsVisible()
		}
	}

	return m
}
