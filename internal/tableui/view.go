package tableui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/tableview/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	tableRegion := layout.Get(regionTable)

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(tableRegion, bgStyle, "table-bg", 0),
		buildTableLayer(m.Table, tableRegion.Rect),
		tealayout.BarLayer(regionToolbar, m.toolbarText(), m.Width, 0, toolbarStyle),
		m.footerLayer(),
	}
	layers = append(layers, buildPanelLayers(m, layout.Get(regionPanel))...)
	if m.gotoOpen {
		layers = append(layers, buildGotoLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) toolbarText() string {
	ds := m.Table.Table()
	return fmt.Sprintf(" TABLEVIEW  │  %s  │  %d×%d  │  [g]oto  [m]ulti  [f]ull-row  │  [q]uit",
		m.source, ds.RowCount(), ds.ColumnCount())
}

// footerLayer shows offsets and sizes, or the last error when there is one.
func (m Model) footerLayer() *lipgloss.Layer {
	y := m.Height - 1
	if m.lastErr != "" {
		return tealayout.BarLayer(regionFooter, " ! "+m.lastErr, m.Width, y, footerErrStyle)
	}
	tv := m.Table
	vp := tv.Viewport()
	text := fmt.Sprintf(" Offset: r%d c%d  View: %d rows %d cols  Mouse: (%d,%d)",
		vp.RowOffset(), vp.ColumnOffset(), vp.VisibleRows(), len(tv.ColumnLayout()), m.MouseX, m.MouseY)
	if m.status != "" {
		text += "  │  " + m.status
	}
	return tealayout.BarLayer(regionFooter, text, m.Width, y, footerStyle)
}
