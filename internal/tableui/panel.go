package tableui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/tableview/pkg/tabledata"
	"github.com/wesen/tableview/pkg/tealayout"
)

var helpLines = [][2]string{
	{"←↑↓→", "move"},
	{"shift+←↑↓→", "extend"},
	{"home/end", "row ends"},
	{"ctrl+home/end", "table ends"},
	{"pgup/pgdn", "page"},
	{"ctrl+a", "select all"},
	{"m / f / H", "multi, row, header"},
	{"g", "go to cell"},
	{"r / ctrl+s", "reload, save"},
	{"q", "quit"},
}

// panelLines builds the side panel content for a panel of the given
// height: selection details on top, keys at the bottom and as many recent
// events as fit in between.
func (m Model) panelLines(width, height int) []string {
	tv := m.Table
	sep := panelSepStyle.Render(strings.Repeat("─", max(width, 0)))

	kv := func(k, v string) string {
		return panelDimStyle.Render(fmt.Sprintf(" %-9s", k)) + panelTextStyle.Render(v)
	}

	lines := []string{panelTitleStyle.Render(" SELECTION")}
	lines = append(lines, kv("active", fmt.Sprintf("r%d c%d", tv.SelectedRow(), tv.SelectedColumn())))

	anchor := "none"
	if row, col, ok := tv.Selection().Anchor(); ok {
		anchor = fmt.Sprintf("r%d c%d", row, col)
	}
	lines = append(lines, kv("anchor", anchor))

	if r, ok := tv.SelectedRegion(); ok {
		lines = append(lines, kv("region", fmt.Sprintf("%d×%d (%d cells)", r.Rows(), r.Cols(), r.Rows()*r.Cols())))
	} else {
		lines = append(lines, kv("region", "empty"))
	}

	value := ""
	if tabledata.InBounds(tv.Table(), tv.SelectedRow(), tv.SelectedColumn()) {
		value = tv.CellText(tv.SelectedRow(), tv.SelectedColumn())
	}
	lines = append(lines, kv("value", value))
	lines = append(lines, kv("modes", modeString(tv.MultiSelect(), tv.FullRowSelect, tv.ShowHeaders)))
	lines = append(lines, sep)

	help := []string{sep, panelTitleStyle.Render(" KEYS")}
	for _, h := range helpLines {
		help = append(help, panelKeyStyle.Render(fmt.Sprintf(" %-14s", h[0]))+panelDimStyle.Render(h[1]))
	}

	lines = append(lines, panelTitleStyle.Render(fmt.Sprintf(" EVENTS (%d)", m.events.total)))
	room := height - len(lines) - len(help)
	for _, e := range m.events.last(room) {
		lines = append(lines, panelTextStyle.Render(" "+e))
	}
	for len(lines) < height-len(help) {
		lines = append(lines, "")
	}
	return append(lines, help...)
}

func modeString(multi, fullRow, headers bool) string {
	var parts []string
	if multi {
		parts = append(parts, "multi")
	} else {
		parts = append(parts, "single")
	}
	if fullRow {
		parts = append(parts, "row")
	}
	if headers {
		parts = append(parts, "hdr")
	}
	return strings.Join(parts, " ")
}

// buildPanelLayers renders the side panel and the rule separating it from
// the table.
func buildPanelLayers(m Model, r tealayout.Region) []*lipgloss.Layer {
	if r.Rect.Empty() {
		return nil
	}
	inner := tealayout.Region{Name: r.Name, Rect: r.Rect}
	inner.Rect.Min.X++
	return []*lipgloss.Layer{
		tealayout.VerticalSeparator(r.Rect.Min.X, r.Rect.Min.Y, r.Rect.Dy(), panelSepStyle),
		tealayout.PanelLayer(inner, m.panelLines(inner.Rect.Dx(), inner.Rect.Dy()), panelFillStyle, "panel", 1),
	}
}
