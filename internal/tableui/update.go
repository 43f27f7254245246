package tableui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/tableview/internal/log"
	"github.com/wesen/tableview/pkg/tabledata"
	"github.com/wesen/tableview/pkg/tealayout"
)

// Region names used by the layout.
const (
	regionToolbar = "toolbar"
	regionFooter  = "footer"
	regionPanel   = "panel"
	regionTable   = "table"
)

// DatasetMsg replaces the dataset shown by the model.
type DatasetMsg struct {
	Dataset tabledata.Dataset
	Source  string
	Err     error
}

// layout computes the screen regions for the current terminal size. The
// side panel is dropped when the terminal is too narrow for both it and a
// usable table.
func (m Model) layout() tealayout.Layout {
	b := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed(regionToolbar, 1).
		BottomFixed(regionFooter, 1)
	if m.Width >= panelWidth*2 {
		b.RightFixed(regionPanel, panelWidth)
	}
	return b.Remaining(regionTable).Build()
}

// resize pushes the table region size into the view.
func (m *Model) resize() {
	r := m.layout().Get(regionTable).Rect
	if err := m.Table.SetVisibleArea(r.Dy(), r.Dx()); err != nil {
		m.setErr(err)
		return
	}
	m.Table.EnsureSelectedCellIsVisible()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()

	case tea.KeyPressMsg:
		if m.gotoOpen {
			return m.handleGotoKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.gotoOpen {
			return m, nil
		}
		return handleMouse(m, msg), nil

	case DatasetMsg:
		if msg.Err != nil {
			m.setErr(fmt.Errorf("reload %s: %w", m.source, msg.Err))
			return m, nil
		}
		if err := m.Table.SetTable(msg.Dataset); err != nil {
			m.setErr(err)
			return m, nil
		}
		if msg.Source != "" {
			m.source = msg.Source
		}
		m.setErr(nil)
		m.status = "reloaded"
		m.resize()
		log.Info("dataset installed", "source", m.source,
			"rows", m.Table.Table().RowCount(), "cols", m.Table.Table().ColumnCount())
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	tv := m.Table
	key := msg.String()
	m.status = ""

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Cursor movement; shift extends the selection
	case "up", "k":
		tv.ChangeSelectionByOffset(0, -1, false)
	case "down", "j", "enter":
		tv.ChangeSelectionByOffset(0, 1, false)
	case "left", "h", "shift+tab":
		tv.ChangeSelectionByOffset(-1, 0, false)
	case "right", "l", "tab":
		tv.ChangeSelectionByOffset(1, 0, false)
	case "shift+up":
		tv.ChangeSelectionByOffset(0, -1, true)
	case "shift+down":
		tv.ChangeSelectionByOffset(0, 1, true)
	case "shift+left":
		tv.ChangeSelectionByOffset(-1, 0, true)
	case "shift+right":
		tv.ChangeSelectionByOffset(1, 0, true)

	case "home":
		tv.ChangeSelectionToStartOfRow(false)
	case "end":
		tv.ChangeSelectionToEndOfRow(false)
	case "shift+home":
		tv.ChangeSelectionToStartOfRow(true)
	case "shift+end":
		tv.ChangeSelectionToEndOfRow(true)
	case "ctrl+home":
		tv.ChangeSelectionToStartOfTable(false)
	case "ctrl+end":
		tv.ChangeSelectionToEndOfTable(false)
	case "ctrl+shift+home":
		tv.ChangeSelectionToStartOfTable(true)
	case "ctrl+shift+end":
		tv.ChangeSelectionToEndOfTable(true)

	case "pgup":
		m.page(-1, false)
	case "pgdown":
		m.page(1, false)
	case "shift+pgup":
		m.page(-1, true)
	case "shift+pgdown":
		m.page(1, true)

	case "ctrl+a":
		tv.SelectAll()

	// Modes
	case "m":
		tv.SetMultiSelect(!tv.MultiSelect())
		m.status = "multi-select " + onOff(tv.MultiSelect())
	case "f":
		tv.FullRowSelect = !tv.FullRowSelect
		m.status = "full-row select " + onOff(tv.FullRowSelect)
	case "H":
		tv.ShowHeaders = !tv.ShowHeaders
		m.resize()

	case "g":
		return m.openGoto()

	case "r":
		if m.reload != nil {
			return m, reloadCmd(m.reload, m.source)
		}

	case "ctrl+s":
		m.saveConfig()

	case "esc", "escape":
		// Collapse a region to its active cell.
		tv.SetSelection(tv.SelectedColumn(), tv.SelectedRow(), false)
	}

	return m, nil
}

// page moves by the configured page size, or by one screen when unset.
func (m *Model) page(dir int, extend bool) {
	if n := m.cfg.Table.PageScroll; n > 0 {
		m.Table.ChangeSelectionByOffset(0, dir*n, extend)
		return
	}
	if dir < 0 {
		m.Table.PageUp(extend)
	} else {
		m.Table.PageDown(extend)
	}
}

// saveConfig writes the current table toggles back to the config file.
func (m *Model) saveConfig() {
	if m.configPath == "" {
		m.setErr(fmt.Errorf("save config: no config path"))
		return
	}
	m.cfg.Table.MultiSelect = m.Table.MultiSelect()
	m.cfg.Table.FullRowSelect = m.Table.FullRowSelect
	m.cfg.Table.ShowHeaders = m.Table.ShowHeaders
	if err := m.cfg.Save(m.configPath); err != nil {
		m.setErr(err)
		return
	}
	m.setErr(nil)
	m.status = "saved " + m.configPath
	log.Info("config saved", "path", m.configPath)
}

func reloadCmd(load Loader, source string) tea.Cmd {
	return func() tea.Msg {
		ds, err := load()
		return DatasetMsg{Dataset: ds, Source: source, Err: err}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
