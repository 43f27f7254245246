package tableui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/tableview/pkg/tealayout"
)

// ErrBadCellRef is returned for go-to input that is not "row,col".
var ErrBadCellRef = errors.New("expected row,col")

// ParseCellRef reads a zero-based "row,col" pair. A space may stand in
// for the comma; a lone number selects a row and keeps the column.
func ParseCellRef(s string, currentCol int) (row, col int, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("parse %q: %w", s, ErrBadCellRef)
	}
	row, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", s, ErrBadCellRef)
	}
	col = currentCol
	if len(fields) == 2 {
		if col, err = strconv.Atoi(fields[1]); err != nil {
			return 0, 0, fmt.Errorf("parse %q: %w", s, ErrBadCellRef)
		}
	}
	if row < 0 || col < 0 {
		return 0, 0, fmt.Errorf("parse %q: %w", s, ErrBadCellRef)
	}
	return row, col, nil
}

// openGoto shows the go-to prompt.
func (m Model) openGoto() (tea.Model, tea.Cmd) {
	m.gotoOpen = true
	m.gotoInput = textinput.New()
	m.gotoInput.Prompt = "› "
	m.gotoInput.CharLimit = 24
	m.gotoInput.SetValue(fmt.Sprintf("%d,%d", m.Table.SelectedRow(), m.Table.SelectedColumn()))
	cmd := m.gotoInput.Focus()
	return m, cmd
}

// handleGotoKeys processes keys while the prompt is open.
func (m Model) handleGotoKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.gotoOpen = false
		m.gotoInput.Blur()
		return m, nil

	case "enter":
		m.gotoOpen = false
		m.gotoInput.Blur()
		row, col, err := ParseCellRef(m.gotoInput.Value(), m.Table.SelectedColumn())
		if err != nil {
			m.setErr(err)
			return m, nil
		}
		m.setErr(nil)
		m.Table.SetSelection(col, row, false)
		m.Table.EnsureSelectedCellIsVisible()
		return m, nil

	default:
		var cmd tea.Cmd
		m.gotoInput, cmd = m.gotoInput.Update(msg)
		return m, cmd
	}
}

// buildGotoLayer renders the prompt as a centered modal.
func buildGotoLayer(m Model) *lipgloss.Layer {
	content := lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render("GO TO CELL"),
		"",
		m.gotoInput.View(),
		"",
		modalHintStyle.Render(fmt.Sprintf("row,col  (%d rows, %d cols)  enter/esc",
			m.Table.Table().RowCount(), m.Table.Table().ColumnCount())),
	)
	return tealayout.ModalLayer(content, m.Width, m.Height, modalStyle)
}
