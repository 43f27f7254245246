package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string using styles to map
// each StyleKey. Keys without an entry render unstyled.
//
// Consecutive cells with the same StyleKey are merged into one run and
// rendered with a single Style.Render call. Continuation cells contribute
// no text; the wide rune before them already covers their column.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	var run strings.Builder
	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.Cells[y]
		runStyle := row[0].Style

		flush := func() {
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}

		for _, c := range row {
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run.WriteString(c.Text)
		}
		flush()
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
