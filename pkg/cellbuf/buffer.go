// Package cellbuf provides a 2D terminal cell buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Cells are measured with the same rune widths the table layout uses: a
// wide rune occupies its cell plus a continuation cell to the right, and
// zero-width runes such as combining marks attach to the cell before them.
// Styles are StyleKey enums mapped to lipgloss.Style at render time, so
// the buffer knows nothing about colors.
package cellbuf

import (
	"strings"

	"github.com/wesen/tableview/pkg/tableview"
)

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is one terminal column. Text is a base rune plus any combining
// marks. Width is 1 or 2 for a leading cell and 0 for the right half of a
// wide rune.
type Cell struct {
	Text  string
	Width int
	Style StyleKey
}

func blank(style StyleKey) Cell { return Cell{Text: " ", Width: 1, Style: style} }

// Continuation reports whether c is the right half of a wide rune.
func (c Cell) Continuation() bool { return c.Width == 0 }

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size filled with spaces in
// defaultStyle. Negative sizes are treated as 0.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = blank(defaultStyle)
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes one rune at (x, y) and returns its width. A wide rune that
// would straddle the right edge is written as a space. Zero-width runes
// are ignored here; SetString attaches them to the previous cell.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) int {
	w := tableview.RuneWidth(ch)
	if w == 0 || !b.InBounds(x, y) {
		return w
	}
	b.clearWide(x, y)
	if w == 2 {
		if x+1 >= b.W {
			b.Cells[y][x] = blank(style)
			return w
		}
		b.clearWide(x+1, y)
		b.Cells[y][x] = Cell{Text: string(ch), Width: 2, Style: style}
		b.Cells[y][x+1] = Cell{Width: 0, Style: style}
		return w
	}
	b.Cells[y][x] = Cell{Text: string(ch), Width: 1, Style: style}
	return w
}

// clearWide blanks the other half of a wide rune overlapping (x, y) so
// that no orphaned half remains after an overwrite.
func (b *Buffer) clearWide(x, y int) {
	row := b.Cells[y]
	switch {
	case row[x].Continuation() && x > 0:
		row[x-1] = blank(row[x-1].Style)
	case row[x].Width == 2 && x+1 < b.W:
		row[x+1] = blank(row[x+1].Style)
	}
}

// SetString writes s starting at (x, y), advancing by each rune's display
// width, and returns the x just past the text. Runes falling outside the
// buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) int {
	lastX := -1
	for _, ch := range s {
		if tableview.RuneWidth(ch) == 0 {
			if lastX >= 0 && b.InBounds(lastX, y) {
				b.Cells[y][lastX].Text += string(ch)
			}
			continue
		}
		if b.InBounds(x, y) {
			lastX = x
		} else {
			lastX = -1
		}
		x += b.Set(x, y, ch, style)
	}
	return x
}

// SetStyle restyles w cells starting at (x, y) without touching text.
func (b *Buffer) SetStyle(x, y, w int, style StyleKey) {
	if y < 0 || y >= b.H {
		return
	}
	for i := max(x, 0); i < min(x+w, b.W); i++ {
		b.Cells[y][i].Style = style
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = blank(style)
		}
	}
}

// Line returns row y as plain text without styling.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.H {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.Cells[y] {
		sb.WriteString(c.Text)
	}
	return sb.String()
}
