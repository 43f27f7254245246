// Package drawutil draws table chrome into a cellbuf.Buffer: horizontal
// and vertical rules with box-drawing junctions, row striping, and scroll
// indicators on the edges of a region.
package drawutil

import "github.com/wesen/tableview/pkg/cellbuf"

// Box-drawing runes used for table rules.
const (
	Horizontal = '─'
	Vertical   = '│'
	Cross      = '┼'
	TeeDown    = '┬'
	TeeUp      = '┴'
)

// Junction returns the box-drawing rune joining arms in the given
// directions. A single arm or none yields the plain line for that axis.
func Junction(up, down, left, right bool) rune {
	v := up || down
	h := left || right
	switch {
	case up && down && h:
		if left && right {
			return Cross
		}
		if right {
			return '├'
		}
		return '┤'
	case down && left && right:
		return TeeDown
	case up && left && right:
		return TeeUp
	case down && right:
		return '┌'
	case down && left:
		return '┐'
	case up && right:
		return '└'
	case up && left:
		return '┘'
	case v:
		return Vertical
	default:
		return Horizontal
	}
}

// ArrowChar returns an arrow-head rune pointing in the dominant direction
// of (dx, dy).
func ArrowChar(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

// HLine draws w copies of ch rightward from (x, y).
func HLine(buf *cellbuf.Buffer, x, y, w int, ch rune, style cellbuf.StyleKey) {
	for i := range max(w, 0) {
		buf.Set(x+i, y, ch, style)
	}
}

// VLine draws h copies of ch downward from (x, y).
func VLine(buf *cellbuf.Buffer, x, y, h int, ch rune, style cellbuf.StyleKey) {
	for i := range max(h, 0) {
		buf.Set(x, y+i, ch, style)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
