package drawutil

import (
	"image"

	"github.com/wesen/tableview/pkg/cellbuf"
)

// Overflow says in which directions more table content lies beyond the
// visible region.
type Overflow struct {
	Left, Right, Up, Down bool
}

// Any reports whether any direction overflows.
func (o Overflow) Any() bool { return o.Left || o.Right || o.Up || o.Down }

// EdgeMidpoint returns the cell on the border of rect facing direction
// (dx, dy), centered along that side. Only the sign of the dominant axis
// matters. An empty rect yields its Min corner.
func EdgeMidpoint(rect image.Rectangle, dx, dy int) image.Point {
	if rect.Empty() {
		return rect.Min
	}
	cx := (rect.Min.X + rect.Max.X - 1) / 2
	cy := (rect.Min.Y + rect.Max.Y - 1) / 2
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return image.Pt(cx, rect.Max.Y-1)
		}
		return image.Pt(cx, rect.Min.Y)
	}
	if dx > 0 {
		return image.Pt(rect.Max.X-1, cy)
	}
	return image.Pt(rect.Min.X, cy)
}

// DrawScrollIndicators puts an arrow on each side of rect that has
// hidden content beyond it.
func DrawScrollIndicators(buf *cellbuf.Buffer, rect image.Rectangle, o Overflow, style cellbuf.StyleKey) {
	dirs := []struct {
		on     bool
		dx, dy int
	}{
		{o.Left, -1, 0},
		{o.Right, 1, 0},
		{o.Up, 0, -1},
		{o.Down, 0, 1},
	}
	for _, d := range dirs {
		if !d.on {
			continue
		}
		p := EdgeMidpoint(rect, d.dx, d.dy)
		buf.Set(p.X, p.Y, ArrowChar(d.dx, d.dy), style)
	}
}
