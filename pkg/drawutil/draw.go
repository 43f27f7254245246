package drawutil

import "github.com/wesen/tableview/pkg/cellbuf"

// DrawColumnRules draws a vertical rule at each x in seps from row y0
// down h rows. Separators outside the buffer are skipped.
func DrawColumnRules(buf *cellbuf.Buffer, seps []int, y0, h int, style cellbuf.StyleKey) {
	for _, x := range seps {
		if x < 0 || x >= buf.W {
			continue
		}
		VLine(buf, x, y0, h, Vertical, style)
	}
}

// DrawHeaderRule underlines the header at row y across width w. Where a
// column rule continues below the line the junction is a cross; with
// nothing below it is a tee pointing up.
func DrawHeaderRule(buf *cellbuf.Buffer, y, w int, seps []int, rulesBelow bool, style cellbuf.StyleKey) {
	HLine(buf, 0, y, w, Horizontal, style)
	j := Junction(true, rulesBelow, true, true)
	for _, x := range seps {
		if x >= 0 && x < w {
			buf.Set(x, y, j, style)
		}
	}
}
