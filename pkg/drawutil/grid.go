package drawutil

import "github.com/wesen/tableview/pkg/cellbuf"

// StripeRows restyles every other line of the h rows starting at buffer
// row y0. firstRow is the table row shown at y0, so stripes stay attached
// to table rows while scrolling. Rows with an odd table index are striped.
func StripeRows(buf *cellbuf.Buffer, y0, h, firstRow int, style cellbuf.StyleKey) {
	for r := range max(h, 0) {
		if mod(firstRow+r, 2) == 1 {
			buf.SetStyle(0, y0+r, buf.W, style)
		}
	}
}

// mod returns a non-negative modulus.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
