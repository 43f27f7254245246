package tableui

import (
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/tableview/pkg/cellbuf"
	"github.com/wesen/tableview/pkg/drawutil"
	"github.com/wesen/tableview/pkg/tableview"
)

const emptyText = "(no data)"

// DrawTable paints the visible part of tv into a w×h buffer: header and
// underline, striped data rows, column rules, the selection and the
// scroll indicators. tv's visible area should already match w×h.
func DrawTable(tv *tableview.TableView, w, h int) *cellbuf.Buffer {
	buf := cellbuf.New(w, h, styleCell)
	if w <= 0 || h <= 0 {
		return buf
	}

	ds := tv.Table()
	hh := tv.HeaderHeight()
	vp := tv.Viewport()
	first := vp.RowOffset()
	last := min(first+vp.VisibleRows(), ds.RowCount())
	drawn := max(last-first, 0)

	drawutil.StripeRows(buf, hh, drawn, first, styleStripe)

	spans := tv.ColumnLayout()
	if tv.ShowHeaders {
		for _, s := range spans {
			text := tableview.PadToWidth(tv.HeaderText(s.Column), s.Width, tv.ColumnStyle(s.Column).Alignment)
			buf.SetString(s.X, 0, text, styleHeader)
		}
	}

	for row := first; row < last; row++ {
		y := hh + row - first
		base := styleCell
		if row%2 == 1 {
			base = styleStripe
		}
		for _, s := range spans {
			st := base
			switch {
			case row == tv.SelectedRow() && s.Column == tv.SelectedColumn():
				st = styleActive
			case tv.IsSelected(s.Column, row):
				st = styleSelected
			}
			text := tableview.PadToWidth(tv.CellText(row, s.Column), s.Width, tv.ColumnStyle(s.Column).Alignment)
			buf.SetString(s.X, y, text, st)
		}
	}

	var seps []int
	for _, s := range spans {
		if !s.Clipped {
			seps = append(seps, s.End())
		}
	}
	drawutil.DrawColumnRules(buf, seps, 0, hh+drawn, styleRule)
	if tv.ShowHeaders && h > 1 {
		drawutil.DrawHeaderRule(buf, 1, w, seps, drawn > 0, styleRule)
	}

	if drawn == 0 {
		buf.SetString(0, min(hh, h-1), tableview.Truncate(emptyText, w, ""), styleEmpty)
		return buf
	}

	drawutil.DrawScrollIndicators(buf, image.Rect(0, hh, w, h), overflow(tv, spans, last), styleIndicator)
	return buf
}

// overflow reports which sides of the data area hide more of the table.
func overflow(tv *tableview.TableView, spans []tableview.ColumnSpan, lastRow int) drawutil.Overflow {
	o := drawutil.Overflow{
		Left: tv.ColumnOffset() > 0,
		Up:   tv.RowOffset() > 0,
		Down: lastRow < tv.Table().RowCount(),
	}
	if n := len(spans); n > 0 {
		end := spans[n-1]
		o.Right = end.Clipped || end.Column < tv.Table().ColumnCount()-1
	}
	return o
}

// RenderTable draws tv and renders it with the table palette.
func RenderTable(tv *tableview.TableView, w, h int) string {
	return DrawTable(tv, w, h).Render(bufStyles)
}

// buildTableLayer places the rendered table at r.
func buildTableLayer(tv *tableview.TableView, r image.Rectangle) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(0).ID("table")
	}
	return lipgloss.NewLayer(RenderTable(tv, r.Dx(), r.Dy())).X(r.Min.X).Y(r.Min.Y).Z(0).ID("table")
}
