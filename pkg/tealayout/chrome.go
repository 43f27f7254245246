package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// FitLine cuts an already-styled line to width terminal columns, ending
// in "…" when something was dropped. Escape sequences are kept intact.
func FitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// BarLayer renders a one-line bar across width at row y. Content wider
// than the bar is truncated.
func BarLayer(id, content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).MaxWidth(width).Render(FitLine(content, width))
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(1).ID(id)
}

// PanelLayer places lines inside r, one per row. Lines are cut to the
// region width and padded with fill so the background is continuous;
// missing rows are blank and surplus lines are dropped.
func PanelLayer(r Region, lines []string, fill lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	out := make([]string, h)
	for i := range out {
		var s string
		if i < len(lines) {
			s = FitLine(lines[i], w)
		}
		if pad := w - ansi.StringWidth(s); pad > 0 {
			s += fill.Render(strings.Repeat(" ", pad))
		}
		out[i] = s
	}
	return lipgloss.NewLayer(strings.Join(out, "\n")).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Render(strings.TrimSuffix(strings.Repeat("│\n", max(height, 0)), "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// ModalLayer renders content inside boxStyle and centers it on the
// terminal at Z=100.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer of spaces in style covering r.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	rendered := style.Render(strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
