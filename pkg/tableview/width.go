package tableview

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where text sits inside a column wider than the text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// widthCond pins the East Asian ambiguous-width setting so layout does not
// depend on the user's locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// RuneWidth is the number of terminal columns r occupies: 0 for
// combining and zero-width marks, 2 for wide East Asian runes, else 1.
func RuneWidth(r rune) int {
	return widthCond.RuneWidth(r)
}

// DisplayWidth is the sum of the terminal widths of the runes in text.
// It is not the rune count: combining marks add nothing, wide runes add 2.
func DisplayWidth(text string) int {
	w := 0
	for _, r := range text {
		w += RuneWidth(r)
	}
	return w
}

// Truncate shortens text so that its DisplayWidth, tail included, is at
// most width. Text that already fits is returned unchanged. Combining
// marks following a kept rune are kept with it.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	tw := DisplayWidth(tail)
	if tw > width {
		tail, tw = "", 0
	}
	limit := width - tw

	var sb strings.Builder
	w := 0
	for _, r := range text {
		rw := RuneWidth(r)
		if w+rw > limit {
			break
		}
		sb.WriteRune(r)
		w += rw
	}
	sb.WriteString(tail)
	return sb.String()
}

// PadToWidth truncates or pads text with spaces to exactly width columns.
// Truncated text ends in "…" when there is room for it.
func PadToWidth(text string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(text, width, "…")
	gap := width - DisplayWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}
