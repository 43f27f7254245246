// Package tealayout computes named screen regions for Bubbletea v2 apps
// and builds the Lipgloss layers that dress them: bars, panels, rules and
// modal overlays.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Contains reports whether screen position (x, y) lies in r.
func (r Region) Contains(x, y int) bool {
	return image.Pt(x, y).In(r.Rect)
}

// Local converts a screen position to coordinates relative to r's origin.
func (r Region) Local(x, y int) image.Point {
	return image.Pt(x-r.Rect.Min.X, y-r.Rect.Min.Y)
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
	order        []string
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Hit returns the region containing (x, y). Regions never overlap, so the
// first match in declaration order is the only one.
func (l Layout) Hit(x, y int) (Region, bool) {
	for _, name := range l.order {
		if r := l.Regions[name]; r.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}

// LayoutBuilder carves fixed strips off the edges of the terminal and
// assigns what is left to a remaining region. Strips are clamped to the
// space still available, so a small terminal shrinks them instead of
// producing overlapping rectangles.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int
	left, right  int
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: max(termW, 0), termH: max(termH, 0)}
}

func (b *LayoutBuilder) freeW() int { return max(b.termW-b.left-b.right, 0) }
func (b *LayoutBuilder) freeH() int { return max(b.termH-b.top-b.bottom, 0) }

// TopFixed reserves rows from the top.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	h := min(max(height, 0), b.freeH())
	b.add(name, image.Rect(0, b.top, b.termW, b.top+h))
	b.top += h
	return b
}

// BottomFixed reserves rows from the bottom.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	h := min(max(height, 0), b.freeH())
	y := b.termH - b.bottom - h
	b.add(name, image.Rect(0, y, b.termW, y+h))
	b.bottom += h
	return b
}

// LeftFixed reserves columns from the left, between the top and bottom
// strips.
func (b *LayoutBuilder) LeftFixed(name string, width int) *LayoutBuilder {
	w := min(max(width, 0), b.freeW())
	b.add(name, image.Rect(b.left, b.top, b.left+w, b.termH-b.bottom))
	b.left += w
	return b
}

// RightFixed reserves columns from the right, between the top and bottom
// strips.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	w := min(max(width, 0), b.freeW())
	x := b.termW - b.right - w
	b.add(name, image.Rect(x, b.top, x+w, b.termH-b.bottom))
	b.right += w
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	b.add(name, image.Rect(b.left, b.top, b.left+b.freeW(), b.top+b.freeH()))
	return b
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
}

// Build computes and returns the final Layout. Zero-area regions are
// normalized to the empty rectangle.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
		order:   make([]string, 0, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Empty() {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
		l.order = append(l.order, r.Name)
	}
	return l
}
