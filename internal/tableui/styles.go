package tableui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/tableview/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Palette: dim green terminal on near-black.
var (
	colorBG      = c("#080e0b")
	colorStripe  = c("#0c1611")
	colorText    = c("#00d4a0")
	colorHeader  = c("#00ffc8")
	colorRule    = c("#1a4a3a")
	colorSelBG   = c("#0f3a2c")
	colorActBG   = c("#00d4a0")
	colorActText = c("#080e0b")
	colorWarn    = c("#ddaa44")
	colorDim     = c("#336655")
	panelBG      = c("#1a2a20")
	toolbarBG    = c("#0a1510")
	footerColor  = c("#666666")
)

// cellbuf style keys for the table layer.
const (
	styleCell cellbuf.StyleKey = iota
	styleStripe
	styleHeader
	styleRule
	styleSelected
	styleActive
	styleIndicator
	styleEmpty
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleCell:      lipgloss.NewStyle().Foreground(colorText).Background(colorBG),
	styleStripe:    lipgloss.NewStyle().Foreground(colorText).Background(colorStripe),
	styleHeader:    lipgloss.NewStyle().Foreground(colorHeader).Background(colorBG).Bold(true),
	styleRule:      lipgloss.NewStyle().Foreground(colorRule).Background(colorBG),
	styleSelected:  lipgloss.NewStyle().Foreground(colorHeader).Background(colorSelBG),
	styleActive:    lipgloss.NewStyle().Foreground(colorActText).Background(colorActBG).Bold(true),
	styleIndicator: lipgloss.NewStyle().Foreground(colorWarn).Background(colorBG).Bold(true),
	styleEmpty:     lipgloss.NewStyle().Foreground(colorDim).Background(colorBG).Italic(true),
}

var (
	toolbarStyle = lipgloss.NewStyle().
			Background(toolbarBG).
			Foreground(colorHeader).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(footerColor)

	footerErrStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Bold(true)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	panelFillStyle = lipgloss.NewStyle().
			Background(panelBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(colorRule).
			Background(panelBG)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorText).
			Background(toolbarBG).
			Width(44).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Background(toolbarBG).
			Bold(true)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(toolbarBG).
			Italic(true)
)
