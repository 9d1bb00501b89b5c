// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme maps style names to tcell styles. Names may be dotted
// ("Bar.Active"); lookups fall back to the base name, then "Default".
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style

	// GradientLow and GradientHigh colour idle bars by value, low to high.
	GradientLow  colorful.Color
	GradientHigh colorful.Color
}

// GetStyle resolves a style by exact name, then base name, then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

func hex(c int32) tcell.Color { return tcell.NewHexColor(c) }

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DevComfortDark is the default theme.
var DevComfortDark Theme

// Paper is a light built-in theme.
var Paper Theme

func init() {
	dcBackground := hex(0x2a2f38)
	dcForeground := hex(0xc5cdd9)
	dcComment := hex(0x5c6370)
	dcYellow := hex(0xe5c07b)
	dcGreen := hex(0x98c379)
	dcBlue := hex(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":           base,
			"Header":            base.Foreground(dcBlue).Bold(true),
			"Axis":              base.Foreground(dcComment),
			"Label":             base.Foreground(dcForeground),
			"Bar":               base.Foreground(dcBlue),
			"Bar.Active":        base.Foreground(dcYellow).Bold(true),
			"Bar.Sorted":        base.Foreground(dcGreen),
			"Label.Active":      base.Foreground(dcYellow).Bold(true),
			"Label.Sorted":      base.Foreground(dcGreen),
			"StatusBar":         tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			"StatusBarMessage":  tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),
			"StatusBarCommand":  tcell.StyleDefault.Background(dcBackground).Foreground(dcGreen).Bold(true),
			"StatusBarComplete": tcell.StyleDefault.Background(dcBackground).Foreground(dcGreen).Bold(true),
		},
		GradientLow:  mustHex("#56b6c2"),
		GradientHigh: mustHex("#c678dd"),
	}

	pInk := hex(0x383a42)
	pMuted := hex(0xa0a1a7)
	pBlue := hex(0x4078f2)
	pAmber := hex(0xc18401)
	pGreen := hex(0x50a14f)
	pBar := hex(0xe5e5e6)

	paperBase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(pInk)
	Paper = Theme{
		Name:   "Paper",
		IsDark: false,
		Styles: map[string]tcell.Style{
			"Default":           paperBase,
			"Header":            paperBase.Foreground(pBlue).Bold(true),
			"Axis":              paperBase.Foreground(pMuted),
			"Bar":               paperBase.Foreground(pBlue),
			"Bar.Active":        paperBase.Foreground(pAmber).Bold(true),
			"Bar.Sorted":        paperBase.Foreground(pGreen),
			"Label.Active":      paperBase.Foreground(pAmber).Bold(true),
			"Label.Sorted":      paperBase.Foreground(pGreen),
			"StatusBar":         tcell.StyleDefault.Background(pBar).Foreground(pInk),
			"StatusBarMessage":  tcell.StyleDefault.Background(pBar).Foreground(pInk).Bold(true),
			"StatusBarCommand":  tcell.StyleDefault.Background(pBar).Foreground(pBlue).Bold(true),
			"StatusBarComplete": tcell.StyleDefault.Background(pBar).Foreground(pGreen).Bold(true),
		},
		GradientLow:  mustHex("#0184bc"),
		GradientHigh: mustHex("#a626a4"),
	}
}
