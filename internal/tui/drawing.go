// internal/tui/drawing.go
package tui

import (
	"math"
	"strconv"

	"github.com/bethropolis/stepsort/internal/block"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/theme"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const (
	barRune      = '█'
	maxSlotWidth = 8
	headerRows   = 1
	labelRows    = 1
)

// Scene is one frame of the sorting view.
type Scene struct {
	Title    string
	Blocks   []*block.Block
	Min, Max int // Value range used for bar heights and colours
}

// Layout maps slot positions to screen columns for a given area.
type Layout struct {
	Left      int
	SlotWidth int
	BarWidth  int
	Floor     int // Row of the bar bases
	MaxHeight int // Tallest bar, in rows
}

// ComputeLayout fits n slots into width columns and height rows. The
// status rows are expected to be excluded from height already.
func ComputeLayout(n, width, height int) (Layout, bool) {
	if n <= 0 || width <= 0 {
		return Layout{}, false
	}
	maxHeight := height - headerRows - labelRows
	if maxHeight < 1 {
		return Layout{}, false
	}
	slot := width / n
	if slot > maxSlotWidth {
		slot = maxSlotWidth
	}
	if slot < 1 {
		return Layout{}, false
	}
	bar := slot - 1
	if bar < 1 {
		bar = 1
	}
	return Layout{
		Left:      (width - slot*n) / 2,
		SlotWidth: slot,
		BarWidth:  bar,
		Floor:     height - labelRows - 1,
		MaxHeight: maxHeight,
	}, true
}

// Column is the left edge of a block at horizontal position x (in slots).
func (l Layout) Column(x float64) int {
	return l.Left + int(math.Round(x*float64(l.SlotWidth)))
}

// BarHeight scales value into [1, MaxHeight] rows.
func (l Layout) BarHeight(value, min, max int) int {
	if max <= min {
		return (l.MaxHeight + 1) / 2
	}
	frac := float64(value-min) / float64(max-min)
	return 1 + int(math.Round(frac*float64(l.MaxHeight-1)))
}

// DrawScene draws the header, every block and the value labels into the
// top height rows of the screen.
func DrawScene(screen tcell.Screen, th *theme.Theme, sc Scene, width, height int) {
	if th == nil {
		logger.Warnf("DrawScene called with nil theme, using package default.")
		th = &theme.DevComfortDark
	}
	defaultStyle := th.GetStyle("Default")
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	if height > 0 {
		DrawText(screen, 1, 0, width-1, sc.Title, th.GetStyle("Header"))
	}

	layout, ok := ComputeLayout(len(sc.Blocks), width, height)
	if !ok {
		if len(sc.Blocks) > 0 {
			DrawText(screen, 1, height-1, width-1, "window too small", th.GetStyle("Axis"))
		}
		return
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, layout.Floor+1, '─', nil, th.GetStyle("Axis"))
	}

	for _, b := range sc.Blocks {
		drawBlock(screen, th, layout, b, sc.Min, sc.Max, width)
	}
}

func drawBlock(screen tcell.Screen, th *theme.Theme, l Layout, b *block.Block, min, max, width int) {
	x, lift := b.Position()
	col := l.Column(x)
	barStyle, labelStyle := blockStyles(th, b, min, max)

	h := l.BarHeight(b.Value(), min, max)
	base := l.Floor - int(math.Round(lift))
	for dy := 0; dy < h; dy++ {
		y := base - dy
		if y < headerRows {
			break
		}
		for dx := 0; dx < l.BarWidth; dx++ {
			if c := col + dx; c >= 0 && c < width {
				screen.SetContent(c, y, barRune, nil, barStyle)
			}
		}
	}

	// Labels sit under the block's current column so they travel with it
	label := strconv.Itoa(b.Value())
	lw := uniseg.StringWidth(label)
	lx := col + (l.BarWidth-lw)/2
	if lx < 0 {
		lx = 0
	}
	DrawText(screen, lx, l.Floor+1, width, label, labelStyle)
}

func blockStyles(th *theme.Theme, b *block.Block, min, max int) (bar, label tcell.Style) {
	switch b.Emphasis() {
	case types.EmphasisActive:
		return th.GetStyle("Bar.Active"), th.GetStyle("Label.Active")
	case types.EmphasisSorted:
		return th.GetStyle("Bar.Sorted"), th.GetStyle("Label.Sorted")
	default:
		return th.BarStyle(b.Value(), min, max), th.GetStyle("Label")
	}
}

// DrawText writes text at (x, y) by grapheme cluster, stopping at maxX.
// It returns the column after the last cluster drawn.
func DrawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}
