package theme

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ValueColor blends the theme gradient for value within [min, max]. The
// blend runs in HCL so mid-range colours keep their brightness.
func (t *Theme) ValueColor(value, min, max int) tcell.Color {
	low, high := t.GradientLow, t.GradientHigh
	if low == (colorful.Color{}) && high == (colorful.Color{}) {
		fg, _, _ := t.GetStyle("Bar").Decompose()
		return fg
	}
	frac := 0.0
	if max > min {
		frac = float64(value-min) / float64(max-min)
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	c := low.BlendHcl(high, frac).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// BarStyle returns the style for an idle bar of the given value.
func (t *Theme) BarStyle(value, min, max int) tcell.Style {
	return t.GetStyle("Bar").Foreground(t.ValueColor(value, min, max))
}
