package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient renders s with a left-to-right color blend across the given hex
// stops. Invalid stops fall back to unstyled text.
func Gradient(s string, stops ...string) string {
	if s == "" || len(stops) == 0 {
		return s
	}
	cols := make([]colorful.Color, 0, len(stops))
	for _, h := range stops {
		c, err := colorful.Hex(h)
		if err != nil {
			return s
		}
		cols = append(cols, c)
	}

	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := blendStops(cols, t)
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Render(string(r)))
	}
	return b.String()
}

// blendStops picks the color at position t in [0,1] across evenly spaced stops.
func blendStops(cols []colorful.Color, t float64) colorful.Color {
	if len(cols) == 1 || t <= 0 {
		return cols[0]
	}
	seg := t * float64(len(cols)-1)
	i := int(seg)
	if i >= len(cols)-1 {
		return cols[len(cols)-1]
	}
	return cols[i].BlendLuv(cols[i+1], seg-float64(i)).Clamped()
}
