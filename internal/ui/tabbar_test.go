package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"todox/internal/config"
)

func TestTabBar_HitTest(t *testing.T) {
	// 84 columns: 2 inset on each side leaves 80, so 3 cells of 26.
	b := TabBar{Tabs: DefaultTabs, Width: 84}

	tests := []struct {
		x    int
		want int
	}{
		{0, -1},
		{1, -1},
		{2, 0},
		{27, 0},
		{28, 1},
		{54, 2},
		{79, 2},
		{80, -1},
		{200, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.HitTest(tt.x), "HitTest(%d)", tt.x)
	}
}

func TestTabBar_HitTestTooNarrow(t *testing.T) {
	b := TabBar{Tabs: DefaultTabs, Width: 5}
	assert.Equal(t, -1, b.HitTest(3))
	assert.Equal(t, -1, TabBar{Width: 80}.HitTest(10))
}

func TestTabBar_View(t *testing.T) {
	for _, style := range []string{config.StylePlain, config.StyleFuturistic} {
		b := TabBar{Tabs: append(append([]TabSpec(nil), DefaultTabs...), ExitTab), Style: style, Width: 80}
		out := ansi.Strip(b.View(1))
		for _, want := range []string{"My Notes", "Create", "Favorites", "Exit", "✎", "♥"} {
			assert.Contains(t, out, want, "style %s", style)
		}
		assert.Equal(t, tabBarHeight, len(strings.Split(out, "\n")), "style %s", style)
	}
}

func TestTabBar_NarrowKeepsHeight(t *testing.T) {
	tabs := append(append([]TabSpec(nil), DefaultTabs...), ExitTab)
	for _, style := range []string{config.StylePlain, config.StyleFuturistic} {
		for _, width := range []int{20, 30, 40} {
			b := TabBar{Tabs: tabs, Style: style, Width: width}
			out := ansi.Strip(b.View(2))
			assert.Equal(t, tabBarHeight, len(strings.Split(out, "\n")), "style %s width %d", style, width)
		}
	}
	out := ansi.Strip(TabBar{Tabs: tabs, Width: 30}.View(0))
	assert.Contains(t, out, "Favor…")
}
