package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"todox/internal/config"
)

// tabBarHeight is the rendered height: border, icon row, title row, border.
const tabBarHeight = 4

// tabBarInset is the column where the first cell starts: border plus padding.
const tabBarInset = 2

// TabSpec describes one entry of the tab bar.
type TabSpec struct {
	Title    string
	Icon     string
	Gradient []string
}

// DefaultTabs are the three screens of the app, in order.
var DefaultTabs = []TabSpec{
	{Title: "My Notes", Icon: "✎", Gradient: []string{"#00FF7F", "#008080"}},
	{Title: "Create", Icon: "⊕", Gradient: []string{"#00FFFF", "#1E90FF"}},
	{Title: "Favorites", Icon: "♥", Gradient: []string{"#FF69B4", "#FF3B30"}},
}

// ExitTab is the trailing pseudo-tab that closes the app.
var ExitTab = TabSpec{Title: "Exit", Icon: "⏻", Gradient: []string{"#FF9500", "#FF3B30"}}

// TabBar renders the persistent row of tabs at the bottom of the screen.
type TabBar struct {
	Tabs  []TabSpec
	Style string
	Width int
}

// cellWidth is the width given to each tab; zero if the bar is too narrow.
func (b TabBar) cellWidth() int {
	if len(b.Tabs) == 0 {
		return 0
	}
	w := b.Width
	if w <= 0 {
		w = 80
	}
	return max(0, (w-2*tabBarInset)/len(b.Tabs))
}

// HitTest maps a terminal column to the tab under it, or -1.
func (b TabBar) HitTest(x int) int {
	cw := b.cellWidth()
	if cw == 0 || x < tabBarInset {
		return -1
	}
	i := (x - tabBarInset) / cw
	if i >= len(b.Tabs) {
		return -1
	}
	return i
}

// View renders the bar with selected highlighted.
func (b TabBar) View(selected int) string {
	cw := b.cellWidth()
	cells := make([]string, len(b.Tabs))
	for i, t := range b.Tabs {
		cells[i] = b.renderCell(t, i == selected, cw)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if b.Style == config.StyleFuturistic {
		return Styles.TabBarFuturistic.Render(row)
	}
	return Styles.TabBarPlain.Render(row)
}

func (b TabBar) renderCell(t TabSpec, active bool, width int) string {
	icon, title := t.Icon, t.Title
	// Wrapped titles would grow the bar past tabBarHeight.
	if width > 0 {
		icon = ansi.Truncate(icon, width, "")
		title = ansi.Truncate(title, width, "…")
	}
	switch {
	case active && b.Style == config.StyleFuturistic:
		icon = Gradient(icon, t.Gradient...)
		title = lipgloss.NewStyle().Bold(true).Render(Gradient(title, t.Gradient...))
	case active:
		icon = Styles.TabActive.Render(icon)
		title = Styles.TabActive.Render(title)
	default:
		icon = Styles.TabInactive.Render(icon)
		title = Styles.TabInactive.Render(title)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(icon + "\n" + title)
}
