package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todox/internal/config"
)

// PlaceholderView is a static screen with a large icon, a title and a
// one-line description. Create and Favorites use it.
type PlaceholderView struct {
	Icon     string
	Title    string
	Subtitle string
	Gradient []string // used by the futuristic style
	Style    string

	width, height int
}

// Ensure PlaceholderView implements View.
var _ View = (*PlaceholderView)(nil)

// NewCreateView creates the Create screen.
func NewCreateView(style string) *PlaceholderView {
	return &PlaceholderView{
		Icon:     "⊕",
		Title:    "Create",
		Subtitle: "Create new notes and tasks",
		Gradient: []string{"#00FFFF", "#1E90FF", "#A020F0"},
		Style:    style,
	}
}

// NewFavoritesView creates the Favorites screen.
func NewFavoritesView(style string) *PlaceholderView {
	return &PlaceholderView{
		Icon:     "♥",
		Title:    "Favorites",
		Subtitle: "Your favorite notes and tasks",
		Gradient: []string{"#FF69B4", "#FF3B30", "#FF9500"},
		Style:    style,
	}
}

// Init implements View.
func (p *PlaceholderView) Init() tea.Cmd { return nil }

// Update implements View.
func (p *PlaceholderView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.width, p.height = msg.Width, msg.Height
	}
	return p, nil
}

// View implements View.
func (p *PlaceholderView) View() string {
	icon, title := p.Icon, p.Title
	if p.Style == config.StyleFuturistic {
		icon = Gradient(icon, p.Gradient...)
		title = lipgloss.NewStyle().Bold(true).Render(Gradient(title, p.Gradient...))
	} else {
		icon = Styles.Muted.Render(icon)
		title = Styles.Normal.Bold(true).Render(title)
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		icon,
		"",
		title,
		"",
		Styles.Subtitle.Render(p.Subtitle),
	)
	if p.width == 0 || p.height == 0 {
		return body
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, body)
}
