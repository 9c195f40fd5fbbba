package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View is one full screen shown while its tab is selected.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// TextCapturer is implemented by views that are currently consuming typed
// text. While it reports true, only bindings marked Always reach the app.
type TextCapturer interface {
	CapturesText() bool
}
