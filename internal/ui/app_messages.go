package ui

// SelectTabMsg selects the tab at Index, as if it was tapped.
type SelectTabMsg struct {
	Index int
}

// NextTabMsg moves to the next regular tab.
type NextTabMsg struct{}

// PrevTabMsg moves to the previous regular tab.
type PrevTabMsg struct{}

// ToggleHelpMsg shows or hides the full keybind help.
type ToggleHelpMsg struct{}
