// Package ui renders the todox tab container with Bubble Tea.
//
// Core pieces:
//   - View: one full screen with its own Init/Update/View (Elm-style)
//   - HomeView: task input and task list (My Notes)
//   - PlaceholderView: the Create and Favorites screens
//   - TabBar: the bottom row of tabs, including mouse hit-testing
//   - AppModel: owns the tab selection and routes input to the active screen
//   - KeybindRegistry: key bindings plus their help text
package ui
