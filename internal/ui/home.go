package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todox/internal/tasks"
)

// Focus regions of the notes screen.
const (
	FocusInput = "input"
	FocusTasks = "tasks"
)

// taskItem implements list.DefaultItem for one task row.
type taskItem string

func (t taskItem) FilterValue() string { return string(t) }
func (t taskItem) Title() string       { return "☑ " + string(t) }
func (t taskItem) Description() string { return "" }

// HomeView is the My Notes screen: an input for new tasks above the task list.
type HomeView struct {
	Tasks *tasks.List
	Title string

	input textinput.Model
	list  list.Model
	focus *FocusManager
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the notes screen over l. The list is kept in sync via
// its subscription, so mutations made elsewhere show up on the next render.
func NewHomeView(title string, l *tasks.List) *HomeView {
	ti := textinput.New()
	ti.Placeholder = "Add a task"
	ti.Prompt = "+ "
	ti.Width = 40
	ti.CharLimit = 0
	ti.Focus()

	lm := list.New(nil, NewCompactListDelegate(), 80, 16)
	lm.Title = "My Tasks"
	lm.SetShowStatusBar(false)
	lm.SetFilteringEnabled(false)
	lm.SetShowHelp(false)
	lm.DisableQuitKeybindings()
	lm.Styles.Title = Styles.Title.UnsetBackground()
	lm.Styles.NoItems = Styles.Empty.PaddingLeft(2)
	lm.SetStatusBarItemName("task", "tasks")

	h := &HomeView{
		Tasks: l,
		Title: title,
		input: ti,
		list:  lm,
	}
	h.focus = &FocusManager{
		Current: FocusInput,
		Order:   []string{FocusInput, FocusTasks},
		OnChange: func(_, to string) {
			if to == FocusInput {
				h.input.Focus()
			} else {
				h.input.Blur()
			}
		},
	}
	h.input.SetValue(l.Draft())
	h.syncItems()
	l.Subscribe(func(tasks.Event) { h.syncItems() })
	return h
}

// Focused returns the focused region, FocusInput or FocusTasks.
func (h *HomeView) Focused() string {
	return h.focus.Current
}

// Cursor returns the list offset under the cursor.
func (h *HomeView) Cursor() int {
	return h.list.Index()
}

// CapturesText implements TextCapturer.
func (h *HomeView) CapturesText() bool {
	return h.focus.Is(FocusInput)
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	if h.focus.Is(FocusInput) {
		return textinput.Blink
	}
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.input.Width = max(10, msg.Width-8)
		h.list.SetSize(msg.Width, max(3, msg.Height-5))
		return h, nil
	case tea.KeyMsg:
		if h.focus.Is(FocusInput) {
			return h.updateInput(msg)
		}
		return h.updateTasks(msg)
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HomeView) updateInput(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		h.Tasks.SetDraft(h.input.Value())
		if h.Tasks.Submit() {
			h.input.Reset()
		}
		return h, nil
	case "tab":
		h.focus.Next()
		return h, nil
	case "shift+tab":
		h.focus.Prev()
		return h, nil
	case "esc", "down":
		h.focus.SetFocus(FocusTasks)
		return h, nil
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	h.Tasks.SetDraft(h.input.Value())
	return h, cmd
}

func (h *HomeView) updateTasks(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "tab":
		h.focus.Next()
		return h, textinput.Blink
	case "shift+tab":
		h.focus.Prev()
		return h, textinput.Blink
	case "i", "a":
		h.focus.SetFocus(FocusInput)
		return h, textinput.Blink
	case "d", "x", "delete", "backspace":
		if h.Tasks.Len() > 0 {
			h.Tasks.Delete(h.list.Index())
		}
		return h, nil
	}
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

// syncItems rebuilds the rows from the task list and keeps the cursor in range.
func (h *HomeView) syncItems() {
	items := h.Tasks.Items()
	rows := make([]list.Item, len(items))
	for i, t := range items {
		rows[i] = taskItem(t)
	}
	idx := h.list.Index()
	h.list.SetItems(rows)
	if n := len(rows); n > 0 && idx >= n {
		h.list.Select(n - 1)
	}
}

// View implements View.
func (h *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(h.Title) + "\n")
	box := Styles.Input
	if h.focus.Is(FocusInput) {
		box = Styles.InputOn
	}
	b.WriteString(box.Render(h.input.View()) + "\n")
	b.WriteString(h.list.View())
	return b.String()
}
