package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todox/internal/tabs"
	"todox/internal/tasks"
)

// Options configures NewAppModel.
type Options struct {
	Title   string
	Style   string   // config.StylePlain or config.StyleFuturistic
	Seed    []string // initial tasks
	ExitTab bool     // append an Exit tab
	// Dismiss is called when the Exit tab is selected. May be nil.
	Dismiss tabs.Dismisser
}

// AppModel is the root model: a tab container over the notes, create and
// favorites screens. Only the screen at Tabs.Selected() is rendered; the
// others keep their state while hidden.
type AppModel struct {
	Tabs       *tabs.Selection
	Screens    []View
	Home       *HomeView
	TabBar     TabBar
	KeyHandler *KeyHandler
	Help       help.Model

	width, height int
	dismissed     bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) (*AppModel, error) {
	if opts.Title == "" {
		opts.Title = "Mini To-Do"
	}
	a := &AppModel{}

	list := tasks.New(opts.Seed...)
	a.Home = NewHomeView(opts.Title, list)
	a.Screens = []View{a.Home, NewCreateView(opts.Style), NewFavoritesView(opts.Style)}

	specs := append([]TabSpec(nil), DefaultTabs...)
	var tabOpts []tabs.Option
	if opts.ExitTab {
		host := opts.Dismiss
		tabOpts = append(tabOpts, tabs.WithExitTab(tabs.DismissFunc(func() {
			a.dismissed = true
			if host != nil {
				host.Dismiss()
			}
		})))
		specs = append(specs, ExitTab)
	}
	sel, err := tabs.New(len(a.Screens), tabOpts...)
	if err != nil {
		return nil, fmt.Errorf("tab container: %w", err)
	}
	a.Tabs = sel
	a.TabBar = TabBar{Tabs: specs, Style: opts.Style}

	sel.Subscribe(func(c tabs.Change) {
		log.Printf("tab %d -> %d (%s)", c.From, c.To, c.Outcome)
	})
	list.Subscribe(func(ev tasks.Event) {
		log.Printf("tasks %s: %d items", ev.Kind, len(ev.Items))
	})

	a.KeyHandler = NewKeyHandler(a.newKeybindRegistry())
	a.Help = help.New()
	a.Help.Styles.ShortKey = Styles.Selected
	a.Help.Styles.ShortDesc = Styles.Hint
	a.Help.Styles.FullKey = Styles.Selected
	a.Help.Styles.FullDesc = Styles.Hint
	return a, nil
}

func (a *AppModel) newKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	for i, t := range a.TabBar.Tabs {
		i := i // per-iteration copy; go 1.21 loop variables are shared
		k := strconv.Itoa(i + 1)
		reg.Bind([]string{k}, k, t.Title, func() tea.Msg { return SelectTabMsg{Index: i} })
	}
	reg.Bind([]string{"left", "h"}, "←/h", "prev tab", func() tea.Msg { return PrevTabMsg{} }, Short())
	reg.Bind([]string{"right", "l"}, "→/l", "next tab", func() tea.Msg { return NextTabMsg{} }, Short())
	reg.Bind([]string{"?"}, "?", "help", func() tea.Msg { return ToggleHelpMsg{} }, Short())
	reg.Bind([]string{"q"}, "q", "quit", tea.Quit, Short())
	reg.Bind([]string{"ctrl+c"}, "ctrl+c", "quit", tea.Quit, Always())
	return reg
}

// Dismissed reports whether the Exit tab was selected.
func (a *AppModel) Dismissed() bool {
	return a.dismissed
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.TabBar.Width = msg.Width
		a.Help.Width = msg.Width
		return a, a.resizeScreens()
	case SelectTabMsg:
		return a, a.selectTab(msg.Index)
	case NextTabMsg:
		a.Tabs.Next()
		return a, a.currentView().Init()
	case PrevTabMsg:
		a.Tabs.Prev()
		return a, a.currentView().Init()
	case ToggleHelpMsg:
		a.Help.ShowAll = !a.Help.ShowAll
		if a.height == 0 {
			return a, nil
		}
		return a, a.resizeScreens()
	case tea.MouseMsg:
		if i, ok := a.tabAt(msg); ok {
			return a, a.selectTab(i)
		}
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.capturing()); consumed {
			return a, cmd
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setScreen(a.Tabs.Selected(), v)
	return a, cmd
}

// resizeScreens sends the body size to every screen, hidden ones included.
func (a *appModelAdapter) resizeScreens() tea.Cmd {
	body := tea.WindowSizeMsg{Width: a.width, Height: a.bodyHeight()}
	var cmds []tea.Cmd
	for i, s := range a.Screens {
		v, cmd := s.Update(body)
		a.setScreen(i, v)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// selectTab applies a tap on tab i.
func (a *appModelAdapter) selectTab(i int) tea.Cmd {
	out, err := a.Tabs.Select(i)
	if err != nil {
		log.Printf("select tab: %v", err)
		return nil
	}
	switch out {
	case tabs.Dismissed:
		return tea.Quit
	case tabs.Switched:
		return a.currentView().Init()
	}
	return nil
}

// tabAt returns the tab under a left click on the tab bar.
func (a *appModelAdapter) tabAt(msg tea.MouseMsg) (int, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	if a.height == 0 || msg.Y < a.height-tabBarHeight || msg.Y >= a.height {
		return 0, false
	}
	i := a.TabBar.HitTest(msg.X)
	return i, i >= 0
}

func (a *appModelAdapter) capturing() bool {
	tc, ok := a.currentView().(TextCapturer)
	return ok && tc.CapturesText()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.currentView().View()
	footer := a.Help.View(NewKeyMap(a.KeyHandler.Registry))
	if a.height > 0 {
		body = lipgloss.NewStyle().
			Height(a.bodyHeight()).
			MaxHeight(a.bodyHeight()).
			Render(body)
	}
	var b strings.Builder
	b.WriteString(body + "\n")
	b.WriteString(footer + "\n")
	b.WriteString(a.TabBar.View(a.Tabs.Selected()))
	return b.String()
}

// bodyHeight is what remains for the active screen after the footer and tab bar.
func (a *AppModel) bodyHeight() int {
	footer := 1
	if a.Help.ShowAll {
		footer = 4
	}
	return max(1, a.height-tabBarHeight-footer)
}

func (a *AppModel) currentView() View {
	return a.Screens[a.Tabs.Selected()]
}

func (a *AppModel) setScreen(i int, v View) {
	a.Screens[i] = v
	if h, ok := v.(*HomeView); ok {
		a.Home = h
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
