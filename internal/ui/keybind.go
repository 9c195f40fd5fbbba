package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key with its command.
type binding struct {
	key    key.Binding
	cmd    tea.Cmd
	always bool // fires even while a text field has focus
	short  bool // shown in the short help line
}

// KeybindRegistry maps keys to commands and describes them for the help view.
// Keys use tea.KeyMsg.String() notation: "q", "ctrl+c", "left", "1".
type KeybindRegistry struct {
	bindings []binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{}
}

// BindOption adjusts a binding at registration.
type BindOption func(*binding)

// Always makes the binding fire while a text field has focus.
func Always() BindOption { return func(b *binding) { b.always = true } }

// Short lists the binding in the one-line help.
func Short() BindOption { return func(b *binding) { b.short = true } }

// Bind registers cmd for keys. helpKey and desc are what the help view shows.
// A later binding for the same key takes precedence.
func (r *KeybindRegistry) Bind(keys []string, helpKey, desc string, cmd tea.Cmd, opts ...BindOption) {
	b := binding{
		key: key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc)),
		cmd: cmd,
	}
	for _, o := range opts {
		o(&b)
	}
	r.bindings = append(r.bindings, b)
}

// Lookup returns the command bound to msg. When capturing is true only
// Always bindings match.
func (r *KeybindRegistry) Lookup(msg tea.KeyMsg, capturing bool) tea.Cmd {
	for i := len(r.bindings) - 1; i >= 0; i-- {
		b := r.bindings[i]
		if capturing && !b.always {
			continue
		}
		if key.Matches(msg, b.key) {
			return b.cmd
		}
	}
	return nil
}

// KeyHandler dispatches KeyMsgs to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key must not be passed on to the active screen.
func (h *KeyHandler) Handle(msg tea.KeyMsg, capturing bool) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg, capturing); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap over a registry.
type KeyMap struct {
	registry *KeybindRegistry
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap creates a KeyMap for reg.
func NewKeyMap(reg *KeybindRegistry) KeyMap {
	return KeyMap{registry: reg}
}

// ShortHelp returns the bindings registered with Short.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var out []key.Binding
	for _, b := range km.registry.bindings {
		if b.short {
			out = append(out, b.key)
		}
	}
	return out
}

// FullHelp returns every binding, in columns of four.
func (km KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	var cols [][]key.Binding
	var col []key.Binding
	for _, b := range km.registry.bindings {
		col = append(col, b.key)
		if len(col) == 4 {
			cols = append(cols, col)
			col = nil
		}
	}
	if len(col) > 0 {
		cols = append(cols, col)
	}
	return cols
}
