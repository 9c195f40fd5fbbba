// Package tabs tracks which screen of the tab container is active.
//
// A Selection has a fixed number of regular tabs and, optionally, a trailing
// exit pseudo-tab. Selecting a regular tab switches screens; selecting the
// exit tab hands control back to the host through its Dismisser and leaves
// the selection as it was.
package tabs

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoTabs      = errors.New("tabs: at least one tab is required")
	ErrOutOfRange  = errors.New("tabs: index out of range")
	ErrNoDismisser = errors.New("tabs: exit tab requires a dismisser")
)

// Dismisser closes the whole tabbed presentation. It is supplied by the host.
type Dismisser interface {
	Dismiss()
}

// DismissFunc adapts a plain func to Dismisser.
type DismissFunc func()

// Dismiss calls f.
func (f DismissFunc) Dismiss() { f() }

// Outcome reports what a Select did.
type Outcome int

const (
	Unchanged Outcome = iota // regular tab that was already active
	Switched
	Dismissed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Switched:
		return "switched"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after every successful Select.
type Change struct {
	From    int
	To      int // equals From when Outcome is Dismissed
	Outcome Outcome
}

// Option configures a Selection.
type Option func(*Selection)

// WithExitTab appends an exit pseudo-tab after the regular tabs.
func WithExitTab(d Dismisser) Option {
	return func(s *Selection) {
		s.dismiss = d
		s.hasExit = true
	}
}

// Selection holds the active tab index. The zero value is not usable; use New.
type Selection struct {
	regular  int
	selected int
	hasExit  bool
	dismiss  Dismisser
	subs     map[int]func(Change)
	nextID   int
}

// New creates a Selection over count regular tabs with tab 0 active.
func New(count int, opts ...Option) (*Selection, error) {
	if count < 1 {
		return nil, fmt.Errorf("new selection with %d tabs: %w", count, ErrNoTabs)
	}
	s := &Selection{regular: count, subs: make(map[int]func(Change))}
	for _, o := range opts {
		o(s)
	}
	if s.hasExit && s.dismiss == nil {
		return nil, ErrNoDismisser
	}
	return s, nil
}

// Selected returns the active regular tab.
func (s *Selection) Selected() int {
	return s.selected
}

// Count returns the number of tabs, including the exit tab if present.
func (s *Selection) Count() int {
	if s.hasExit {
		return s.regular + 1
	}
	return s.regular
}

// HasExit reports whether the last tab is the exit pseudo-tab.
func (s *Selection) HasExit() bool {
	return s.hasExit
}

// IsExit reports whether i is the exit pseudo-tab.
func (s *Selection) IsExit(i int) bool {
	return s.hasExit && i == s.regular
}

// Select activates tab i. For the exit tab the dismisser is invoked once
// and the active tab is left untouched.
func (s *Selection) Select(i int) (Outcome, error) {
	if i < 0 || i >= s.Count() {
		return Unchanged, fmt.Errorf("select tab %d of %d: %w", i, s.Count(), ErrOutOfRange)
	}
	from := s.selected
	if s.IsExit(i) {
		s.dismiss.Dismiss()
		s.notify(Change{From: from, To: from, Outcome: Dismissed})
		return Dismissed, nil
	}
	out := Switched
	if i == from {
		out = Unchanged
	}
	s.selected = i
	s.notify(Change{From: from, To: i, Outcome: out})
	return out, nil
}

// Next activates the next regular tab, wrapping around. The exit tab is
// never reached by cycling.
func (s *Selection) Next() int {
	_, _ = s.Select((s.selected + 1) % s.regular)
	return s.selected
}

// Prev activates the previous regular tab, wrapping around.
func (s *Selection) Prev() int {
	_, _ = s.Select((s.selected - 1 + s.regular) % s.regular)
	return s.selected
}

// Subscribe registers fn to be called after every successful Select.
// The returned func removes the subscription.
func (s *Selection) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Selection) notify(c Change) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn(c)
		}
	}
}
