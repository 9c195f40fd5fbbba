// Package tasks holds the in-memory task list behind the My Notes screen.
// A List is owned by a single screen instance and mutated only from its
// event handlers; nothing is persisted.
package tasks

import (
	"sort"
	"strings"
)

// DefaultSeed is the content a fresh notes screen starts with.
var DefaultSeed = []string{"Buy milk", "Call mom"}

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventDeleted EventKind = "deleted"
)

// Event describes one successful mutation of a List.
type Event struct {
	Kind      EventKind
	Text      string   // added text (EventAdded)
	Positions []int    // removed offsets, ascending (EventDeleted)
	Items     []string // snapshot after the mutation
}

// List is an ordered sequence of task strings plus a draft input buffer.
// Items are prepended on add; duplicates are allowed. Empty or
// whitespace-only text is never stored.
type List struct {
	items  []string
	draft  string
	subs   map[int]func(Event)
	nextID int
}

// New creates a list seeded with the given items. Seed entries are trimmed
// and blank ones dropped so the no-empty-item invariant holds from the start.
func New(seed ...string) *List {
	l := &List{subs: make(map[int]func(Event))}
	for _, s := range seed {
		if t := strings.TrimSpace(s); t != "" {
			l.items = append(l.items, t)
		}
	}
	return l
}

// Items returns a copy of the current items, newest first.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Draft returns the current input buffer.
func (l *List) Draft() string {
	return l.draft
}

// SetDraft replaces the input buffer. Drafts are not validated.
func (l *List) SetDraft(s string) {
	l.draft = s
}

// Add trims raw and prepends it. Blank input is ignored and reported as
// false with the draft left as is. On success the draft is cleared.
func (l *List) Add(raw string) bool {
	t := strings.TrimSpace(raw)
	if t == "" {
		return false
	}
	l.items = append([]string{t}, l.items...)
	l.draft = ""
	l.notify(Event{Kind: EventAdded, Text: t})
	return true
}

// Submit adds the current draft.
func (l *List) Submit() bool {
	return l.Add(l.draft)
}

// Delete removes the items at the given offsets in a single splice,
// keeping the relative order of the rest. Repeated offsets count once and
// out-of-range offsets are skipped. Returns the number of items removed.
func (l *List) Delete(positions ...int) int {
	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(l.items) {
			drop[p] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]string, 0, len(l.items)-len(drop))
	removed := make([]int, 0, len(drop))
	for i, it := range l.items {
		if drop[i] {
			removed = append(removed, i)
			continue
		}
		kept = append(kept, it)
	}
	l.items = kept
	l.notify(Event{Kind: EventDeleted, Positions: removed})
	return len(removed)
}

// Subscribe registers fn to be called after every successful mutation.
// The returned func removes the subscription.
func (l *List) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	return func() { delete(l.subs, id) }
}

func (l *List) notify(ev Event) {
	if len(l.subs) == 0 {
		return
	}
	ev.Items = l.Items()
	ids := make([]int, 0, len(l.subs))
	for id := range l.subs {
		ids = append(ids, id)
	}
	// Subscription order.
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := l.subs[id]; ok {
			fn(ev)
		}
	}
}
