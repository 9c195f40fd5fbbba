package ui

// FocusManager tracks and rotates focus across the regions of a screen.
type FocusManager struct {
	Current  string   // ID of the focused region
	Order    []string // Rotation order
	OnChange func(from, to string)
}

// Next moves focus to the next region in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous region in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
