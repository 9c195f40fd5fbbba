package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todox/internal/tasks"
)

func newTestHome() *HomeView {
	return NewHomeView("Mini To-Do", tasks.New(tasks.DefaultSeed...))
}

func TestHomeView_StartsFocusedOnInput(t *testing.T) {
	h := newTestHome()
	assert.Equal(t, FocusInput, h.Focused())
	assert.True(t, h.CapturesText())
	assert.NotNil(t, h.Init())
}

func TestHomeView_EnterAddsTrimmedTask(t *testing.T) {
	h := newTestHome()
	typeText(h, "  Walk dog  ")
	assert.Equal(t, "  Walk dog  ", h.Tasks.Draft())

	h.Update(keyMsg("enter"))
	assert.Equal(t, []string{"Walk dog", "Buy milk", "Call mom"}, h.Tasks.Items())
	assert.Equal(t, "", h.Tasks.Draft())
	assert.Equal(t, "", h.input.Value())
}

func TestHomeView_EnterOnBlankKeepsInput(t *testing.T) {
	h := newTestHome()
	typeText(h, "   ")
	h.Update(keyMsg("enter"))

	assert.Equal(t, []string{"Buy milk", "Call mom"}, h.Tasks.Items())
	assert.Equal(t, "   ", h.input.Value())
}

func TestHomeView_TypingDigitsGoesToInput(t *testing.T) {
	h := newTestHome()
	typeText(h, "q1")
	assert.Equal(t, "q1", h.input.Value())
}

func TestHomeView_DeleteUnderCursor(t *testing.T) {
	h := newTestHome()
	h.Tasks.Add("Walk dog")

	h.Update(keyMsg("tab"))
	require.Equal(t, FocusTasks, h.Focused())
	assert.False(t, h.CapturesText())

	h.Update(keyMsg("j"))
	require.Equal(t, 1, h.Cursor())
	h.Update(keyMsg("d"))
	assert.Equal(t, []string{"Walk dog", "Call mom"}, h.Tasks.Items())
}

func TestHomeView_DeleteLastKeepsCursorInRange(t *testing.T) {
	h := newTestHome()
	h.Update(keyMsg("esc"))
	h.Update(keyMsg("j"))
	require.Equal(t, 1, h.Cursor())

	h.Update(keyMsg("x"))
	assert.Equal(t, []string{"Buy milk"}, h.Tasks.Items())
	assert.Equal(t, 0, h.Cursor())

	h.Update(keyMsg("x"))
	assert.Equal(t, 0, h.Tasks.Len())
	h.Update(keyMsg("x"))
	assert.Equal(t, 0, h.Tasks.Len())
}

func TestHomeView_ReturnToInput(t *testing.T) {
	h := newTestHome()
	h.Update(keyMsg("esc"))
	require.Equal(t, FocusTasks, h.Focused())

	_, cmd := h.Update(keyMsg("i"))
	assert.NotNil(t, cmd)
	assert.Equal(t, FocusInput, h.Focused())
	assert.True(t, h.input.Focused())
}

func TestHomeView_ListFollowsExternalMutations(t *testing.T) {
	h := newTestHome()
	h.Tasks.Add("From elsewhere")
	assert.Equal(t, 3, len(h.list.Items()))
	assert.Contains(t, h.View(), "From elsewhere")
}

func TestHomeView_View(t *testing.T) {
	h := newTestHome()
	out := h.View()
	for _, want := range []string{"Mini To-Do", "Add a task", "My Tasks", "Buy milk", "Call mom"} {
		assert.True(t, strings.Contains(out, want), "view missing %q:\n%s", want, out)
	}
}

func TestHomeView_LongTaskIsStoredWhole(t *testing.T) {
	h := newTestHome()
	long := strings.Repeat("a", 300)
	h.Update(keyMsg(long))
	h.Update(keyMsg("enter"))

	require.Equal(t, 3, h.Tasks.Len())
	assert.Equal(t, long, h.Tasks.Items()[0])
}

func TestHomeView_TabRotatesFocus(t *testing.T) {
	h := newTestHome()
	h.Update(keyMsg("tab"))
	assert.Equal(t, FocusTasks, h.Focused())
	h.Update(keyMsg("tab"))
	assert.Equal(t, FocusInput, h.Focused())
	assert.True(t, h.input.Focused())
}
