package interaction

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRegion = Region{X: 2, Y: 1, Width: 10, Height: 3}

func motion(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func press(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestRegionContains(t *testing.T) {
	t.Parallel()

	assert.True(t, testRegion.Contains(2, 1))
	assert.True(t, testRegion.Contains(11, 3))
	assert.False(t, testRegion.Contains(12, 1))
	assert.False(t, testRegion.Contains(2, 4))
	assert.False(t, testRegion.Contains(1, 1))
}

func TestPointerHoverEnterLeave(t *testing.T) {
	t.Parallel()

	a := NewAdapter(PointerTarget)

	assert.Equal(t, []Intent{IntentHoverEnter}, a.Translate(motion(5, 2), testRegion))
	// Motion within the region does not repeat the enter.
	assert.Empty(t, a.Translate(motion(6, 2), testRegion))
	assert.Equal(t, []Intent{IntentHoverLeave}, a.Translate(motion(0, 0), testRegion))
	assert.Empty(t, a.Translate(motion(0, 1), testRegion))
}

func TestPointerPressReleaseActivatesOnce(t *testing.T) {
	t.Parallel()

	a := NewAdapter(PointerTarget)

	got := a.Translate(press(5, 2), testRegion)
	assert.Equal(t, []Intent{IntentHoverEnter, IntentPressStart}, got)

	got = a.Translate(release(5, 2), testRegion)
	assert.Equal(t, []Intent{IntentPressEnd, IntentActivate}, got)

	// A release without a preceding press is ignored.
	assert.Empty(t, a.Translate(release(5, 2), testRegion))
}

func TestPointerReleaseOutsideRegionDoesNotActivate(t *testing.T) {
	t.Parallel()

	a := NewAdapter(PointerTarget)
	a.Translate(press(5, 2), testRegion)

	got := a.Translate(release(50, 20), testRegion)
	assert.Equal(t, []Intent{IntentPressEnd}, got)
}

func TestPointerIgnoresNonLeftButtons(t *testing.T) {
	t.Parallel()

	a := NewAdapter(PointerTarget)
	msg := tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}

	assert.Empty(t, a.Translate(msg, testRegion))
}

func TestPointerFocusVisibleAlwaysFalse(t *testing.T) {
	t.Parallel()

	a := NewAdapter(PointerTarget)
	a.Translate(press(5, 2), testRegion)

	assert.False(t, a.FocusVisible())
	assert.Equal(t, PointerTarget, a.Target())
}

func TestDisabledPointerSuppressesAllIntents(t *testing.T) {
	t.Parallel()

	a := NewAdapter(PointerTarget, WithDisabledFunc(func() bool { return true }))

	assert.Empty(t, a.Translate(motion(5, 2), testRegion))
	assert.Empty(t, a.Translate(press(5, 2), testRegion))
	assert.Empty(t, a.Translate(release(5, 2), testRegion))
}

func TestKeyActivationRequiresFocus(t *testing.T) {
	t.Parallel()

	a := NewAdapter(KeyTarget)
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	assert.Empty(t, a.Translate(enter, testRegion))

	focuser, ok := a.(Focuser)
	require.True(t, ok)
	assert.Equal(t, []Intent{IntentFocus}, focuser.SetFocused(true))

	got := a.Translate(enter, testRegion)
	assert.Equal(t, []Intent{IntentPressStart, IntentPressEnd, IntentActivate}, got)
}

func TestKeySpaceActivates(t *testing.T) {
	t.Parallel()

	a := NewAdapter(KeyTarget)
	a.(Focuser).SetFocused(true)

	space := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	got := a.Translate(space, testRegion)
	assert.Equal(t, []Intent{IntentPressStart, IntentPressEnd, IntentActivate}, got)
}

func TestKeyFocusVisibleTracksFocus(t *testing.T) {
	t.Parallel()

	a := NewAdapter(KeyTarget)
	focuser := a.(Focuser)

	assert.False(t, a.FocusVisible())
	focuser.SetFocused(true)
	assert.True(t, a.FocusVisible())

	assert.Equal(t, []Intent{IntentBlur}, focuser.SetFocused(false))
	assert.False(t, a.FocusVisible())

	// No-op transitions produce no intents.
	assert.Empty(t, focuser.SetFocused(false))
}

func TestDisabledKeyAdapterSuppressesFocusAndActivation(t *testing.T) {
	t.Parallel()

	a := NewAdapter(KeyTarget, WithDisabledFunc(func() bool { return true }))

	assert.Empty(t, a.(Focuser).SetFocused(true))
	assert.Empty(t, a.Translate(tea.KeyMsg{Type: tea.KeyEnter}, testRegion))
}

func TestKeyIgnoresUnrelatedKeys(t *testing.T) {
	t.Parallel()

	a := NewAdapter(KeyTarget)
	a.(Focuser).SetFocused(true)

	assert.Empty(t, a.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, testRegion))
	assert.Empty(t, a.Translate(tea.KeyMsg{Type: tea.KeyTab}, testRegion))
}
