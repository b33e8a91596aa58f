package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeRunes(in *Input, s string) {
	for _, r := range s {
		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestUncontrolledInputAcceptsTyping(t *testing.T) {
	t.Parallel()

	var seen []string
	in := NewInput(InputConfig{
		Placeholder: "name",
		OnChange:    func(v string) { seen = append(seen, v) },
	})
	in.Focus()

	typeRunes(in, "ab")

	assert.Equal(t, "ab", in.Value())
	assert.Equal(t, []string{"a", "ab"}, seen)
}

func TestControlledInputSnapsBackToExternalValue(t *testing.T) {
	t.Parallel()

	var requested string
	in := NewInput(InputConfig{
		Value:    Ptr("fixed"),
		OnChange: func(v string) { requested = v },
	})
	in.Focus()

	typeRunes(in, "x")

	assert.Equal(t, "fixedx", requested, "edit is reported to the owner")
	assert.Equal(t, "fixed", in.Value(), "controlled input never moves on its own")
	assert.Contains(t, in.View(), "fixed")

	in.SyncValue("fixedx")
	assert.Equal(t, "fixedx", in.Value())
}

func TestDisabledInputIgnoresTyping(t *testing.T) {
	t.Parallel()

	changed := false
	in := NewInput(InputConfig{
		DefaultValue: "keep",
		Disabled:     true,
		OnChange:     func(string) { changed = true },
	})

	assert.Nil(t, in.Focus())
	typeRunes(in, "x")

	assert.False(t, changed)
	assert.Equal(t, "keep", in.Value())
}

func TestInputSetValueRoutesThroughReconciler(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{DefaultValue: "old"})
	in.SetValue("new")
	assert.Equal(t, "new", in.Value())

	controlled := NewInput(InputConfig{Value: Ptr("ext")})
	controlled.SetValue("new")
	assert.Equal(t, "ext", controlled.Value())
}

func TestInputRendersLabelAndPlaceholder(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{Label: "Email", Placeholder: "you@example.com"})

	view := in.View()
	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "you@example.com")
}

func TestInputWidthDefaultsToPlaceholderLength(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{Placeholder: "you@example.com"})
	assert.Contains(t, in.View(), "you@example.com")

	wide := NewInput(InputConfig{Placeholder: "hint", Width: 30})
	assert.Contains(t, wide.View(), "hint")

	bare := NewInput(InputConfig{DefaultValue: "typed"})
	assert.Contains(t, bare.View(), "typed")
}

func TestInputCharLimit(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{CharLimit: 3})
	in.Focus()

	typeRunes(in, "abcdef")

	assert.Equal(t, "abc", in.Value())
}
