package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
)

func TestSelectTriggerTogglesList(t *testing.T) {
	t.Parallel()

	s := NewSelect(SelectConfig{Placeholder: "Pick one", Target: interaction.KeyTarget})
	trigger := s.Trigger()
	s.Item("go", "Go")
	s.Item("rust", "Rust")

	assert.False(t, s.Open())
	assert.NotContains(t, s.View(), "Rust")

	trigger.Focus()
	s.Update(keyEnter())
	assert.True(t, s.Open())
	assert.Contains(t, s.View(), "Rust")
}

func TestSelectItemActivationCommitsValueAndCloses(t *testing.T) {
	t.Parallel()

	var values []string
	var opens []bool
	s := NewSelect(SelectConfig{
		DefaultOpen:   true,
		OnValueChange: func(v string) { values = append(values, v) },
		OnOpenChange:  func(o bool) { opens = append(opens, o) },
		Target:        interaction.KeyTarget,
	})
	s.Trigger()
	item := s.Item("go", "Go")

	item.Focus()
	s.Update(keyEnter())

	assert.Equal(t, []string{"go"}, values)
	assert.Equal(t, []bool{false}, opens)
	assert.Equal(t, "go", s.Value())
	assert.False(t, s.Open())
	assert.True(t, item.Selected())
}

func TestSelectSubPartsRequireScope(t *testing.T) {
	t.Parallel()

	_, err := NewSelectTrigger(nil)
	require.Error(t, err)

	var misuse *wefterrors.MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "SelectTrigger", misuse.Part)
	assert.Equal(t, "Select", misuse.Composite)

	_, err = NewSelectItem(nil, "v", "l")
	require.Error(t, err)
}

func TestControlledSelectValueReportsButNeverMoves(t *testing.T) {
	t.Parallel()

	var requested string
	s := NewSelect(SelectConfig{
		Value:         Ptr("rust"),
		DefaultOpen:   true,
		OnValueChange: func(v string) { requested = v },
		Target:        interaction.KeyTarget,
	})
	s.Trigger()
	item := s.Item("go", "Go")
	s.Item("rust", "Rust")

	item.Focus()
	s.Update(keyEnter())

	assert.Equal(t, "go", requested)
	assert.Equal(t, "rust", s.Value(), "controlled select waits for the owner")

	s.SyncValue("go")
	assert.Equal(t, "go", s.Value())
}

func TestControlledOpenSelectNeverSelfCloses(t *testing.T) {
	t.Parallel()

	var opens []bool
	s := NewSelect(SelectConfig{
		Open:         Ptr(true),
		OnOpenChange: func(o bool) { opens = append(opens, o) },
		Target:       interaction.KeyTarget,
	})
	s.Trigger()
	item := s.Item("go", "Go")

	item.Focus()
	s.Update(keyEnter())

	assert.Equal(t, []bool{false}, opens)
	assert.True(t, s.Open(), "open stays where the owner put it")
	assert.Equal(t, "go", s.Value(), "value channel is uncontrolled and commits")
}

func TestDisabledSelectIgnoresInteraction(t *testing.T) {
	t.Parallel()

	s := NewSelect(SelectConfig{Disabled: true, Target: interaction.KeyTarget})
	trigger := s.Trigger()

	trigger.Focus()
	s.Update(keyEnter())
	s.SetOpen(true)

	assert.False(t, s.Open())
}

func TestSelectTriggerShowsPlaceholderThenSelection(t *testing.T) {
	t.Parallel()

	s := NewSelect(SelectConfig{Placeholder: "Pick one"})
	trigger := s.Trigger()
	s.Item("go", "Go")

	assert.Contains(t, trigger.View(), "Pick one")

	s.SetValue("go")
	view := trigger.View()
	assert.Contains(t, view, "Go")
	assert.NotContains(t, view, "Pick one")
}

func TestDisabledSelectItemIgnoresActivation(t *testing.T) {
	t.Parallel()

	s := NewSelect(SelectConfig{DefaultOpen: true, Target: interaction.KeyTarget})
	s.Trigger()
	item := s.Item("go", "Go")
	item.SetDisabled(true)

	item.Focus()
	s.Update(keyEnter())

	assert.Empty(t, s.Value())
	assert.True(t, s.Open())
}
