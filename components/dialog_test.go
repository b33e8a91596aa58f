package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
)

func TestDialogTriggerOpensAndCloseControlCloses(t *testing.T) {
	t.Parallel()

	d := NewDialog(DialogConfig{Target: interaction.KeyTarget})
	trigger := d.Trigger("Open settings")
	content := d.Content(NewText("settings form")).
		WithTitle("Settings").
		WithDescription("Adjust your preferences")

	assert.False(t, d.Open())
	assert.False(t, content.Mounted())
	assert.NotContains(t, d.View(), "settings form")

	trigger.Focus()
	d.Update(keyEnter())
	assert.True(t, d.Open())
	assert.True(t, content.Mounted())
	view := d.View()
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "settings form")

	trigger.Blur()
	content.FocusClose()
	d.Update(keyEnter())
	assert.False(t, d.Open())
	assert.False(t, content.Mounted())
}

func TestDialogSubPartsRequireScope(t *testing.T) {
	t.Parallel()

	_, err := NewDialogTrigger(nil, "x")
	require.Error(t, err)

	var misuse *wefterrors.MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "DialogTrigger", misuse.Part)
	assert.Equal(t, "Dialog", misuse.Composite)

	_, err = NewDialogContent(nil)
	require.Error(t, err)
}

func TestControlledDialogReportsButNeverMoves(t *testing.T) {
	t.Parallel()

	var reported []bool
	d := NewDialog(DialogConfig{
		Open:         Ptr(false),
		OnOpenChange: func(open bool) { reported = append(reported, open) },
		Target:       interaction.PointerTarget,
	})
	trigger := d.Trigger("Open")
	trigger.SetRegion(hitRegion)
	content := d.Content(NewText("body"))

	click(d.Update)

	assert.Equal(t, []bool{true}, reported)
	assert.False(t, d.Open())
	assert.False(t, content.Mounted())

	d.SyncOpen(true)
	assert.True(t, d.Open())
	assert.True(t, content.Mounted())
}

func TestForceMountedDialogContentRendersHidden(t *testing.T) {
	t.Parallel()

	d := NewDialog(DialogConfig{ForceMount: true})
	content := d.Content(NewText("hidden form"))

	assert.True(t, content.Mounted())
	assert.True(t, content.Hidden())
	view := content.View()
	assert.Contains(t, view, hiddenMarker)
	assert.Contains(t, view, "hidden form")

	d.SetOpen(true)
	assert.False(t, content.Hidden())
	assert.NotContains(t, content.View(), hiddenMarker)
}

func TestDisabledDialogIgnoresInteraction(t *testing.T) {
	t.Parallel()

	d := NewDialog(DialogConfig{Disabled: true, Target: interaction.PointerTarget})
	trigger := d.Trigger("Open")
	trigger.SetRegion(hitRegion)
	d.Content(NewText("body"))

	click(d.Update)
	d.SetOpen(true)

	assert.False(t, d.Open())
}

func TestDialogTriggerAsChild(t *testing.T) {
	t.Parallel()

	d := NewDialog(DialogConfig{})
	trigger := d.Trigger("ignored").AsChild(NewText("custom trigger"))
	require.NoError(t, trigger.Validate())

	view := trigger.View()
	assert.Contains(t, view, "custom trigger")
	assert.NotContains(t, view, "ignored")
}

func TestDialogMountCallbacks(t *testing.T) {
	t.Parallel()

	var events []string
	d := NewDialog(DialogConfig{
		OnMount:   func() { events = append(events, "mount") },
		OnUnmount: func() { events = append(events, "unmount") },
	})
	d.Content(NewText("body"))

	d.SetOpen(true)
	d.SetOpen(false)

	assert.Equal(t, []string{"mount", "unmount"}, events)
}
