package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
)

func TestCollapsibleTriggerTogglesContent(t *testing.T) {
	t.Parallel()

	c := NewCollapsible(CollapsibleConfig{Target: interaction.PointerTarget})
	trigger := c.Trigger("Details")
	trigger.SetRegion(hitRegion)
	content := c.Content(NewText("body"))

	assert.False(t, c.Open())
	assert.False(t, content.Mounted())
	assert.NotContains(t, c.View(), "body")

	click(trigger.Update)
	assert.True(t, c.Open())
	assert.True(t, content.Mounted())
	assert.Contains(t, c.View(), "body")

	click(trigger.Update)
	assert.False(t, c.Open())
	assert.False(t, content.Mounted())
}

func TestCollapsibleSubPartsRequireScope(t *testing.T) {
	t.Parallel()

	_, err := NewCollapsibleTrigger(nil, "x")
	require.Error(t, err)

	var misuse *wefterrors.MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "CollapsibleTrigger", misuse.Part)
	assert.Equal(t, "Collapsible", misuse.Composite)
	assert.Contains(t, err.Error(), "must be used within Collapsible")

	_, err = NewCollapsibleContent(nil)
	require.Error(t, err)
}

func TestControlledCollapsibleReportsButNeverMoves(t *testing.T) {
	t.Parallel()

	var reported []bool
	c := NewCollapsible(CollapsibleConfig{
		Open:         Ptr(false),
		OnOpenChange: func(open bool) { reported = append(reported, open) },
		Target:       interaction.PointerTarget,
	})
	trigger := c.Trigger("Details")
	trigger.SetRegion(hitRegion)
	content := c.Content(NewText("body"))

	click(trigger.Update)

	assert.Equal(t, []bool{true}, reported)
	assert.False(t, c.Open(), "controlled collapsible waits for the owner")
	assert.False(t, content.Mounted())

	c.SyncOpen(true)
	assert.True(t, c.Open())
	assert.True(t, content.Mounted())
}

func TestDisabledCollapsibleIgnoresToggle(t *testing.T) {
	t.Parallel()

	changed := false
	c := NewCollapsible(CollapsibleConfig{
		Disabled:     true,
		OnOpenChange: func(bool) { changed = true },
		Target:       interaction.PointerTarget,
	})
	trigger := c.Trigger("Details")
	trigger.SetRegion(hitRegion)

	click(trigger.Update)
	c.Toggle()

	assert.False(t, changed)
	assert.False(t, c.Open())
}

func TestForceMountedContentStaysMountedButHidden(t *testing.T) {
	t.Parallel()

	c := NewCollapsible(CollapsibleConfig{ForceMount: true})
	content := c.Content(NewText("secret"))

	assert.True(t, content.Mounted())
	assert.True(t, content.Hidden())
	view := content.View()
	assert.Contains(t, view, hiddenMarker)
	assert.Contains(t, view, "secret")

	c.SetOpen(true)
	assert.True(t, content.Mounted())
	assert.False(t, content.Hidden())
	assert.NotContains(t, content.View(), hiddenMarker)
}

func TestCollapsibleMountCallbacksFireOnTransitions(t *testing.T) {
	t.Parallel()

	var events []string
	c := NewCollapsible(CollapsibleConfig{
		OnMount:   func() { events = append(events, "mount") },
		OnUnmount: func() { events = append(events, "unmount") },
	})
	c.Content(NewText("body"))

	c.SetOpen(true)
	c.SetOpen(true) // no transition, no callback
	c.SetOpen(false)

	assert.Equal(t, []string{"mount", "unmount"}, events)
}

func TestSetDefaultOpenResyncsUncontrolledOnly(t *testing.T) {
	t.Parallel()

	u := NewCollapsible(CollapsibleConfig{DefaultOpen: false})
	u.SetDefaultOpen(true)
	assert.True(t, u.Open())

	c := NewCollapsible(CollapsibleConfig{Open: Ptr(false)})
	c.SetDefaultOpen(true)
	assert.False(t, c.Open())
}

func TestCollapsibleTriggerMarkerTracksOpenState(t *testing.T) {
	t.Parallel()

	c := NewCollapsible(CollapsibleConfig{})
	trigger := c.Trigger("Details")

	assert.Contains(t, trigger.View(), "▸")
	c.SetOpen(true)
	assert.Contains(t, trigger.View(), "▾")
}
