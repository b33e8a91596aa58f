package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/theme"
)

func TestButtonPointerClickActivatesOnce(t *testing.T) {
	t.Parallel()

	presses := 0
	btn := NewButton(ButtonConfig{
		Label:   "Save",
		OnPress: func() { presses++ },
		Target:  interaction.PointerTarget,
	})
	btn.SetRegion(hitRegion)

	click(btn.Update)
	assert.Equal(t, 1, presses)

	// A release outside the region ends the press without activating.
	btn.Update(mousePress(1, 0))
	assert.True(t, btn.Pressed())
	btn.Update(mouseRelease(50, 20))
	assert.False(t, btn.Pressed())
	assert.Equal(t, 1, presses)
}

func TestButtonKeyActivationRequiresFocus(t *testing.T) {
	t.Parallel()

	presses := 0
	btn := NewButton(ButtonConfig{
		Label:   "Save",
		OnPress: func() { presses++ },
		Target:  interaction.KeyTarget,
	})

	btn.Update(keyEnter())
	assert.Equal(t, 0, presses)

	btn.Focus()
	assert.True(t, btn.FocusVisible())
	btn.Update(keyEnter())
	assert.Equal(t, 1, presses)

	btn.Blur()
	assert.False(t, btn.FocusVisible())
}

func TestDisabledButtonSuppressesAllInteraction(t *testing.T) {
	t.Parallel()

	presses := 0
	btn := NewButton(ButtonConfig{
		Label:    "Save",
		Disabled: true,
		OnPress:  func() { presses++ },
		Target:   interaction.PointerTarget,
	})
	btn.SetRegion(hitRegion)

	click(btn.Update)
	btn.Update(mouseMotion(1, 0))

	assert.Equal(t, 0, presses)
	assert.False(t, btn.Hovered())
	assert.False(t, btn.Pressed())
}

func TestButtonInvalidVariantFailsValidation(t *testing.T) {
	t.Parallel()

	btn := NewButton(ButtonConfig{Label: "x", Variant: theme.ButtonVariant(99)})

	err := btn.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Button")
	assert.Contains(t, btn.View(), "invalid Button configuration")
}

func TestButtonAsChildRendersNoWrapper(t *testing.T) {
	t.Parallel()

	child := NewText("open settings")
	btn := NewButton(ButtonConfig{Label: "ignored"}).AsChild(child)
	require.NoError(t, btn.Validate())

	view := btn.View()
	assert.Contains(t, view, "open settings")
	assert.NotContains(t, view, "ignored")
}

func TestButtonAsChildNilChildIsConfigError(t *testing.T) {
	t.Parallel()

	btn := NewButton(ButtonConfig{Label: "x"}).AsChild(nil)
	require.Error(t, btn.Validate())
}

func TestButtonStyleOverrideWinsOverAppliers(t *testing.T) {
	t.Parallel()

	btn := NewButton(ButtonConfig{Label: "x"}).
		WithAppliers(theme.Foreground(theme.Danger))
	btn.SetStyle(plainStyle())

	assert.True(t, btn.HasOverride())
	assert.Equal(t, "x", btn.View())
}

func TestButtonViewIsIdempotent(t *testing.T) {
	t.Parallel()

	btn := NewButton(ButtonConfig{Label: "Save", Variant: theme.ButtonPrimary})
	first := btn.View()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, btn.View())
	}
}
