package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/theme"
)

func TestAlertStartsVisibleByDefault(t *testing.T) {
	t.Parallel()

	alert := InfoAlert("heads up")

	assert.True(t, alert.Visible())
	assert.True(t, alert.Mounted())
	assert.Contains(t, alert.View(), "heads up")
}

func TestUncontrolledClosableAlertCloseUnmounts(t *testing.T) {
	t.Parallel()

	var calls []string
	alert := NewAlert(AlertConfig{
		Message:  "saved",
		Variant:  theme.AlertSuccess,
		Closable: true,
		OnClose:  func() { calls = append(calls, "close") },
		OnVisibleChange: func(v bool) {
			assert.False(t, v)
			calls = append(calls, "visible-change")
		},
		OnUnmount: func() { calls = append(calls, "unmount") },
	})

	alert.Close()

	// OnClose fires before the visibility change is requested.
	assert.Equal(t, []string{"close", "visible-change", "unmount"}, calls)
	assert.False(t, alert.Visible())
	assert.False(t, alert.Mounted())
	assert.Empty(t, alert.View())
}

func TestControlledAlertCloseReportsButStaysVisible(t *testing.T) {
	t.Parallel()

	requested := true
	alert := NewAlert(AlertConfig{
		Message:         "pinned",
		Closable:        true,
		Visible:         Ptr(true),
		OnVisibleChange: func(v bool) { requested = v },
	})

	alert.Close()

	assert.False(t, requested)
	assert.True(t, alert.Visible(), "controlled alert never self-hides")
	assert.True(t, alert.Mounted())

	// The owner feeds the value back and the alert follows.
	alert.SyncVisible(false)
	assert.False(t, alert.Visible())
	assert.False(t, alert.Mounted())
}

func TestNonClosableAlertIgnoresClose(t *testing.T) {
	t.Parallel()

	changed := false
	alert := NewAlert(AlertConfig{
		Message:         "permanent",
		OnVisibleChange: func(bool) { changed = true },
	})

	alert.Close()

	assert.False(t, changed)
	assert.True(t, alert.Visible())
	assert.NotContains(t, alert.View(), "✕")
}

func TestDisabledAlertIgnoresCloseInteraction(t *testing.T) {
	t.Parallel()

	alert := NewAlert(AlertConfig{
		Message:  "stuck",
		Closable: true,
		Disabled: true,
		Target:   interaction.PointerTarget,
	})
	alert.SetCloseRegion(hitRegion)

	click(alert.Update)
	alert.Close()

	assert.True(t, alert.Visible())
}

func TestAlertCloseViaPointerGesture(t *testing.T) {
	t.Parallel()

	alert := NewAlert(AlertConfig{
		Message:  "dismiss me",
		Closable: true,
		Target:   interaction.PointerTarget,
	})
	alert.SetCloseRegion(hitRegion)

	click(alert.Update)

	assert.False(t, alert.Visible())
}

func TestAlertCloseViaKeyboard(t *testing.T) {
	t.Parallel()

	alert := NewAlert(AlertConfig{
		Message:  "dismiss me",
		Closable: true,
		Target:   interaction.KeyTarget,
	})

	alert.Update(keyEnter())
	assert.True(t, alert.Visible(), "activation requires focus")

	alert.FocusClose()
	alert.Update(keyEnter())
	assert.False(t, alert.Visible())
}

func TestAlertVariantIcons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		alert   *Alert
		icon    string
		message string
	}{
		{"info", InfoAlert("i"), "ℹ", "i"},
		{"success", SuccessAlert("s"), "✓", "s"},
		{"warning", WarningAlert("w"), "⚠", "w"},
		{"error", ErrorAlert("e"), "✗", "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := tt.alert.View()
			assert.Contains(t, view, tt.icon)
			assert.Contains(t, view, tt.message)
		})
	}
}

func TestAlertInvalidVariantFailsValidation(t *testing.T) {
	t.Parallel()

	alert := NewAlert(AlertConfig{Message: "x", Variant: theme.AlertVariant(42)})

	require.Error(t, alert.Validate())
	assert.Contains(t, alert.View(), "invalid Alert configuration")
}

func TestForceMountedAlertStaysMountedButHiddenAfterClose(t *testing.T) {
	t.Parallel()

	unmounted := false
	alert := NewAlert(AlertConfig{
		Message:    "sticky",
		Closable:   true,
		ForceMount: true,
		OnUnmount:  func() { unmounted = true },
	})

	alert.Close()

	assert.False(t, alert.Visible())
	assert.True(t, alert.Mounted(), "force mount keeps the alert in the tree")
	assert.True(t, alert.Hidden())
	assert.False(t, unmounted)

	view := alert.View()
	assert.Contains(t, view, "[hidden]")
	assert.Contains(t, view, "sticky")
}

func TestAlertDefaultVisibleFalseStartsHidden(t *testing.T) {
	t.Parallel()

	alert := NewAlert(AlertConfig{Message: "later", DefaultVisible: Ptr(false)})

	assert.False(t, alert.Visible())
	assert.False(t, alert.Mounted())
	assert.Empty(t, alert.View())
}
