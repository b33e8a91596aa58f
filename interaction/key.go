package interaction

import (
	tea "github.com/charmbracelet/bubbletea"
)

// keyAdapter serves keyboard-only terminals. Activation is enter or space on
// the focused component; hover intents never fire here.
type keyAdapter struct {
	settings
	focused bool
}

func (k *keyAdapter) Target() Target { return KeyTarget }

// FocusVisible reports the focus ring state. Meaningful only for this target.
func (k *keyAdapter) FocusVisible() bool { return k.focused }

// SetFocused updates keyboard focus and returns the focus-change intent, or
// nil when nothing changed or the component is disabled.
func (k *keyAdapter) SetFocused(focused bool) []Intent {
	if k.isDisabled() {
		return nil
	}
	if focused == k.focused {
		return nil
	}
	k.focused = focused
	if focused {
		return []Intent{IntentFocus}
	}
	return []Intent{IntentBlur}
}

func (k *keyAdapter) Translate(msg tea.Msg, _ Region) []Intent {
	if k.isDisabled() {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok || !k.focused {
		return nil
	}

	switch key.String() {
	case "enter", " ":
		// One keypress is one discrete activation.
		return []Intent{IntentPressStart, IntentPressEnd, IntentActivate}
	default:
		return nil
	}
}

// Focuser is implemented by adapters that track keyboard focus.
type Focuser interface {
	SetFocused(focused bool) []Intent
}
