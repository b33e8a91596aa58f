package interaction

import (
	tea "github.com/charmbracelet/bubbletea"
)

// pointerAdapter serves mouse-capable terminals. Hover intents are derived
// from motion events crossing the region boundary; an activation is a press
// and a release both landing inside the region.
type pointerAdapter struct {
	settings
	hovered bool
	pressed bool
}

func (p *pointerAdapter) Target() Target { return PointerTarget }

// FocusVisible is always false for the pointer target; focus rings belong to
// keyboard navigation.
func (p *pointerAdapter) FocusVisible() bool { return false }

func (p *pointerAdapter) Translate(msg tea.Msg, region Region) []Intent {
	if p.isDisabled() {
		return nil
	}

	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}

	inside := region.Contains(mouse.X, mouse.Y)

	var intents []Intent
	switch mouse.Action {
	case tea.MouseActionMotion:
		if inside && !p.hovered {
			p.hovered = true
			intents = append(intents, IntentHoverEnter)
		} else if !inside && p.hovered {
			p.hovered = false
			intents = append(intents, IntentHoverLeave)
		}

	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		if inside && !p.hovered {
			p.hovered = true
			intents = append(intents, IntentHoverEnter)
		}
		if inside {
			p.pressed = true
			intents = append(intents, IntentPressStart)
		}

	case tea.MouseActionRelease:
		if !p.pressed {
			return nil
		}
		p.pressed = false
		intents = append(intents, IntentPressEnd)
		// Press and release inside the region is exactly one activation.
		if inside {
			intents = append(intents, IntentActivate)
		}
	}

	return intents
}
