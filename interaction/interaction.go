// Package interaction translates raw terminal events into the semantic intents
// interactive components consume.
//
// Two interaction targets exist: PointerTarget for mouse-capable terminals and
// KeyTarget for keyboard-only terminals. A component picks exactly one adapter
// at construction and never mixes targets within one instance. Regardless of
// target, a discrete user activation yields exactly one IntentActivate, and a
// disabled component receives no intents at all.
package interaction

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Intent is a semantic interaction event, independent of the terminal's event
// encoding.
type Intent int

const (
	IntentPressStart Intent = iota
	IntentPressEnd
	IntentActivate
	IntentFocus
	IntentBlur
	IntentHoverEnter
	IntentHoverLeave
)

// String returns the intent name for logging and tests.
func (i Intent) String() string {
	switch i {
	case IntentPressStart:
		return "press-start"
	case IntentPressEnd:
		return "press-end"
	case IntentActivate:
		return "activate"
	case IntentFocus:
		return "focus"
	case IntentBlur:
		return "blur"
	case IntentHoverEnter:
		return "hover-enter"
	case IntentHoverLeave:
		return "hover-leave"
	default:
		return "unknown"
	}
}

// Target identifies the interaction environment an adapter serves.
type Target int

const (
	PointerTarget Target = iota
	KeyTarget
)

// Region is a rectangular hit area in terminal cells.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell at (x, y) falls inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Adapter maps raw Bubble Tea messages onto semantic intents for one hit
// region. Adapters carry the transient interaction state (hover, pressed,
// focused) needed to enforce the one-activation-per-gesture contract.
type Adapter interface {
	// Translate consumes a message and returns the intents it produced, in
	// delivery order. A disabled adapter returns nothing.
	Translate(msg tea.Msg, region Region) []Intent

	// FocusVisible reports whether the component should render a focus ring.
	// Only the key target ever reports true.
	FocusVisible() bool

	// Target identifies the adapter's interaction environment.
	Target() Target
}

// Option configures an adapter at construction.
type Option func(*settings)

type settings struct {
	disabled func() bool
}

// WithDisabledFunc supplies the predicate that suppresses all intents while
// the component is disabled.
func WithDisabledFunc(fn func() bool) Option {
	return func(s *settings) {
		s.disabled = fn
	}
}

// NewAdapter constructs the adapter for the given target.
func NewAdapter(target Target, opts ...Option) Adapter {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if target == KeyTarget {
		return &keyAdapter{settings: s}
	}
	return &pointerAdapter{settings: s}
}

func (s settings) isDisabled() bool {
	return s.disabled != nil && s.disabled()
}
