// Package state implements controlled/uncontrolled value reconciliation for
// interactive components.
//
// A Value is controlled when its caller supplies the current value and owns
// every update, or uncontrolled when the component tracks its own internal
// mirror seeded by a default. The mode is fixed when the Value is created and
// never changes for the lifetime of the component instance.
package state

// Value tracks a single piece of component state, reconciling an optionally
// caller-supplied (controlled) value with an internal mirror.
type Value[T any] struct {
	controlled bool
	external   T
	mirror     T
	onChange   func(T)
	disabled   func() bool
}

// Option configures a Value at construction time.
type Option[T any] func(*Value[T])

// WithControlled marks the value as controlled and supplies the external
// current value. Presence decides the mode: a controlled false or empty
// string is still controlled.
func WithControlled[T any](v T) Option[T] {
	return func(s *Value[T]) {
		s.controlled = true
		s.external = v
	}
}

// WithDefault seeds the internal mirror for uncontrolled mode. Ignored for
// reads while controlled.
func WithDefault[T any](v T) Option[T] {
	return func(s *Value[T]) {
		s.mirror = v
	}
}

// WithOnChange registers the change-notification callback. It fires on every
// accepted Set, in controlled and uncontrolled mode alike.
func WithOnChange[T any](fn func(T)) Option[T] {
	return func(s *Value[T]) {
		s.onChange = fn
	}
}

// New creates a Value. The controlled/uncontrolled mode is decided here, once,
// by whether WithControlled was supplied.
func New[T any](opts ...Option[T]) *Value[T] {
	s := &Value[T]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDisabledFunc supplies a predicate consulted on every Set. While it
// reports true, Set requests are suppressed: no mutation, no callback.
func (s *Value[T]) SetDisabledFunc(fn func() bool) {
	s.disabled = fn
}

// Controlled reports whether the value is externally owned.
func (s *Value[T]) Controlled() bool {
	return s.controlled
}

// Get returns the effective current value: the external value when controlled,
// the internal mirror otherwise.
func (s *Value[T]) Get() T {
	if s.controlled {
		return s.external
	}
	return s.mirror
}

// Set requests a state change. Disabled values reject the request outright.
// Uncontrolled values update their mirror; controlled values leave the
// external value untouched and rely on the caller feeding it back via
// SyncExternal. The change callback fires with the requested value in both
// modes.
func (s *Value[T]) Set(v T) {
	if s.disabled != nil && s.disabled() {
		return
	}
	if !s.controlled {
		s.mirror = v
	}
	if s.onChange != nil {
		s.onChange(v)
	}
}

// SyncExternal feeds a new external value into a controlled Value. The caller
// owning the value invokes this after deciding to accept a change reported by
// the onChange callback. It is a no-op while uncontrolled; switching modes
// mid-lifecycle is not supported.
func (s *Value[T]) SyncExternal(v T) {
	if !s.controlled {
		return
	}
	s.external = v
}

// SetDefault resyncs the internal mirror from a changed default. Resync
// happens only while uncontrolled; controlled values ignore defaults
// entirely. No change callback fires: a default is seed data, not a user
// interaction.
func (s *Value[T]) SetDefault(v T) {
	if s.controlled {
		return
	}
	s.mirror = v
}

// Toggle flips a boolean Value through the normal Set path, so disabled
// suppression and change notification apply.
func Toggle(s *Value[bool]) {
	s.Set(!s.Get())
}
