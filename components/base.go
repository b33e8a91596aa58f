// Package components provides accessible, themeable UI primitives for
// terminal applications.
//
// # Overview
//
// Every component is a thin composition of three concerns: a
// controlled/uncontrolled state reconciler (package state), an interaction
// adapter translating terminal events into semantic intents (package
// interaction), and a theme-driven style variant resolver (package theme).
// Components render to strings through lipgloss and are driven by Bubble Tea
// messages.
//
// # Controlled and uncontrolled state
//
// Stateful components (Collapsible, Dialog, Alert, HoverCard, Input,
// RadioGroup, Select) accept their value either as a pointer-typed config
// field (controlled when non-nil, even when pointing at false or "") or as a
// default (uncontrolled). The mode is fixed at construction. Controlled
// components never move on their own: they report the requested value through
// the change callback and render whatever the caller feeds back in.
//
// # Composition
//
// Composite components with sub-parts (Dialog, Collapsible, HoverCard,
// RadioGroup, Select) share state through a scope created by the composite
// root. Constructing a sub-part without a scope fails fast with a misuse
// error naming the required composite.
//
// # asChild
//
// Components accept a single caller-supplied child via AsChild, merging their
// computed style and handlers onto it instead of rendering their own wrapper
// box. The one-child arity is fixed by the method signature; a nil child is a
// configuration error.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/theme"
)

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable additionally accepts layout and theme context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// Constraints defines width constraints for layout. Terminal layout is
// width-driven; heights follow from content.
type Constraints struct {
	MinWidth int
	MaxWidth int // -1 means unlimited
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth}
}

// HasWidth reports whether any width constraint is set.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme and layout information into a render pass.
// Context flows explicitly so there is no global theme state.
type RenderContext struct {
	Theme       theme.Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme and no
// constraints.
func DefaultContext() RenderContext {
	return RenderContext{Theme: theme.Default(), Constraints: Unconstrained()}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(t theme.Theme) RenderContext {
	r.Theme = t
	return r
}

// WithConstraints returns a copy of the context using the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// BaseComponent provides the shared styling behaviour. Embed it in component
// structs.
//
// Styling precedence is last-writer-wins: an explicit override set through
// SetStyle replaces the component's computed variant style entirely, and
// takes priority over appliers, which merge additively on top of the
// computed style.
type BaseComponent struct {
	override *lipgloss.Style
	strategy theme.StyleStrategy
}

// SetStyle installs an explicit style override. The computed variant style
// and any appliers are ignored from then on.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.override = &style
}

// SetAppliers replaces the additive style appliers.
func (b *BaseComponent) SetAppliers(appliers ...theme.StyleFunc) {
	b.strategy = theme.NewCompositeStrategy(appliers...)
}

// AddAppliers appends additive style appliers, preserving existing ones.
func (b *BaseComponent) AddAppliers(appliers ...theme.StyleFunc) {
	if existing, ok := b.strategy.(theme.CompositeStrategy); ok {
		b.strategy = existing.Append(appliers...)
		return
	}
	prev := b.strategy
	b.strategy = theme.NewCompositeStrategy(append([]theme.StyleFunc{
		func(base lipgloss.Style, t theme.Theme) lipgloss.Style {
			if prev != nil {
				return prev.Apply(base, t)
			}
			return base
		},
	}, appliers...)...)
}

// ComputeStyle resolves the final style from the computed variant default,
// the appliers, and the override, in that precedence order.
func (b *BaseComponent) ComputeStyle(t theme.Theme, computed lipgloss.Style) lipgloss.Style {
	if b.override != nil {
		return *b.override
	}
	if b.strategy != nil {
		return b.strategy.Apply(computed, t)
	}
	return computed
}

// HasOverride reports whether an explicit style override is installed.
func (b *BaseComponent) HasOverride() bool {
	return b.override != nil
}

// Ptr returns a pointer to v. It is the idiomatic way to supply a controlled
// value in a component config: Open: components.Ptr(true).
func Ptr[T any](v T) *T {
	return &v
}

// mergeChild applies a component's computed style directly to a single
// caller-supplied child, the asChild rendering mode. No wrapper box is
// introduced: the child's own rendering is restyled in place.
func mergeChild(child Renderable, ctx RenderContext, style lipgloss.Style) string {
	var content string
	if contextual, ok := child.(ContextualRenderable); ok {
		content = contextual.ViewWithContext(ctx)
	} else {
		content = child.View()
	}
	return style.Render(content)
}

// validateChild checks the asChild arity contract: exactly one non-nil child.
func validateChild(component string, child Renderable) error {
	if child == nil {
		return wefterrors.NewConfigError(component, "asChild", "child must not be nil")
	}
	return nil
}

// invalidAxis builds the configuration error for a variant axis value outside
// its closed enumeration.
func invalidAxis(component, field string, axis theme.Axis) error {
	return wefterrors.NewConfigError(component, field,
		fmt.Sprintf("value %s is outside the axis enumeration", axis.String()))
}

// renderChildren renders a slice of children, propagating context where
// supported, and skipping nils and empty views.
func renderChildren(children []Renderable, ctx RenderContext) []string {
	views := make([]string, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(ctx)
		} else {
			view = child.View()
		}
		if view != "" {
			views = append(views, view)
		}
	}
	return views
}

// mountTracker preserves the distinction between unmounted and
// mounted-but-hidden content. Mount callbacks fire on transitions only.
type mountTracker struct {
	mounted   bool
	onMount   func()
	onUnmount func()
}

func (m *mountTracker) setMounted(mounted bool) {
	if mounted == m.mounted {
		return
	}
	m.mounted = mounted
	if mounted {
		if m.onMount != nil {
			m.onMount()
		}
	} else if m.onUnmount != nil {
		m.onUnmount()
	}
}

// Mounted reports whether the tracked subtree is currently in the render
// tree.
func (m *mountTracker) Mounted() bool {
	return m.mounted
}
