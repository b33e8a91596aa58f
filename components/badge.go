package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Badge is a small status indicator label.
type Badge struct {
	BaseComponent
	label   string
	variant theme.BadgeVariant
	err     error
}

// NewBadge creates a badge with the default variant.
func NewBadge(label string) *Badge {
	return &Badge{label: label, variant: theme.BadgeDefault}
}

// WithVariant sets the badge tone. An out-of-range value is a configuration
// error.
func (b *Badge) WithVariant(variant theme.BadgeVariant) *Badge {
	if !variant.Valid() {
		b.err = invalidAxis("Badge", "variant", variant)
		return b
	}
	b.variant = variant
	return b
}

// WithAppliers applies theme-aware style modifiers.
func (b *Badge) WithAppliers(appliers ...theme.StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Validate reports configuration errors accumulated during construction.
func (b *Badge) Validate() error {
	return b.err
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.err != nil {
		return renderConfigError(ctx, b.err)
	}
	computed, err := ctx.Theme.Resolve("Badge", b.variant, lipgloss.NewStyle())
	if err != nil {
		return renderConfigError(ctx, err)
	}
	return b.ComputeStyle(ctx.Theme, computed).Render(b.label)
}

// SuccessBadge creates a success badge.
func SuccessBadge(label string) *Badge {
	return NewBadge(label).WithVariant(theme.BadgeSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(label string) *Badge {
	return NewBadge(label).WithVariant(theme.BadgeWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(label string) *Badge {
	return NewBadge(label).WithVariant(theme.BadgeError)
}
