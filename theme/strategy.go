package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc transforms a lipgloss.Style using data from a Theme. It is the
// core abstraction for theme-aware styling: pure, deterministic, composable.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy applies styling to a base style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, t Theme) lipgloss.Style
}

// CompositeStrategy applies multiple StyleFunc in sequence, later funcs
// winning where they touch the same attribute.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, t Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, t)
	}
	return base
}

// Append returns a new composite with extra funcs, leaving the receiver's
// slice unshared.
func (c CompositeStrategy) Append(funcs ...StyleFunc) CompositeStrategy {
	merged := make([]StyleFunc, len(c.funcs), len(c.funcs)+len(funcs))
	copy(merged, c.funcs)
	merged = append(merged, funcs...)
	return CompositeStrategy{funcs: merged}
}

// Background applies a semantic background colour with its matching
// foreground, so content stays legible.
func Background(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour, leaving the background
// untouched.
func Foreground(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border glyph set from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(BorderForVariant(t, variant))
	}
}

// BorderTint colours the border with a semantic slot's base colour.
func BorderTint(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.BorderForeground(cs.Base)
	}
}

// Padding applies uniform padding from the theme's spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Padding(spacingLookup(t.Spacing.Padding, size))
	}
}

// PaddingX applies horizontal padding from the spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		v := spacingLookup(t.Spacing.Padding, size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// PaddingY applies vertical padding from the spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		v := spacingLookup(t.Spacing.Padding, size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

// Margin applies uniform margin from the spacing scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Margin(spacingLookup(t.Spacing.Margin, size))
	}
}

// Typography inherits a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(t, variant))
	}
}
