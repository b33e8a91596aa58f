package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/theme"
)

// Terminal cells are roughly twice as tall as wide, so a visually square box
// of width w needs about w/2 rows.
const cellAspect = 2.0

// AspectRatio constrains its child to a width:height visual ratio.
type AspectRatio struct {
	BaseComponent
	ratio float64
	width int
	child Renderable
	err   error
}

// NewAspectRatio creates a box honoring the given ratio (width / height).
// Ratios must be positive; 16.0/9.0 is the common widescreen box.
func NewAspectRatio(ratio float64, width int) *AspectRatio {
	a := &AspectRatio{ratio: ratio, width: width}
	if ratio <= 0 {
		a.err = invalidRatio(ratio)
	}
	if width < 1 {
		a.width = 20
	}
	return a
}

func invalidRatio(ratio float64) error {
	return wefterrors.NewConfigError("AspectRatio", "ratio",
		fmt.Sprintf("ratio %v must be positive", ratio))
}

// WithChild supplies the content placed inside the ratio box.
func (a *AspectRatio) WithChild(child Renderable) *AspectRatio {
	if err := validateChild("AspectRatio", child); err != nil {
		a.err = err
		return a
	}
	a.child = child
	return a
}

// WithAppliers applies theme-aware style modifiers.
func (a *AspectRatio) WithAppliers(appliers ...theme.StyleFunc) *AspectRatio {
	a.AddAppliers(appliers...)
	return a
}

// Validate reports configuration errors accumulated during construction.
func (a *AspectRatio) Validate() error {
	return a.err
}

// Height returns the computed row count for the configured width and ratio.
func (a *AspectRatio) Height() int {
	if a.ratio <= 0 {
		return 1
	}
	h := int(math.Round(float64(a.width) / (a.ratio * cellAspect)))
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the box with the default theme.
func (a *AspectRatio) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child placed inside the ratio box.
func (a *AspectRatio) ViewWithContext(ctx RenderContext) string {
	if a.err != nil {
		return renderConfigError(ctx, a.err)
	}

	var content string
	if a.child != nil {
		if contextual, ok := a.child.(ContextualRenderable); ok {
			content = contextual.ViewWithContext(ctx)
		} else {
			content = a.child.View()
		}
	}

	box := lipgloss.Place(a.width, a.Height(), lipgloss.Center, lipgloss.Center, content)
	return a.ComputeStyle(ctx.Theme, lipgloss.NewStyle()).Render(box)
}
