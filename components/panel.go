package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Panel is a lighter container for grouping sections, without the card's
// border weight.
type Panel struct {
	*Container
}

// NewPanel creates a panel with default panel styling.
func NewPanel(children ...Renderable) *Panel {
	container := NewContainer(children...).
		WithBorder(lipgloss.NormalBorder()).
		WithPadding(1).
		WithAppliers(theme.BorderTint(theme.Surface))
	return &Panel{Container: container}
}

// WithTitle prepends a themed title to the panel content.
func (p *Panel) WithTitle(title string) *Panel {
	children := append([]Renderable{EmphasisText(title)}, p.Children()...)
	p.SetChildren(children)
	return p
}
