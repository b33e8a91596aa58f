package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Card is a styled container for grouped content, with optional header,
// description, and footer sections. It holds no state of its own.
type Card struct {
	*Container
	asChild Renderable
	err     error
}

// NewCard creates a card with default card styling.
func NewCard(children ...Renderable) *Card {
	container := NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(1).
		WithAppliers(
			theme.BorderTint(theme.Neutral),
		)
	return &Card{Container: container}
}

// WithTitle prepends a themed title header to the card content.
func (c *Card) WithTitle(title string) *Card {
	children := append([]Renderable{TitleText(title)}, c.Children()...)
	c.SetChildren(children)
	return c
}

// WithDescription inserts a faint description line under the title.
func (c *Card) WithDescription(description string) *Card {
	children := c.Children()
	desc := SubtitleText(description)
	if len(children) > 0 {
		rest := make([]Renderable, 0, len(children)+1)
		rest = append(rest, children[0], desc)
		rest = append(rest, children[1:]...)
		c.SetChildren(rest)
	} else {
		c.SetChildren([]Renderable{desc})
	}
	return c
}

// WithFooter appends a divider and a footer section.
func (c *Card) WithFooter(footer Renderable) *Card {
	c.Add(NewSeparator(), footer)
	return c
}

// AsChild merges the card's computed style onto the single supplied child
// instead of rendering the card's own box.
func (c *Card) AsChild(child Renderable) *Card {
	if err := validateChild("Card", child); err != nil {
		c.err = err
		return c
	}
	c.asChild = child
	return c
}

// Validate reports configuration errors accumulated during construction.
func (c *Card) Validate() error {
	return c.err
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card, or its merged child in asChild mode.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	if c.err != nil {
		return renderConfigError(ctx, c.err)
	}
	if c.asChild != nil {
		style := c.ComputeStyle(ctx.Theme, lipgloss.NewStyle())
		return mergeChild(c.asChild, ctx, style)
	}
	return c.Container.ViewWithContext(ctx)
}

// renderConfigError surfaces a construction error loudly in the render
// output instead of silently dropping the component.
func renderConfigError(ctx RenderContext, err error) string {
	style := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Danger.Base).
		Bold(true)
	return style.Render(err.Error())
}
