package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Container is a generic box holding children with border, padding, and
// styling. Card and Panel build on it.
type Container struct {
	BaseComponent
	children []Renderable
	layout   *Stack
	border   lipgloss.Border
	padding  int
}

// NewContainer creates a container with the given children.
func NewContainer(children ...Renderable) *Container {
	return &Container{
		children: children,
		layout:   VStack(children...),
	}
}

// View renders the container with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container and its children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(ctx)
	}

	base := lipgloss.NewStyle()
	if c.border.Top != "" {
		base = base.BorderStyle(c.border)
	}
	if c.padding > 0 {
		base = base.Padding(0, c.padding)
	}

	return c.ComputeStyle(ctx.Theme, base).Render(content)
}

// WithBorder sets the border glyph set.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithPadding sets horizontal padding in cells.
func (c *Container) WithPadding(padding int) *Container {
	if padding >= 0 {
		c.padding = padding
	}
	return c
}

// WithStyle installs an explicit style override.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-aware style modifiers.
func (c *Container) WithAppliers(appliers ...theme.StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the container's children.
func (c *Container) Children() []Renderable {
	return c.children
}

// SetChildren replaces all children.
func (c *Container) SetChildren(children []Renderable) *Container {
	c.children = children
	c.layout.SetChildren(children)
	return c
}
