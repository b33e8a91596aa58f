package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...Renderable) *Stack {
	return &Stack{children: children, direction: DirectionVertical, align: lipgloss.Left}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme, lipgloss.NewStyle())

	views := renderChildren(s.children, ctx)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		if s.gap > 0 {
			spaced := make([]string, 0, len(views)*2-1)
			pad := strings.Repeat(" ", s.gap)
			for i, v := range views {
				if i > 0 {
					spaced = append(spaced, pad)
				}
				spaced = append(spaced, v)
			}
			views = spaced
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	} else {
		if s.gap > 0 {
			// An empty element renders as one blank line per join.
			spaced := make([]string, 0, len(views)*2-1)
			for i, v := range views {
				if i > 0 {
					spaced = append(spaced, strings.Repeat("\n", s.gap-1))
				}
				spaced = append(spaced, v)
			}
			views = spaced
		}
		content = lipgloss.JoinVertical(s.align, views...)
	}

	return style.Render(content)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the gap between children in cells.
func (s *Stack) WithGap(gap int) *Stack {
	if gap >= 0 {
		s.gap = gap
	}
	return s
}

// WithAlign sets the cross-axis alignment for vertical stacks.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-aware style modifiers.
func (s *Stack) WithAppliers(appliers ...theme.StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []Renderable {
	return s.children
}

// SetChildren replaces the stack's children.
func (s *Stack) SetChildren(children []Renderable) *Stack {
	s.children = children
	return s
}
