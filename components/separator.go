package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Orientation is the separator's direction axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Valid reports whether the orientation is a member of the enumeration.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Separator renders a visual dividing line between content regions.
type Separator struct {
	BaseComponent
	char        string
	length      int
	orientation Orientation
	err         error
}

// NewSeparator creates a horizontal separator.
func NewSeparator() *Separator {
	return &Separator{char: "─", orientation: Horizontal}
}

// VerticalSeparator creates a vertical separator.
func VerticalSeparator() *Separator {
	s := NewSeparator().WithOrientation(Vertical)
	s.char = "│"
	return s
}

// View renders the separator with the default theme.
func (s *Separator) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the separator with layout context.
func (s *Separator) ViewWithContext(ctx RenderContext) string {
	if s.err != nil {
		return renderConfigError(ctx, s.err)
	}

	length := s.length
	if length <= 0 && ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth >= 0 {
		length = ctx.Constraints.MaxWidth
	}
	if length <= 0 && ctx.ParentWidth > 0 {
		length = ctx.ParentWidth
	}
	if length <= 0 {
		length = 40
	}

	var content string
	if s.orientation == Horizontal {
		content = strings.Repeat(s.char, length)
	} else {
		lines := make([]string, length)
		for i := range lines {
			lines[i] = s.char
		}
		content = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	base := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Muted)
	return s.ComputeStyle(ctx.Theme, base).Render(content)
}

// WithOrientation sets the separator orientation. An out-of-range value is a
// configuration error.
func (s *Separator) WithOrientation(o Orientation) *Separator {
	if !o.Valid() {
		s.err = invalidAxis("Separator", "orientation", o)
		return s
	}
	s.orientation = o
	if s.char == "─" && o == Vertical {
		s.char = "│"
	}
	return s
}

// WithChar sets the glyph used for the line.
func (s *Separator) WithChar(char string) *Separator {
	if char != "" {
		s.char = char
	}
	return s
}

// WithLength sets an explicit length in cells.
func (s *Separator) WithLength(length int) *Separator {
	s.length = length
	return s
}

// WithAppliers applies theme-aware style modifiers.
func (s *Separator) WithAppliers(appliers ...theme.StyleFunc) *Separator {
	s.AddAppliers(appliers...)
	return s
}

// Validate reports configuration errors accumulated during construction.
func (s *Separator) Validate() error {
	return s.err
}
