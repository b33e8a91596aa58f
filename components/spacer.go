package components

import (
	"strings"
)

// Spacer renders empty space for layout.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions in cells.
func NewSpacer(width, height int) *Spacer {
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	return &Spacer{width: width, height: height}
}

// View renders the spacer.
func (s *Spacer) View() string {
	line := strings.Repeat(" ", s.width)
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
