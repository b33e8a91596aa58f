package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/theme"
)

// Skeleton is a loading placeholder that shimmers while content is pending.
// While loading it renders pulsing placeholder lines; once loading stops it
// renders its content, if any.
type Skeleton struct {
	BaseComponent
	spin    spinner.Model
	width   int
	lines   int
	loading bool
	content Renderable
}

// NewSkeleton creates a skeleton of the given dimensions, loading by default.
func NewSkeleton(width, lines int) *Skeleton {
	if width < 1 {
		width = 10
	}
	if lines < 1 {
		lines = 1
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Pulse))
	return &Skeleton{spin: sp, width: width, lines: lines, loading: true}
}

// Init returns the command that starts the shimmer animation.
func (s *Skeleton) Init() tea.Cmd {
	return s.spin.Tick
}

// Update advances the shimmer animation.
func (s *Skeleton) Update(msg tea.Msg) tea.Cmd {
	if !s.loading {
		return nil
	}
	var cmd tea.Cmd
	s.spin, cmd = s.spin.Update(msg)
	return cmd
}

// SetLoading toggles the loading state.
func (s *Skeleton) SetLoading(loading bool) *Skeleton {
	s.loading = loading
	return s
}

// Loading reports whether the skeleton is in its loading state.
func (s *Skeleton) Loading() bool {
	return s.loading
}

// WithContent supplies the content rendered once loading completes.
func (s *Skeleton) WithContent(content Renderable) *Skeleton {
	s.content = content
	return s
}

// WithAppliers applies theme-aware style modifiers.
func (s *Skeleton) WithAppliers(appliers ...theme.StyleFunc) *Skeleton {
	s.AddAppliers(appliers...)
	return s
}

// View renders the skeleton with the default theme.
func (s *Skeleton) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders shimmer lines while loading, content otherwise.
func (s *Skeleton) ViewWithContext(ctx RenderContext) string {
	if !s.loading {
		if s.content == nil {
			return ""
		}
		if contextual, ok := s.content.(ContextualRenderable); ok {
			return contextual.ViewWithContext(ctx)
		}
		return s.content.View()
	}

	frame := s.spin.View()
	if frame == "" {
		frame = "░"
	}
	line := strings.Repeat(frame, s.width)
	rows := make([]string, s.lines)
	for i := range rows {
		rows[i] = line
	}

	base := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Muted)
	return s.ComputeStyle(ctx.Theme, base).Render(strings.Join(rows, "\n"))
}
