package components

import (
	"github.com/weftui/weft/theme"
)

// Header renders a titled heading, optionally with a subtitle line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{title: title}
}

// WithSubtitle adds a subtitle line under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers applies theme-aware style modifiers to the title.
func (h *Header) WithAppliers(appliers ...theme.StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme, theme.TypographyStyle(ctx.Theme, theme.TypographyTitle)).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	subtitle := theme.TypographyStyle(ctx.Theme, theme.TypographySubtitle).Render(h.subtitle)
	return title + "\n" + subtitle
}
