package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/state"
	"github.com/weftui/weft/theme"
)

// HoverCardConfig configures a HoverCard at construction. Open decides the
// state mode once: non-nil is controlled, nil is uncontrolled seeded by
// DefaultOpen.
type HoverCardConfig struct {
	Open         *bool
	DefaultOpen  bool
	Disabled     bool
	ForceMount   bool
	OnOpenChange func(bool)
	OnMount      func()
	OnUnmount    func()
	Target       interaction.Target
}

// HoverCard reveals auxiliary content while the pointer rests over its
// trigger. Hovering the trigger requests open, leaving the root region
// requests close; in controlled mode both are reported to the owner and the
// card itself stays where the external value says.
type HoverCard struct {
	BaseComponent
	open     *state.Value[bool]
	disabled bool

	forceMount bool
	adapter    interaction.Adapter
	trigger    string
	region     interaction.Region
	children   []Renderable
	mount      mountTracker
}

// NewHoverCard creates a hover card from the given config.
func NewHoverCard(cfg HoverCardConfig) *HoverCard {
	h := &HoverCard{
		disabled:   cfg.Disabled,
		forceMount: cfg.ForceMount,
	}

	var opts []state.Option[bool]
	if cfg.Open != nil {
		opts = append(opts, state.WithControlled(*cfg.Open))
	} else {
		opts = append(opts, state.WithDefault(cfg.DefaultOpen))
	}
	if cfg.OnOpenChange != nil {
		opts = append(opts, state.WithOnChange(cfg.OnOpenChange))
	}
	h.open = state.New(opts...)
	h.open.SetDisabledFunc(func() bool { return h.disabled })

	h.adapter = interaction.NewAdapter(cfg.Target,
		interaction.WithDisabledFunc(func() bool { return h.disabled }))
	h.mount = mountTracker{onMount: cfg.OnMount, onUnmount: cfg.OnUnmount}
	h.refreshMount()
	return h
}

// WithTrigger sets the inline trigger text.
func (h *HoverCard) WithTrigger(label string) *HoverCard {
	h.trigger = label
	return h
}

// WithContent sets the card body.
func (h *HoverCard) WithContent(children ...Renderable) *HoverCard {
	h.children = children
	h.refreshMount()
	return h
}

// WithAppliers applies theme-aware style modifiers to the card box.
func (h *HoverCard) WithAppliers(appliers ...theme.StyleFunc) *HoverCard {
	h.AddAppliers(appliers...)
	return h
}

// SetRegion places the trigger's hit area.
func (h *HoverCard) SetRegion(r interaction.Region) {
	h.region = r
}

// SetDisabled updates the disabled state.
func (h *HoverCard) SetDisabled(disabled bool) {
	h.disabled = disabled
}

// Open reports the effective open state.
func (h *HoverCard) Open() bool {
	return h.open.Get()
}

// SyncOpen feeds a new external open value into a controlled hover card.
func (h *HoverCard) SyncOpen(open bool) {
	h.open.SyncExternal(open)
	h.refreshMount()
}

// Update translates a message into hover intents. Entering the trigger
// region requests open; leaving it requests close. A controlled card still
// reports the request but never moves on its own.
func (h *HoverCard) Update(msg tea.Msg) {
	for _, intent := range h.adapter.Translate(msg, h.region) {
		switch intent {
		case interaction.IntentHoverEnter:
			h.open.Set(true)
		case interaction.IntentHoverLeave:
			h.open.Set(false)
		}
	}
	h.refreshMount()
}

// Mounted reports whether the card content is in the render tree.
func (h *HoverCard) Mounted() bool {
	return h.mount.Mounted()
}

// Hidden reports whether the content is mounted but visually hidden.
func (h *HoverCard) Hidden() bool {
	return h.mount.Mounted() && !h.Open()
}

func (h *HoverCard) refreshMount() {
	h.mount.setMounted(h.Open() || h.forceMount)
}

// View renders the hover card with the default theme.
func (h *HoverCard) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, while open, the card box.
func (h *HoverCard) ViewWithContext(ctx RenderContext) string {
	triggerStyle := lipgloss.NewStyle().Underline(true).Foreground(ctx.Theme.Palette.Info.Base)
	if h.disabled {
		triggerStyle = triggerStyle.Faint(true)
	}
	triggerView := triggerStyle.Render(h.trigger)

	open := h.Open()
	if !open && !h.forceMount {
		return triggerView
	}

	views := renderChildren(h.children, ctx)
	content := lipgloss.JoinVertical(lipgloss.Left, views...)

	base := lipgloss.NewStyle().
		BorderStyle(ctx.Theme.Borders.Rounded).
		BorderForeground(ctx.Theme.Palette.Neutral.Base).
		Padding(0, 1)
	if !open {
		base = base.Faint(true)
		content = hiddenMarker + "\n" + content
	}
	card := h.ComputeStyle(ctx.Theme, base).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, triggerView, card)
}
