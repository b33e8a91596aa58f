package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/state"
)

// RadioGroupConfig configures a RadioGroup at construction. Value decides
// the state mode once: non-nil is controlled, nil is uncontrolled seeded by
// DefaultValue.
type RadioGroupConfig struct {
	Value         *string
	DefaultValue  string
	Disabled      bool
	OnValueChange func(string)
	Target        interaction.Target
}

// RadioGroup is a single-selection composite: activating an item requests
// that exactly its value become selected.
type RadioGroup struct {
	value         *state.Value[string]
	disabled      bool
	adapterTarget interaction.Target
	scope         *RadioGroupScope
	items         []*RadioItem
}

// RadioGroupScope carries the group's shared state to its items.
type RadioGroupScope struct {
	root *RadioGroup
}

// NewRadioGroup creates a radio group from the given config.
func NewRadioGroup(cfg RadioGroupConfig) *RadioGroup {
	g := &RadioGroup{
		disabled:      cfg.Disabled,
		adapterTarget: cfg.Target,
	}

	var opts []state.Option[string]
	if cfg.Value != nil {
		opts = append(opts, state.WithControlled(*cfg.Value))
	} else {
		opts = append(opts, state.WithDefault(cfg.DefaultValue))
	}
	if cfg.OnValueChange != nil {
		opts = append(opts, state.WithOnChange(cfg.OnValueChange))
	}
	g.value = state.New(opts...)
	g.value.SetDisabledFunc(func() bool { return g.disabled })

	g.scope = &RadioGroupScope{root: g}
	return g
}

// Scope returns the composite scope for constructing items explicitly.
func (g *RadioGroup) Scope() *RadioGroupScope {
	return g.scope
}

// Value reports the effective selected value.
func (g *RadioGroup) Value() string {
	return g.value.Get()
}

// SetValue requests a selection change through the reconciler.
func (g *RadioGroup) SetValue(v string) {
	g.value.Set(v)
}

// SyncValue feeds a new external selection into a controlled group.
func (g *RadioGroup) SyncValue(v string) {
	g.value.SyncExternal(v)
}

// SetDisabled updates the whole group's disabled state.
func (g *RadioGroup) SetDisabled(disabled bool) {
	g.disabled = disabled
}

// Item creates an item bound to this group and appends it to the render
// order.
func (g *RadioGroup) Item(value, label string) *RadioItem {
	item, _ := NewRadioItem(g.scope, value, label)
	return item
}

// Update routes a message to every item.
func (g *RadioGroup) Update(msg tea.Msg) {
	for _, item := range g.items {
		item.Update(msg)
	}
}

// View renders the group's items vertically with the default theme.
func (g *RadioGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group's items with the given context.
func (g *RadioGroup) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(g.items))
	for _, item := range g.items {
		views = append(views, item.ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// RadioItem is a selectable entry of a RadioGroup. An item can be disabled
// on its own without disabling the group.
type RadioItem struct {
	scope    *RadioGroupScope
	value    string
	label    string
	disabled bool
	adapter  interaction.Adapter
	region   interaction.Region
}

// NewRadioItem constructs an item bound to an existing group scope. A nil
// scope is a misuse error.
func NewRadioItem(scope *RadioGroupScope, value, label string) (*RadioItem, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("RadioItem", "RadioGroup")
	}
	item := &RadioItem{scope: scope, value: value, label: label}
	item.adapter = interaction.NewAdapter(scope.root.adapterTarget,
		interaction.WithDisabledFunc(func() bool {
			return item.disabled || scope.root.disabled
		}))
	scope.root.items = append(scope.root.items, item)
	return item, nil
}

// SetDisabled updates this item's own disabled state.
func (i *RadioItem) SetDisabled(disabled bool) {
	i.disabled = disabled
}

// SetRegion places the item's hit area.
func (i *RadioItem) SetRegion(r interaction.Region) {
	i.region = r
}

// Selected reports whether this item's value is the group's current one.
func (i *RadioItem) Selected() bool {
	return i.scope.root.Value() == i.value
}

// Focus moves keyboard focus onto the item.
func (i *RadioItem) Focus() {
	if focuser, ok := i.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// Blur removes keyboard focus from the item.
func (i *RadioItem) Blur() {
	if focuser, ok := i.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

// Update routes a message through the item's adapter.
func (i *RadioItem) Update(msg tea.Msg) {
	for _, intent := range i.adapter.Translate(msg, i.region) {
		if intent == interaction.IntentActivate {
			i.scope.root.SetValue(i.value)
		}
	}
}

// View renders the item with the default theme.
func (i *RadioItem) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the radio glyph and label.
func (i *RadioItem) ViewWithContext(ctx RenderContext) string {
	glyph := "○"
	if i.Selected() {
		glyph = "●"
	}

	style := lipgloss.NewStyle()
	switch {
	case i.disabled || i.scope.root.disabled:
		style = style.Faint(true)
	case i.Selected():
		style = style.Foreground(ctx.Theme.Palette.Primary.Base).Bold(true)
	}
	if i.adapter.FocusVisible() {
		style = style.Underline(true)
	}
	return style.Render(glyph + " " + i.label)
}
