package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/state"
)

// SelectConfig configures a Select at construction. Value and Open each
// decide their own state mode once: non-nil is controlled, nil is
// uncontrolled seeded by the matching default.
type SelectConfig struct {
	Value         *string
	DefaultValue  string
	Open          *bool
	DefaultOpen   bool
	Placeholder   string
	Disabled      bool
	OnValueChange func(string)
	OnOpenChange  func(bool)
	Target        interaction.Target
}

// Select is a dropdown composite: a trigger toggles the option list and
// activating an option commits its value and requests close. The value and
// open channels reconcile independently, so either can be controlled while
// the other is not.
type Select struct {
	value    *state.Value[string]
	open     *state.Value[bool]
	disabled bool

	placeholder   string
	adapterTarget interaction.Target
	scope         *SelectScope

	trigger *SelectTrigger
	items   []*SelectItem
}

// SelectScope carries the composite's shared state to its sub-parts.
type SelectScope struct {
	root *Select
}

// NewSelect creates a select composite from the given config.
func NewSelect(cfg SelectConfig) *Select {
	s := &Select{
		disabled:      cfg.Disabled,
		placeholder:   cfg.Placeholder,
		adapterTarget: cfg.Target,
	}
	disabled := func() bool { return s.disabled }

	var valueOpts []state.Option[string]
	if cfg.Value != nil {
		valueOpts = append(valueOpts, state.WithControlled(*cfg.Value))
	} else {
		valueOpts = append(valueOpts, state.WithDefault(cfg.DefaultValue))
	}
	if cfg.OnValueChange != nil {
		valueOpts = append(valueOpts, state.WithOnChange(cfg.OnValueChange))
	}
	s.value = state.New(valueOpts...)
	s.value.SetDisabledFunc(disabled)

	var openOpts []state.Option[bool]
	if cfg.Open != nil {
		openOpts = append(openOpts, state.WithControlled(*cfg.Open))
	} else {
		openOpts = append(openOpts, state.WithDefault(cfg.DefaultOpen))
	}
	if cfg.OnOpenChange != nil {
		openOpts = append(openOpts, state.WithOnChange(cfg.OnOpenChange))
	}
	s.open = state.New(openOpts...)
	s.open.SetDisabledFunc(disabled)

	s.scope = &SelectScope{root: s}
	return s
}

// Scope returns the composite scope for constructing sub-parts explicitly.
func (s *Select) Scope() *SelectScope {
	return s.scope
}

// Value reports the effective selected value.
func (s *Select) Value() string {
	return s.value.Get()
}

// Open reports the effective open state.
func (s *Select) Open() bool {
	return s.open.Get()
}

// SetValue requests a selection change through the reconciler.
func (s *Select) SetValue(v string) {
	s.value.Set(v)
}

// SetOpen requests an open-state change through the reconciler.
func (s *Select) SetOpen(open bool) {
	s.open.Set(open)
}

// SyncValue feeds a new external selection into a controlled select.
func (s *Select) SyncValue(v string) {
	s.value.SyncExternal(v)
}

// SyncOpen feeds a new external open value into a controlled select.
func (s *Select) SyncOpen(open bool) {
	s.open.SyncExternal(open)
}

// SetDisabled updates the disabled state.
func (s *Select) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Trigger returns the select's trigger sub-part, creating it on first use.
func (s *Select) Trigger() *SelectTrigger {
	if s.trigger == nil {
		s.trigger, _ = NewSelectTrigger(s.scope)
	}
	return s.trigger
}

// Item creates an option bound to this select and appends it to the list.
func (s *Select) Item(value, label string) *SelectItem {
	item, _ := NewSelectItem(s.scope, value, label)
	return item
}

// Update routes a message to the trigger and, while open, the options.
func (s *Select) Update(msg tea.Msg) {
	if s.trigger != nil {
		s.trigger.Update(msg)
	}
	if s.Open() {
		for _, item := range s.items {
			item.Update(msg)
		}
	}
}

func (s *Select) selectedLabel() string {
	v := s.Value()
	for _, item := range s.items {
		if item.value == v {
			return item.label
		}
	}
	return ""
}

// View renders the select with the default theme.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, while open, the option list.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, 2)
	if s.trigger != nil {
		parts = append(parts, s.trigger.ViewWithContext(ctx))
	}
	if s.Open() {
		views := make([]string, 0, len(s.items))
		for _, item := range s.items {
			views = append(views, item.ViewWithContext(ctx))
		}
		list := lipgloss.NewStyle().
			BorderStyle(ctx.Theme.Borders.Normal).
			BorderForeground(ctx.Theme.Palette.Neutral.Base).
			Padding(0, 1).
			Render(lipgloss.JoinVertical(lipgloss.Left, views...))
		parts = append(parts, list)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SelectTrigger is the pressable control that toggles its select's list.
type SelectTrigger struct {
	scope   *SelectScope
	adapter interaction.Adapter
	region  interaction.Region
}

// NewSelectTrigger constructs a trigger bound to an existing select scope.
// A nil scope is a misuse error.
func NewSelectTrigger(scope *SelectScope) (*SelectTrigger, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("SelectTrigger", "Select")
	}
	t := &SelectTrigger{scope: scope}
	t.adapter = interaction.NewAdapter(scope.root.adapterTarget,
		interaction.WithDisabledFunc(func() bool { return scope.root.disabled }))
	scope.root.trigger = t
	return t, nil
}

// SetRegion places the trigger's hit area.
func (t *SelectTrigger) SetRegion(r interaction.Region) {
	t.region = r
}

// Region reports the trigger's current hit area.
func (t *SelectTrigger) Region() interaction.Region {
	return t.region
}

// Focus moves keyboard focus onto the trigger.
func (t *SelectTrigger) Focus() {
	if focuser, ok := t.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// Blur removes keyboard focus from the trigger.
func (t *SelectTrigger) Blur() {
	if focuser, ok := t.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

// Update routes a message through the trigger's adapter.
func (t *SelectTrigger) Update(msg tea.Msg) {
	for _, intent := range t.adapter.Translate(msg, t.region) {
		if intent == interaction.IntentActivate {
			t.scope.root.SetOpen(!t.scope.root.Open())
		}
	}
}

// View renders the trigger with the default theme.
func (t *SelectTrigger) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the current selection or the placeholder.
func (t *SelectTrigger) ViewWithContext(ctx RenderContext) string {
	root := t.scope.root
	label := root.selectedLabel()
	style := lipgloss.NewStyle().
		BorderStyle(ctx.Theme.Borders.Normal).
		BorderForeground(ctx.Theme.Palette.Neutral.Base).
		Padding(0, 1)
	if label == "" {
		label = root.placeholder
		style = style.Faint(true)
	}
	if root.disabled {
		style = style.Faint(true)
	}
	if t.adapter.FocusVisible() {
		style = style.BorderForeground(ctx.Theme.Palette.Primary.Base)
	}

	marker := "▾"
	if root.Open() {
		marker = "▴"
	}
	return style.Render(label + " " + marker)
}

// SelectItem is a selectable option of a Select. An option can be disabled
// on its own without disabling the select.
type SelectItem struct {
	scope    *SelectScope
	value    string
	label    string
	disabled bool
	adapter  interaction.Adapter
	region   interaction.Region
}

// NewSelectItem constructs an option bound to an existing select scope. A
// nil scope is a misuse error.
func NewSelectItem(scope *SelectScope, value, label string) (*SelectItem, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("SelectItem", "Select")
	}
	item := &SelectItem{scope: scope, value: value, label: label}
	item.adapter = interaction.NewAdapter(scope.root.adapterTarget,
		interaction.WithDisabledFunc(func() bool {
			return item.disabled || scope.root.disabled
		}))
	scope.root.items = append(scope.root.items, item)
	return item, nil
}

// SetDisabled updates this option's own disabled state.
func (i *SelectItem) SetDisabled(disabled bool) {
	i.disabled = disabled
}

// SetRegion places the option's hit area.
func (i *SelectItem) SetRegion(r interaction.Region) {
	i.region = r
}

// Region reports the option's current hit area.
func (i *SelectItem) Region() interaction.Region {
	return i.region
}

// Selected reports whether this option's value is the current one.
func (i *SelectItem) Selected() bool {
	return i.scope.root.Value() == i.value
}

// Focus moves keyboard focus onto the option.
func (i *SelectItem) Focus() {
	if focuser, ok := i.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// Blur removes keyboard focus from the option.
func (i *SelectItem) Blur() {
	if focuser, ok := i.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

// Update routes a message through the option's adapter. Activation commits
// the value and then requests close.
func (i *SelectItem) Update(msg tea.Msg) {
	for _, intent := range i.adapter.Translate(msg, i.region) {
		if intent == interaction.IntentActivate {
			i.scope.root.SetValue(i.value)
			i.scope.root.SetOpen(false)
		}
	}
}

// View renders the option with the default theme.
func (i *SelectItem) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the option row.
func (i *SelectItem) ViewWithContext(ctx RenderContext) string {
	prefix := "  "
	if i.Selected() {
		prefix = "✓ "
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
	return style.Render(prefix + i.label)
}
