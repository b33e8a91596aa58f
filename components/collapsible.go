package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/state"
	"github.com/weftui/weft/theme"
)

// CollapsibleConfig configures a Collapsible at construction. Open decides
// the state mode once: non-nil is controlled, nil is uncontrolled seeded by
// DefaultOpen.
type CollapsibleConfig struct {
	Open         *bool
	DefaultOpen  bool
	Disabled     bool
	ForceMount   bool
	OnOpenChange func(bool)
	OnMount      func()
	OnUnmount    func()
	Target       interaction.Target
}

// Collapsible is a two-state disclosure composite. Its trigger toggles the
// open state; its content mounts only while open, unless force-mounted.
type Collapsible struct {
	open          *state.Value[bool]
	disabled      bool
	forceMount    bool
	adapterTarget interaction.Target
	scope         *CollapsibleScope

	trigger *CollapsibleTrigger
	content *CollapsibleContent

	mountCfg mountTracker
}

// CollapsibleScope carries the composite's shared state to its sub-parts.
// Obtain one from the root's Scope method; sub-parts constructed without it
// fail fast.
type CollapsibleScope struct {
	root *Collapsible
}

// NewCollapsible creates a collapsible composite from the given config.
func NewCollapsible(cfg CollapsibleConfig) *Collapsible {
	c := &Collapsible{
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
	c.open = state.New(opts...)
	c.open.SetDisabledFunc(func() bool { return c.disabled })

	c.mountCfg = mountTracker{onMount: cfg.OnMount, onUnmount: cfg.OnUnmount}
	c.scope = &CollapsibleScope{root: c}
	c.adapterTarget = cfg.Target
	return c
}

// Scope returns the composite scope for constructing sub-parts explicitly.
func (c *Collapsible) Scope() *CollapsibleScope {
	return c.scope
}

// Open reports the effective open state.
func (c *Collapsible) Open() bool {
	return c.open.Get()
}

// Toggle flips the open state through the reconciler: disabled collapsibles
// ignore it, controlled ones only report.
func (c *Collapsible) Toggle() {
	state.Toggle(c.open)
	c.refreshMount()
}

// SetOpen requests a specific open state through the reconciler.
func (c *Collapsible) SetOpen(open bool) {
	c.open.Set(open)
	c.refreshMount()
}

// SyncOpen feeds a new external open value into a controlled collapsible.
func (c *Collapsible) SyncOpen(open bool) {
	c.open.SyncExternal(open)
	c.refreshMount()
}

// SetDefaultOpen resyncs the uncontrolled default. Controlled collapsibles
// ignore it.
func (c *Collapsible) SetDefaultOpen(open bool) {
	c.open.SetDefault(open)
	c.refreshMount()
}

// SetDisabled updates the disabled state.
func (c *Collapsible) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports the disabled state.
func (c *Collapsible) Disabled() bool {
	return c.disabled
}

func (c *Collapsible) refreshMount() {
	if c.content != nil {
		c.content.refreshMount()
	}
}

// Update routes a message to the trigger.
func (c *Collapsible) Update(msg tea.Msg) {
	if c.trigger != nil {
		c.trigger.Update(msg)
	}
}

// Trigger returns the composite's trigger sub-part, creating it on first
// use.
func (c *Collapsible) Trigger(label string) *CollapsibleTrigger {
	if c.trigger == nil {
		c.trigger, _ = NewCollapsibleTrigger(c.scope, label)
	}
	return c.trigger
}

// Content returns the composite's content sub-part, creating it on first
// use.
func (c *Collapsible) Content(children ...Renderable) *CollapsibleContent {
	if c.content == nil {
		c.content, _ = NewCollapsibleContent(c.scope, children...)
	}
	return c.content
}

// View renders the trigger followed by the gated content.
func (c *Collapsible) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the composite with the given context.
func (c *Collapsible) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, 2)
	if c.trigger != nil {
		parts = append(parts, c.trigger.ViewWithContext(ctx))
	}
	if c.content != nil {
		if view := c.content.ViewWithContext(ctx); view != "" {
			parts = append(parts, view)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// CollapsibleTrigger is the pressable control that toggles its composite.
type CollapsibleTrigger struct {
	BaseComponent
	scope   *CollapsibleScope
	label   string
	adapter interaction.Adapter
	region  interaction.Region
	asChild Renderable
	err     error
}

// NewCollapsibleTrigger constructs a trigger bound to an existing composite
// scope. A nil scope is a misuse error: the trigger cannot exist outside a
// Collapsible.
func NewCollapsibleTrigger(scope *CollapsibleScope, label string) (*CollapsibleTrigger, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("CollapsibleTrigger", "Collapsible")
	}
	t := &CollapsibleTrigger{scope: scope, label: label}
	t.adapter = interaction.NewAdapter(scope.root.adapterTarget,
		interaction.WithDisabledFunc(func() bool { return scope.root.disabled }))
	scope.root.trigger = t
	return t, nil
}

// SetRegion places the trigger's hit area.
func (t *CollapsibleTrigger) SetRegion(r interaction.Region) {
	t.region = r
}

// Update routes a message through the trigger's adapter. A discrete
// activation toggles the composite exactly once.
func (t *CollapsibleTrigger) Update(msg tea.Msg) {
	for _, intent := range t.adapter.Translate(msg, t.region) {
		if intent == interaction.IntentActivate {
			t.scope.root.Toggle()
		}
	}
}

// Focus moves keyboard focus onto the trigger.
func (t *CollapsibleTrigger) Focus() {
	if focuser, ok := t.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// Blur removes keyboard focus from the trigger.
func (t *CollapsibleTrigger) Blur() {
	if focuser, ok := t.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

// AsChild merges the trigger's computed props onto the single supplied
// child.
func (t *CollapsibleTrigger) AsChild(child Renderable) *CollapsibleTrigger {
	if err := validateChild("CollapsibleTrigger", child); err != nil {
		t.err = err
		return t
	}
	t.asChild = child
	return t
}

// WithAppliers applies theme-aware style modifiers.
func (t *CollapsibleTrigger) WithAppliers(appliers ...theme.StyleFunc) *CollapsibleTrigger {
	t.AddAppliers(appliers...)
	return t
}

// Validate reports configuration errors accumulated during construction.
func (t *CollapsibleTrigger) Validate() error {
	return t.err
}

// View renders the trigger with the default theme.
func (t *CollapsibleTrigger) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger with a disclosure marker reflecting
// the open state.
func (t *CollapsibleTrigger) ViewWithContext(ctx RenderContext) string {
	if t.err != nil {
		return renderConfigError(ctx, t.err)
	}

	base := lipgloss.NewStyle().Bold(true)
	if t.scope.root.disabled {
		base = base.Faint(true)
	}
	if t.adapter.FocusVisible() {
		base = base.Underline(true)
	}
	style := t.ComputeStyle(ctx.Theme, base)

	if t.asChild != nil {
		return mergeChild(t.asChild, ctx, style)
	}

	marker := "▸"
	if t.scope.root.Open() {
		marker = "▾"
	}
	return style.Render(marker + " " + t.label)
}

// CollapsibleContent is the gated content region of a Collapsible.
type CollapsibleContent struct {
	BaseComponent
	scope    *CollapsibleScope
	children []Renderable
	mount    *mountTracker
}

// NewCollapsibleContent constructs content bound to an existing composite
// scope. A nil scope is a misuse error.
func NewCollapsibleContent(scope *CollapsibleScope, children ...Renderable) (*CollapsibleContent, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("CollapsibleContent", "Collapsible")
	}
	c := &CollapsibleContent{scope: scope, children: children}
	c.mount = &scope.root.mountCfg
	scope.root.content = c
	c.refreshMount()
	return c, nil
}

func (c *CollapsibleContent) refreshMount() {
	c.mount.setMounted(c.scope.root.Open() || c.scope.root.forceMount)
}

// Mounted reports whether the content is in the render tree.
func (c *CollapsibleContent) Mounted() bool {
	return c.mount.Mounted()
}

// Hidden reports whether the content is mounted but visually hidden, which
// only happens under force mount while closed.
func (c *CollapsibleContent) Hidden() bool {
	return c.mount.Mounted() && !c.scope.root.Open()
}

// WithAppliers applies theme-aware style modifiers.
func (c *CollapsibleContent) WithAppliers(appliers ...theme.StyleFunc) *CollapsibleContent {
	c.AddAppliers(appliers...)
	return c
}

// View renders the content with the default theme.
func (c *CollapsibleContent) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the content, or nothing while unmounted. Force-
// mounted hidden content renders dimmed with a hidden-state marker.
func (c *CollapsibleContent) ViewWithContext(ctx RenderContext) string {
	open := c.scope.root.Open()
	if !open && !c.scope.root.forceMount {
		return ""
	}

	views := renderChildren(c.children, ctx)
	content := lipgloss.JoinVertical(lipgloss.Left, views...)

	base := lipgloss.NewStyle().PaddingLeft(2)
	if !open {
		base = base.Faint(true)
		content = hiddenMarker + "\n" + content
	}
	return c.ComputeStyle(ctx.Theme, base).Render(content)
}

// hiddenMarker is the accessibility marker rendered on force-mounted content
// while its composite is closed.
const hiddenMarker = "[hidden]"
