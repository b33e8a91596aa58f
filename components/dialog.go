package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/state"
	"github.com/weftui/weft/theme"
)

// DialogConfig configures a Dialog at construction. Open decides the state
// mode once: non-nil is controlled, nil is uncontrolled seeded by
// DefaultOpen.
type DialogConfig struct {
	Open         *bool
	DefaultOpen  bool
	Disabled     bool
	ForceMount   bool
	OnOpenChange func(bool)
	OnMount      func()
	OnUnmount    func()
	Target       interaction.Target
}

// Dialog is a modal two-state composite: a trigger opens it, a close control
// dismisses it, and its content mounts only while open.
type Dialog struct {
	open          *state.Value[bool]
	disabled      bool
	forceMount    bool
	adapterTarget interaction.Target
	scope         *DialogScope

	trigger *DialogTrigger
	content *DialogContent

	mountCfg mountTracker
}

// DialogScope carries the composite's shared state to its sub-parts.
type DialogScope struct {
	root *Dialog
}

// NewDialog creates a dialog composite from the given config.
func NewDialog(cfg DialogConfig) *Dialog {
	d := &Dialog{
		disabled:      cfg.Disabled,
		forceMount:    cfg.ForceMount,
		adapterTarget: cfg.Target,
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
	d.open = state.New(opts...)
	d.open.SetDisabledFunc(func() bool { return d.disabled })

	d.mountCfg = mountTracker{onMount: cfg.OnMount, onUnmount: cfg.OnUnmount}
	d.scope = &DialogScope{root: d}
	return d
}

// Scope returns the composite scope for constructing sub-parts explicitly.
func (d *Dialog) Scope() *DialogScope {
	return d.scope
}

// Open reports the effective open state.
func (d *Dialog) Open() bool {
	return d.open.Get()
}

// SetOpen requests an open-state change through the reconciler.
func (d *Dialog) SetOpen(open bool) {
	d.open.Set(open)
	d.refreshMount()
}

// SyncOpen feeds a new external open value into a controlled dialog.
func (d *Dialog) SyncOpen(open bool) {
	d.open.SyncExternal(open)
	d.refreshMount()
}

// SetDisabled updates the disabled state.
func (d *Dialog) SetDisabled(disabled bool) {
	d.disabled = disabled
}

func (d *Dialog) refreshMount() {
	if d.content != nil {
		d.content.refreshMount()
	}
}

// Update routes a message to the trigger and, while open, the content's
// close control.
func (d *Dialog) Update(msg tea.Msg) {
	if d.trigger != nil {
		d.trigger.Update(msg)
	}
	if d.content != nil && d.Open() {
		d.content.Update(msg)
	}
}

// Trigger returns the dialog's trigger sub-part, creating it on first use.
func (d *Dialog) Trigger(label string) *DialogTrigger {
	if d.trigger == nil {
		d.trigger, _ = NewDialogTrigger(d.scope, label)
	}
	return d.trigger
}

// Content returns the dialog's content sub-part, creating it on first use.
func (d *Dialog) Content(children ...Renderable) *DialogContent {
	if d.content == nil {
		d.content, _ = NewDialogContent(d.scope, children...)
	}
	return d.content
}

// View renders the trigger followed by the gated dialog box.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the composite with the given context.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, 2)
	if d.trigger != nil {
		parts = append(parts, d.trigger.ViewWithContext(ctx))
	}
	if d.content != nil {
		if view := d.content.ViewWithContext(ctx); view != "" {
			parts = append(parts, view)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// DialogTrigger is the pressable control that opens its dialog.
type DialogTrigger struct {
	BaseComponent
	scope   *DialogScope
	label   string
	adapter interaction.Adapter
	region  interaction.Region
	asChild Renderable
	err     error
}

// NewDialogTrigger constructs a trigger bound to an existing dialog scope.
// A nil scope is a misuse error.
func NewDialogTrigger(scope *DialogScope, label string) (*DialogTrigger, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("DialogTrigger", "Dialog")
	}
	t := &DialogTrigger{scope: scope, label: label}
	t.adapter = interaction.NewAdapter(scope.root.adapterTarget,
		interaction.WithDisabledFunc(func() bool { return scope.root.disabled }))
	scope.root.trigger = t
	return t, nil
}

// SetRegion places the trigger's hit area.
func (t *DialogTrigger) SetRegion(r interaction.Region) {
	t.region = r
}

// Region reports the trigger's current hit area.
func (t *DialogTrigger) Region() interaction.Region {
	return t.region
}

// Update routes a message through the trigger's adapter.
func (t *DialogTrigger) Update(msg tea.Msg) {
	for _, intent := range t.adapter.Translate(msg, t.region) {
		if intent == interaction.IntentActivate {
			t.scope.root.SetOpen(true)
		}
	}
}

// Focus moves keyboard focus onto the trigger.
func (t *DialogTrigger) Focus() {
	if focuser, ok := t.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// Blur removes keyboard focus from the trigger.
func (t *DialogTrigger) Blur() {
	if focuser, ok := t.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

// AsChild merges the trigger's computed props onto the single supplied
// child.
func (t *DialogTrigger) AsChild(child Renderable) *DialogTrigger {
	if err := validateChild("DialogTrigger", child); err != nil {
		t.err = err
		return t
	}
	t.asChild = child
	return t
}

// Validate reports configuration errors accumulated during construction.
func (t *DialogTrigger) Validate() error {
	return t.err
}

// View renders the trigger with the default theme.
func (t *DialogTrigger) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger with the given context.
func (t *DialogTrigger) ViewWithContext(ctx RenderContext) string {
	if t.err != nil {
		return renderConfigError(ctx, t.err)
	}

	base := lipgloss.NewStyle().Bold(true).Foreground(ctx.Theme.Palette.Primary.Base)
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
	return style.Render(t.label)
}

// DialogContent is the gated modal box of a Dialog, with optional title,
// description, and close control.
type DialogContent struct {
	BaseComponent
	scope       *DialogScope
	title       string
	description string
	children    []Renderable
	mount       *mountTracker

	closeAdapter interaction.Adapter
	closeRegion  interaction.Region
}

// NewDialogContent constructs content bound to an existing dialog scope. A
// nil scope is a misuse error.
func NewDialogContent(scope *DialogScope, children ...Renderable) (*DialogContent, error) {
	if scope == nil || scope.root == nil {
		return nil, wefterrors.NewMisuseError("DialogContent", "Dialog")
	}
	c := &DialogContent{scope: scope, children: children}
	c.closeAdapter = interaction.NewAdapter(scope.root.adapterTarget,
		interaction.WithDisabledFunc(func() bool { return scope.root.disabled }))
	c.mount = &scope.root.mountCfg
	scope.root.content = c
	c.refreshMount()
	return c, nil
}

// WithTitle sets the dialog title line.
func (c *DialogContent) WithTitle(title string) *DialogContent {
	c.title = title
	return c
}

// WithDescription sets the faint description line under the title.
func (c *DialogContent) WithDescription(description string) *DialogContent {
	c.description = description
	return c
}

// WithAppliers applies theme-aware style modifiers.
func (c *DialogContent) WithAppliers(appliers ...theme.StyleFunc) *DialogContent {
	c.AddAppliers(appliers...)
	return c
}

// SetCloseRegion places the close control's hit area.
func (c *DialogContent) SetCloseRegion(r interaction.Region) {
	c.closeRegion = r
}

// CloseRegion reports the close control's current hit area.
func (c *DialogContent) CloseRegion() interaction.Region {
	return c.closeRegion
}

// Update routes a message through the close control's adapter.
func (c *DialogContent) Update(msg tea.Msg) {
	for _, intent := range c.closeAdapter.Translate(msg, c.closeRegion) {
		if intent == interaction.IntentActivate {
			c.scope.root.SetOpen(false)
		}
	}
}

// FocusClose moves keyboard focus onto the close control.
func (c *DialogContent) FocusClose() {
	if focuser, ok := c.closeAdapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// BlurClose removes keyboard focus from the close control.
func (c *DialogContent) BlurClose() {
	if focuser, ok := c.closeAdapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

func (c *DialogContent) refreshMount() {
	c.mount.setMounted(c.scope.root.Open() || c.scope.root.forceMount)
}

// Mounted reports whether the dialog content is in the render tree.
func (c *DialogContent) Mounted() bool {
	return c.mount.Mounted()
}

// Hidden reports whether the content is mounted but visually hidden, which
// only happens under force mount while closed.
func (c *DialogContent) Hidden() bool {
	return c.mount.Mounted() && !c.scope.root.Open()
}

// View renders the content with the default theme.
func (c *DialogContent) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the modal box, or nothing while unmounted.
func (c *DialogContent) ViewWithContext(ctx RenderContext) string {
	open := c.scope.root.Open()
	if !open && !c.scope.root.forceMount {
		return ""
	}

	sections := make([]Renderable, 0, len(c.children)+2)
	if c.title != "" {
		sections = append(sections, TitleText(c.title))
	}
	if c.description != "" {
		sections = append(sections, SubtitleText(c.description))
	}
	sections = append(sections, c.children...)

	views := renderChildren(sections, ctx)
	content := lipgloss.JoinVertical(lipgloss.Left, views...)
	content = content + "\n\n" + "✕ close"

	base := lipgloss.NewStyle().
		BorderStyle(ctx.Theme.Borders.Double).
		BorderForeground(ctx.Theme.Palette.Primary.Base).
		Padding(0, 2)
	if !open {
		base = base.Faint(true)
		content = hiddenMarker + "\n" + content
	}
	return c.ComputeStyle(ctx.Theme, base).Render(content)
}
