package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/state"
	"github.com/weftui/weft/theme"
)

// AlertConfig configures an Alert at construction.
//
// Visible decides the state mode once: non-nil is controlled, nil is
// uncontrolled. DefaultVisible seeds the uncontrolled state and defaults to
// true when nil, so an alert with no visibility config starts visible.
type AlertConfig struct {
	Message        string
	Title          string
	Variant        theme.AlertVariant
	Icon           string
	Visible        *bool
	DefaultVisible *bool
	Closable       bool
	Disabled       bool
	ForceMount     bool

	OnClose         func()
	OnVisibleChange func(bool)
	OnMount         func()
	OnUnmount       func()

	Target interaction.Target
}

// Alert displays a notification message that can be dismissed.
type Alert struct {
	BaseComponent
	message    string
	title      string
	variant    theme.AlertVariant
	icon       string
	closable   bool
	disabled   bool
	forceMount bool
	onClose    func()

	visible *state.Value[bool]
	mount   mountTracker

	adapter     interaction.Adapter
	closeRegion interaction.Region
	err         error
}

// NewAlert creates an alert from the given config.
func NewAlert(cfg AlertConfig) *Alert {
	a := &Alert{
		message:    cfg.Message,
		title:      cfg.Title,
		variant:    cfg.Variant,
		icon:       cfg.Icon,
		closable:   cfg.Closable,
		disabled:   cfg.Disabled,
		forceMount: cfg.ForceMount,
		onClose:    cfg.OnClose,
	}
	if a.icon == "" {
		a.icon = variantIcon(cfg.Variant)
	}
	if !cfg.Variant.Valid() {
		a.err = invalidAxis("Alert", "variant", cfg.Variant)
	}

	var opts []state.Option[bool]
	if cfg.Visible != nil {
		opts = append(opts, state.WithControlled(*cfg.Visible))
	} else if cfg.DefaultVisible != nil {
		opts = append(opts, state.WithDefault(*cfg.DefaultVisible))
	} else {
		opts = append(opts, state.WithDefault(true))
	}
	if cfg.OnVisibleChange != nil {
		opts = append(opts, state.WithOnChange(cfg.OnVisibleChange))
	}
	a.visible = state.New(opts...)
	a.visible.SetDisabledFunc(func() bool { return a.disabled })

	a.adapter = interaction.NewAdapter(cfg.Target,
		interaction.WithDisabledFunc(func() bool { return a.disabled || !a.closable }))

	a.mount = mountTracker{onMount: cfg.OnMount, onUnmount: cfg.OnUnmount}
	a.refreshMount()
	return a
}

func (a *Alert) refreshMount() {
	a.mount.setMounted(a.visible.Get() || a.forceMount)
}

func variantIcon(v theme.AlertVariant) string {
	switch v {
	case theme.AlertSuccess:
		return "✓"
	case theme.AlertWarning:
		return "⚠"
	case theme.AlertError:
		return "✗"
	default:
		return "ℹ"
	}
}

// Visible reports the effective visibility.
func (a *Alert) Visible() bool {
	return a.visible.Get()
}

// Mounted reports whether the alert content is in the render tree.
func (a *Alert) Mounted() bool {
	return a.mount.Mounted()
}

// Close dismisses the alert: it invokes OnClose, then requests the
// visibility change. Uncontrolled alerts unmount; controlled alerts only
// report and wait for the owner to feed the value back.
func (a *Alert) Close() {
	if a.disabled || !a.closable {
		return
	}
	if a.onClose != nil {
		a.onClose()
	}
	a.visible.Set(false)
	a.refreshMount()
}

// SyncVisible feeds a new external visibility into a controlled alert.
func (a *Alert) SyncVisible(visible bool) {
	a.visible.SyncExternal(visible)
	a.refreshMount()
}

// Hidden reports whether the alert is mounted but visually hidden, which
// only happens under force mount while dismissed.
func (a *Alert) Hidden() bool {
	return a.mount.Mounted() && !a.visible.Get()
}

// SetCloseRegion places the close control's hit area.
func (a *Alert) SetCloseRegion(r interaction.Region) {
	a.closeRegion = r
}

// Update routes a message through the close control's adapter.
func (a *Alert) Update(msg tea.Msg) {
	for _, intent := range a.adapter.Translate(msg, a.closeRegion) {
		if intent == interaction.IntentActivate {
			a.Close()
		}
	}
}

// FocusClose moves keyboard focus onto the close control.
func (a *Alert) FocusClose() {
	if focuser, ok := a.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// BlurClose removes keyboard focus from the close control.
func (a *Alert) BlurClose() {
	if focuser, ok := a.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

// SetDisabled updates the disabled state. Disabled alerts ignore close
// interactions entirely.
func (a *Alert) SetDisabled(disabled bool) {
	a.disabled = disabled
}

// WithAppliers applies theme-aware style modifiers.
func (a *Alert) WithAppliers(appliers ...theme.StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Validate reports configuration errors accumulated during construction.
func (a *Alert) Validate() error {
	return a.err
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert, or nothing while unmounted. A force-
// mounted dismissed alert renders dimmed with the hidden-state marker.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	if a.err != nil {
		return renderConfigError(ctx, a.err)
	}
	visible := a.visible.Get()
	if !visible && !a.forceMount {
		return ""
	}

	computed, err := ctx.Theme.Resolve("Alert", a.variant, lipgloss.NewStyle().
		BorderStyle(ctx.Theme.Borders.Normal).
		Padding(0, 1))
	if err != nil {
		return renderConfigError(ctx, err)
	}

	header := a.icon + " " + a.message
	if a.title != "" {
		titleStyle := theme.TypographyStyle(ctx.Theme, theme.TypographyEmphasis)
		header = titleStyle.Render(a.title) + "\n" + a.icon + " " + a.message
	}
	if a.closable {
		header = header + "  ✕"
	}
	if !visible {
		computed = computed.Faint(true)
		header = hiddenMarker + "\n" + header
	}

	return a.ComputeStyle(ctx.Theme, computed).Render(header)
}

// InfoAlert creates an informational alert.
func InfoAlert(message string) *Alert {
	return NewAlert(AlertConfig{Message: message, Variant: theme.AlertInfo})
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(AlertConfig{Message: message, Variant: theme.AlertSuccess})
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(AlertConfig{Message: message, Variant: theme.AlertWarning})
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(AlertConfig{Message: message, Variant: theme.AlertError})
}
