package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/theme"
)

// ButtonConfig configures a Button at construction.
type ButtonConfig struct {
	Label    string
	Variant  theme.ButtonVariant
	Size     theme.ButtonSize
	Radius   theme.Radius
	Disabled bool
	OnPress  func()
	Target   interaction.Target
}

// Button is an interactive pressable surface.
type Button struct {
	BaseComponent
	label   string
	variant theme.ButtonVariant
	size    theme.ButtonSize
	radius  theme.Radius

	disabled bool
	pressed  bool
	hovered  bool
	onPress  func()

	adapter interaction.Adapter
	region  interaction.Region
	asChild Renderable
	err     error
}

// NewButton creates a button from the given config.
func NewButton(cfg ButtonConfig) *Button {
	b := &Button{
		label:    cfg.Label,
		variant:  cfg.Variant,
		size:     cfg.Size,
		radius:   cfg.Radius,
		disabled: cfg.Disabled,
		onPress:  cfg.OnPress,
	}
	b.adapter = interaction.NewAdapter(cfg.Target,
		interaction.WithDisabledFunc(func() bool { return b.disabled }))

	if !cfg.Variant.Valid() {
		b.err = invalidAxis("Button", "variant", cfg.Variant)
	} else if !cfg.Size.Valid() {
		b.err = invalidAxis("Button", "size", cfg.Size)
	} else if !cfg.Radius.Valid() {
		b.err = invalidAxis("Button", "radius", cfg.Radius)
	}
	return b
}

// SetRegion places the button's hit area for pointer interaction.
func (b *Button) SetRegion(r interaction.Region) {
	b.region = r
}

// Region returns the button's hit area.
func (b *Button) Region() interaction.Region {
	return b.region
}

// Update routes a Bubble Tea message through the button's interaction
// adapter. Each event handler runs to completion before the next message.
func (b *Button) Update(msg tea.Msg) {
	for _, intent := range b.adapter.Translate(msg, b.region) {
		b.apply(intent)
	}
}

// Focus moves keyboard focus onto the button. Only meaningful for the key
// target.
func (b *Button) Focus() {
	if focuser, ok := b.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(true)
	}
}

// Blur removes keyboard focus from the button.
func (b *Button) Blur() {
	if focuser, ok := b.adapter.(interaction.Focuser); ok {
		focuser.SetFocused(false)
	}
}

func (b *Button) apply(intent interaction.Intent) {
	switch intent {
	case interaction.IntentPressStart:
		b.pressed = true
	case interaction.IntentPressEnd:
		b.pressed = false
	case interaction.IntentActivate:
		if b.onPress != nil {
			b.onPress()
		}
	case interaction.IntentHoverEnter:
		b.hovered = true
	case interaction.IntentHoverLeave:
		b.hovered = false
	}
}

// Pressed reports the transient pressed state.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Hovered reports the transient hover state.
func (b *Button) Hovered() bool {
	return b.hovered
}

// FocusVisible reports whether the button should render a focus ring.
func (b *Button) FocusVisible() bool {
	return b.adapter.FocusVisible()
}

// Disabled reports the disabled state.
func (b *Button) Disabled() bool {
	return b.disabled
}

// SetDisabled updates the disabled state.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// AsChild merges the button's computed style and interaction handling onto
// the single supplied child instead of rendering the button's own surface.
func (b *Button) AsChild(child Renderable) *Button {
	if err := validateChild("Button", child); err != nil {
		b.err = err
		return b
	}
	b.asChild = child
	return b
}

// WithStyle installs an explicit style override.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-aware style modifiers.
func (b *Button) WithAppliers(appliers ...theme.StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Validate reports configuration errors accumulated during construction.
func (b *Button) Validate() error {
	return b.err
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	if b.err != nil {
		return renderConfigError(ctx, b.err)
	}

	style, err := b.computedStyle(ctx.Theme)
	if err != nil {
		return renderConfigError(ctx, err)
	}

	if b.asChild != nil {
		return mergeChild(b.asChild, ctx, style)
	}
	return style.Render(b.label)
}

func (b *Button) computedStyle(t theme.Theme) (lipgloss.Style, error) {
	style, err := t.Resolve("Button", b.variant, lipgloss.NewStyle())
	if err != nil {
		return style, err
	}
	style, err = t.Resolve("Button", b.size, style)
	if err != nil {
		return style, err
	}
	style, err = t.Resolve("Button", b.radius, style)
	if err != nil {
		return style, err
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.pressed {
		style = style.Reverse(true)
	}
	if b.hovered {
		style = style.Underline(true)
	}
	if b.adapter.FocusVisible() {
		style = style.BorderStyle(t.Borders.Thick).BorderForeground(t.Palette.Primary.Base)
	}

	return b.ComputeStyle(t, style), nil
}
