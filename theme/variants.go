package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	wefterrors "github.com/weftui/weft/pkg/errors"
)

// Axis is implemented by every closed variant enumeration. Passing a value
// outside the enumeration is a configuration error, never a silent fallback.
type Axis interface {
	Valid() bool
	String() string
}

// BorderVariant selects a border glyph set from the theme.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

func (b BorderVariant) Valid() bool {
	return b >= BorderNone && b <= BorderDouble
}

func (b BorderVariant) String() string {
	switch b {
	case BorderNone:
		return "none"
	case BorderNormal:
		return "normal"
	case BorderRounded:
		return "rounded"
	case BorderThick:
		return "thick"
	case BorderDouble:
		return "double"
	default:
		return fmt.Sprintf("border(%d)", int(b))
	}
}

// Radius is the corner-rounding axis. Terminals have one rounded glyph set,
// so radii collapse onto border styles: none is square, full pads the content
// into a pill shape.
type Radius int

const (
	RadiusNone Radius = iota
	RadiusSM
	RadiusMD
	RadiusLG
	RadiusFull
)

func (r Radius) Valid() bool {
	return r >= RadiusNone && r <= RadiusFull
}

func (r Radius) String() string {
	switch r {
	case RadiusNone:
		return "none"
	case RadiusSM:
		return "sm"
	case RadiusMD:
		return "md"
	case RadiusLG:
		return "lg"
	case RadiusFull:
		return "full"
	default:
		return fmt.Sprintf("radius(%d)", int(r))
	}
}

// TypographyVariant selects a typography preset.
type TypographyVariant int

const (
	TypographyBase TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyBody
	TypographyCode
	TypographyEmphasis
	TypographyFaint
)

func (t TypographyVariant) Valid() bool {
	return t >= TypographyBase && t <= TypographyFaint
}

func (t TypographyVariant) String() string {
	switch t {
	case TypographyBase:
		return "base"
	case TypographyTitle:
		return "title"
	case TypographySubtitle:
		return "subtitle"
	case TypographyBody:
		return "body"
	case TypographyCode:
		return "code"
	case TypographyEmphasis:
		return "emphasis"
	case TypographyFaint:
		return "faint"
	default:
		return fmt.Sprintf("typography(%d)", int(t))
	}
}

// ButtonVariant is the button's visual variant axis.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutline
	ButtonGhost
	ButtonDanger
	ButtonSuccess
)

func (b ButtonVariant) Valid() bool {
	return b >= ButtonPrimary && b <= ButtonSuccess
}

func (b ButtonVariant) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonOutline:
		return "outline"
	case ButtonGhost:
		return "ghost"
	case ButtonDanger:
		return "danger"
	case ButtonSuccess:
		return "success"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ButtonSize is the button's size axis.
type ButtonSize int

const (
	SizeSM ButtonSize = iota
	SizeMD
	SizeLG
)

func (s ButtonSize) Valid() bool {
	return s >= SizeSM && s <= SizeLG
}

func (s ButtonSize) String() string {
	switch s {
	case SizeSM:
		return "sm"
	case SizeMD:
		return "md"
	case SizeLG:
		return "lg"
	default:
		return fmt.Sprintf("size(%d)", int(s))
	}
}

// AlertVariant is the alert's tone axis.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertSuccess
	AlertWarning
	AlertError
)

func (a AlertVariant) Valid() bool {
	return a >= AlertInfo && a <= AlertError
}

func (a AlertVariant) String() string {
	switch a {
	case AlertInfo:
		return "info"
	case AlertSuccess:
		return "success"
	case AlertWarning:
		return "warning"
	case AlertError:
		return "error"
	default:
		return fmt.Sprintf("alert(%d)", int(a))
	}
}

// BadgeVariant is the badge's tone axis.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgePrimary
	BadgeSuccess
	BadgeWarning
	BadgeError
)

func (b BadgeVariant) Valid() bool {
	return b >= BadgeDefault && b <= BadgeError
}

func (b BadgeVariant) String() string {
	switch b {
	case BadgeDefault:
		return "default"
	case BadgePrimary:
		return "primary"
	case BadgeSuccess:
		return "success"
	case BadgeWarning:
		return "warning"
	case BadgeError:
		return "error"
	default:
		return fmt.Sprintf("badge(%d)", int(b))
	}
}

// InputState selects the style slot for a text input.
type InputState int

const (
	InputDefault InputState = iota
	InputFocus
	InputDisabled
)

func (i InputState) Valid() bool {
	return i >= InputDefault && i <= InputDisabled
}

func (i InputState) String() string {
	switch i {
	case InputDefault:
		return "default"
	case InputFocus:
		return "focus"
	case InputDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("input(%d)", int(i))
	}
}

// VariantRegistry maps variant axis values to styling strategies, letting
// themes define variant styling as data rather than code.
type VariantRegistry struct {
	strategies map[Axis]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[Axis]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant Axis, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not registered.
func (vr *VariantRegistry) Get(variant Axis) StyleStrategy {
	return vr.strategies[variant]
}

// Resolve validates the axis value and applies its registered strategy to the
// base style. Resolution is deterministic and side-effect free: the same axis
// with the same theme always yields an identical style.
func (t Theme) Resolve(component string, variant Axis, base lipgloss.Style) (lipgloss.Style, error) {
	if variant == nil || !variant.Valid() {
		name := "nil"
		if variant != nil {
			name = variant.String()
		}
		return base, wefterrors.NewConfigError(component, "variant", fmt.Sprintf("value %s is outside the axis enumeration", name))
	}
	if t.Variants == nil {
		return base, nil
	}
	if strategy := t.Variants.Get(variant); strategy != nil {
		return strategy.Apply(base, t), nil
	}
	return base, nil
}

// RadiusBorder returns the border glyph set the radius axis maps onto.
func RadiusBorder(t Theme, r Radius) lipgloss.Border {
	switch r {
	case RadiusNone:
		return t.Borders.Normal
	case RadiusSM, RadiusMD, RadiusLG, RadiusFull:
		return t.Borders.Rounded
	default:
		return t.Borders.None
	}
}

func defaultVariantRegistry() *VariantRegistry {
	vr := NewVariantRegistry()
	registerButtonVariants(vr)
	registerButtonSizes(vr)
	registerAlertVariants(vr)
	registerBadgeVariants(vr)
	registerRadii(vr)
	return vr
}

func registerButtonVariants(vr *VariantRegistry) {
	vr.Register(ButtonPrimary, NewCompositeStrategy(Background(Primary)))
	vr.Register(ButtonSecondary, NewCompositeStrategy(Background(Secondary)))
	vr.Register(ButtonOutline, NewCompositeStrategy(
		Foreground(Primary),
		Border(BorderRounded),
		BorderTint(Primary),
	))
	vr.Register(ButtonGhost, NewCompositeStrategy(Foreground(Primary)))
	vr.Register(ButtonDanger, NewCompositeStrategy(Background(Danger)))
	vr.Register(ButtonSuccess, NewCompositeStrategy(Background(Success)))
}

func registerButtonSizes(vr *VariantRegistry) {
	vr.Register(SizeSM, NewCompositeStrategy(PaddingX(SpacingXS)))
	vr.Register(SizeMD, NewCompositeStrategy(PaddingX(SpacingMD)))
	vr.Register(SizeLG, NewCompositeStrategy(PaddingX(SpacingLG), PaddingY(SpacingXS)))
}

func registerAlertVariants(vr *VariantRegistry) {
	vr.Register(AlertInfo, NewCompositeStrategy(Background(Info), BorderTint(Info)))
	vr.Register(AlertSuccess, NewCompositeStrategy(Background(Success), BorderTint(Success)))
	vr.Register(AlertWarning, NewCompositeStrategy(Background(Warning), BorderTint(Warning)))
	vr.Register(AlertError, NewCompositeStrategy(Background(Danger), BorderTint(Danger)))
}

func registerBadgeVariants(vr *VariantRegistry) {
	vr.Register(BadgeDefault, NewCompositeStrategy(Background(Neutral), PaddingX(SpacingXS)))
	vr.Register(BadgePrimary, NewCompositeStrategy(Background(Primary), PaddingX(SpacingXS)))
	vr.Register(BadgeSuccess, NewCompositeStrategy(Background(Success), PaddingX(SpacingXS)))
	vr.Register(BadgeWarning, NewCompositeStrategy(Background(Warning), PaddingX(SpacingXS)))
	vr.Register(BadgeError, NewCompositeStrategy(Background(Danger), PaddingX(SpacingXS)))
}

func registerRadii(vr *VariantRegistry) {
	vr.Register(RadiusNone, NewCompositeStrategy(borderGlyphs(func(t Theme) lipgloss.Border { return t.Borders.Normal })))
	vr.Register(RadiusSM, NewCompositeStrategy(borderGlyphs(func(t Theme) lipgloss.Border { return t.Borders.Rounded })))
	vr.Register(RadiusMD, NewCompositeStrategy(borderGlyphs(func(t Theme) lipgloss.Border { return t.Borders.Rounded })))
	vr.Register(RadiusLG, NewCompositeStrategy(borderGlyphs(func(t Theme) lipgloss.Border { return t.Borders.Rounded })))
	vr.Register(RadiusFull, NewCompositeStrategy(
		borderGlyphs(func(t Theme) lipgloss.Border { return t.Borders.Rounded }),
		PaddingX(SpacingSM),
	))
}

func borderGlyphs(pick func(Theme) lipgloss.Border) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.BorderStyle(pick(t))
	}
}
