// Package theme provides immutable styling themes and the variant resolver
// used by weft components.
//
// A Theme bundles a semantic colour palette, border sets, spacing scales and
// typography presets. Component variants (button variant, alert tone, radius)
// are closed enumerations resolved through the theme's VariantRegistry into a
// lipgloss.Style. Themes are value types: create one, reuse it, and derive new
// ones instead of mutating.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group that works together:
//
//   - Base: the background or brand colour
//   - OnBase: content colour legible against Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Contrast: an accent that pops against Base
//
// All colours are adaptive, carrying light and dark terminal variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots components draw from.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// Slot provides type-safe access to a semantic colour slot. Use the
// predefined slots (Primary, Danger, ...) with style appliers.
type Slot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	Primary   Slot = func(p Palette) ColourSet { return p.Primary }
	Secondary Slot = func(p Palette) ColourSet { return p.Secondary }
	Surface   Slot = func(p Palette) ColourSet { return p.Surface }
	Success   Slot = func(p Palette) ColourSet { return p.Success }
	Warning   Slot = func(p Palette) ColourSet { return p.Warning }
	Danger    Slot = func(p Palette) ColourSet { return p.Danger }
	Info      Slot = func(p Palette) ColourSet { return p.Info }
	Neutral   Slot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups the reusable border glyph sets.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXS
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
)

const spacingSizeCount = int(SpacingXL) + 1

// Valid reports whether the size is a member of the spacing scale.
func (s SpacingSize) Valid() bool {
	return s >= SpacingNone && s < SpacingSize(spacingSizeCount)
}

// SpacingTable maps each SpacingSize to a cell count.
type SpacingTable [spacingSizeCount]int

// SpacingConfig stores distinct scales for padding and margin.
type SpacingConfig struct {
	Padding SpacingTable
	Margin  SpacingTable
}

// TypographyScale contains the semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Faint    lipgloss.Style
}

// InputStyles describes the default/focus/disabled styles for text inputs.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Disabled lipgloss.Style
}

// Theme is an immutable styling theme.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// Normalize returns a theme with all fields properly initialized, so
// partially-specified themes still resolve every component variant.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = defaultVariantRegistry()
	}
	return t
}

func spacingTableIsZero(table SpacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() SpacingTable {
	return SpacingTable{
		SpacingNone: 0,
		SpacingXS:   1,
		SpacingSM:   1,
		SpacingMD:   2,
		SpacingLG:   3,
		SpacingXL:   4,
	}
}

// PaddingValue returns the padding cell count for the given size.
func PaddingValue(t Theme, size SpacingSize) int {
	return spacingLookup(t.Spacing.Padding, size)
}

// MarginValue returns the margin cell count for the given size.
func MarginValue(t Theme, size SpacingSize) int {
	return spacingLookup(t.Spacing.Margin, size)
}

func spacingLookup(table SpacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingMD)
	}
	return table[index]
}

// BorderForVariant returns the border glyph set for the given variant.
func BorderForVariant(t Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderNormal:
		return t.Borders.Normal
	case BorderRounded:
		return t.Borders.Rounded
	case BorderThick:
		return t.Borders.Thick
	case BorderDouble:
		return t.Borders.Double
	default:
		return t.Borders.None
	}
}

// TypographyStyle returns the preset for the given typography variant.
func TypographyStyle(t Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyTitle:
		return t.Typography.Title
	case TypographySubtitle:
		return t.Typography.Subtitle
	case TypographyBody:
		return t.Typography.Body
	case TypographyCode:
		return t.Typography.Code
	case TypographyEmphasis:
		return t.Typography.Emphasis
	case TypographyFaint:
		return t.Typography.Faint
	default:
		return t.Typography.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(t Theme, st InputState) lipgloss.Style {
	switch st {
	case InputFocus:
		return t.Input.Focus
	case InputDisabled:
		return t.Input.Disabled
	default:
		return t.Input.Default
	}
}

// Default returns the standard weft theme.
func Default() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#2563eb", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#1d4ed8", "#3b82f6"),
			Contrast: ac("#fde047", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#9333ea", "#c084fc"),
			OnBase:   ac("#faf5ff", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e5e7eb", "#1f2937"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#16a34a", "#4ade80"),
			OnBase:   ac("#f0fdf4", "#052e16"),
			Muted:    ac("#15803d", "#166534"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#ca8a04", "#facc15"),
			OnBase:   ac("#fefce8", "#422006"),
			Muted:    ac("#a16207", "#854d0e"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#dc2626", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#b91c1c", "#991b1b"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#0891b2", "#22d3ee"),
			OnBase:   ac("#ecfeff", "#083344"),
			Muted:    ac("#0e7490", "#155e75"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f8fafc", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Disabled: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Faint(true),
	}

	t := Theme{
		Name:       "default",
		Palette:    palette,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Input:      input,
		Variants:   defaultVariantRegistry(),
	}

	return t.Normalize()
}

// Dark returns a dark terminal variant of the default theme.
func Dark() Theme {
	t := Default()
	t.Name = "dark"

	t.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#60a5fa", Dark: "#93c5fd"},
	}

	t.Typography = defaultTypography(t.Palette)
	return t.Normalize()
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Faint:    base.Faint(true),
	}
}
