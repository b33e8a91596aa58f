package registry

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/theme"
)

// ParseThemeFile loads a theme definition from disk, validates it, and
// converts it into a usable theme.
func ParseThemeFile(path string) (theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Theme{}, errors.NewParseError(path, err)
	}

	var spec ThemeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return theme.Theme{}, errors.NewParseError(path, err)
	}

	if err := ValidateSpec(&spec); err != nil {
		return theme.Theme{}, err
	}

	return spec.ToTheme(), nil
}

// ToTheme converts a validated spec into a theme. Unspecified sections keep
// the default theme's values, so a palette-only file is a complete theme.
func (s ThemeSpec) ToTheme() theme.Theme {
	t := theme.Default()
	t.Name = s.Name
	t.Palette = s.Palette.toPalette()

	if padding, ok := spacingValues(s.Spacing.Padding); ok {
		t.Spacing.Padding = padding
	}
	if margin, ok := spacingValues(s.Spacing.Margin); ok {
		t.Spacing.Margin = margin
	}

	return t.Normalize()
}

func (p PaletteSpec) toPalette() theme.Palette {
	return theme.Palette{
		Primary:   p.Primary.toColourSet(),
		Secondary: p.Secondary.toColourSet(),
		Surface:   p.Surface.toColourSet(),
		Success:   p.Success.toColourSet(),
		Warning:   p.Warning.toColourSet(),
		Danger:    p.Danger.toColourSet(),
		Info:      p.Info.toColourSet(),
		Neutral:   p.Neutral.toColourSet(),
	}
}

func (c ColourSpec) toColourSet() theme.ColourSet {
	return theme.ColourSet{
		Base:     c.Base.toColour(),
		OnBase:   c.OnBase.toColour(),
		Muted:    c.Muted.toColour(),
		Contrast: c.Contrast.toColour(),
	}
}

func (p PairSpec) toColour() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: p.Light, Dark: p.Dark}
}

func spacingValues(values []int) (theme.SpacingTable, bool) {
	if len(values) == 0 {
		return theme.SpacingTable{}, false
	}
	var table theme.SpacingTable
	copy(table[:], values)
	return table, true
}
