package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wefterrors "github.com/weftui/weft/pkg/errors"
)

func TestDefaultThemeIsFullyInitialized(t *testing.T) {
	t.Parallel()

	th := Default()

	require.NotNil(t, th.Variants)
	assert.Equal(t, "default", th.Name)
	assert.NotZero(t, PaddingValue(th, SpacingMD))
	assert.Zero(t, PaddingValue(th, SpacingNone))
}

func TestNormalizeFillsEmptyTheme(t *testing.T) {
	t.Parallel()

	th := Theme{}.Normalize()

	require.NotNil(t, th.Variants)
	assert.NotZero(t, PaddingValue(th, SpacingLG))
	assert.NotNil(t, th.Variants.Get(ButtonPrimary))
}

func TestResolveIsIdempotentAcrossAxes(t *testing.T) {
	t.Parallel()

	th := Default()
	base := lipgloss.NewStyle()

	first, err := th.Resolve("Button", ButtonOutline, base)
	require.NoError(t, err)
	first, err = th.Resolve("Button", RadiusSM, first)
	require.NoError(t, err)

	second, err := th.Resolve("Button", ButtonOutline, base)
	require.NoError(t, err)
	second, err = th.Resolve("Button", RadiusSM, second)
	require.NoError(t, err)

	assert.Equal(t, first.Render("ok"), second.Render("ok"))
}

func TestResolveRejectsOutOfRangeAxisValue(t *testing.T) {
	t.Parallel()

	th := Default()

	_, err := th.Resolve("Button", ButtonVariant(42), lipgloss.NewStyle())

	var configErr *wefterrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "Button", configErr.Component)
}

func TestResolveRejectsNilAxis(t *testing.T) {
	t.Parallel()

	_, err := Default().Resolve("Card", nil, lipgloss.NewStyle())
	require.Error(t, err)
}

func TestAxisValidity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		axis  Axis
		valid bool
	}{
		{"button primary", ButtonPrimary, true},
		{"button out of range", ButtonVariant(-1), false},
		{"alert error", AlertError, true},
		{"alert out of range", AlertVariant(9), false},
		{"radius full", RadiusFull, true},
		{"radius out of range", Radius(99), false},
		{"badge default", BadgeDefault, true},
		{"size lg", SizeLG, true},
		{"size out of range", ButtonSize(7), false},
		{"input focus", InputFocus, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, tc.axis.Valid())
		})
	}
}

func TestVariantRegistryLookup(t *testing.T) {
	t.Parallel()

	vr := NewVariantRegistry()
	assert.Nil(t, vr.Get(ButtonPrimary))

	strategy := NewCompositeStrategy(Background(Primary))
	vr.Register(ButtonPrimary, strategy)
	assert.NotNil(t, vr.Get(ButtonPrimary))
}

func TestCompositeStrategyAppliesInOrder(t *testing.T) {
	t.Parallel()

	th := Default()
	strategy := NewCompositeStrategy(
		Background(Primary),
		Background(Danger), // later writer wins
	)

	got := strategy.Apply(lipgloss.NewStyle(), th)

	// Compare the resolved attributes, not rendered output, so the assertion
	// holds on colorless terminals too.
	assert.Equal(t, th.Palette.Danger.Base, got.GetBackground())
	assert.Equal(t, th.Palette.Danger.OnBase, got.GetForeground())
}

func TestCompositeStrategyAppendDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	th := Default()
	original := CompositeStrategy{}.Append(Background(Primary))
	extended := original.Append(Background(Danger))

	base := lipgloss.NewStyle()
	assert.Equal(t, th.Palette.Danger.Base, extended.Apply(base, th).GetBackground())

	// The extension never reaches back into the original strategy.
	assert.Equal(t, th.Palette.Primary.Base, original.Apply(base, th).GetBackground())
}

func TestTypographyStyleFallsBackToBase(t *testing.T) {
	t.Parallel()

	th := Default()
	got := TypographyStyle(th, TypographyVariant(99))
	assert.Equal(t, th.Typography.Base.Render("x"), got.Render("x"))
}

func TestInputStyleByState(t *testing.T) {
	t.Parallel()

	th := Default()

	assert.Equal(t, th.Input.Focus.Render("x"), InputStyle(th, InputFocus).Render("x"))
	assert.Equal(t, th.Input.Disabled.Render("x"), InputStyle(th, InputDisabled).Render("x"))
	assert.Equal(t, th.Input.Default.Render("x"), InputStyle(th, InputDefault).Render("x"))
}

func TestDarkThemeOverridesSurface(t *testing.T) {
	t.Parallel()

	def := Default()
	dark := Dark()

	assert.Equal(t, "dark", dark.Name)
	assert.NotEqual(t, def.Palette.Surface.Base, dark.Palette.Surface.Base)
	require.NotNil(t, dark.Variants)
}

func TestRadiusBorderMapping(t *testing.T) {
	t.Parallel()

	th := Default()

	assert.Equal(t, th.Borders.Normal, RadiusBorder(th, RadiusNone))
	assert.Equal(t, th.Borders.Rounded, RadiusBorder(th, RadiusMD))
	assert.Equal(t, th.Borders.Rounded, RadiusBorder(th, RadiusFull))
}
