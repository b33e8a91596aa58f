package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func specFromYAML(t *testing.T, contents string) *ThemeSpec {
	t.Helper()
	var spec ThemeSpec
	require.NoError(t, yaml.Unmarshal([]byte(contents), &spec))
	return &spec
}

func TestValidateSpecAcceptsCompleteTheme(t *testing.T) {
	t.Parallel()

	spec := specFromYAML(t, validThemeYAML)
	require.NoError(t, ValidateSpec(spec))
	assert.Equal(t, "solar", spec.Name)
}

func TestValidateSpecRejectsBadHexColour(t *testing.T) {
	t.Parallel()

	spec := specFromYAML(t, validThemeYAML)
	spec.Palette.Danger.Base.Light = "red"

	err := ValidateSpec(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hexcolor")
}

func TestValidateSpecRejectsBadName(t *testing.T) {
	t.Parallel()

	spec := specFromYAML(t, validThemeYAML)
	spec.Name = "Solar Flare!"

	require.Error(t, ValidateSpec(spec))
}

func TestValidateSpecRejectsBadVersion(t *testing.T) {
	t.Parallel()

	spec := specFromYAML(t, validThemeYAML)
	spec.Version = "one"

	require.Error(t, ValidateSpec(spec))
}

func TestValidateSpecNilSpec(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateSpec(nil))
}

func TestValidateThemeName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateThemeName("solar"))
	assert.NoError(t, ValidateThemeName("night-owl-2"))
	assert.Error(t, ValidateThemeName(""))
	assert.Error(t, ValidateThemeName("-leading"))
	assert.Error(t, ValidateThemeName("UPPER"))
}

func TestToThemeKeepsDefaultsForUnspecifiedSections(t *testing.T) {
	t.Parallel()

	spec := specFromYAML(t, validThemeYAML)
	require.NoError(t, ValidateSpec(spec))

	converted := spec.ToTheme()
	assert.Equal(t, "solar", converted.Name)
	assert.Equal(t, "#2563eb", converted.Palette.Primary.Base.Light)
	// Borders and typography come from the default theme.
	assert.NotEmpty(t, converted.Borders.Rounded.Top)
	assert.NotNil(t, converted.Variants)
}

func TestToThemeAppliesSpacingOverride(t *testing.T) {
	t.Parallel()

	spec := specFromYAML(t, validThemeYAML)
	spec.Spacing.Padding = []int{0, 2, 2, 4, 6, 8}
	require.NoError(t, ValidateSpec(spec))

	converted := spec.ToTheme()
	assert.Equal(t, 4, converted.Spacing.Padding[3])
}
