package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"themes/solar.yaml", "solar"},
		{"themes/Solar Flare.yaml", "solar-flare"},
		{"/abs/path/Night_Owl.yml", "night-owl"},
		{"weird---name.yaml", "weird-name"},
		{"---.yaml", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NameFromPath(tt.path), tt.path)
	}
}

func TestSanitizeNameTrimsLongNames(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 100)
	assert.Len(t, SanitizeName(long), themeNameMaxLength)
}

func TestIsThemeFile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsThemeFile("a.yaml"))
	assert.True(t, IsThemeFile("a.YML"))
	assert.False(t, IsThemeFile("a.json"))
	assert.False(t, IsThemeFile("README.md"))
}
