package registry

import (
	"path/filepath"
	"regexp"
	"strings"
)

const themeNameMaxLength = 64

var nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)

// NameFromPath derives a registry-friendly theme name from a file path:
// themes/Solar Flare.yaml becomes solar-flare.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return SanitizeName(base)
}

// SanitizeName normalizes a display name into the registry's lowercase
// dash-separated format.
func SanitizeName(name string) string {
	lowered := strings.ToLower(name)
	sanitized := nonAlphanumericExpr.ReplaceAllString(lowered, "-")
	sanitized = strings.Trim(sanitized, "-")

	if len(sanitized) > themeNameMaxLength {
		sanitized = strings.Trim(sanitized[:themeNameMaxLength], "-")
	}

	return sanitized
}

// IsThemeFile reports whether the path looks like a theme definition.
func IsThemeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
