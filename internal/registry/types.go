package registry

import (
	"time"
)

// Entry is a registered theme: where its file lives and where it came from.
type Entry struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Description  string    `json:"description,omitempty"`
	Source       string    `json:"source,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// File is the JSON index format for the theme registry.
type File struct {
	Version string  `json:"version"`
	Themes  []Entry `json:"themes"`
}

// ColourSpec is one semantic colour group in a theme file. Every colour is a
// light/dark hex pair.
type ColourSpec struct {
	Base     PairSpec `yaml:"base" validate:"required"`
	OnBase   PairSpec `yaml:"on_base" validate:"required"`
	Muted    PairSpec `yaml:"muted" validate:"required"`
	Contrast PairSpec `yaml:"contrast" validate:"required"`
}

// PairSpec holds the light and dark terminal variants of one colour.
type PairSpec struct {
	Light string `yaml:"light" validate:"required,hexcolor"`
	Dark  string `yaml:"dark" validate:"required,hexcolor"`
}

// PaletteSpec mirrors the semantic palette slots of a theme.
type PaletteSpec struct {
	Primary   ColourSpec `yaml:"primary" validate:"required"`
	Secondary ColourSpec `yaml:"secondary" validate:"required"`
	Surface   ColourSpec `yaml:"surface" validate:"required"`
	Success   ColourSpec `yaml:"success" validate:"required"`
	Warning   ColourSpec `yaml:"warning" validate:"required"`
	Danger    ColourSpec `yaml:"danger" validate:"required"`
	Info      ColourSpec `yaml:"info" validate:"required"`
	Neutral   ColourSpec `yaml:"neutral" validate:"required"`
}

// SpacingSpec optionally overrides the spacing scales. Zero tables fall back
// to the default scale during normalization.
type SpacingSpec struct {
	Padding []int `yaml:"padding,omitempty" validate:"omitempty,max=6,dive,gte=0,lte=16"`
	Margin  []int `yaml:"margin,omitempty" validate:"omitempty,max=6,dive,gte=0,lte=16"`
}

// ThemeSpec is the on-disk YAML schema for a theme.
type ThemeSpec struct {
	Version     string      `yaml:"version" validate:"required,theme_version"`
	Name        string      `yaml:"name" validate:"required,theme_name"`
	Description string      `yaml:"description,omitempty"`
	Palette     PaletteSpec `yaml:"palette" validate:"required"`
	Spacing     SpacingSpec `yaml:"spacing,omitempty"`
}
