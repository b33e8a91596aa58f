package errors

import (
	"fmt"
)

// MisuseError reports a component sub-part used outside its required composite
// ancestor, e.g. a CollapsibleTrigger constructed without a Collapsible scope.
type MisuseError struct {
	Part      string
	Composite string
}

// NewMisuseError constructs a MisuseError for the given sub-part and composite.
func NewMisuseError(part, composite string) error {
	return &MisuseError{Part: part, Composite: composite}
}

func (e *MisuseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("weft: %s must be used within %s", e.Part, e.Composite)
}

// ConfigError reports an invalid component configuration: an out-of-range
// variant axis value, a nil asChild child, and similar construction mistakes.
type ConfigError struct {
	Component string
	Field     string
	Message   string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(component, field, message string) error {
	return &ConfigError{Component: component, Field: field, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("weft: invalid %s configuration: %s: %s", e.Component, e.Field, e.Message)
	}
	return fmt.Sprintf("weft: invalid %s configuration: %s", e.Component, e.Message)
}

// ValidationError captures theme or registry file validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a theme or registry file parsing failure.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates issues loading or mutating the theme registry.
type RegistryError struct {
	Theme string
	Err   error
}

// NewRegistryError constructs a RegistryError for the given theme name.
func NewRegistryError(theme string, err error) error {
	return &RegistryError{Theme: theme, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Theme != "" {
		return fmt.Sprintf("registry error for theme %s: %v", e.Theme, e.Err)
	}
	return fmt.Sprintf("registry error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
