package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	wefterrors "github.com/weftui/weft/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$|^[a-z0-9]$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSpec performs schema validation on a parsed theme spec.
func ValidateSpec(spec *ThemeSpec) error {
	if spec == nil {
		return wefterrors.NewValidationError("theme", "theme spec is nil", nil)
	}

	if err := validatorInstance().Struct(spec); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateThemeName checks a registry name outside full spec validation, for
// commands that take a bare name argument.
func ValidateThemeName(name string) error {
	if name == "" {
		return wefterrors.NewValidationError("name", "theme name cannot be empty", nil)
	}
	if !themeNamePattern.MatchString(name) {
		return wefterrors.NewValidationError("name",
			fmt.Sprintf("invalid theme name %q: lowercase letters, digits and dashes only", name), nil)
	}
	return nil
}

func convertValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrors); !ok {
		return wefterrors.NewValidationError("theme", err.Error(), err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("%s fails %q", normalizeFieldPath(fe.Namespace()), fe.Tag()))
	}
	sort.Strings(messages)

	return wefterrors.NewValidationError("theme", strings.Join(messages, "; "), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = fieldErrors
	return true
}

func normalizeFieldPath(namespace string) string {
	// Strip the leading struct name so messages read palette.primary.base.
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	return strings.ToLower(namespace)
}
