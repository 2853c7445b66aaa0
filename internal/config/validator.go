package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	navSlugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	themePrefs     = map[string]struct{}{"light": {}, "dark": {}}
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_pref", func(fl validator.FieldLevel) bool {
			_, ok := themePrefs[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("nav_slug", func(fl validator.FieldLevel) bool {
			return navSlugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig checks the configuration against its declared constraints.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return inkwellerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			field := strings.ToLower(first.Namespace())
			return inkwellerrors.NewValidationError(field, fmt.Sprintf("failed %q constraint", first.Tag()), err)
		}
		return inkwellerrors.NewValidationError("config", err.Error(), err)
	}

	return nil
}
