package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// validateStaticConfig checks the struct tag constraints of the static config
// and the constraints spanning several sections
func validateStaticConfig(config *StaticCfg) error {
	if err := validate.Struct(config); err != nil {
		return formatValidationError(err)
	}

	seen := make(map[string]bool, len(config.Variants))
	for _, variant := range config.Variants {
		if seen[variant.Name] {
			return fmt.Errorf("Variants: duplicate variant name %q", variant.Name)
		}
		seen[variant.Name] = true
	}

	if config.Log.LogToDB && !config.MongoDB.Enabled {
		return errors.New("LogConfig.LogToDB: requires MongoDB.Enabled")
	}
	return nil
}

// formatValidationError converts validator errors into one readable message
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.TrimPrefix(e.Namespace(), "StaticCfg.")
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s: is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: must be at least %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: must be at most %s", field, e.Param()))
		case "excludesall":
			msgs = append(msgs, fmt.Sprintf("%s: must not contain any of %q", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
