package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ValidationError names the first offending field by its config key.
type ValidationError struct {
	Field string
	Tag   string
	Value any
	err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s=%v failed validation for tag '%s'", e.Field, e.Value, e.Tag)
}

func (e *ValidationError) Unwrap() error { return e.err }

// Validate checks field ranges and enumerations.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil configuration")
	}
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{Field: keyName(fe), Tag: fe.Tag(), Value: fe.Value(), err: err}
	}
	return fmt.Errorf("config: %w", err)
}

// keyName turns Config.UI.ItemHeight into ui.itemheight.
func keyName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}
