package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
)

// Validator checks config and world structs and reports failures by their
// file keys (logging.level, script[2].action) rather than Go field names
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the outpost rules registered
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(fileKey)

	_ = v.RegisterValidation("item_category", func(fl validator.FieldLevel) bool {
		_, err := catalog.ParseCategory(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// fileKey names a field after its yaml or mapstructure tag
func fileKey(field reflect.StructField) string {
	for _, tag := range []string{"yaml", "mapstructure"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// Validate runs the struct tags of i
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	lines := make([]string, 0, len(failures))
	for _, f := range failures {
		lines = append(lines, fmt.Sprintf("%s: failed %s (value: '%v')", keyPath(f.Namespace()), describeTag(f), f.Value()))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// keyPath drops the root type name from a validator namespace
func keyPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}

func describeTag(f validator.FieldError) string {
	if f.Param() == "" {
		return f.Tag()
	}
	return f.Tag() + "=" + f.Param()
}

// ValidateConfig validates a fully defaulted configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
