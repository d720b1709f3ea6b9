package config

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})
	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	return v
}

// Validate checks a parsed configuration.
func Validate(f *File) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// describe renders one validation failure against its YAML-facing path.
func describe(fe validator.FieldError) string {
	path := strings.TrimPrefix(fe.Namespace(), "File.")

	switch fe.Tag() {
	case "goident":
		return fmt.Sprintf("%s: %q is not a valid Go identifier", path, fe.Value())
	case "glob":
		return fmt.Sprintf("%s: %q is not a valid pattern", path, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s: %q is not one of [%s]", path, fe.Value(), fe.Param())
	case "required", "min":
		return fmt.Sprintf("%s: is required", path)
	default:
		return fmt.Sprintf("%s: failed %s validation", path, fe.Tag())
	}
}
