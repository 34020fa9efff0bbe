package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"aas-refmap/internal/reference"
)

var validate = validator.New()

// Validate checks struct constraints, then the values that need parsing:
// kind names and the include expression.
func Validate(c *Config) error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	var errs []error

	for _, name := range c.Mapper.ContainmentKinds {
		if _, err := reference.ParseKind(name); err != nil {
			errs = append(errs, fmt.Errorf("mapper.containment_kinds: %w", err))
		}
	}

	for name := range c.Mapper.Hints {
		if _, err := reference.ParseKind(name); err != nil {
			errs = append(errs, fmt.Errorf("mapper.hints: %w", err))
		}
	}

	if _, err := compileInclude(c.Mapper.Include); err != nil {
		errs = append(errs, fmt.Errorf("mapper.include: %w", err))
	}

	return errors.Join(errs...)
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")

		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s], got %q", field, fe.Param(), fe.Value()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s: must be >= %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", field, fe.Tag()))
		}
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
