// Package validator adapts go-playground/validator to echo's Validator
// interface and turns failures into the domain's field-level error list.
package validator

import (
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

var tenDigits = regexp.MustCompile(`^[0-9]{10}$`)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator with the project's custom rules registered.
func New() echo.Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Exactly 10 ASCII digits, nothing else.
	_ = validate.RegisterValidation("tendigits", func(fl playground.FieldLevel) bool {
		return tenDigits.MatchString(fl.Field().String())
	})

	return &echoValidator{validate: validate}
}

// Validate checks the struct and collects every failing field instead of
// short-circuiting, so callers can report all problems at once.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validation failed")
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "endswith":
		return "must end with " + fe.Param()
	case "tendigits":
		return "must be a 10-digit number"
	default:
		return "is invalid"
	}
}
