package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"go-clinic-scheduling/pkg/apperr"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate checks struct tags and reports failures as a single ValidationError
// so callers see the same error kind as the entity-level checks.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "min":
			messages = append(messages, field+" must be at least "+e.Param())
		case "max":
			messages = append(messages, field+" must be at most "+e.Param())
		case "gt":
			messages = append(messages, field+" must be greater than "+e.Param())
		case "gte":
			messages = append(messages, field+" must be greater than or equal to "+e.Param())
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return apperr.NewValidation("%s", strings.Join(messages, "; "))
}
