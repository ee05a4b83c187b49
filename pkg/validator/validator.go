package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// brphone: two-digit area code + literal '9' + eight digits
	v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return entity.PhonePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validator errors into field -> message
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = err.Error()
		return errorsMap
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errorsMap[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errorsMap[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "brphone":
			errorsMap[field] = fmt.Sprintf("%s is invalid - expected format: 85992563678", field)
		case "min":
			errorsMap[field] = fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
		case "oneof":
			errorsMap[field] = fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
		default:
			errorsMap[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return errorsMap
}
