package exceptions

import (
	"errors"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		tag := firstErr.Tag()
		customMessage, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
		return fieldName + " " + customMessage
	}
	return constvars.ErrDevInvalidInput
}
