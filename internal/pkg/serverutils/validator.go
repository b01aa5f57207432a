package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"notelens-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks struct validate tags and converts failures
// into a single human-readable validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("Invalid request payload")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return apperror.Validation("Invalid request: " + strings.Join(messages, ", "))
}
