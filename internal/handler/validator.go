package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LookupValidationError converts the first failed lookup field into the
// endpoint's stable user-facing message. Validator errors come back in struct
// field order, so a missing domain wins over a bad type.
func LookupValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Invalid request"
	}

	switch validationErrors[0].Field() {
	case "Domain":
		return "Missing 'domain'"
	case "Type":
		return "Invalid 'type'. Use 'domain' or 'contact'"
	default:
		return "Invalid request"
	}
}

// ValidationError wraps validator.ValidationErrors into a generic
// user-friendly message for the non-lookup endpoints.
func ValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Invalid request"
	}

	var errorMsgs []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' is required", e.Field()))
		default:
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
	}

	return strings.Join(errorMsgs, ", ")
}
