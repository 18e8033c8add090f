package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	// StrictPolicy strips all HTML. User content is stored as plain text.
	sanitizer = bluemonday.StrictPolicy()
)

func sanitizeText(s string) string {
	return strings.TrimSpace(sanitizer.Sanitize(s))
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return internal_errors.Validation("payload does not meet data type specification")
	}
	return nil
}
