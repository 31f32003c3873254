package validators

import (
	"strings"

	"socketCanvas/internal/errs"
)

const maxStateNameLength = 64

// ValidateStateName checks the display name of a snapshot before saving.
// Cursor and point attributes are deliberately not validated; clients are
// trusted for those.
func ValidateStateName(name string) []error {
	var errors []error
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errors = append(errors, errs.ErrStateNameEmpty)
	}
	if len(trimmed) > maxStateNameLength {
		errors = append(errors, errs.ErrStateNameTooLong)
	}
	return errors
}
