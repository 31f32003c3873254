package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"socketCanvas/internal/errs"
)

func TestValidateStateName(t *testing.T) {
	assert.Empty(t, ValidateStateName("my drawing"))

	errors := ValidateStateName("   ")
	assert.Contains(t, errors, error(errs.ErrStateNameEmpty))

	errors = ValidateStateName(strings.Repeat("x", 100))
	assert.Contains(t, errors, error(errs.ErrStateNameTooLong))
}
