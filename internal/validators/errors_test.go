package validators

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("cause")

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError(errCause, FieldCategoryID, MsgInvalidCategory)

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, errCause)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrValidation)
	assert.NotErrorIs(t, err, ErrUnknownField)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{}
	assert.Equal(t, "validation failed", err.Error())

	err.Add("first_name", MsgRequired)
	err.Add("email", MsgInvalidEmail)
	assert.Equal(t, "validation failed: first_name: is required; email: must be a valid email address", err.Error())
}

func TestValidationError_OrNil(t *testing.T) {
	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())
	assert.NoError(t, (&ValidationError{}).OrNil())

	ve := &ValidationError{}
	ve.Add("name", MsgRequired)
	assert.Error(t, ve.OrNil())
}

func TestAsValidationError(t *testing.T) {
	ve, ok := AsValidationError(fmt.Errorf("ctx: %w", NewValidationError(nil, "name", MsgRequired)))
	require.True(t, ok)
	assert.Equal(t, "name", ve.Fields[0].Field)

	_, ok = AsValidationError(errCause)
	assert.False(t, ok)
}
