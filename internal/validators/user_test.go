package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice", Password: "secret"}))
	assert.NoError(t, v.Validate(ctx, &models.User{Login: "alice", Password: "secret"}))

	err := v.Validate(ctx, models.User{Login: "", Password: "abc"})
	require.Error(t, err)
	assert.Equal(t, []string{FieldLogin, FieldPassword}, fieldNames(t, err))

	err = v.Validate(ctx, models.User{Login: "alice"}, FieldLogin)
	assert.NoError(t, err)

	assert.ErrorIs(t, v.Validate(ctx, models.Category{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.User{}, "email"), ErrUnknownField)
}
