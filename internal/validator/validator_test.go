package validator

import (
	"testing"

	"adboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Test User",
		Email:    "user@example.com",
		Phone:    "+77001234567",
		Password: "secret123",
	}
}

func TestValidate_Register_Valid(t *testing.T) {
	t.Parallel()

	v := New()
	req := validRegister()
	assert.NoError(t, v.Validate(&req))
}

func TestValidate_Register_SingleBadField(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		field  string
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.Name = "" }, "name"},
		{"missing email", func(r *dto.RegisterRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"missing phone", func(r *dto.RegisterRequest) { r.Phone = "" }, "phone"},
		{"phone leading zero", func(r *dto.RegisterRequest) { r.Phone = "0123456" }, "phone"},
		{"phone letters", func(r *dto.RegisterRequest) { r.Phone = "+7abc" }, "phone"},
		{"phone too long", func(r *dto.RegisterRequest) { r.Phone = "+1234567890123456" }, "phone"},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "12345" }, "password"},
		{"missing password", func(r *dto.RegisterRequest) { r.Password = "" }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := v.Validate(&req)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

// Checks run in field order and stop at the first failure; with every field
// broken the reported field is the first one.
func TestValidate_Register_FirstFailureWins(t *testing.T) {
	t.Parallel()

	v := New()
	req := dto.RegisterRequest{}

	err := v.Validate(&req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", vErr.Field)
}

func TestValidate_Login(t *testing.T) {
	t.Parallel()

	v := New()

	assert.NoError(t, v.Validate(&dto.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	}))

	err := v.Validate(&dto.LoginRequest{Email: "nope", Password: "secret123"})
	require.Error(t, err)

	err = v.Validate(&dto.LoginRequest{Email: "user@example.com", Password: "123"})
	require.Error(t, err)
}

func TestValidate_Phone_AcceptsBarePlusless(t *testing.T) {
	t.Parallel()

	v := New()
	req := validRegister()
	req.Phone = "77001234567" // the leading + is optional
	assert.NoError(t, v.Validate(&req))
}

func TestValidate_UpdateUser_OptionalFields(t *testing.T) {
	t.Parallel()

	v := New()

	// empty update is valid; all checks are omitempty
	assert.NoError(t, v.Validate(&dto.UpdateUserRequest{}))

	bad := "not-an-email"
	err := v.Validate(&dto.UpdateUserRequest{Email: &bad})
	require.Error(t, err)

	badRole := "superuser"
	err = v.Validate(&dto.UpdateUserRequest{Role: &badRole})
	require.Error(t, err)

	goodRole := "admin"
	assert.NoError(t, v.Validate(&dto.UpdateUserRequest{Role: &goodRole}))
}
