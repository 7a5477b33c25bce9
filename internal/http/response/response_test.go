package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWith(t *testing.T) {
	out := OKWith("user", map[string]string{"id": "uid-1"})
	assert.Equal(t, true, out["success"])
	assert.Equal(t, map[string]string{"id": "uid-1"}, out["user"])
}

func TestOKWithFields(t *testing.T) {
	out := OKWithFields(map[string]any{
		"user":  "u",
		"token": "t",
	})
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "u", out["user"])
	assert.Equal(t, "t", out["token"])
}

func TestError(t *testing.T) {
	assert.Equal(t, ErrorResponse{Error: "boom"}, Error("boom"))
}

func TestValidationError(t *testing.T) {
	type req struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	err := validator.New().Struct(req{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	out := ValidationError(err.(validator.ValidationErrors))
	assert.Contains(t, out.Error, "field Email must be a valid email address")
	assert.Contains(t, out.Error, "field Password is too short")
}
