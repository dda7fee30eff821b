package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMap(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"omitempty,min=2"`
	}

	err := validator.New().Struct(payload{Email: "nope", Name: "x"})
	require.Error(t, err)

	m := ValidationErrorMap(err)
	assert.Contains(t, m, "email")
	assert.Contains(t, m, "name")
	assert.Equal(t, []string{"failed on 'min'=2"}, m["name"])
}

func TestValidationErrorMapNonValidatorError(t *testing.T) {
	m := ValidationErrorMap(errors.New("boom"))
	assert.Equal(t, map[string][]string{"_": {"boom"}}, m)
}
