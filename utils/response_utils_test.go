package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer   abc"))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken("Bearer"))
	assert.Equal(t, "", BearerToken(""))
}

func TestFormatValidationErrors(t *testing.T) {
	type payload struct {
		Credits int `validate:"gt=0"`
	}
	err := validator.New().Struct(payload{})
	got := FormatValidationErrors(err)
	assert.Equal(t, []string{"Field 'Credits' failed on the 'gt' tag (value: 0)"}, got)

	assert.Nil(t, FormatValidationErrors(nil))
}
