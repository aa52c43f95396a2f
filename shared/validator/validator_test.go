package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared/failure"
	"stay/shared/validator"
)

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("123", "required,numeric"))

	err := validator.ValidateVar("abc", "required,numeric")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	assert.Error(t, validator.ValidateVar("", "required,numeric"))
}

func TestValidateStruct(t *testing.T) {
	type req struct {
		Name string `validate:"required"`
	}

	assert.NoError(t, validator.ValidateStruct(&req{Name: "x"}))
	assert.Error(t, validator.ValidateStruct(&req{}))
}

func TestValidate(t *testing.T) {
	type req struct {
		Name string `json:"name" validate:"required"`
	}

	var data req
	assert.NoError(t, validator.Validate(strings.NewReader(`{"name":"x"}`), &data))
	assert.Equal(t, "x", data.Name)

	var invalid req
	assert.Error(t, validator.Validate(strings.NewReader(`{`), &invalid))
}
