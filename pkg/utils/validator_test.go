package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
	Limit  int    `json:"limit" validate:"gte=0,lte=100"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(&listRequest{Status: "draft", Limit: 10}))
	require.NoError(t, ValidateStruct(&listRequest{}))

	err := ValidateStruct(&listRequest{Status: "sold", Limit: 500})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "limit")
	assert.Equal(t, "status must be one of [draft published]", errs["status"])
}

func TestGetValidationErrors_NonValidatorError(t *testing.T) {
	errs := GetValidationErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"_": "boom"}, errs)

	assert.Empty(t, GetValidationErrors(nil))
}
