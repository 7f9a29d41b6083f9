package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_Register(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(RegisterPlayerRequest{Username: "alice"}))

	err := v.ValidateStruct(RegisterPlayerRequest{Username: "bad\nname"})
	require.Error(t, err)
	assert.Equal(t, "Contains invalid characters", FormatValidationError(err)["username"])

	err = v.ValidateStruct(RegisterPlayerRequest{Username: "abcdefghijklmnopqrstuvwxyz0123456789"})
	require.Error(t, err)
	assert.Equal(t, "Must be at most 32 characters", FormatValidationError(err)["username"])
}

func TestValidateStruct_RecipeID(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(StartBrewRequest{}))
	assert.NoError(t, v.ValidateStruct(StartBrewRequest{RecipeID: "recipe_day_4"}))

	err := v.ValidateStruct(StartBrewRequest{RecipeID: "love_potion"})
	require.Error(t, err)
	assert.Equal(t, "Unknown recipe", FormatValidationError(err)["recipeid"])
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
