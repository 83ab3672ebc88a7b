package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/routing-service/internal/domain/model"
)

func TestNewChecksumResult(t *testing.T) {
	valid := model.NewChecksumResult("011000015", 5, 5)
	assert.True(t, valid.Valid)
	assert.Equal(t, model.OutcomeValid, valid.Outcome)
	assert.Equal(t, model.MessageValid, valid.Message)
	assert.Empty(t, valid.Error)
	assert.False(t, valid.IsFormatFailure())

	mismatch := model.NewChecksumResult("011000016", 6, 5)
	assert.False(t, mismatch.Valid)
	assert.Equal(t, model.OutcomeChecksumMismatch, mismatch.Outcome)
	assert.Equal(t, model.MessageChecksumMismatch, mismatch.Message)
	require.NotNil(t, mismatch.CheckDigit)
	require.NotNil(t, mismatch.ExpectedCheckDigit)
	assert.Equal(t, 6, *mismatch.CheckDigit)
	assert.Equal(t, 5, *mismatch.ExpectedCheckDigit)
}

func TestValidationResult_JSON(t *testing.T) {
	t.Run("zero check digits are serialized", func(t *testing.T) {
		data, err := json.Marshal(model.NewChecksumResult("000000000", 0, 0))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"valid": true,
			"routing_number": "000000000",
			"check_digit": 0,
			"expected_check_digit": 0,
			"message": "Routing number is valid"
		}`, string(data))
	})

	t.Run("format failure omits check digits", func(t *testing.T) {
		result := model.NewFormatFailure("21000021", model.OutcomeInvalidLength, model.ErrorInvalidLength)
		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"valid": false,
			"routing_number": "21000021",
			"error": "Routing number must be exactly 9 digits"
		}`, string(data))
		assert.True(t, result.IsFormatFailure())
	})

	t.Run("empty routing number is still present", func(t *testing.T) {
		data, err := json.Marshal(model.NewFormatFailure("", model.OutcomeInvalidLength, model.ErrorInvalidLength))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"routing_number":""`)
	})
}
