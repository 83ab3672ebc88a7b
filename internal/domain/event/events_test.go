package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/routing-service/internal/domain/event"
	"github.com/bibbank/routing-service/internal/domain/model"
)

func TestNewRoutingNumberValidated(t *testing.T) {
	evt := event.NewRoutingNumberValidated(model.NewChecksumResult("011000016", 6, 5))

	assert.Equal(t, event.EventTypeRoutingNumberValidated, evt.EventType())
	assert.Equal(t, event.AggregateTypeRoutingNumber, evt.AggregateType())
	assert.Equal(t, "011000016", evt.AggregateID())
	assert.NotEmpty(t, evt.EventID())

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "routing.number.validated", payload["event_type"])
	assert.Equal(t, "011000016", payload["routing_number"])
	assert.Equal(t, "checksum_mismatch", payload["outcome"])
	assert.Equal(t, false, payload["valid"])
	assert.EqualValues(t, 6, payload["check_digit"])
	assert.EqualValues(t, 5, payload["expected_check_digit"])
}

func TestNewRoutingNumberValidated_FormatFailure(t *testing.T) {
	evt := event.NewRoutingNumberValidated(
		model.NewFormatFailure("01A000015", model.OutcomeNonDigit, model.ErrorNonDigit))

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "non_digit", payload["outcome"])
	assert.NotContains(t, payload, "check_digit")
}
