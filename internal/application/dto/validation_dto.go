package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/routing-service/internal/domain/model"
)

// ValidateRoutingNumberRequest is the input DTO for validating one routing number.
type ValidateRoutingNumberRequest struct {
	RoutingNumber string
}

// ValidateBatchRequest is the input DTO for validating many routing numbers.
type ValidateBatchRequest struct {
	RoutingNumbers []string
}

// ValidateBatchResponse lists results in input order with totals.
type ValidateBatchResponse struct {
	Results []model.ValidationResult `json:"results"`
	Total   int                      `json:"total"`
	Valid   int                      `json:"valid"`
	Invalid int                      `json:"invalid"`
}

// AllValid reports whether every entry in the batch validated.
func (r ValidateBatchResponse) AllValid() bool {
	return r.Invalid == 0
}

// ListValidationsRequest is the input DTO for listing audit records.
type ListValidationsRequest struct {
	Limit int
}

// ValidationRecordResponse is the output DTO for one audit record.
type ValidationRecordResponse struct {
	CreatedAt          time.Time `json:"created_at"`
	CheckDigit         *int      `json:"check_digit,omitempty"`
	ExpectedCheckDigit *int      `json:"expected_check_digit,omitempty"`
	RoutingNumber      string    `json:"routing_number"`
	Outcome            string    `json:"outcome"`
	ID                 uuid.UUID `json:"id"`
	Valid              bool      `json:"valid"`
}

// ListValidationsResponse is the output DTO for listing audit records.
type ListValidationsResponse struct {
	Validations []ValidationRecordResponse `json:"validations"`
}

// ValidationStatsResponse summarizes the audit log by outcome.
type ValidationStatsResponse struct {
	ByOutcome map[string]int64 `json:"by_outcome"`
	Total     int64            `json:"total"`
}
