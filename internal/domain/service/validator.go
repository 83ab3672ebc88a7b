package service

import (
	"errors"

	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/valueobject"
)

// RoutingNumberValidator is a stateless domain service that checks candidate
// ABA routing numbers against their embedded check digit. It is safe for
// concurrent use.
type RoutingNumberValidator struct{}

// NewRoutingNumberValidator creates a new RoutingNumberValidator instance.
func NewRoutingNumberValidator() *RoutingNumberValidator {
	return &RoutingNumberValidator{}
}

// Validate normalizes raw and reports whether it is a correctly checksummed
// routing number. Malformed input is reported through the result, never as
// an error.
func (v *RoutingNumberValidator) Validate(raw string) model.ValidationResult {
	rn, err := valueobject.NewRoutingNumber(raw)
	switch {
	case errors.Is(err, valueobject.ErrInvalidLength):
		return model.NewFormatFailure(valueobject.Normalize(raw), model.OutcomeInvalidLength, model.ErrorInvalidLength)
	case errors.Is(err, valueobject.ErrNonDigit):
		return model.NewFormatFailure(valueobject.Normalize(raw), model.OutcomeNonDigit, model.ErrorNonDigit)
	}

	return model.NewChecksumResult(rn.String(), rn.CheckDigit(), rn.ExpectedCheckDigit())
}

// ComputeCheckDigit returns the check digit for an eight digit payload.
func (v *RoutingNumberValidator) ComputeCheckDigit(payload string) (int, error) {
	return valueobject.ComputeCheckDigit(payload)
}
