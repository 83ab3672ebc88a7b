package model

// Outcome classifies a validation result.
type Outcome string

const (
	OutcomeValid            Outcome = "valid"
	OutcomeInvalidLength    Outcome = "invalid_length"
	OutcomeNonDigit         Outcome = "non_digit"
	OutcomeChecksumMismatch Outcome = "checksum_mismatch"
)

// Result messages.
const (
	MessageValid            = "Routing number is valid"
	MessageChecksumMismatch = "Check digit validation failed"
	ErrorInvalidLength      = "Routing number must be exactly 9 digits"
	ErrorNonDigit           = "Routing number must contain only digits"
)

// ValidationResult is the outcome of validating one candidate routing number.
// Format failures carry Error and no check digits; well-formed inputs carry
// Message and both check digits. Field order is the JSON key order.
type ValidationResult struct {
	Valid              bool    `json:"valid"`
	RoutingNumber      string  `json:"routing_number"`
	CheckDigit         *int    `json:"check_digit,omitempty"`
	ExpectedCheckDigit *int    `json:"expected_check_digit,omitempty"`
	Message            string  `json:"message,omitempty"`
	Error              string  `json:"error,omitempty"`
	Outcome            Outcome `json:"-"`
}

// NewFormatFailure builds a result for input that failed the length or charset check.
func NewFormatFailure(normalized string, outcome Outcome, reason string) ValidationResult {
	return ValidationResult{
		Valid:         false,
		RoutingNumber: normalized,
		Error:         reason,
		Outcome:       outcome,
	}
}

// NewChecksumResult builds a result for well-formed input.
func NewChecksumResult(routingNumber string, actual, expected int) ValidationResult {
	r := ValidationResult{
		Valid:              actual == expected,
		RoutingNumber:      routingNumber,
		CheckDigit:         &actual,
		ExpectedCheckDigit: &expected,
	}
	if r.Valid {
		r.Message = MessageValid
		r.Outcome = OutcomeValid
	} else {
		r.Message = MessageChecksumMismatch
		r.Outcome = OutcomeChecksumMismatch
	}
	return r
}

// IsFormatFailure reports whether the input never reached the checksum step.
func (r ValidationResult) IsFormatFailure() bool {
	return r.Outcome == OutcomeInvalidLength || r.Outcome == OutcomeNonDigit
}
