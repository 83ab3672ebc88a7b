package valueobject

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// RoutingNumberLength is the number of digits in an ABA routing number.
	RoutingNumberLength = 9
	// PayloadLength is the number of digits covered by the check digit.
	PayloadLength = RoutingNumberLength - 1
)

var (
	ErrInvalidLength  = errors.New("routing number must be exactly 9 digits")
	ErrNonDigit       = errors.New("routing number must contain only digits")
	ErrInvalidPayload = errors.New("payload must be exactly 8 ASCII digits")
)

// checksumWeights are applied positionally to the eight payload digits.
var checksumWeights = [PayloadLength]int{3, 7, 1, 3, 7, 1, 3, 7}

// RoutingNumber is a well-formed nine digit ABA routing number. A well-formed
// value says nothing about its check digit; see HasValidCheckDigit.
type RoutingNumber struct {
	value string
}

// Normalize strips every space and dash from raw.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, raw)
}

// NewRoutingNumber normalizes raw and checks that it is exactly nine ASCII
// digits. Length is counted in characters, so a nine character string holding
// a non-digit reports ErrNonDigit rather than ErrInvalidLength.
func NewRoutingNumber(raw string) (RoutingNumber, error) {
	s := Normalize(raw)
	if utf8.RuneCountInString(s) != RoutingNumberLength {
		return RoutingNumber{}, ErrInvalidLength
	}
	if !isASCIIDigits(s) {
		return RoutingNumber{}, ErrNonDigit
	}
	return RoutingNumber{value: s}, nil
}

// ComputeCheckDigit returns the ABA check digit for an eight digit payload:
// (10 - (3*(d1+d4+d7) + 7*(d2+d5+d8) + (d3+d6)) mod 10) mod 10.
func ComputeCheckDigit(payload string) (int, error) {
	if len(payload) != PayloadLength || !isASCIIDigits(payload) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPayload, payload)
	}

	sum := 0
	for i := 0; i < PayloadLength; i++ {
		sum += checksumWeights[i] * int(payload[i]-'0')
	}

	// The outer modulo maps a sum that is a multiple of ten to 0, not 10.
	return (10 - sum%10) % 10, nil
}

// String returns the nine digit representation.
func (r RoutingNumber) String() string {
	return r.value
}

// IsZero returns true if the routing number is uninitialized.
func (r RoutingNumber) IsZero() bool {
	return r.value == ""
}

// Payload returns the first eight digits.
func (r RoutingNumber) Payload() string {
	return r.value[:PayloadLength]
}

// CheckDigit returns the ninth digit.
func (r RoutingNumber) CheckDigit() int {
	return int(r.value[PayloadLength] - '0')
}

// ExpectedCheckDigit returns the check digit computed from the payload.
func (r RoutingNumber) ExpectedCheckDigit() int {
	// Payload is guaranteed well-formed by NewRoutingNumber.
	d, _ := ComputeCheckDigit(r.Payload())
	return d
}

// HasValidCheckDigit reports whether the ninth digit matches the payload checksum.
func (r RoutingNumber) HasValidCheckDigit() bool {
	return r.CheckDigit() == r.ExpectedCheckDigit()
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
