package valueobject_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bibbank/routing-service/internal/domain/valueobject"
)

func TestComputeCheckDigit(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{"01100001", 5}, // weighted sum 15
		{"02100002", 1}, // weighted sum 29
		{"12100024", 8}, // weighted sum 52
		{"00000000", 0}, // weighted sum 0, outer modulo yields 0 not 10
		{"12345678", 0}, // weighted sum 150
		{"10000000", 7}, // weighted sum 3
	}

	for _, tc := range tests {
		t.Run(tc.payload, func(t *testing.T) {
			got, err := valueobject.ComputeCheckDigit(tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeCheckDigit_InvalidPayload(t *testing.T) {
	for _, payload := range []string{"", "0110000", "011000015", "0110000A", "0110 001", "０1100001"} {
		t.Run(payload, func(t *testing.T) {
			_, err := valueobject.ComputeCheckDigit(payload)
			assert.ErrorIs(t, err, valueobject.ErrInvalidPayload)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "011000015", valueobject.Normalize("011000015"))
	assert.Equal(t, "011000015", valueobject.Normalize("011-000-015"))
	assert.Equal(t, "011000015", valueobject.Normalize(" 011 000 015 "))
	assert.Equal(t, "011000015", valueobject.Normalize("011-0000-15"))
	assert.Equal(t, "011\t000015", valueobject.Normalize("011\t000015"), "only spaces and dashes are stripped")
	assert.Equal(t, "", valueobject.Normalize(" - - "))
}

func TestNewRoutingNumber(t *testing.T) {
	rn, err := valueobject.NewRoutingNumber("011-000-015")
	require.NoError(t, err)

	assert.Equal(t, "011000015", rn.String())
	assert.Equal(t, "01100001", rn.Payload())
	assert.Equal(t, 5, rn.CheckDigit())
	assert.Equal(t, 5, rn.ExpectedCheckDigit())
	assert.True(t, rn.HasValidCheckDigit())
	assert.False(t, rn.IsZero())
}

func TestNewRoutingNumber_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", valueobject.ErrInvalidLength},
		{"eight digits", "21000021", valueobject.ErrInvalidLength},
		{"ten digits", "0110000150", valueobject.ErrInvalidLength},
		{"letter", "01A000015", valueobject.ErrNonDigit},
		{"tab counts as a character", "01\t000015", valueobject.ErrNonDigit},
		{"nine runes with accent", "é11000015", valueobject.ErrNonDigit},
		{"fullwidth digit is not ascii", "０11000015", valueobject.ErrNonDigit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valueobject.NewRoutingNumber(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRoutingNumber_ChecksumMismatch(t *testing.T) {
	rn, err := valueobject.NewRoutingNumber("011000016")
	require.NoError(t, err)
	assert.Equal(t, 6, rn.CheckDigit())
	assert.Equal(t, 5, rn.ExpectedCheckDigit())
	assert.False(t, rn.HasValidCheckDigit())
}

func TestRoutingNumber_IsZero(t *testing.T) {
	var zero valueobject.RoutingNumber
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
}

func TestRoutingNumber_Class(t *testing.T) {
	tests := []struct {
		input    string
		class    valueobject.PrefixClass
		district int
	}{
		{"000000000", valueobject.PrefixGovernment, 0},
		{"011000015", valueobject.PrefixPrimary, 1},
		{"121000248", valueobject.PrefixPrimary, 12},
		{"322271627", valueobject.PrefixThrift, 12},
		{"211274450", valueobject.PrefixThrift, 1},
		{"611000000", valueobject.PrefixElectronic, 1},
		{"800000000", valueobject.PrefixTravelersCheque, 0},
		{"150000000", valueobject.PrefixUnknown, 0},
		{"990000000", valueobject.PrefixUnknown, 0},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			rn, err := valueobject.NewRoutingNumber(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.class, rn.Class())
			assert.Equal(t, tc.district, rn.District())
		})
	}
}

func digitString(n int) *rapid.Generator[string] {
	return rapid.StringMatching(fmt.Sprintf(`[0-9]{%d}`, n))
}

func TestComputeCheckDigit_AlwaysSingleDigit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := digitString(valueobject.PayloadLength).Draw(t, "payload")

		d, err := valueobject.ComputeCheckDigit(payload)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", payload, err)
		}
		if d < 0 || d > 9 {
			t.Fatalf("check digit %d for %q out of range", d, payload)
		}
	})
}

func TestComputeCheckDigit_CompletesToMultipleOfTen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := digitString(valueobject.PayloadLength).Draw(t, "payload")
		d, _ := valueobject.ComputeCheckDigit(payload)

		// With the check digit weighted by 1, the full nine digit sum is a multiple of ten.
		weights := []int{3, 7, 1, 3, 7, 1, 3, 7}
		sum := d
		for i, w := range weights {
			sum += w * int(payload[i]-'0')
		}
		if sum%10 != 0 {
			t.Fatalf("payload %q with check digit %d gives sum %d", payload, d, sum)
		}
	})
}

func TestRoutingNumber_SingleDigitChangeIsDetected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := digitString(valueobject.PayloadLength).Draw(t, "payload")
		d, _ := valueobject.ComputeCheckDigit(payload)
		valid := payload + string(rune('0'+d))

		pos := rapid.IntRange(0, valueobject.RoutingNumberLength-1).Draw(t, "pos")
		delta := rapid.IntRange(1, 9).Draw(t, "delta")

		mutated := []byte(valid)
		mutated[pos] = byte('0' + (int(mutated[pos]-'0')+delta)%10)

		rn, err := valueobject.NewRoutingNumber(string(mutated))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rn.HasValidCheckDigit() {
			t.Fatalf("single digit change %q -> %q not detected", valid, mutated)
		}
	})
}
