package event

import (
	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/pkg/events"
)

const (
	AggregateTypeRoutingNumber = "RoutingNumber"

	EventTypeRoutingNumberValidated = "routing.number.validated"
)

// RoutingNumberValidated is emitted after every validation, successful or not.
type RoutingNumberValidated struct {
	events.BaseEvent
	RoutingNumber      string `json:"routing_number"`
	Outcome            string `json:"outcome"`
	CheckDigit         *int   `json:"check_digit,omitempty"`
	ExpectedCheckDigit *int   `json:"expected_check_digit,omitempty"`
	Valid              bool   `json:"valid"`
}

func NewRoutingNumberValidated(result model.ValidationResult) RoutingNumberValidated {
	return RoutingNumberValidated{
		BaseEvent:          events.NewBaseEvent(EventTypeRoutingNumberValidated, result.RoutingNumber, AggregateTypeRoutingNumber),
		RoutingNumber:      result.RoutingNumber,
		Outcome:            string(result.Outcome),
		CheckDigit:         result.CheckDigit,
		ExpectedCheckDigit: result.ExpectedCheckDigit,
		Valid:              result.Valid,
	}
}
