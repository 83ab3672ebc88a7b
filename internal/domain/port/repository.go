package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/pkg/events"
)

// ValidationRecord is one persisted validation outcome.
type ValidationRecord struct {
	CreatedAt          time.Time
	CheckDigit         *int
	ExpectedCheckDigit *int
	RoutingNumber      string
	Outcome            model.Outcome
	ID                 uuid.UUID
	Valid              bool
}

// NewValidationRecord captures result for the audit log.
func NewValidationRecord(result model.ValidationResult) ValidationRecord {
	return ValidationRecord{
		ID:                 uuid.New(),
		RoutingNumber:      result.RoutingNumber,
		Valid:              result.Valid,
		Outcome:            result.Outcome,
		CheckDigit:         result.CheckDigit,
		ExpectedCheckDigit: result.ExpectedCheckDigit,
		CreatedAt:          time.Now().UTC(),
	}
}

// ValidationRepository defines persistence operations for the validation audit log.
type ValidationRepository interface {
	// Save persists a single validation record.
	Save(ctx context.Context, record ValidationRecord) error
	// SaveAll persists records atomically.
	SaveAll(ctx context.Context, records []ValidationRecord) error
	// ListRecent returns the newest records first, at most limit of them.
	ListRecent(ctx context.Context, limit int) ([]ValidationRecord, error)
	// CountByOutcome returns the number of records per outcome.
	CountByOutcome(ctx context.Context) (map[model.Outcome]int64, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
