package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/bibbank/routing-service/internal/domain/event"
	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/port"
	"github.com/bibbank/routing-service/pkg/events"
)

// AuditTrail records validation results as metrics, audit rows and domain
// events. Repository and publisher are optional. Failures are logged and
// never surface to callers. A nil *AuditTrail records nothing.
type AuditTrail struct {
	repo        port.ValidationRepository
	publisher   port.EventPublisher
	logger      *slog.Logger
	validations metric.Int64Counter
	batchSize   metric.Int64Histogram
	topic       string
}

// NewAuditTrail creates an AuditTrail. A nil meter disables metrics.
func NewAuditTrail(
	repo port.ValidationRepository,
	publisher port.EventPublisher,
	topic string,
	meter metric.Meter,
	logger *slog.Logger,
) (*AuditTrail, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	validations, err := meter.Int64Counter("routing_validations",
		metric.WithDescription("Routing number validations by outcome."))
	if err != nil {
		return nil, fmt.Errorf("create validations counter: %w", err)
	}
	batchSize, err := meter.Int64Histogram("routing_validation_batch_size",
		metric.WithDescription("Number of routing numbers per batch request."))
	if err != nil {
		return nil, fmt.Errorf("create batch size histogram: %w", err)
	}

	return &AuditTrail{
		repo:        repo,
		publisher:   publisher,
		logger:      logger,
		validations: validations,
		batchSize:   batchSize,
		topic:       topic,
	}, nil
}

func (a *AuditTrail) record(ctx context.Context, results ...model.ValidationResult) {
	if a == nil || len(results) == 0 {
		return
	}

	for _, r := range results {
		a.validations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(r.Outcome))))
	}

	if a.repo != nil {
		records := make([]port.ValidationRecord, 0, len(results))
		for _, r := range results {
			records = append(records, port.NewValidationRecord(r))
		}

		var err error
		if len(records) == 1 {
			err = a.repo.Save(ctx, records[0])
		} else {
			err = a.repo.SaveAll(ctx, records)
		}
		if err != nil {
			a.logger.WarnContext(ctx, "failed to persist validation audit records", "count", len(records), "error", err)
		}
	}

	if a.publisher != nil {
		evts := make([]events.DomainEvent, 0, len(results))
		for _, r := range results {
			evts = append(evts, event.NewRoutingNumberValidated(r))
		}
		if err := a.publisher.Publish(ctx, a.topic, evts...); err != nil {
			a.logger.WarnContext(ctx, "failed to publish validation events", "count", len(evts), "error", err)
		}
	}
}

func (a *AuditTrail) recordBatchSize(ctx context.Context, n int) {
	if a == nil {
		return
	}
	a.batchSize.Record(ctx, int64(n))
}
