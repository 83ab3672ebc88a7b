package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/service"
)

// DefaultMaxBatchSize bounds a batch when no explicit limit is configured.
const DefaultMaxBatchSize = 1000

// ValidateBatchUseCase validates many routing numbers independently, preserving order.
type ValidateBatchUseCase struct {
	validator *service.RoutingNumberValidator
	audit     *AuditTrail
	tracer    trace.Tracer
	maxSize   int
}

// NewValidateBatchUseCase creates the use case. A maxSize of zero or less means
// DefaultMaxBatchSize; audit may be nil.
func NewValidateBatchUseCase(validator *service.RoutingNumberValidator, audit *AuditTrail, maxSize int) *ValidateBatchUseCase {
	if maxSize <= 0 {
		maxSize = DefaultMaxBatchSize
	}
	return &ValidateBatchUseCase{
		validator: validator,
		audit:     audit,
		tracer:    otel.Tracer(tracerName),
		maxSize:   maxSize,
	}
}

func (uc *ValidateBatchUseCase) Execute(ctx context.Context, req dto.ValidateBatchRequest) (dto.ValidateBatchResponse, error) {
	n := len(req.RoutingNumbers)
	if n == 0 {
		return dto.ValidateBatchResponse{}, ErrEmptyBatch
	}
	if n > uc.maxSize {
		return dto.ValidateBatchResponse{}, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, n, uc.maxSize)
	}

	ctx, span := uc.tracer.Start(ctx, "ValidateBatch")
	defer span.End()

	resp := dto.ValidateBatchResponse{
		Results: make([]model.ValidationResult, 0, n),
		Total:   n,
	}
	for _, raw := range req.RoutingNumbers {
		result := uc.validator.Validate(raw)
		if result.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
		resp.Results = append(resp.Results, result)
	}

	span.SetAttributes(
		attribute.Int("routing.batch.total", resp.Total),
		attribute.Int("routing.batch.invalid", resp.Invalid),
	)

	uc.audit.recordBatchSize(ctx, n)
	uc.audit.record(ctx, resp.Results...)
	return resp, nil
}
