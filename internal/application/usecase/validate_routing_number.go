package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/service"
)

const tracerName = "github.com/bibbank/routing-service/internal/application/usecase"

// ValidateRoutingNumberUseCase validates a single candidate routing number.
type ValidateRoutingNumberUseCase struct {
	validator *service.RoutingNumberValidator
	audit     *AuditTrail
	tracer    trace.Tracer
}

// NewValidateRoutingNumberUseCase creates the use case. audit may be nil.
func NewValidateRoutingNumberUseCase(validator *service.RoutingNumberValidator, audit *AuditTrail) *ValidateRoutingNumberUseCase {
	return &ValidateRoutingNumberUseCase{
		validator: validator,
		audit:     audit,
		tracer:    otel.Tracer(tracerName),
	}
}

// Execute always returns a result; malformed input is reported in it.
func (uc *ValidateRoutingNumberUseCase) Execute(ctx context.Context, req dto.ValidateRoutingNumberRequest) model.ValidationResult {
	ctx, span := uc.tracer.Start(ctx, "ValidateRoutingNumber")
	defer span.End()

	result := uc.validator.Validate(req.RoutingNumber)
	span.SetAttributes(
		attribute.String("routing.outcome", string(result.Outcome)),
		attribute.Bool("routing.valid", result.Valid),
	)

	uc.audit.record(ctx, result)
	return result
}
