package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/application/usecase"
	"github.com/bibbank/routing-service/pkg/auth"
)

var _ RoutingServiceServer = (*RoutingHandler)(nil)

// RoutingHandler is the gRPC handler for routing-number validation.
type RoutingHandler struct {
	UnimplementedRoutingServiceServer
	validate     *usecase.ValidateRoutingNumberUseCase
	batch        *usecase.ValidateBatchUseCase
	list         *usecase.ListValidationsUseCase
	stats        *usecase.GetValidationStatsUseCase
	logger       *slog.Logger
	enforceRoles bool
}

// NewRoutingHandler creates a new handler with its use-case dependencies.
func NewRoutingHandler(
	validate *usecase.ValidateRoutingNumberUseCase,
	batch *usecase.ValidateBatchUseCase,
	list *usecase.ListValidationsUseCase,
	stats *usecase.GetValidationStatsUseCase,
	enforceRoles bool,
	logger *slog.Logger,
) *RoutingHandler {
	return &RoutingHandler{
		validate:     validate,
		batch:        batch,
		list:         list,
		stats:        stats,
		enforceRoles: enforceRoles,
		logger:       logger,
	}
}

// ValidateRoutingNumber never fails for malformed input; the result says why.
func (h *RoutingHandler) ValidateRoutingNumber(ctx context.Context, req *ValidateRoutingNumberRequest) (*ValidateRoutingNumberResponse, error) {
	if err := h.authorize(ctx, auth.RoleValidator); err != nil {
		return nil, err
	}

	result := h.validate.Execute(ctx, dto.ValidateRoutingNumberRequest{RoutingNumber: req.RoutingNumber})
	return &ValidateRoutingNumberResponse{ValidationResult: result}, nil
}

func (h *RoutingHandler) ValidateBatch(ctx context.Context, req *ValidateBatchRequest) (*ValidateBatchResponse, error) {
	if err := h.authorize(ctx, auth.RoleValidator); err != nil {
		return nil, err
	}

	resp, err := h.batch.Execute(ctx, dto.ValidateBatchRequest{RoutingNumbers: req.RoutingNumbers})
	if err != nil {
		return nil, toStatus(err, h.logger)
	}
	return &ValidateBatchResponse{ValidateBatchResponse: resp}, nil
}

func (h *RoutingHandler) ListValidations(ctx context.Context, req *ListValidationsRequest) (*ListValidationsResponse, error) {
	if err := h.authorize(ctx, auth.RoleAuditor); err != nil {
		return nil, err
	}
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must be non-negative")
	}

	resp, err := h.list.Execute(ctx, dto.ListValidationsRequest{Limit: int(req.Limit)})
	if err != nil {
		return nil, toStatus(err, h.logger)
	}

	out := &ListValidationsResponse{Validations: make([]*ValidationRecord, 0, len(resp.Validations))}
	for _, v := range resp.Validations {
		out.Validations = append(out.Validations, &ValidationRecord{
			ID:                 v.ID.String(),
			RoutingNumber:      v.RoutingNumber,
			Valid:              v.Valid,
			Outcome:            v.Outcome,
			CheckDigit:         toInt32(v.CheckDigit),
			ExpectedCheckDigit: toInt32(v.ExpectedCheckDigit),
			CreatedAt:          timestamppb.New(v.CreatedAt),
		})
	}
	return out, nil
}

func (h *RoutingHandler) GetValidationStats(ctx context.Context, _ *GetValidationStatsRequest) (*GetValidationStatsResponse, error) {
	if err := h.authorize(ctx, auth.RoleAuditor); err != nil {
		return nil, err
	}

	resp, err := h.stats.Execute(ctx)
	if err != nil {
		return nil, toStatus(err, h.logger)
	}
	return &GetValidationStatsResponse{ByOutcome: resp.ByOutcome, Total: resp.Total}, nil
}

func (h *RoutingHandler) authorize(ctx context.Context, role string) error {
	if h.enforceRoles && !auth.RequireRole(ctx, role) {
		return status.Errorf(codes.PermissionDenied, "missing required role %s", role)
	}
	return nil
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func toStatus(err error, logger *slog.Logger) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyBatch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrBatchTooLarge):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, usecase.ErrAuditDisabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		logger.Error("unexpected handler error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
