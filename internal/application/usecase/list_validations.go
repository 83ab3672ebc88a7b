package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/domain/port"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ListValidationsUseCase returns the most recent audit records.
type ListValidationsUseCase struct {
	repo port.ValidationRepository
}

func NewListValidationsUseCase(repo port.ValidationRepository) *ListValidationsUseCase {
	return &ListValidationsUseCase{repo: repo}
}

func (uc *ListValidationsUseCase) Execute(ctx context.Context, req dto.ListValidationsRequest) (dto.ListValidationsResponse, error) {
	if uc.repo == nil {
		return dto.ListValidationsResponse{}, ErrAuditDisabled
	}

	limit := req.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	records, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return dto.ListValidationsResponse{}, fmt.Errorf("failed to list validations: %w", err)
	}

	resp := dto.ListValidationsResponse{
		Validations: make([]dto.ValidationRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Validations = append(resp.Validations, dto.ValidationRecordResponse{
			ID:                 r.ID,
			RoutingNumber:      r.RoutingNumber,
			Valid:              r.Valid,
			Outcome:            string(r.Outcome),
			CheckDigit:         r.CheckDigit,
			ExpectedCheckDigit: r.ExpectedCheckDigit,
			CreatedAt:          r.CreatedAt,
		})
	}
	return resp, nil
}
