package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/domain/port"
)

// GetValidationStatsUseCase summarizes the audit log by outcome.
type GetValidationStatsUseCase struct {
	repo port.ValidationRepository
}

func NewGetValidationStatsUseCase(repo port.ValidationRepository) *GetValidationStatsUseCase {
	return &GetValidationStatsUseCase{repo: repo}
}

func (uc *GetValidationStatsUseCase) Execute(ctx context.Context) (dto.ValidationStatsResponse, error) {
	if uc.repo == nil {
		return dto.ValidationStatsResponse{}, ErrAuditDisabled
	}

	counts, err := uc.repo.CountByOutcome(ctx)
	if err != nil {
		return dto.ValidationStatsResponse{}, fmt.Errorf("failed to count validations: %w", err)
	}

	resp := dto.ValidationStatsResponse{ByOutcome: make(map[string]int64, len(counts))}
	for outcome, n := range counts {
		resp.ByOutcome[string(outcome)] = n
		resp.Total += n
	}
	return resp, nil
}
