package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/application/usecase"
	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/port"
)

func TestListValidationsUseCase_Execute(t *testing.T) {
	check := 5
	record := port.ValidationRecord{
		ID:                 uuid.New(),
		RoutingNumber:      "011000015",
		Valid:              true,
		Outcome:            model.OutcomeValid,
		CheckDigit:         &check,
		ExpectedCheckDigit: &check,
		CreatedAt:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("maps records", func(t *testing.T) {
		repo := &mockValidationRepository{listed: []port.ValidationRecord{record}}
		uc := usecase.NewListValidationsUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.ListValidationsRequest{Limit: 10})
		require.NoError(t, err)
		require.Len(t, resp.Validations, 1)

		got := resp.Validations[0]
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, "011000015", got.RoutingNumber)
		assert.Equal(t, "valid", got.Outcome)
		assert.True(t, got.Valid)
		assert.Equal(t, record.CreatedAt, got.CreatedAt)
		assert.Equal(t, 10, repo.lastLimit)
	})

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 50},
		{"negative uses default", -1, 50},
		{"capped at maximum", 10_000, 500},
		{"within range", 120, 120},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockValidationRepository{}
			_, err := usecase.NewListValidationsUseCase(repo).Execute(context.Background(), dto.ListValidationsRequest{Limit: tc.limit})
			require.NoError(t, err)
			assert.Equal(t, tc.want, repo.lastLimit)
		})
	}

	t.Run("empty list is not nil", func(t *testing.T) {
		resp, err := usecase.NewListValidationsUseCase(&mockValidationRepository{}).Execute(context.Background(), dto.ListValidationsRequest{})
		require.NoError(t, err)
		assert.NotNil(t, resp.Validations)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockValidationRepository{listErr: errors.New("timeout")}
		_, err := usecase.NewListValidationsUseCase(repo).Execute(context.Background(), dto.ListValidationsRequest{})
		assert.Error(t, err)
	})

	t.Run("audit disabled", func(t *testing.T) {
		_, err := usecase.NewListValidationsUseCase(nil).Execute(context.Background(), dto.ListValidationsRequest{})
		assert.ErrorIs(t, err, usecase.ErrAuditDisabled)
	})
}

func TestGetValidationStatsUseCase_Execute(t *testing.T) {
	t.Run("sums outcomes", func(t *testing.T) {
		repo := &mockValidationRepository{counts: map[model.Outcome]int64{
			model.OutcomeValid:            7,
			model.OutcomeChecksumMismatch: 2,
			model.OutcomeNonDigit:         1,
		}}

		resp, err := usecase.NewGetValidationStatsUseCase(repo).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.Total)
		assert.Equal(t, int64(7), resp.ByOutcome["valid"])
		assert.Equal(t, int64(2), resp.ByOutcome["checksum_mismatch"])
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockValidationRepository{countErr: errors.New("timeout")}
		_, err := usecase.NewGetValidationStatsUseCase(repo).Execute(context.Background())
		assert.Error(t, err)
	})

	t.Run("audit disabled", func(t *testing.T) {
		_, err := usecase.NewGetValidationStatsUseCase(nil).Execute(context.Background())
		assert.ErrorIs(t, err, usecase.ErrAuditDisabled)
	})
}
