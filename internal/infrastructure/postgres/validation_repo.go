package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/port"
	pgutil "github.com/bibbank/routing-service/pkg/postgres"
)

var _ port.ValidationRepository = (*ValidationRepository)(nil)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	pgutil.Querier
	pgutil.TxBeginner
}

// ValidationRepository implements port.ValidationRepository using PostgreSQL.
type ValidationRepository struct {
	db DB
}

// NewValidationRepository creates a new PostgreSQL-backed ValidationRepository.
func NewValidationRepository(db DB) *ValidationRepository {
	return &ValidationRepository{db: db}
}

const insertValidationSQL = `
	INSERT INTO routing_validations (
		id, routing_number, valid, outcome, check_digit, expected_check_digit, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Save persists a single validation record.
func (r *ValidationRepository) Save(ctx context.Context, record port.ValidationRecord) error {
	return insertRecord(ctx, r.db, record)
}

// SaveAll persists records in one transaction.
func (r *ValidationRepository) SaveAll(ctx context.Context, records []port.ValidationRecord) error {
	if len(records) == 0 {
		return nil
	}

	return pgutil.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(insertValidationSQL, insertArgs(rec)...)
		}
		br := tx.SendBatch(ctx, batch)
		for range records {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("failed to insert validation record: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close insert batch: %w", err)
		}
		return nil
	})
}

// ListRecent returns the newest records first.
func (r *ValidationRepository) ListRecent(ctx context.Context, limit int) ([]port.ValidationRecord, error) {
	const query = `
		SELECT id, routing_number, valid, outcome, check_digit, expected_check_digit, created_at
		FROM routing_validations
		ORDER BY created_at DESC, id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query validations: %w", err)
	}
	defer rows.Close()

	var records []port.ValidationRecord
	for rows.Next() {
		var (
			id                 uuid.UUID
			routingNumber      string
			valid              bool
			outcome            string
			checkDigit         *int16
			expectedCheckDigit *int16
			createdAt          time.Time
		)
		if err := rows.Scan(&id, &routingNumber, &valid, &outcome, &checkDigit, &expectedCheckDigit, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan validation row: %w", err)
		}
		records = append(records, reconstructRecord(id, routingNumber, valid, outcome, checkDigit, expectedCheckDigit, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating validation rows: %w", err)
	}

	return records, nil
}

// CountByOutcome returns the number of stored records per outcome.
func (r *ValidationRepository) CountByOutcome(ctx context.Context) (map[model.Outcome]int64, error) {
	const query = `SELECT outcome, COUNT(*) FROM routing_validations GROUP BY outcome`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count validations: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Outcome]int64)
	for rows.Next() {
		var (
			outcome string
			n       int64
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("failed to scan outcome count: %w", err)
		}
		counts[model.Outcome(outcome)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outcome counts: %w", err)
	}

	return counts, nil
}

func insertRecord(ctx context.Context, q pgutil.Querier, rec port.ValidationRecord) error {
	if _, err := q.Exec(ctx, insertValidationSQL, insertArgs(rec)...); err != nil {
		return fmt.Errorf("failed to insert validation record: %w", err)
	}
	return nil
}

func insertArgs(rec port.ValidationRecord) []any {
	return []any{
		rec.ID,
		rec.RoutingNumber,
		rec.Valid,
		string(rec.Outcome),
		toInt16(rec.CheckDigit),
		toInt16(rec.ExpectedCheckDigit),
		rec.CreatedAt,
	}
}

// reconstructRecord maps raw column values back into a ValidationRecord.
func reconstructRecord(
	id uuid.UUID,
	routingNumber string,
	valid bool,
	outcome string,
	checkDigit, expectedCheckDigit *int16,
	createdAt time.Time,
) port.ValidationRecord {
	return port.ValidationRecord{
		ID:                 id,
		RoutingNumber:      routingNumber,
		Valid:              valid,
		Outcome:            model.Outcome(outcome),
		CheckDigit:         fromInt16(checkDigit),
		ExpectedCheckDigit: fromInt16(expectedCheckDigit),
		CreatedAt:          createdAt,
	}
}

func toInt16(v *int) *int16 {
	if v == nil {
		return nil
	}
	n := int16(*v)
	return &n
}

func fromInt16(v *int16) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
