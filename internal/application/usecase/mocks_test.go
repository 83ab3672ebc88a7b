package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/port"
	"github.com/bibbank/routing-service/pkg/events"
)

// --- Mock implementations ---

type mockValidationRepository struct {
	mu       sync.Mutex
	saved    []port.ValidationRecord
	saveErr  error
	saveAlls int

	listed    []port.ValidationRecord
	listErr   error
	lastLimit int

	counts   map[model.Outcome]int64
	countErr error
}

func (m *mockValidationRepository) Save(_ context.Context, record port.ValidationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, record)
	return nil
}

func (m *mockValidationRepository) SaveAll(_ context.Context, records []port.ValidationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveAlls++
	m.saved = append(m.saved, records...)
	return nil
}

func (m *mockValidationRepository) ListRecent(_ context.Context, limit int) ([]port.ValidationRecord, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listed, nil
}

func (m *mockValidationRepository) CountByOutcome(_ context.Context) (map[model.Outcome]int64, error) {
	if m.countErr != nil {
		return nil, m.countErr
	}
	return m.counts, nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishedEvents []events.DomainEvent
	publishedTopic  string
	publishErr      error
}

func (m *mockEventPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.publishedTopic = topic
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
