package memory

import (
	"context"
	"sort"
	"sync"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/storage"
)

// AnalysisStore is an in-memory implementation of storage.AnalysisStore.
type AnalysisStore struct {
	mu   sync.RWMutex
	data map[string][]*domain.Analysis // keyed by ticket number
}

// NewAnalysisStore creates a new in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		data: make(map[string][]*domain.Analysis),
	}
}

// Compile-time interface check.
var _ storage.AnalysisStore = (*AnalysisStore)(nil)

// Insert adds one analysis. Returns ErrDuplicateKey for a repeated
// (ticket_number, generated_at) pair.
func (s *AnalysisStore) Insert(_ context.Context, a *domain.Analysis) error {
	if a == nil || a.TicketNumber == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data[a.TicketNumber] {
		if existing.GeneratedAt.Equal(a.GeneratedAt) {
			return storage.ErrDuplicateKey
		}
	}

	stored := *a
	s.data[a.TicketNumber] = append(s.data[a.TicketNumber], &stored)
	return nil
}

// GetLatest returns the most recently generated analysis for a ticket.
func (s *AnalysisStore) GetLatest(_ context.Context, ticketNumber string) (*domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analyses := s.data[ticketNumber]
	if len(analyses) == 0 {
		return nil, storage.ErrNotFound
	}

	latest := analyses[0]
	for _, a := range analyses[1:] {
		if a.GeneratedAt.After(latest.GeneratedAt) {
			latest = a
		}
	}

	out := *latest
	return &out, nil
}

// GetByTicket returns every archived analysis for a ticket, newest first.
func (s *AnalysisStore) GetByTicket(_ context.Context, ticketNumber string) ([]*domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analyses := s.data[ticketNumber]
	out := make([]*domain.Analysis, 0, len(analyses))
	for _, a := range analyses {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	return out, nil
}
