package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/storage"
)

// DrawResultStore is an in-memory implementation of storage.DrawResultStore.
type DrawResultStore struct {
	mu   sync.RWMutex
	data map[string]map[string]domain.DrawResult // ticket -> draw date -> result
}

// NewDrawResultStore creates a new in-memory draw result store.
func NewDrawResultStore() *DrawResultStore {
	return &DrawResultStore{
		data: make(map[string]map[string]domain.DrawResult),
	}
}

// Compile-time interface check.
var _ storage.DrawResultStore = (*DrawResultStore)(nil)

// Insert adds one result. Returns ErrDuplicateKey when the week is already
// archived for the ticket.
func (s *DrawResultStore) Insert(_ context.Context, ticketNumber string, r domain.DrawResult) error {
	if ticketNumber == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(ticketNumber, r)
}

// InsertBulk adds results atomically. Fails the entire batch on any duplicate.
func (s *DrawResultStore) InsertBulk(_ context.Context, ticketNumber string, rs []domain.DrawResult) error {
	if ticketNumber == "" {
		return storage.ErrInvalidInput
	}
	if len(rs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: reject duplicates (existing + intra-batch) before writing.
	batchKeys := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		key := dateKey(r.Date)
		if _, ok := s.data[ticketNumber][key]; ok {
			return storage.ErrDuplicateKey
		}
		if _, ok := batchKeys[key]; ok {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, r := range rs {
		if err := s.insertLocked(ticketNumber, r); err != nil {
			return err
		}
	}
	return nil
}

// GetByTicket returns every archived result for a ticket, oldest first.
func (s *DrawResultStore) GetByTicket(_ context.Context, ticketNumber string) ([]domain.DrawResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.DrawResult
	for _, r := range s.data[ticketNumber] {
		out = append(out, r)
	}
	sortByDate(out)
	return out, nil
}

// GetByTicketRange returns archived results with draw dates in [start, end],
// oldest first.
func (s *DrawResultStore) GetByTicketRange(_ context.Context, ticketNumber string, start, end time.Time) ([]domain.DrawResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.DrawResult
	for _, r := range s.data[ticketNumber] {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	sortByDate(out)
	return out, nil
}

func (s *DrawResultStore) insertLocked(ticketNumber string, r domain.DrawResult) error {
	ticket, ok := s.data[ticketNumber]
	if !ok {
		ticket = make(map[string]domain.DrawResult)
		s.data[ticketNumber] = ticket
	}

	key := dateKey(r.Date)
	if _, exists := ticket[key]; exists {
		return storage.ErrDuplicateKey
	}
	ticket[key] = r
	return nil
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sortByDate(rs []domain.DrawResult) {
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].Date.Before(rs[j].Date)
	})
}
