package postgres

import (
	"context"
	"fmt"
	"time"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/storage"
)

// DrawResultStore implements storage.DrawResultStore using PostgreSQL.
type DrawResultStore struct {
	pool *Pool
}

// NewDrawResultStore creates a new DrawResultStore.
func NewDrawResultStore(pool *Pool) *DrawResultStore {
	return &DrawResultStore{pool: pool}
}

// Compile-time interface check.
var _ storage.DrawResultStore = (*DrawResultStore)(nil)

const insertDrawResultQuery = `
	INSERT INTO draw_results (ticket_number, draw_date, stake, prize, hit, note)
	VALUES ($1, $2, $3, $4, $5, $6)
`

// Insert adds one result. Returns ErrDuplicateKey when the
// (ticket_number, draw_date) pair already exists.
func (s *DrawResultStore) Insert(ctx context.Context, ticketNumber string, r domain.DrawResult) error {
	if ticketNumber == "" {
		return storage.ErrInvalidInput
	}

	_, err := s.pool.Exec(ctx, insertDrawResultQuery,
		ticketNumber, r.Date, r.Stake, r.Prize, r.Hit, r.Note)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert draw result: %w", err)
	}
	return nil
}

// InsertBulk adds results atomically. Fails the entire batch on any duplicate.
func (s *DrawResultStore) InsertBulk(ctx context.Context, ticketNumber string, rs []domain.DrawResult) error {
	if ticketNumber == "" {
		return storage.ErrInvalidInput
	}
	if len(rs) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range rs {
		if _, err := tx.Exec(ctx, insertDrawResultQuery,
			ticketNumber, r.Date, r.Stake, r.Prize, r.Hit, r.Note); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert draw result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByTicket returns every archived result for a ticket, oldest first.
func (s *DrawResultStore) GetByTicket(ctx context.Context, ticketNumber string) ([]domain.DrawResult, error) {
	query := `
		SELECT draw_date, stake, prize, hit, note
		FROM draw_results
		WHERE ticket_number = $1
		ORDER BY draw_date ASC
	`
	return s.queryResults(ctx, query, ticketNumber)
}

// GetByTicketRange returns archived results with draw dates in [start, end],
// oldest first.
func (s *DrawResultStore) GetByTicketRange(ctx context.Context, ticketNumber string, start, end time.Time) ([]domain.DrawResult, error) {
	query := `
		SELECT draw_date, stake, prize, hit, note
		FROM draw_results
		WHERE ticket_number = $1 AND draw_date >= $2 AND draw_date <= $3
		ORDER BY draw_date ASC
	`
	return s.queryResults(ctx, query, ticketNumber, start, end)
}

func (s *DrawResultStore) queryResults(ctx context.Context, query string, args ...any) ([]domain.DrawResult, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query draw results: %w", err)
	}
	defer rows.Close()

	var out []domain.DrawResult
	for rows.Next() {
		var r domain.DrawResult
		if err := rows.Scan(&r.Date, &r.Stake, &r.Prize, &r.Hit, &r.Note); err != nil {
			return nil, fmt.Errorf("scan draw result: %w", err)
		}
		r.Date = r.Date.UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draw results: %w", err)
	}
	return out, nil
}
