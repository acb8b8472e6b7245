package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/storage"
)

// AnalysisStore implements storage.AnalysisStore using PostgreSQL.
// Statistics and results are stored as JSONB alongside the queryable keys.
type AnalysisStore struct {
	pool *Pool
}

// NewAnalysisStore creates a new AnalysisStore.
func NewAnalysisStore(pool *Pool) *AnalysisStore {
	return &AnalysisStore{pool: pool}
}

// Compile-time interface check.
var _ storage.AnalysisStore = (*AnalysisStore)(nil)

// Insert adds one analysis document. Returns ErrDuplicateKey for a repeated
// (ticket_number, generated_at) pair.
func (s *AnalysisStore) Insert(ctx context.Context, a *domain.Analysis) error {
	if a == nil || a.TicketNumber == "" {
		return storage.ErrInvalidInput
	}

	statistics, err := json.Marshal(a.Statistics)
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}
	results, err := json.Marshal(a.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	query := `
		INSERT INTO analyses (
			ticket_number, generated_at, period_start, period_end,
			skipped_weeks, statistics, results
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.pool.Exec(ctx, query,
		a.TicketNumber, a.GeneratedAt, a.PeriodStart, a.PeriodEnd,
		a.SkippedWeeks, statistics, results)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// GetLatest returns the most recently generated analysis for a ticket.
func (s *AnalysisStore) GetLatest(ctx context.Context, ticketNumber string) (*domain.Analysis, error) {
	query := `
		SELECT ticket_number, generated_at, period_start, period_end,
		       skipped_weeks, statistics, results
		FROM analyses
		WHERE ticket_number = $1
		ORDER BY generated_at DESC
		LIMIT 1
	`
	row := s.pool.QueryRow(ctx, query, ticketNumber)
	a, err := scanAnalysis(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get latest analysis: %w", err)
	}
	return a, nil
}

// GetByTicket returns every archived analysis for a ticket, newest first.
func (s *AnalysisStore) GetByTicket(ctx context.Context, ticketNumber string) ([]*domain.Analysis, error) {
	query := `
		SELECT ticket_number, generated_at, period_start, period_end,
		       skipped_weeks, statistics, results
		FROM analyses
		WHERE ticket_number = $1
		ORDER BY generated_at DESC
	`
	rows, err := s.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []*domain.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return out, nil
}

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*domain.Analysis, error) {
	var (
		a          domain.Analysis
		statistics []byte
		results    []byte
	)
	if err := row.Scan(&a.TicketNumber, &a.GeneratedAt, &a.PeriodStart, &a.PeriodEnd,
		&a.SkippedWeeks, &statistics, &results); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(statistics, &a.Statistics); err != nil {
		return nil, fmt.Errorf("unmarshal statistics: %w", err)
	}
	if err := json.Unmarshal(results, &a.Results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	a.GeneratedAt = a.GeneratedAt.UTC()
	return &a, nil
}
