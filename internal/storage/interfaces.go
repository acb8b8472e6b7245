// Package storage defines the archival store boundaries. The flat report
// file remains the primary artifact of a run; these stores keep an optional
// queryable history of normalized draws and generated analyses.
package storage

import (
	"context"
	"time"

	"lottery-tracker/internal/domain"
)

// DrawResultStore archives normalized weekly outcomes, keyed by
// (ticket_number, draw_date). Append-only.
type DrawResultStore interface {
	// Insert adds one result. Returns ErrDuplicateKey when the week is
	// already archived for the ticket.
	Insert(ctx context.Context, ticketNumber string, r domain.DrawResult) error

	// InsertBulk adds results atomically; the whole batch fails on any
	// duplicate.
	InsertBulk(ctx context.Context, ticketNumber string, rs []domain.DrawResult) error

	// GetByTicket returns every archived result for a ticket, oldest first.
	GetByTicket(ctx context.Context, ticketNumber string) ([]domain.DrawResult, error)

	// GetByTicketRange returns archived results with draw dates in
	// [start, end], oldest first.
	GetByTicketRange(ctx context.Context, ticketNumber string, start, end time.Time) ([]domain.DrawResult, error)
}

// AnalysisStore archives generated analysis documents, keyed by
// (ticket_number, generated_at). Append-only.
type AnalysisStore interface {
	// Insert adds one analysis. Returns ErrDuplicateKey for a repeated
	// (ticket_number, generated_at) pair.
	Insert(ctx context.Context, a *domain.Analysis) error

	// GetLatest returns the most recently generated analysis for a ticket,
	// or ErrNotFound.
	GetLatest(ctx context.Context, ticketNumber string) (*domain.Analysis, error)

	// GetByTicket returns all analyses for a ticket, newest first.
	GetByTicket(ctx context.Context, ticketNumber string) ([]*domain.Analysis, error)
}
