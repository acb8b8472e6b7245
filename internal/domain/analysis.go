package domain

import "time"

// Analysis is the persisted report document produced by a historical run:
// the full result sequence plus its statistics, keyed by ticket number and
// generation timestamp. Each run produces a new document; documents are
// never updated afterward.
type Analysis struct {
	TicketNumber string       `json:"ticket_number"`
	GeneratedAt  time.Time    `json:"generated_at"`
	PeriodStart  *time.Time   `json:"period_start,omitempty"`
	PeriodEnd    *time.Time   `json:"period_end,omitempty"`
	SkippedWeeks int          `json:"skipped_weeks"`
	Statistics   Statistics   `json:"statistics"`
	Results      []DrawResult `json:"results"`
}
