// Package stats computes cumulative financial statistics over a sequence of
// draw results. Compute is a pure function: no I/O, no hidden state, safe to
// call any number of times on the same input.
package stats

import (
	"fmt"
	"time"

	"lottery-tracker/internal/domain"
)

// ValidationError reports an invalid DrawResult passed to Compute. The
// offending entry is identified by its position in the input sequence.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid draw result at index %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compute folds a sequence of draw results into a Statistics summary.
//
// Input order does not matter: LastWinDate is determined by comparing dates,
// not sequence position. The one ordering rule is the duplicate-date
// tie-break: when two winning entries carry the same date, the one
// encountered later in iteration order wins.
//
// Every entry is validated before any totals accumulate, so a malformed
// entry never yields partial aggregates. Compute does not mutate its input.
func Compute(results []domain.DrawResult) (domain.Statistics, error) {
	for i, r := range results {
		if err := r.Validate(); err != nil {
			return domain.Statistics{}, &ValidationError{Index: i, Err: err}
		}
	}

	s := domain.Statistics{TicketCount: len(results)}

	var lastWin *time.Time
	for _, r := range results {
		s.TotalSpent += r.Stake
		s.TotalWon += r.Prize
		if r.Prize > s.BiggestPrize {
			s.BiggestPrize = r.Prize
		}
		if r.Hit {
			s.Hits++
			// >= keeps the later entry on a date tie
			if lastWin == nil || !r.Date.Before(*lastWin) {
				d := r.Date
				lastWin = &d
			}
		}
	}

	s.NetProfit = s.TotalWon - s.TotalSpent
	s.LastWinDate = lastWin

	if s.TicketCount > 0 {
		rate := float64(s.Hits) / float64(s.TicketCount)
		s.WinRate = &rate
	}
	if s.TotalSpent > 0 {
		roi := s.NetProfit / s.TotalSpent
		s.ROI = &roi
	}

	return s, nil
}
