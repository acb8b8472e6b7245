package reporting

import (
	"time"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/scan"
	"lottery-tracker/internal/stats"
)

// Build assembles the analysis document for a scanned range: statistics
// over the successfully normalized weeks plus the raw result sequence and
// the skipped-week count, so partial data is never presented as complete.
func Build(ticketNumber string, scanned scan.Result, now time.Time) (*domain.Analysis, error) {
	s, err := stats.Compute(scanned.Results)
	if err != nil {
		return nil, err
	}

	a := &domain.Analysis{
		TicketNumber: ticketNumber,
		GeneratedAt:  now,
		SkippedWeeks: scanned.SkippedWeeks(),
		Statistics:   s,
		Results:      scanned.Results,
	}

	for _, r := range scanned.Results {
		d := r.Date
		if a.PeriodStart == nil || d.Before(*a.PeriodStart) {
			start := d
			a.PeriodStart = &start
		}
		if a.PeriodEnd == nil || d.After(*a.PeriodEnd) {
			end := d
			a.PeriodEnd = &end
		}
	}

	return a, nil
}
