// Package scan drives historical range scans: one fetch per Saturday,
// normalization, and partial-failure bookkeeping. Aggregation itself lives
// in the stats package; the runner only assembles the input sequence.
package scan

import (
	"context"
	"errors"
	"log"
	"time"

	"lottery-tracker/internal/dates"
	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/normalize"
	"lottery-tracker/internal/source"
)

// Default configuration values.
const (
	// DefaultMaxConsecutiveNoData stops a bounded range scan after this many
	// Saturdays in a row without published data.
	DefaultMaxConsecutiveNoData = 5

	// DefaultOpenEndedMaxNoData is the stop threshold for open-ended
	// backward scans, which probe past the oldest published draw.
	DefaultOpenEndedMaxNoData = 10

	// DefaultRequestDelay spaces out requests to the results site.
	DefaultRequestDelay = 500 * time.Millisecond

	// DefaultLookbackDays bounds the earliest-data probe.
	DefaultLookbackDays = 365
)

// SkippedWeek records one draw date excluded from a scan and why.
type SkippedWeek struct {
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

// Result holds the outcome of a historical scan: the normalized draw
// results, oldest first, plus every week that had to be skipped. Statistics
// computed from Results are partial whenever Skipped is non-empty, and
// reports must say so.
type Result struct {
	Results []domain.DrawResult
	Skipped []SkippedWeek
}

// SkippedWeeks returns the number of weeks excluded from the scan.
func (r Result) SkippedWeeks() int {
	return len(r.Skipped)
}

// Runner performs per-week lookups against a ResultSource.
type Runner struct {
	source    source.ResultSource
	stake     float64
	delay     time.Duration
	maxNoData int
	logger    *log.Logger
	now       func() time.Time
}

// RunnerOptions contains configuration for creating a Runner. Zero values
// fall back to defaults; Source is required.
type RunnerOptions struct {
	Source source.ResultSource
	Stake  float64       // 0 = standard ticket cost per draw date
	Delay  time.Duration // 0 = DefaultRequestDelay, negative = no pacing
	// MaxConsecutiveNoData overrides the bounded-scan stop threshold.
	MaxConsecutiveNoData int
	Logger               *log.Logger
	Now                  func() time.Time // injectable clock
}

// NewRunner creates a scan runner.
func NewRunner(opts RunnerOptions) *Runner {
	delay := opts.Delay
	if delay == 0 {
		delay = DefaultRequestDelay
	}

	maxNoData := opts.MaxConsecutiveNoData
	if maxNoData == 0 {
		maxNoData = DefaultMaxConsecutiveNoData
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Runner{
		source:    opts.Source,
		stake:     opts.Stake,
		delay:     delay,
		maxNoData: maxNoData,
		logger:    logger,
		now:       now,
	}
}

// Run scans every Saturday in [start, end], oldest first. Weeks with a
// parse or transport failure are skipped and counted; the scan stops early
// after maxNoData consecutive Saturdays without published data.
func (r *Runner) Run(ctx context.Context, ticketNumber string, start, end time.Time) (Result, error) {
	var res Result
	noData := 0

	for i, date := range dates.Saturdays(start, end) {
		if i > 0 {
			if err := r.pause(ctx); err != nil {
				return res, err
			}
		}

		outcome, err := r.checkWeek(ctx, ticketNumber, date, &res)
		if err != nil {
			return res, err
		}

		if outcome == weekNoData {
			noData++
			r.logger.Printf("%s: sin datos disponibles (%d/%d)", date.Format("2006-01-02"), noData, r.maxNoData)
			if noData >= r.maxNoData {
				r.logger.Printf("deteniendo análisis tras %d sábados consecutivos sin datos", noData)
				break
			}
			continue
		}
		if outcome == weekScanned {
			noData = 0
		}
	}

	return res, nil
}

// RunAll walks backward from the most recent completed draw until
// DefaultOpenEndedMaxNoData consecutive Saturdays yield no usable data,
// collecting every published result for the ticket. Skipped weeks count
// toward the stop too; the walk has no date bound, so a persistently
// failing source must still terminate it. Results come back oldest first.
func (r *Runner) RunAll(ctx context.Context, ticketNumber string) (Result, error) {
	var res Result
	noData := 0

	for date := dates.PreviousSaturday(r.now()); noData < DefaultOpenEndedMaxNoData; date = date.AddDate(0, 0, -7) {
		outcome, err := r.checkWeek(ctx, ticketNumber, date, &res)
		if err != nil {
			return res, err
		}

		if outcome == weekScanned {
			noData = 0
		} else {
			noData++
			r.logger.Printf("%s: sin datos utilizables (%d/%d)", date.Format("2006-01-02"), noData, DefaultOpenEndedMaxNoData)
		}

		if err := r.pause(ctx); err != nil {
			return res, err
		}
	}

	reverse(res.Results)
	return res, nil
}

// EarliestAvailable probes backward for the oldest Saturday with published
// data within lookbackDays. Returns false when nothing was found.
func (r *Runner) EarliestAvailable(ctx context.Context, ticketNumber string, lookbackDays int) (time.Time, bool, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	now := r.now()
	horizon := dates.Day(now).AddDate(0, 0, -lookbackDays)

	earliest := time.Time{}
	found := false
	for date := dates.LastSaturday(now); !date.Before(horizon); date = date.AddDate(0, 0, -7) {
		_, err := r.source.Fetch(ctx, ticketNumber, date)
		switch {
		case err == nil:
			earliest = date
			found = true
		case errors.Is(err, source.ErrNoData):
			// keep probing; gaps can precede older data
		default:
			var te *source.TransientError
			if !errors.As(err, &te) {
				return time.Time{}, false, err
			}
			// probe the next week, but keep pacing requests
			r.logger.Printf("%s: %v", date.Format("2006-01-02"), te)
		}

		if err := r.pause(ctx); err != nil {
			return time.Time{}, false, err
		}
	}

	return earliest, found, nil
}

// weekOutcome classifies one scanned Saturday.
type weekOutcome int

const (
	weekScanned weekOutcome = iota
	weekNoData
	weekSkipped
)

// checkWeek fetches and normalizes one draw date, appending to res. Parse
// and transport failures become skipped weeks; anything else is fatal.
func (r *Runner) checkWeek(ctx context.Context, ticketNumber string, date time.Time, res *Result) (weekOutcome, error) {
	day := date.Format("2006-01-02")

	raw, err := r.source.Fetch(ctx, ticketNumber, date)
	if err != nil {
		if errors.Is(err, source.ErrNoData) {
			return weekNoData, nil
		}
		var te *source.TransientError
		if errors.As(err, &te) {
			r.logger.Printf("%s: omitida por error de red: %v", day, te.Err)
			res.Skipped = append(res.Skipped, SkippedWeek{Date: date, Reason: te.Error()})
			return weekSkipped, nil
		}
		return weekSkipped, err
	}

	result, err := normalize.Normalize(raw, r.stake)
	if err != nil {
		var pe *normalize.ParseError
		if errors.As(err, &pe) {
			r.logger.Printf("%s: omitida por texto de premio ilegible", day)
			res.Skipped = append(res.Skipped, SkippedWeek{Date: date, Reason: pe.Error()})
			return weekSkipped, nil
		}
		return weekSkipped, err
	}

	if result.Hit {
		r.logger.Printf("%s: %s (%.2f €)", day, result.Note, result.Prize)
	} else {
		r.logger.Printf("%s: sin premio", day)
	}
	res.Results = append(res.Results, result)
	return weekScanned, nil
}

// pause waits the configured inter-request delay, honoring cancellation.
func (r *Runner) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func reverse(rs []domain.DrawResult) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
