// Package stub provides a deterministic in-memory ResultSource for tests
// and fixture runs.
package stub

import (
	"context"
	"time"

	"lottery-tracker/internal/source"
)

// Source serves canned raw draws keyed by draw date.
type Source struct {
	draws map[string]*source.RawDraw
	errs  map[string]error

	// FetchCount tracks total Fetch calls (for asserting scan behavior).
	FetchCount int
}

// NewSource creates an empty stub source. Dates with no registered draw or
// error return source.ErrNoData.
func NewSource() *Source {
	return &Source{
		draws: make(map[string]*source.RawDraw),
		errs:  make(map[string]error),
	}
}

// Compile-time interface check.
var _ source.ResultSource = (*Source)(nil)

// AddDraw registers a raw draw for its date.
func (s *Source) AddDraw(raw *source.RawDraw) {
	s.draws[dateKey(raw.Date)] = raw
}

// AddError registers an error to return for a date.
func (s *Source) AddError(date time.Time, err error) {
	s.errs[dateKey(date)] = err
}

// Fetch returns the registered draw or error for the date, or ErrNoData.
func (s *Source) Fetch(_ context.Context, ticketNumber string, date time.Time) (*source.RawDraw, error) {
	s.FetchCount++

	key := dateKey(date)
	if err, ok := s.errs[key]; ok {
		return nil, err
	}
	if raw, ok := s.draws[key]; ok {
		return raw, nil
	}
	return nil, source.ErrNoData
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
