// Package source defines the result-source boundary: given a ticket number
// and a draw date, a ResultSource reports what the results site says about
// that ticket, or that no data exists for the date yet.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoData signals the source has no draw data for the requested date,
// e.g. the draw has not been held yet. This is a valid outcome, not a
// failure, and callers must treat it differently from a zero-prize miss.
var ErrNoData = errors.New("no draw data for date")

// TransientError wraps a network or HTTP failure while fetching a draw.
// Callers decide whether to retry or skip; no retry logic lives here.
type TransientError struct {
	URL string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// RawDraw is the raw per-draw record for one ticket number, as published by
// the results site. Structure and prize text are owned by the site; the
// normalizer turns this into a canonical DrawResult.
type RawDraw struct {
	TicketNumber string
	Date         time.Time
	PrizeText    string
	URL          string
}

// ResultSource fetches the raw outcome for a ticket number on a draw date.
// Implementations return ErrNoData when the date has no published draw and
// *TransientError when the source is unreachable.
type ResultSource interface {
	Fetch(ctx context.Context, ticketNumber string, date time.Time) (*RawDraw, error)
}
