package domain

import (
	"fmt"
	"time"
)

// DrawResult represents one ticket's outcome for one weekly draw.
type DrawResult struct {
	Date  time.Time `json:"date"`           // calendar date of the draw
	Stake float64   `json:"stake"`          // money spent on this draw
	Prize float64   `json:"prize"`          // money won; 0 on a miss
	Hit   bool      `json:"hit"`            // prize > 0
	Note  string    `json:"note,omitempty"` // prize text as reported by the source, display only
}

// Validate checks the DrawResult invariants: stake > 0, prize >= 0,
// hit consistent with prize.
func (r DrawResult) Validate() error {
	if r.Stake <= 0 {
		return fmt.Errorf("stake must be positive, got %.2f", r.Stake)
	}
	if r.Prize < 0 {
		return fmt.Errorf("prize must be non-negative, got %.2f", r.Prize)
	}
	if r.Hit != (r.Prize > 0) {
		return fmt.Errorf("hit flag %t inconsistent with prize %.2f", r.Hit, r.Prize)
	}
	return nil
}
