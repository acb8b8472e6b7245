package domain

import "time"

// Statistics is the cumulative financial summary over a sequence of draw
// results. It is derived data: always recomputed in full, never mutated
// in place.
//
// WinRate and ROI are nil when undefined (no draws considered, or nothing
// spent). Nil serializes as JSON null so a 0% win rate is distinguishable
// from "no data".
type Statistics struct {
	TicketCount  int        `json:"ticket_count"`
	Hits         int        `json:"hits"`
	TotalSpent   float64    `json:"total_spent"`
	TotalWon     float64    `json:"total_won"`
	NetProfit    float64    `json:"net_profit"`
	WinRate      *float64   `json:"win_rate"`      // hits / ticket_count, fraction in [0,1]
	ROI          *float64   `json:"roi"`           // net_profit / total_spent
	BiggestPrize float64    `json:"biggest_prize"` // 0 when no draws or no wins
	LastWinDate  *time.Time `json:"last_win_date,omitempty"`
}
