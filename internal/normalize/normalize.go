// Package normalize converts raw per-draw records from the results site
// into canonical DrawResult values.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/source"
)

// SaturdayTicketCost is the fixed price of a Saturday Lotería Nacional
// ticket, in euros.
const SaturdayTicketCost = 6.0

// noPrizeMarker appears in the prize text when the ticket won nothing.
const noPrizeMarker = "no tiene premio"

// Euro amounts as printed by the site: "1.234" style thousands separators are
// not used there; decimals use a comma, e.g. "60 €" or "7,50 €".
var euroAmountPattern = regexp.MustCompile(`(\d+(?:,\d+)?)\s*€`)

// ParseError reports a raw record whose prize text could not be interpreted.
// A historical scan may skip the affected week and continue; silently
// treating the week as a miss would corrupt the totals.
type ParseError struct {
	Date time.Time
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable prize text for %s: %q", e.Date.Format("2006-01-02"), e.Text)
}

// TicketCost returns the stake for a draw on the given date. Saturday draws
// have a flat ticket price.
func TicketCost(time.Time) float64 {
	return SaturdayTicketCost
}

// Normalize converts a raw draw record into a DrawResult with the given
// stake. A stake of 0 uses the standard ticket cost for the draw date.
//
// The returned result always satisfies the DrawResult invariants; prize text
// that declares a win but carries no parseable amount yields a *ParseError.
func Normalize(raw *source.RawDraw, stake float64) (domain.DrawResult, error) {
	if stake == 0 {
		stake = TicketCost(raw.Date)
	}

	prize, err := parsePrizeAmount(raw.Date, raw.PrizeText)
	if err != nil {
		return domain.DrawResult{}, err
	}

	return domain.DrawResult{
		Date:  raw.Date,
		Stake: stake,
		Prize: prize,
		Hit:   prize > 0,
		Note:  raw.PrizeText,
	}, nil
}

// parsePrizeAmount extracts the prize from the site's prize text. When
// several euro amounts appear, the largest is the main prize.
func parsePrizeAmount(date time.Time, text string) (float64, error) {
	if strings.Contains(strings.ToLower(text), noPrizeMarker) {
		return 0, nil
	}

	var best float64
	found := false
	for _, m := range euroAmountPattern.FindAllStringSubmatch(text, -1) {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		found = true
		if amount > best {
			best = amount
		}
	}

	if !found {
		return 0, &ParseError{Date: date, Text: text}
	}
	return best, nil
}
