package reporting

import (
	"fmt"
	"strings"

	"lottery-tracker/internal/domain"
)

// RenderCSV renders the draw results as CSV, one row per draw.
func RenderCSV(results []domain.DrawResult) string {
	var sb strings.Builder

	sb.WriteString("date,stake,prize,hit,note\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%s,%.2f,%.2f,%t,%s\n",
			r.Date.Format("2006-01-02"),
			r.Stake,
			r.Prize,
			r.Hit,
			csvQuote(r.Note),
		))
	}

	return sb.String()
}

// csvQuote escapes the free-text note field; all other columns are numeric
// or fixed-format.
func csvQuote(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
