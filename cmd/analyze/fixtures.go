package main

import (
	"strings"
	"time"

	"lottery-tracker/internal/source"
	"lottery-tracker/internal/source/stub"
)

// Demo data for -use-fixtures runs: eight Saturdays with two wins.
const (
	fixturePeriodStart = "2024-12-07"
	fixturePeriodEnd   = "2025-01-25"
)

var fixtureWeeks = []struct {
	date string
	text string
}{
	{"2024-12-07", "El número %N no tiene premio."},
	{"2024-12-14", "El número %N tiene un premio de 15 € por la terminación."},
	{"2024-12-21", "El número %N no tiene premio."},
	{"2024-12-28", "El número %N no tiene premio."},
	{"2025-01-04", "El número %N tiene un premio de 60 €."},
	{"2025-01-11", "El número %N no tiene premio."},
	{"2025-01-18", "El número %N no tiene premio."},
	{"2025-01-25", "El número %N no tiene premio."},
}

// fixtureSource builds a stub source serving the demo weeks.
func fixtureSource(ticketNumber string) *stub.Source {
	src := stub.NewSource()
	for _, w := range fixtureWeeks {
		date, err := time.ParseInLocation("2006-01-02", w.date, time.UTC)
		if err != nil {
			panic(err) // fixture dates are constants
		}
		src.AddDraw(&source.RawDraw{
			TicketNumber: ticketNumber,
			Date:         date,
			PrizeText:    strings.ReplaceAll(w.text, "%N", ticketNumber),
		})
	}
	return src
}
