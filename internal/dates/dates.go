// Package dates provides Saturday-draw calendar arithmetic. The national
// lottery draw analyzed here is held every Saturday; all helpers normalize
// to midnight UTC so dates compare cleanly.
package dates

import "time"

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextSaturday returns t's date if it falls on a Saturday, otherwise the
// next Saturday after it. This is the draw a freshly bought ticket plays in.
func NextSaturday(t time.Time) time.Time {
	d := Day(t)
	offset := (int(time.Saturday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// LastSaturday returns t's date if it falls on a Saturday, otherwise the
// most recent Saturday before it.
func LastSaturday(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) - int(time.Saturday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// PreviousSaturday returns the Saturday strictly before t: seven days back
// when t itself is a Saturday.
func PreviousSaturday(t time.Time) time.Time {
	d := Day(t)
	if d.Weekday() == time.Saturday {
		return d.AddDate(0, 0, -7)
	}
	return LastSaturday(d)
}

// Saturdays returns every Saturday in [start, end], inclusive, oldest first.
func Saturdays(start, end time.Time) []time.Time {
	first := NextSaturday(start)
	last := Day(end)

	var out []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 7) {
		out = append(out, d)
	}
	return out
}
