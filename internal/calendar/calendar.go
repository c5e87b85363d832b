package calendar

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range's start date is after its end date.
var ErrInvalidRange = errors.New("calendar: start date after end date")

// DateEntry is one day of the reporting horizon with its calendar attributes.
type DateEntry struct {
	Date        time.Time
	Year        int
	MonthNumber int
	MonthName   string
}

// Period returns the year-month key of the entry, e.g. "2023-01".
func (e DateEntry) Period() string {
	return e.Date.Format("2006-01")
}

// Generate returns one entry per calendar day in [start, end] inclusive,
// strictly increasing by date. Times are truncated to UTC midnight, so two
// timestamps on the same day yield a single-day range.
func Generate(start, end time.Time) ([]DateEntry, error) {
	start = midnight(start)
	end = midnight(end)

	if start.After(end) {
		return nil, ErrInvalidRange
	}

	days := int(end.Sub(start).Hours()/24) + 1
	entries := make([]DateEntry, 0, days)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		entries = append(entries, DateEntry{
			Date:        d,
			Year:        d.Year(),
			MonthNumber: int(d.Month()),
			MonthName:   d.Month().String(),
		})
	}

	return entries, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
