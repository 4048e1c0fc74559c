package utils

import (
	"fmt"
	"time"
)

const (
	// PeriodLayout is the layout of a reporting period, a calendar month
	PeriodLayout = "2006-01"

	// MovesDateLayout is the layout of dates used by Moves
	MovesDateLayout = "20060102"
)

var (
	ErrInvalidPeriod = fmt.Errorf("invalid period")
	ErrFuturePeriod  = fmt.Errorf("period has not started yet")
)

// CurrentPeriod returns the period a time falls in
func CurrentPeriod(now time.Time) string {
	return now.Format(PeriodLayout)
}

// ParsePeriod validates a period and returns its first day
func ParsePeriod(period string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	start, err := time.ParseInLocation(PeriodLayout, period, loc)
	if err != nil {
		return time.Time{}, ErrInvalidPeriod
	}
	return start, nil
}

// PeriodRange returns the first and the last day of a period. The last day
// of the running period is the day of now.
func PeriodRange(period string, now time.Time) (time.Time, time.Time, error) {
	start, err := ParsePeriod(period, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	today := startOfDay(now)
	if start.After(today) {
		return time.Time{}, time.Time{}, ErrFuturePeriod
	}

	end := start.AddDate(0, 1, -1)
	if end.After(today) {
		end = today
	}

	return start, end, nil
}

// ParseMovesDate parses a yyyyMMdd date in a location
func ParseMovesDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(MovesDateLayout, date, loc)
}

// FormatMovesDate formats a time as a yyyyMMdd date
func FormatMovesDate(t time.Time) string {
	return t.Format(MovesDateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
