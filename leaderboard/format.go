package leaderboard

import (
	"fmt"
	"math"
)

const (
	MetersPerMile    = 1609.34
	secondsPerHour   = 3600
	secondsPerMinute = 60
	secondsPerDay    = 24 * secondsPerHour
)

func MetersToMiles(meters float64) float64 {
	return meters / MetersPerMile
}

// SpeedMPH returns 0 when no time was recorded
func SpeedMPH(miles, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return miles / (seconds / secondsPerHour)
}

// FormatClock formats seconds as HH:MM:SS on a 24 hour clock,
// so totals of a day or longer wrap around.
func FormatClock(seconds float64) string {
	s := int64(seconds) % secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}

	return fmt.Sprintf("%02d:%02d:%02d",
		s/secondsPerHour,
		(s%secondsPerHour)/secondsPerMinute,
		s%secondsPerMinute)
}

// RoundTenth rounds half away from zero to one decimal
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Rate is the percentage of work days with a commute, truncated
func Rate(commuteDays, workDays int) int {
	if workDays == 0 {
		return 0
	}
	return int(float64(commuteDays) / float64(workDays) * 100)
}
