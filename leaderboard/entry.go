package leaderboard

import (
	"errors"

	"github.com/bitmark-inc/commute-leaderboard/classifier"
	"github.com/bitmark-inc/commute-leaderboard/schema"
)

var (
	ErrNilProfile     = errors.New("nil user profile")
	ErrEmptyFirstDate = errors.New("empty first date")
	ErrNilStoryline   = errors.New("nil storyline")
	ErrNilClassifier  = errors.New("nil day classifier")
)

// totals are the running sums of a storyline before formatting
type totals struct {
	distance    float64 // meters
	duration    float64 // seconds
	toWork      int
	fromWork    int
	commuteDays int
	workDays    int
	newUser     bool
}

// Compute walks a storyline once and returns the leaderboard entry of the user.
// firstDate is the date the user started to use Moves, in the format of storyline dates.
func Compute(user *schema.UserProfile, firstDate string, storyline schema.Storyline, c classifier.DayClassifier) (*schema.LeaderboardEntry, error) {
	switch {
	case user == nil:
		return nil, ErrNilProfile
	case firstDate == "":
		return nil, ErrEmptyFirstDate
	case storyline == nil:
		return nil, ErrNilStoryline
	case c == nil:
		return nil, ErrNilClassifier
	}

	var t totals
	for _, day := range storyline {
		t.addDay(day, firstDate, c)
	}

	entry := t.entry()
	entry.Name = user.DisplayName()

	return entry, nil
}

func (t *totals) addDay(day schema.Day, firstDate string, c classifier.DayClassifier) {
	var trips []schema.CyclingTrip
	if len(day.Segments) > 0 {
		trips = c.CyclingTrips(day.Segments)
	}

	// a direction counts once a day no matter how many stops split the commute
	toWorkSeen, fromWorkSeen := false, false
	for _, trip := range trips {
		t.distance += trip.Distance
		t.duration += trip.Duration

		switch trip.Direction {
		case schema.ToWork:
			if !toWorkSeen {
				toWorkSeen = true
				t.toWork++
			}
		case schema.FromWork:
			if !fromWorkSeen {
				fromWorkSeen = true
				t.fromWork++
			}
		}
	}

	if len(trips) > 0 {
		t.commuteDays++
	}

	if len(day.Segments) > 0 && c.HasWorkplacePresence(day.Segments) {
		t.workDays++
	}

	if day.Date == firstDate {
		t.newUser = true
	}
}

func (t *totals) entry() *schema.LeaderboardEntry {
	miles := MetersToMiles(t.distance)

	return &schema.LeaderboardEntry{
		Distance:    RoundTenth(miles),
		Duration:    FormatClock(t.duration),
		Speed:       RoundTenth(SpeedMPH(miles, t.duration)),
		ToWork:      t.toWork,
		FromWork:    t.fromWork,
		NCommutes:   t.toWork + t.fromWork,
		CommuteDays: t.commuteDays,
		WorkDays:    t.workDays,
		Rate:        Rate(t.commuteDays, t.workDays),
		NewUser:     t.newUser,
	}
}
