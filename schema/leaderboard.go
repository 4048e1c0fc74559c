package schema

import "time"

const (
	LeaderboardCollection = "leaderboard"
)

// UserProfile carries the names used to build a leaderboard display name
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName returns "first last"
func (u UserProfile) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// LeaderboardEntry is the cycling summary of one user over a reporting window
type LeaderboardEntry struct {
	Name        string  `json:"name" bson:"name"`
	Distance    float64 `json:"distance" bson:"distance"`
	Duration    string  `json:"duration" bson:"duration"`
	Speed       float64 `json:"speed" bson:"speed"`
	ToWork      int     `json:"toWork" bson:"to_work"`
	FromWork    int     `json:"fromWork" bson:"from_work"`
	NCommutes   int     `json:"nCommutes" bson:"n_commutes"`
	CommuteDays int     `json:"commute_days" bson:"commute_days"`
	WorkDays    int     `json:"work_days" bson:"work_days"`
	Rate        int     `json:"rate" bson:"rate"`
	NewUser     bool    `json:"newuser" bson:"newuser"`
}

// LeaderboardRecord - a stored leaderboard entry of an account for a period
type LeaderboardRecord struct {
	AccountNumber    string    `json:"account_number" bson:"account_number"`
	Period           string    `json:"period" bson:"period"`
	From             string    `json:"from" bson:"from"`
	To               string    `json:"to" bson:"to"`
	LeaderboardEntry `bson:",inline"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
