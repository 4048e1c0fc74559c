package schema

import (
	"time"

	"github.com/google/uuid"
)

// Account is a user who granted access to his Moves data
type Account struct {
	AccountNumber string         `json:"account_number" gorm:"primary_key"`
	Profile       AccountProfile `json:"profile" gorm:"foreignkey:ProfileID"`
	ProfileID     uuid.UUID      `json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AccountProfile keeps the Moves identity and the OAuth credentials of an account
type AccountProfile struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountNumber string    `json:"account_number" gorm:"unique_index"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	FirstDate     string    `json:"first_date"`
	Timezone      string    `json:"timezone"`
	AccessToken   string    `json:"-"`
	RefreshToken  string    `json:"-"`
	TokenExpiry   time.Time `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserProfile returns the names of an account
func (p AccountProfile) UserProfile() *UserProfile {
	return &UserProfile{
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

// TokenExpired reports if the access token is going to expire within the given margin
func (p AccountProfile) TokenExpired(now time.Time, margin time.Duration) bool {
	if p.TokenExpiry.IsZero() {
		return false
	}
	return !now.Add(margin).Before(p.TokenExpiry)
}

// MovesUser is the response of the Moves user profile endpoint
type MovesUser struct {
	UserID  int64            `json:"userId"`
	Profile MovesUserProfile `json:"profile"`
}

type MovesUserProfile struct {
	FirstDate       string            `json:"firstDate"`
	CurrentTimeZone MovesTimeZone     `json:"currentTimeZone"`
	Localization    MovesLocalization `json:"localization"`
	CaloriesAvail   bool              `json:"caloriesAvailable"`
	Platform        string            `json:"platform"`
}

type MovesTimeZone struct {
	ID     string `json:"id"`
	Offset int    `json:"offset"`
}

type MovesLocalization struct {
	Language string `json:"language"`
	Locale   string `json:"locale"`
	Metric   bool   `json:"metric"`
}
