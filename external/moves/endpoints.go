package moves

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

const (
	// DateFormat is the layout of dates in requests and storylines
	DateFormat = "20060102"

	// MaxRangeDays is the longest from/to range accepted by the daily endpoints
	MaxRangeDays = 31

	profilePath    = "user/profile"
	summaryPath    = "user/summary/daily"
	activitiesPath = "user/activities/daily"
	placesPath     = "user/places/daily"
	storylinePath  = "user/storyline/daily"
)

// Moves - interface of the Moves endpoints used by the service
type Moves interface {
	BuildOAuthURL(redirectURI string, useApp bool, scope string) string
	GetOAuthToken(ctx context.Context, r TokenRequest) (*Token, error)
	TokenInfo(ctx context.Context, accessToken string) (*TokenInfo, error)
	UserProfile(ctx context.Context, accessToken string) (*schema.MovesUser, error)
	StorylineRange(ctx context.Context, accessToken string, from, to time.Time) (schema.Storyline, error)
}

// DailyQuery selects the days of a daily endpoint. Date takes a day
// (yyyyMMdd), a week (yyyy-'W'ww) or a month (yyyyMM). Without Date the
// From/To range is used, and PastDays when the range is empty.
type DailyQuery struct {
	Date         string
	From         time.Time
	To           time.Time
	PastDays     int
	TrackPoints  bool
	UpdatedSince string
	ETag         string
}

func (q DailyQuery) path(base string) (string, url.Values) {
	params := url.Values{}
	path := base

	switch {
	case q.Date != "":
		path = base + "/" + q.Date
	case !q.From.IsZero() && !q.To.IsZero():
		params.Set("from", q.From.Format(DateFormat))
		params.Set("to", q.To.Format(DateFormat))
	case q.PastDays > 0:
		params.Set("pastDays", strconv.Itoa(q.PastDays))
	}

	if q.TrackPoints {
		params.Set("trackPoints", "true")
	}
	if q.UpdatedSince != "" {
		params.Set("updatedSince", q.UpdatedSince)
	}
	if q.ETag != "" {
		params.Set("etag", q.ETag)
	}

	return path, params
}

// UserProfile returns the Moves profile of the token owner
func (c *Client) UserProfile(ctx context.Context, accessToken string) (*schema.MovesUser, error) {
	var u schema.MovesUser
	if err := c.Get(ctx, accessToken, profilePath, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DailySummary returns the per activity summary of days
func (c *Client) DailySummary(ctx context.Context, accessToken string, q DailyQuery) ([]schema.Day, error) {
	return c.daily(ctx, accessToken, summaryPath, q)
}

// DailyActivities returns the move segments of days
func (c *Client) DailyActivities(ctx context.Context, accessToken string, q DailyQuery) ([]schema.Day, error) {
	return c.daily(ctx, accessToken, activitiesPath, q)
}

// DailyPlaces returns the place segments of days
func (c *Client) DailyPlaces(ctx context.Context, accessToken string, q DailyQuery) ([]schema.Day, error) {
	return c.daily(ctx, accessToken, placesPath, q)
}

// DailyStoryline returns both move and place segments of days
func (c *Client) DailyStoryline(ctx context.Context, accessToken string, q DailyQuery) (schema.Storyline, error) {
	return c.daily(ctx, accessToken, storylinePath, q)
}

// StorylineRange returns the storyline between two dates inclusively,
// split into requests the daily endpoint accepts
func (c *Client) StorylineRange(ctx context.Context, accessToken string, from, to time.Time) (schema.Storyline, error) {
	storyline := schema.Storyline{}

	for start := from; !start.After(to); {
		end := start.AddDate(0, 0, MaxRangeDays-1)
		if end.After(to) {
			end = to
		}

		days, err := c.DailyStoryline(ctx, accessToken, DailyQuery{From: start, To: end})
		if err != nil {
			return nil, err
		}
		storyline = append(storyline, days...)

		start = end.AddDate(0, 0, 1)
	}

	return storyline, nil
}

func (c *Client) daily(ctx context.Context, accessToken, base string, q DailyQuery) ([]schema.Day, error) {
	path, params := q.path(base)

	days := make([]schema.Day, 0)
	if err := c.Get(ctx, accessToken, path, params, &days); err != nil {
		return nil, err
	}
	return days, nil
}
