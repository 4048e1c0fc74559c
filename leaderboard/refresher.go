package leaderboard

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/commute-leaderboard/classifier"
	"github.com/bitmark-inc/commute-leaderboard/external/moves"
	"github.com/bitmark-inc/commute-leaderboard/schema"
	"github.com/bitmark-inc/commute-leaderboard/store"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

// DefaultTokenMargin is how long before its expiry an access token gets refreshed
const DefaultTokenMargin = 24 * time.Hour

// Refresher computes and saves the leaderboard records of accounts
type Refresher struct {
	core        store.CommuteCore
	records     store.Leaderboard
	moves       moves.Moves
	classifier  classifier.DayClassifier
	tokenMargin time.Duration
	now         func() time.Time
}

func NewRefresher(core store.CommuteCore, records store.Leaderboard, m moves.Moves, c classifier.DayClassifier) *Refresher {
	return &Refresher{
		core:        core,
		records:     records,
		moves:       m,
		classifier:  c,
		tokenMargin: DefaultTokenMargin,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to resolve the running period
func (r *Refresher) WithClock(now func() time.Time) *Refresher {
	r.now = now
	return r
}

// WithTokenMargin sets how early an access token is refreshed
func (r *Refresher) WithTokenMargin(margin time.Duration) *Refresher {
	r.tokenMargin = margin
	return r
}

// Refresh fetches the storyline of an account over a period from Moves,
// computes its leaderboard entry and saves it. An empty period stands for
// the running one in the timezone of the account.
func (r *Refresher) Refresh(ctx context.Context, accountNumber, period string) (*schema.LeaderboardRecord, error) {
	logger := log.WithFields(log.Fields{
		"prefix":         "leaderboard",
		"account_number": accountNumber,
	})

	account, err := r.core.GetAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	profile := account.Profile

	accessToken, err := r.accessToken(ctx, account)
	if err != nil {
		logger.WithError(err).Error("refresh moves access token")
		return nil, err
	}

	now := r.now().In(utils.LocationOrUTC(profile.Timezone))
	if period == "" {
		period = utils.CurrentPeriod(now)
	}

	from, to, err := utils.PeriodRange(period, now)
	if err != nil {
		return nil, err
	}

	// Moves rejects days before the first day of a user
	if firstDay, err := utils.ParseMovesDate(profile.FirstDate, now.Location()); err == nil && firstDay.After(from) {
		from = firstDay
	}

	storyline := schema.Storyline{}
	if !from.After(to) {
		storyline, err = r.moves.StorylineRange(ctx, accessToken, from, to)
		if err != nil {
			logger.WithError(err).Error("fetch storyline")
			return nil, err
		}
	}

	entry, err := Compute(profile.UserProfile(), profile.FirstDate, storyline, r.classifier)
	if err != nil {
		return nil, err
	}

	record := schema.LeaderboardRecord{
		AccountNumber:    accountNumber,
		Period:           period,
		From:             utils.FormatMovesDate(from),
		To:               utils.FormatMovesDate(to),
		LeaderboardEntry: *entry,
		UpdatedAt:        r.now().UTC(),
	}

	if err := r.records.SaveLeaderboardRecord(record); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"period":     period,
		"days":       len(storyline),
		"distance":   entry.Distance,
		"n_commutes": entry.NCommutes,
	}).Info("leaderboard record refreshed")

	return &record, nil
}

// RefreshAll refreshes every registered account. A failed account does not
// stop the others; the number of failures is returned.
func (r *Refresher) RefreshAll(ctx context.Context, period string) (int, error) {
	accounts, err := r.core.ListAccounts()
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, a := range accounts {
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		if _, err := r.Refresh(ctx, a.AccountNumber, period); err != nil {
			log.WithField("prefix", "leaderboard").WithError(err).Warnf("skip account %s", a.AccountNumber)
			failed++
		}
	}

	return failed, nil
}

func (r *Refresher) accessToken(ctx context.Context, account *schema.Account) (string, error) {
	profile := account.Profile
	if !profile.TokenExpired(r.now(), r.tokenMargin) || profile.RefreshToken == "" {
		return profile.AccessToken, nil
	}

	token, err := r.moves.GetOAuthToken(ctx, moves.TokenRequest{
		GrantType:    moves.GrantRefreshToken,
		RefreshToken: profile.RefreshToken,
	})
	if err != nil {
		return "", err
	}

	if err := r.core.UpdateAccountToken(account.AccountNumber, token.AccessToken, token.RefreshToken, token.Expiry(r.now())); err != nil {
		return "", err
	}

	return token.AccessToken, nil
}
