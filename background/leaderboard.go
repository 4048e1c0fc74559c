package background

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

const refreshTimeout = 5 * time.Minute

// RefreshLeaderboard is the task to recompute the record of an account in a period
func (m *BackgroundManager) RefreshLeaderboard(accountNumber, period string) error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := m.refresher.Refresh(ctx, accountNumber, period); err != nil {
		log.WithFields(log.Fields{
			"prefix":         "background",
			"account_number": accountNumber,
			"period":         period,
		}).WithError(err).Error("refresh leaderboard record")
		sentry.CaptureException(err)
		return err
	}

	return nil
}

// RefreshAllLeaderboards is the task to recompute the records of every account
func (m *BackgroundManager) RefreshAllLeaderboards(period string) error {
	failed, err := m.refresher.RefreshAll(context.Background(), period)
	if err != nil {
		sentry.CaptureException(err)
		return err
	}

	log.WithField("prefix", "background").Infof("leaderboards of period %q refreshed, %d accounts failed", period, failed)
	return nil
}
