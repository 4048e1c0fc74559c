package refresh

import (
	"context"

	"github.com/jinzhu/gorm"
	"go.uber.org/cadence"
	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

// ReasonAccountNotFound is the reason of the error returned when the
// refreshed account does not exist any more
const ReasonAccountNotFound = "account-not-found"

// RefreshLeaderboardActivity computes and saves the record of an account.
// An empty period stands for the running one.
func (w *LeaderboardUpdateWorker) RefreshLeaderboardActivity(ctx context.Context, accountNumber, period string) (*schema.LeaderboardRecord, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Refresh leaderboard record.", zap.String("accountNumber", accountNumber), zap.String("period", period))

	record, err := w.refresher.Refresh(ctx, accountNumber, period)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, cadence.NewCustomError(ReasonAccountNotFound, accountNumber)
		}
		return nil, err
	}

	return record, nil
}
