package refresh

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/commute-leaderboard/schema"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    5 * time.Minute,
	HeartbeatTimeout:       time.Minute,
}

// LeaderboardUpdateWorkflow refreshes the record of an account in the running
// period, either when the refresh interval passes or when it is signalled.
// It ends once the account is removed.
func (w *LeaderboardUpdateWorker) LeaderboardUpdateWorkflow(ctx workflow.Context, accountNumber string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, utils.LeaderboardRefreshSignalName)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx).With(zap.String("account_number", accountNumber))
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, w.interval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically leaderboard updates")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)
		logger.Info("Start leaderboard updates by signal")
	})

	selector.Select(ctx)

	var record schema.LeaderboardRecord
	if err := workflow.ExecuteActivity(ctx, w.RefreshLeaderboardActivity, accountNumber, "").Get(ctx, &record); err != nil {
		if customErr, ok := err.(*cadence.CustomError); ok && customErr.Reason() == ReasonAccountNotFound {
			logger.Info("Account removed, stop leaderboard updates")
			return nil
		}

		logger.Error("Fail to refresh leaderboard record", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.LeaderboardUpdateWorkflow, accountNumber)
	}

	logger.Info("Leaderboard record refreshed",
		zap.String("period", record.Period),
		zap.Float64("distance", record.Distance),
		zap.Int("n_commutes", record.NCommutes))

	return workflow.NewContinueAsNewError(ctx, w.LeaderboardUpdateWorkflow, accountNumber)
}
