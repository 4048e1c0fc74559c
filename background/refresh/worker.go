package refresh

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/commute-leaderboard/external/cadence"
	"github.com/bitmark-inc/commute-leaderboard/schema"
	"github.com/bitmark-inc/commute-leaderboard/utils"
)

const DefaultRefreshInterval = 6 * time.Hour

// Refresher computes and saves the leaderboard record of an account
type Refresher interface {
	Refresh(ctx context.Context, accountNumber, period string) (*schema.LeaderboardRecord, error)
}

type LeaderboardUpdateWorker struct {
	domain    string
	interval  time.Duration
	refresher Refresher
}

func NewLeaderboardUpdateWorker(domain string, interval time.Duration, refresher Refresher) *LeaderboardUpdateWorker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &LeaderboardUpdateWorker{
		domain:    domain,
		interval:  interval,
		refresher: refresher,
	}
}

func (w *LeaderboardUpdateWorker) Register() {
	workflow.RegisterWithOptions(w.LeaderboardUpdateWorkflow, workflow.RegisterOptions{Name: utils.LeaderboardUpdateWorkflowName})

	activity.RegisterWithOptions(w.RefreshLeaderboardActivity, activity.RegisterOptions{Name: "RefreshLeaderboardActivity"})
}

// Start polls the leaderboard task list until the process exits
func (w *LeaderboardUpdateWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger, scope tally.Scope) {
	if scope == nil {
		scope = tally.NoopScope
	}

	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  scope,
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		utils.LeaderboardTaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		logger.Panic("Failed to start worker", zap.Error(err))
	}

	logger.Info("Started Worker.", zap.String("worker", utils.LeaderboardTaskListName))

	select {}
}
