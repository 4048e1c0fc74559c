package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/bitmark-inc/commute-leaderboard/external/cadence"
)

const (
	LeaderboardTaskListName       = "commute-leaderboard-tasks"
	LeaderboardUpdateWorkflowName = "LeaderboardUpdateWorkflow"
	LeaderboardRefreshSignalName  = "leaderboardRefreshSignal"
)

// LeaderboardWorkflowID returns the id of the update workflow of an account
func LeaderboardWorkflowID(accountNumber string) string {
	return fmt.Sprintf("leaderboard-%s", accountNumber)
}

// TriggerLeaderboardUpdate is a helper function to send a signal to
// trigger the workflow to refresh leaderboard records. The workflow is
// started if it is not running.
func TriggerLeaderboardUpdate(c context.Context, client cadence.WorkflowStarter, accountNumbers []string) error {
	for _, a := range accountNumbers {
		id := LeaderboardWorkflowID(a)
		if _, err := client.SignalWithStartWorkflow(c,
			id, LeaderboardRefreshSignalName, nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           id,
				TaskList:                     LeaderboardTaskListName,
				ExecutionStartToCloseTimeout: 24 * time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, LeaderboardUpdateWorkflowName, a); err != nil {
			return err
		}
	}
	return nil
}
