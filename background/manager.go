package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/bitmark-inc/commute-leaderboard/leaderboard"
)

// BackgroundManager is a struct for the commute leaderboard background manager
type BackgroundManager struct {
	refresher *leaderboard.Refresher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(refresher *leaderboard.Refresher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		refresher:  refresher,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("commute-leaderboard-worker", concurrency)
	return m.worker.Launch()
}
