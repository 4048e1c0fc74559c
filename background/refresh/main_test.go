package refresh

import (
	"os"
	"testing"
	"time"
)

var testWorker *LeaderboardUpdateWorker

func TestMain(m *testing.M) {
	testWorker = NewLeaderboardUpdateWorker("test", time.Hour, nil)
	testWorker.Register()
	os.Exit(m.Run())
}
