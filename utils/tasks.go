package utils

// names of the machinery tasks
const (
	TaskRefreshLeaderboard     = "refresh_leaderboard"
	TaskRefreshAllLeaderboards = "refresh_all_leaderboards"
)
