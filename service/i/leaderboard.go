package i

import "context"

// LeaderboardEntry is one ranked player with their best completion time in
// seconds.
type LeaderboardEntry struct {
	Username string  `json:"username"`
	BestTime float64 `json:"best_time"`
}

// Leaderboard ranks players by their best maze completion time.
type Leaderboard interface {
	// SubmitTime records a completion time, keeping only the player's best.
	SubmitTime(ctx context.Context, username string, completionTime float64) error

	// Top returns up to n entries ordered fastest first.
	Top(ctx context.Context, n int64) ([]LeaderboardEntry, error)
}
