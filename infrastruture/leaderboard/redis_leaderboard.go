// Package leaderboard ranks players by best completion time in a Redis
// sorted set.
package leaderboard

import (
	"context"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/retro-maze/maze-api/service/i"
)

const defaultKey = "leaderboard:best_times"

// RedisLeaderboard stores each player's best completion time as their score
// in a sorted set, so a range query returns the fastest players first.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client.
func NewRedisLeaderboard(client *redis.Client) (*RedisLeaderboard, error) {
	board := &RedisLeaderboard{client: client, key: defaultKey}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// SubmitTime records a completion time for the player, keeping only their
// best. The read-modify-write is guarded by a distributed lock so concurrent
// API instances cannot overwrite a better time with a worse one.
func (rl *RedisLeaderboard) SubmitTime(ctx context.Context, username string, completionTime float64) error {
	mutex := rl.locker.NewMutex(rl.key + ":submit_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	best, err := rl.client.ZScore(ctx, rl.key, username).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	if err == nil && best <= completionTime {
		return nil
	}

	_, err = rl.client.ZAdd(ctx, rl.key, redis.Z{
		Score:  completionTime,
		Member: username,
	}).Result()
	return err
}

// Top returns up to n entries ordered fastest first.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]i.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	ranked, err := rl.client.ZRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(ranked))
	for _, z := range ranked {
		username, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, i.LeaderboardEntry{
			Username: username,
			BestTime: z.Score,
		})
	}
	return entries, nil
}
