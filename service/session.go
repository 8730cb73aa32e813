package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/config"
	"github.com/retro-maze/maze-api/game"
	"github.com/retro-maze/maze-api/service/i"
)

var (
	// ErrSessionNotFound is returned for operations on a player with no
	// active session.
	ErrSessionNotFound = errors.New("no active session for player")
)

// GameSessionManager keeps one AdaptiveGame per active player. An
// AdaptiveGame is single-threaded by contract, so all access to a session
// goes through the manager's lock; distinct players only contend on the map
// itself.
type GameSessionManager struct {
	sessions    map[uuid.UUID]*game.AdaptiveGame
	playerRepo  i.PlayerRepo
	statsRepo   i.StatsRepo
	leaderboard i.Leaderboard
	statsSink   i.StatsSink
	logger      *log.Logger
	sync.RWMutex
}

// SessionManagerConfig holds the dependencies of a GameSessionManager.
type SessionManagerConfig struct {
	PlayerRepo  i.PlayerRepo
	StatsRepo   i.StatsRepo
	Leaderboard i.Leaderboard
	StatsSink   i.StatsSink
	Logger      *log.Logger
}

// NewGameSessionManager creates a session manager with the given
// dependencies.
func NewGameSessionManager(c *SessionManagerConfig) (*GameSessionManager, error) {
	if c.PlayerRepo == nil || c.StatsRepo == nil {
		return nil, errors.New("session manager requires player and stats repositories")
	}
	if c.Logger == nil {
		return nil, errors.New("session manager requires a logger")
	}

	return &GameSessionManager{
		sessions:    make(map[uuid.UUID]*game.AdaptiveGame),
		playerRepo:  c.PlayerRepo,
		statsRepo:   c.StatsRepo,
		leaderboard: c.Leaderboard,
		statsSink:   c.StatsSink,
		logger:      c.Logger,
	}, nil
}

// StartSession creates an adaptive session for the player, or resumes the
// existing one. The player must be registered.
func (g *GameSessionManager) StartSession(playerID uuid.UUID) (game.Stats, error) {
	if _, err := g.playerRepo.ByID(playerID); err != nil {
		return game.Stats{}, fmt.Errorf("starting session: %w", err)
	}

	g.Lock()
	defer g.Unlock()

	session, ok := g.sessions[playerID]
	if !ok {
		session = game.NewAdaptiveGame(playerID)
		g.sessions[playerID] = session
		g.logger.Printf("%s[INFO]%s new session for player %s", config.LogInfoColor, config.LogColorReset, playerID)
	}

	return session.Stats(), nil
}

// NextMaze generates the maze for the player's current level and returns it
// together with the parameters it was built from and the shape-changed flag.
func (g *GameSessionManager) NextMaze(playerID uuid.UUID) (*game.Level, game.MazeParams, bool, error) {
	g.Lock()
	defer g.Unlock()

	session, ok := g.sessions[playerID]
	if !ok {
		return nil, game.MazeParams{}, false, ErrSessionNotFound
	}

	level, err := session.GenerateMaze()
	if err != nil {
		g.logger.Printf("%s[ERROR]%s generating maze for player %s: %s", config.LogErrorColor, config.LogColorReset, playerID, err)
		return nil, game.MazeParams{}, false, err
	}

	return level, session.Params(), session.ShapeChanged(), nil
}

// ReportPerformance appends the record to the player's history, reassigns
// the skill tier, advances the level, persists the resulting snapshot and
// submits the completion time to the leaderboard.
func (g *GameSessionManager) ReportPerformance(ctx context.Context, playerID uuid.UUID, record game.PerformanceRecord) (game.Stats, error) {
	g.Lock()
	session, ok := g.sessions[playerID]
	if !ok {
		g.Unlock()
		return game.Stats{}, ErrSessionNotFound
	}

	session.UpdateDifficulty(record)
	stats := session.Stats()
	g.Unlock()

	if err := g.statsRepo.Save(ctx, stats); err != nil {
		// Stats persistence is best effort; the session itself stays valid.
		g.logger.Printf("%s[ERROR]%s saving stats for player %s: %s", config.LogErrorColor, config.LogColorReset, playerID, err)
	}

	g.submitToLeaderboard(ctx, playerID, record)

	return stats, nil
}

// submitToLeaderboard pushes the reported completion time under the player's
// username. Leaderboard updates are best effort.
func (g *GameSessionManager) submitToLeaderboard(ctx context.Context, playerID uuid.UUID, record game.PerformanceRecord) {
	if g.leaderboard == nil {
		return
	}

	player, err := g.playerRepo.ByID(playerID)
	if err != nil {
		g.logger.Printf("%s[ERROR]%s resolving player %s for leaderboard: %s", config.LogErrorColor, config.LogColorReset, playerID, err)
		return
	}

	if err := g.leaderboard.SubmitTime(ctx, player.Username, record.CompletionTime()); err != nil {
		g.logger.Printf("%s[ERROR]%s submitting leaderboard time for %s: %s", config.LogErrorColor, config.LogColorReset, player.Username, err)
	}
}

// Stats returns the player's current stats snapshot.
func (g *GameSessionManager) Stats(playerID uuid.UUID) (game.Stats, error) {
	g.RLock()
	defer g.RUnlock()

	session, ok := g.sessions[playerID]
	if !ok {
		return game.Stats{}, ErrSessionNotFound
	}
	return session.Stats(), nil
}

// SaveStats writes the player's stats snapshot to the given destination.
func (g *GameSessionManager) SaveStats(playerID uuid.UUID, path string) error {
	if g.statsSink == nil {
		return errors.New("no stats sink configured")
	}

	stats, err := g.Stats(playerID)
	if err != nil {
		return err
	}

	return g.statsSink.Write(path, stats)
}
