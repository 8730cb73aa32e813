package i

import (
	"context"

	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/game"
)

// GameSessionManager owns the adaptive maze sessions of all active players.
type GameSessionManager interface {
	// StartSession creates an adaptive session for the player, or resumes the
	// existing one.
	StartSession(playerID uuid.UUID) (game.Stats, error)

	// NextMaze generates the maze for the player's current level.
	NextMaze(playerID uuid.UUID) (*game.Level, game.MazeParams, bool, error)

	// ReportPerformance records a completed maze, advances the difficulty
	// loop and persists the resulting snapshot.
	ReportPerformance(ctx context.Context, playerID uuid.UUID, record game.PerformanceRecord) (game.Stats, error)

	// Stats returns the player's current stats snapshot.
	Stats(playerID uuid.UUID) (game.Stats, error)

	// SaveStats writes the player's stats snapshot to the given destination.
	SaveStats(playerID uuid.UUID, path string) error
}

// StatsSink writes a stats snapshot to a caller-specified destination.
type StatsSink interface {
	Write(path string, stats game.Stats) error
}
