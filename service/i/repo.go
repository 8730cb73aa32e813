package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/retro-maze/maze-api/domain"
	"github.com/retro-maze/maze-api/game"
)

// PlayerRepo defines the interface for player persistence operations.
type PlayerRepo interface {
	// Save inserts or updates a player in the repository.
	// If the player already exists, it updates the record. Otherwise, it creates a new one.
	Save(player *dmn.Player) error

	// ByID retrieves a player by their unique ID.
	// Returns an error if the player is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Player, error)

	// ByUsername retrieves a player by their username.
	// Returns an error if the player is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.Player, error)
}

// StatsRepo defines the interface for persisting game stat snapshots.
type StatsRepo interface {
	// Save upserts a stats snapshot keyed by player ID.
	Save(ctx context.Context, stats game.Stats) error

	// ByPlayerID retrieves the last saved snapshot for a player.
	ByPlayerID(ctx context.Context, id uuid.UUID) (*game.Stats, error)
}
