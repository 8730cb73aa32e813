package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/game"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsRepo persists game stat snapshots, one document per player.
type StatsRepo struct {
	collection *mongo.Collection
}

// NewStatsRepo creates a new StatsRepo with the given MongoDB client, database name, and collection name.
func NewStatsRepo(client *mongo.Client, dbName, collectionName string) *StatsRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &StatsRepo{
		collection: collection,
	}
}

// Save upserts a stats snapshot keyed by player ID. The whole history is
// written each time so the stored document is always a full snapshot.
func (r *StatsRepo) Save(ctx context.Context, stats game.Stats) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": stats.PlayerID}
	update := bson.M{
		"$set": bson.M{
			"currentLevel":       stats.CurrentLevel,
			"skillTier":          stats.SkillTier,
			"performanceHistory": stats.PerformanceHistory,
			"updatedAt":          time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByPlayerID retrieves the last saved snapshot for a player.
func (r *StatsRepo) ByPlayerID(ctx context.Context, id uuid.UUID) (*game.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var stats game.Stats
	if err := r.collection.FindOne(ctx, filter).Decode(&stats); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("stats not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &stats, nil
}
