package statfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/game"
	"github.com/stretchr/testify/assert"
)

func TestJSONSink(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewJSONSink(dir)
	assert.NoError(t, err)

	playerID := uuid.New()
	stats := game.Stats{
		PlayerID:     playerID,
		CurrentLevel: 3,
		SkillTier:    game.SkillIntermediate,
		PerformanceHistory: []game.PerformanceRecord{
			{"completion_time": 75.0, "backtracks": 2.0},
		},
	}

	assert.NoError(t, sink.Write("game_stats.json", stats))

	data, err := os.ReadFile(filepath.Join(dir, "game_stats.json"))
	assert.NoError(t, err)

	var decoded game.Stats
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, playerID, decoded.PlayerID)
	assert.Equal(t, 3, decoded.CurrentLevel)
	assert.Equal(t, game.SkillIntermediate, decoded.SkillTier)
	assert.Len(t, decoded.PerformanceHistory, 1)
	assert.Equal(t, 75.0, decoded.PerformanceHistory[0].CompletionTime())
}
