// Package gameapi exposes the adaptive maze session endpoints.
package gameapi

import (
	"github.com/retro-maze/maze-api/game"
	"github.com/retro-maze/maze-api/maze"
)

// PositionResponse is a cell coordinate in the maze grid.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse carries one generated level. Grid cells use 1 for wall and 0
// for passage, matching what renderers and bots consume.
type MazeResponse struct {
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Grid         [][]int          `json:"grid"`
	Start        PositionResponse `json:"start"`
	Exit         PositionResponse `json:"exit"`
	Algorithm    string           `json:"algorithm"`
	ShapeChanged bool             `json:"shape_changed"`
}

// StatsResponse is a read-only snapshot of a session.
type StatsResponse struct {
	PlayerID           string                   `json:"player_id"`
	CurrentLevel       int                      `json:"current_level"`
	SkillTier          string                   `json:"skill_tier"`
	PerformanceHistory []game.PerformanceRecord `json:"performance_history"`
}

// SaveStatsRequest names the file a stats snapshot should be written to.
type SaveStatsRequest struct {
	Filename string `json:"filename" binding:"required"`
}

func newMazeResponse(level *game.Level, params game.MazeParams, shapeChanged bool) *MazeResponse {
	grid := make([][]int, level.Maze.Height)
	for row := range grid {
		grid[row] = make([]int, level.Maze.Width)
		for col := range grid[row] {
			if level.Maze.Cells[row][col] == maze.Wall {
				grid[row][col] = 1
			}
		}
	}

	return &MazeResponse{
		Width:        level.Maze.Width,
		Height:       level.Maze.Height,
		Grid:         grid,
		Start:        PositionResponse{Row: level.Start.Row, Col: level.Start.Col},
		Exit:         PositionResponse{Row: level.Exit.Row, Col: level.Exit.Col},
		Algorithm:    params.Algorithm,
		ShapeChanged: shapeChanged,
	}
}

func newStatsResponse(stats game.Stats) *StatsResponse {
	return &StatsResponse{
		PlayerID:           stats.PlayerID.String(),
		CurrentLevel:       stats.CurrentLevel,
		SkillTier:          string(stats.SkillTier),
		PerformanceHistory: stats.PerformanceHistory,
	}
}
