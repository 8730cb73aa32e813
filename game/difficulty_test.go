package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/maze"
	"github.com/stretchr/testify/assert"
)

func TestTierAssignment(t *testing.T) {
	cases := []struct {
		name   string
		record PerformanceRecord
		want   SkillTier
	}{
		{"fast completion", PerformanceRecord{"completion_time": 45.0}, SkillAdvanced},
		{"boundary of advanced", PerformanceRecord{"completion_time": 60.0}, SkillIntermediate},
		{"middling completion", PerformanceRecord{"completion_time": 90.0}, SkillIntermediate},
		{"slow completion", PerformanceRecord{"completion_time": 150.0}, SkillBeginner},
		{"missing completion time", PerformanceRecord{"total_moves": 240}, SkillBeginner},
		{"non-numeric completion time", PerformanceRecord{"completion_time": "fast"}, SkillBeginner},
		{"integer completion time", PerformanceRecord{"completion_time": 45}, SkillAdvanced},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewAdaptiveGame(uuid.New())
			g.UpdateDifficulty(tc.record)
			assert.Equal(t, tc.want, g.Skill())
		})
	}
}

func TestUpdateDifficulty(t *testing.T) {
	t.Run("beginner level one parameters", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		assert.Equal(t, 1, g.CurrentLevel())
		assert.Equal(t, SkillBeginner, g.Skill())
		assert.Equal(t, MazeParams{Width: 15, Height: 15, Algorithm: maze.AlgorithmDFS}, g.Params())
		assert.True(t, g.ShapeChanged())
	})

	t.Run("fast completion promotes to advanced wilson", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 40.0})

		assert.Equal(t, SkillAdvanced, g.Skill())
		assert.Equal(t, 2, g.CurrentLevel())
		// Advanced base 25 plus one ring for the completed level.
		assert.Equal(t, MazeParams{Width: 27, Height: 27, Algorithm: maze.AlgorithmWilson}, g.Params())
	})

	t.Run("history is append-only and unvalidated", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 70.0, "backtracks": 4})
		g.UpdateDifficulty(PerformanceRecord{"wrong_turns": 9})

		stats := g.Stats()
		assert.Len(t, stats.PerformanceHistory, 2)
		assert.Equal(t, 4, stats.PerformanceHistory[0]["backtracks"])
		assert.Equal(t, 9, stats.PerformanceHistory[1]["wrong_turns"])
	})

	t.Run("size grows per level and clamps at 31", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())

		prev := 0
		for i := 0; i < 12; i++ {
			g.UpdateDifficulty(PerformanceRecord{"completion_time": 150.0})

			params := g.Params()
			assert.Equal(t, params.Width, params.Height, "maze must stay square")
			assert.GreaterOrEqual(t, params.Width, prev, "size must not shrink for a fixed tier")
			assert.LessOrEqual(t, params.Width, 31)
			prev = params.Width
		}
		assert.Equal(t, 31, g.Params().Width)
	})

	t.Run("shape changed flag follows size transitions", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())

		// 15 -> 17: grew by a ring.
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 150.0})
		assert.True(t, g.ShapeChanged())

		// Promotion to intermediate at level 3: 21+4 = 25, changed again.
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 90.0})
		assert.True(t, g.ShapeChanged())
	})
}

func TestGenerateMaze(t *testing.T) {
	t.Run("produces an open start and a border exit", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		level, err := g.GenerateMaze()
		assert.NoError(t, err)

		assert.Equal(t, 15, level.Maze.Width)
		assert.True(t, level.Maze.IsOpen(level.Start.Row, level.Start.Col))
		assert.True(t, level.Maze.IsOpen(level.Exit.Row, level.Exit.Col))
		assert.NotEqual(t, level.Start, level.Exit)

		border := level.Exit.Row == 0 || level.Exit.Row == level.Maze.Height-1 ||
			level.Exit.Col == 0 || level.Exit.Col == level.Maze.Width-1
		assert.True(t, border, "exit must lie on the border")
	})

	t.Run("start connects to every open cell across level sizes", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())

		// Walk the intermediate ladder; it passes through sizes like 25
		// whose raw geometric center is a pillar coordinate.
		for i := 0; i < 6; i++ {
			g.UpdateDifficulty(PerformanceRecord{"completion_time": 90.0})
			level, err := g.GenerateMaze()
			assert.NoError(t, err)

			assert.Equal(t, 1, level.Start.Row%2, "start row must be a cell-center coordinate")
			assert.Equal(t, 1, level.Start.Col%2, "start col must be a cell-center coordinate")
			assert.Equal(t, level.Maze.OpenCellCount(), reachableFrom(level.Maze, level.Start),
				"every open cell must be reachable from the start")
		}
	})

	t.Run("start connects on a size-21 maze", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		for i := 0; i < 3; i++ {
			g.UpdateDifficulty(PerformanceRecord{"completion_time": 150.0})
		}
		assert.Equal(t, MazeParams{Width: 21, Height: 21, Algorithm: maze.AlgorithmDFS}, g.Params())

		level, err := g.GenerateMaze()
		assert.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 9, Col: 9}, level.Start)
		assert.Equal(t, level.Maze.OpenCellCount(), reachableFrom(level.Maze, level.Start),
			"every open cell must be reachable from the start")
	})

	t.Run("regeneration replaces the prior maze", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		first, err := g.GenerateMaze()
		assert.NoError(t, err)
		second, err := g.GenerateMaze()
		assert.NoError(t, err)
		assert.NotSame(t, first.Maze, second.Maze)
	})
}

func TestStats(t *testing.T) {
	t.Run("snapshots are idempotent between updates", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 50.0})

		first := g.Stats()
		second := g.Stats()
		assert.Equal(t, first, second)
	})

	t.Run("snapshot history does not observe later updates", func(t *testing.T) {
		g := NewAdaptiveGame(uuid.New())
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 50.0})

		snapshot := g.Stats()
		g.UpdateDifficulty(PerformanceRecord{"completion_time": 150.0})

		assert.Len(t, snapshot.PerformanceHistory, 1)
		assert.Equal(t, SkillAdvanced, snapshot.SkillTier)
	})
}

// reachableFrom counts the open cells reachable from start by grid-adjacent
// moves.
func reachableFrom(g *maze.Grid, start maze.CellPosition) int {
	visited := map[maze.CellPosition]bool{start: true}
	queue := []maze.CellPosition{start}
	count := 0

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		count++

		for _, d := range []maze.CellPosition{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			nbr := maze.CellPosition{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
			if !visited[nbr] && g.IsOpen(nbr.Row, nbr.Col) {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return count
}
