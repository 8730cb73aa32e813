/*
Package game implements the adaptive difficulty loop driving maze generation.

An AdaptiveGame owns one player's session state: skill tier, level counter
and performance history. After every completed maze the reported completion
time reassigns the tier, the level advances, and the next maze's size and
generation algorithm are derived from both. Higher tiers get larger mazes and
structurally less predictable algorithms, up to unbiased Wilson trees.
*/
package game

import (
	"github.com/google/uuid"
	"github.com/retro-maze/maze-api/maze"
)

// SkillTier classifies a player's recent performance.
type SkillTier string

const (
	SkillBeginner     SkillTier = "beginner"
	SkillIntermediate SkillTier = "intermediate"
	SkillAdvanced     SkillTier = "advanced"
)

const (
	// maxMazeSize caps the grid's linear dimension.
	maxMazeSize = 31

	// Completion-time thresholds (seconds) for tier reassignment.
	advancedBelow     float64 = 60
	intermediateBelow float64 = 120
)

var baseSizes = map[SkillTier]int{
	SkillBeginner:     15,
	SkillIntermediate: 21,
	SkillAdvanced:     25,
}

var tierAlgorithms = map[SkillTier]string{
	SkillBeginner:     maze.AlgorithmDFS,
	SkillIntermediate: maze.AlgorithmKruskal,
	SkillAdvanced:     maze.AlgorithmWilson,
}

// MazeParams is the generation parameter triple for one level. Width and
// Height are always equal.
type MazeParams struct {
	Width     int    `json:"width" bson:"width"`
	Height    int    `json:"height" bson:"height"`
	Algorithm string `json:"algorithm" bson:"algorithm"`
}

// Level is one generated maze with its designated start and exit cells.
type Level struct {
	Maze  *maze.Grid
	Start maze.CellPosition
	Exit  maze.CellPosition
}

// Stats is a read-only snapshot of a session's difficulty state.
type Stats struct {
	PlayerID           uuid.UUID           `json:"player_id" bson:"_id"`
	CurrentLevel       int                 `json:"current_level" bson:"currentLevel"`
	SkillTier          SkillTier           `json:"skill_tier" bson:"skillTier"`
	PerformanceHistory []PerformanceRecord `json:"performance_history" bson:"performanceHistory"`
}

// AdaptiveGame holds one player session's difficulty state. Instances are
// owned by a single session loop and are not safe for concurrent use; the
// hosting service serializes access per player.
type AdaptiveGame struct {
	playerID     uuid.UUID
	currentLevel int
	skill        SkillTier
	history      []PerformanceRecord
	params       MazeParams
	prevSize     int
	shapeChanged bool
}

// NewAdaptiveGame starts a session at level 1 on the beginner tier.
func NewAdaptiveGame(playerID uuid.UUID) *AdaptiveGame {
	g := &AdaptiveGame{
		playerID:     playerID,
		currentLevel: 1,
		skill:        SkillBeginner,
	}
	g.params = g.computeParams(SkillBeginner)
	return g
}

// computeParams derives the next maze's parameters from a tier and the
// current level: tier base size plus one lattice ring per completed level,
// clamped at maxMazeSize. It also refreshes the shape-changed flag the
// presentation layer uses to resize its viewport.
func (g *AdaptiveGame) computeParams(tier SkillTier) MazeParams {
	size := baseSizes[tier] + 2*(g.currentLevel-1)
	if size > maxMazeSize {
		size = maxMazeSize
	}

	g.shapeChanged = size != g.prevSize
	g.prevSize = size

	return MazeParams{
		Width:     size,
		Height:    size,
		Algorithm: tierAlgorithms[tier],
	}
}

// tierFor maps a completion time to a skill tier. The reassignment is direct,
// with no smoothing across history.
func tierFor(completionTime float64) SkillTier {
	switch {
	case completionTime < advancedBelow:
		return SkillAdvanced
	case completionTime < intermediateBelow:
		return SkillIntermediate
	default:
		return SkillBeginner
	}
}

// UpdateDifficulty records one completed maze: the record is appended to the
// history, the tier is reassigned from its completion time, the level
// advances and the next maze's parameters are recomputed.
func (g *AdaptiveGame) UpdateDifficulty(record PerformanceRecord) {
	g.history = append(g.history, record)
	g.skill = tierFor(record.CompletionTime())
	g.currentLevel++
	g.params = g.computeParams(g.skill)
}

// centerStart returns the cell-center coordinate closest to the grid's
// geometric center. Even coordinates are pillar or separator positions that
// generation leaves walled, so the raw center is snapped down to odd.
func centerStart(grid *maze.Grid) maze.CellPosition {
	row := grid.Height / 2
	if row%2 == 0 {
		row--
	}
	col := grid.Width / 2
	if col%2 == 0 {
		col--
	}
	return maze.CellPosition{Row: row, Col: col}
}

// GenerateMaze builds the maze for the current level: generation with the
// current parameters, the start at the central lattice cell, and a border
// exit placed last. The start sits on a cell-center, so it is already part
// of the spanning tree and the maze stays one connected region.
func (g *AdaptiveGame) GenerateMaze() (*Level, error) {
	grid, err := maze.Generate(g.params.Width, g.params.Height, g.params.Algorithm)
	if err != nil {
		return nil, err
	}

	start := centerStart(grid)
	if err := grid.SetCell(start.Row, start.Col, maze.Open); err != nil {
		return nil, err
	}

	exit, err := maze.PlaceExit(grid, start)
	if err != nil {
		return nil, err
	}

	return &Level{
		Maze:  grid,
		Start: start,
		Exit:  exit,
	}, nil
}

// Stats returns a snapshot of the session state. The history slice is copied
// so later updates do not leak into an already-taken snapshot.
func (g *AdaptiveGame) Stats() Stats {
	history := make([]PerformanceRecord, len(g.history))
	copy(history, g.history)

	return Stats{
		PlayerID:           g.playerID,
		CurrentLevel:       g.currentLevel,
		SkillTier:          g.skill,
		PerformanceHistory: history,
	}
}

// PlayerID returns the session owner's ID.
func (g *AdaptiveGame) PlayerID() uuid.UUID {
	return g.playerID
}

// CurrentLevel returns the session's level counter.
func (g *AdaptiveGame) CurrentLevel() int {
	return g.currentLevel
}

// Skill returns the current skill tier.
func (g *AdaptiveGame) Skill() SkillTier {
	return g.skill
}

// Params returns the last computed maze parameters.
func (g *AdaptiveGame) Params() MazeParams {
	return g.params
}

// ShapeChanged reports whether the last parameter recomputation changed the
// maze size.
func (g *AdaptiveGame) ShapeChanged() bool {
	return g.shapeChanged
}
