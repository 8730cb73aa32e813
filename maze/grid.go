/*
Package maze provides tools for generating and inspecting rectangular grid
mazes.

A maze is a physical grid of WALL and OPEN cells following the odd-grid
convention: carvable logical cells sit at odd row/column positions and the
cells between them act as wall separators. Generation carves a spanning tree
over the logical lattice, so any two open cells are connected by exactly one
simple path.

The package includes three generation algorithms (randomized depth-first
backtracking, randomized Kruskal and Wilson's loop-erased random walks),
border exit placement, and an ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"strings"
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	// Wall marks a solid cell.
	Wall CellState = iota
	// Open marks a passage cell.
	Open
)

var (
	// ErrInvalidCoordinate is returned when a cell accessor is called
	// outside [0,width)×[0,height).
	ErrInvalidCoordinate = errors.New("maze: coordinate out of bounds")

	// ErrMazeTooSmall is returned for grids smaller than one logical cell.
	ErrMazeTooSmall = errors.New("maze: width and height must be at least 3")
)

// CellPosition identifies a cell in the grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// neighborOffsets are the four grid-adjacent directions.
var neighborOffsets = []CellPosition{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is a mutable 2D grid of WALL and OPEN cells. It is pure storage with
// bounds-checked accessors; the generation algorithms live alongside it.
type Grid struct {
	Width  int           // Width of the grid (number of columns)
	Height int           // Height of the grid (number of rows)
	Cells  [][]CellState // Cell states addressed [row][col]
}

// NewGrid allocates a grid of the given dimensions with every cell WALL.
func NewGrid(width, height int) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, ErrMazeTooSmall
	}

	cells := make([][]CellState, height)
	for i := range cells {
		cells[i] = make([]CellState, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// CellAt returns the state of a single cell.
func (g *Grid) CellAt(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return Wall, ErrInvalidCoordinate
	}
	return g.Cells[row][col], nil
}

// SetCell sets the state of a single cell.
func (g *Grid) SetCell(row, col int, state CellState) error {
	if !g.InBounds(row, col) {
		return ErrInvalidCoordinate
	}
	g.Cells[row][col] = state
	return nil
}

// IsOpen reports whether the cell is in-bounds and OPEN.
func (g *Grid) IsOpen(row, col int) bool {
	return g.InBounds(row, col) && g.Cells[row][col] == Open
}

// OpenNeighborCount returns how many of the four grid-adjacent neighbors of
// the cell are in-bounds and OPEN.
func (g *Grid) OpenNeighborCount(row, col int) int {
	count := 0
	for _, d := range neighborOffsets {
		if g.IsOpen(row+d.Row, col+d.Col) {
			count++
		}
	}
	return count
}

// OpenCellCount returns the total number of OPEN cells in the grid.
func (g *Grid) OpenCellCount() int {
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == Open {
				count++
			}
		}
	}
	return count
}

// String renders the grid with ASCII characters, walls as '#' and passages
// as spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
