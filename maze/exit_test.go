package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func onBorder(g *Grid, pos CellPosition) bool {
	return pos.Row == 0 || pos.Row == g.Height-1 || pos.Col == 0 || pos.Col == g.Width-1
}

func TestPlaceExit(t *testing.T) {
	for _, algorithm := range []string{AlgorithmDFS, AlgorithmKruskal, AlgorithmWilson} {
		for _, size := range []int{3, 9, 15, 21, 31} {
			name := fmt.Sprintf("%s %dx%d", algorithm, size, size)
			t.Run(name, func(t *testing.T) {
				g, err := Generate(size, size, algorithm)
				assert.NoError(t, err)

				// Central lattice cell, snapped to odd coordinates.
				start := CellPosition{
					Row: g.Height/2 - (g.Height/2+1)%2,
					Col: g.Width/2 - (g.Width/2+1)%2,
				}
				assert.True(t, g.IsOpen(start.Row, start.Col),
					"central cell must be open after generation")

				exit, err := PlaceExit(g, start)
				assert.NoError(t, err)

				assert.True(t, onBorder(g, exit), "exit must lie on the border")
				assert.True(t, g.IsOpen(exit.Row, exit.Col), "exit must be open")
				assert.NotEqual(t, start, exit)
				assert.GreaterOrEqual(t, g.OpenNeighborCount(exit.Row, exit.Col), 1,
					"exit must connect into the maze body")

				// The exit must be reachable from the start.
				component := openComponentSize(g, start)
				assert.Equal(t, g.OpenCellCount(), component,
					"maze must stay one connected component after exit placement")
			})
		}
	}

	t.Run("forced carve adds exactly one open cell", func(t *testing.T) {
		g, err := Generate(9, 9, AlgorithmDFS)
		assert.NoError(t, err)
		before := g.OpenCellCount()

		_, err = PlaceExit(g, CellPosition{Row: 3, Col: 3})
		assert.NoError(t, err)
		assert.Equal(t, before+1, g.OpenCellCount())
	})

	t.Run("open border cells are reused as candidates", func(t *testing.T) {
		g, err := NewGrid(5, 5)
		assert.NoError(t, err)

		// A hand-built grid with one qualifying border cell.
		assert.NoError(t, g.SetCell(1, 1, Open))
		assert.NoError(t, g.SetCell(0, 1, Open))

		exit, err := PlaceExit(g, CellPosition{Row: 1, Col: 1})
		assert.NoError(t, err)
		assert.Equal(t, CellPosition{Row: 0, Col: 1}, exit)
	})

	t.Run("rejects grids too small for an exit", func(t *testing.T) {
		g := &Grid{Width: 2, Height: 2, Cells: [][]CellState{{Wall, Wall}, {Wall, Wall}}}
		_, err := PlaceExit(g, CellPosition{})
		assert.ErrorIs(t, err, ErrMazeTooSmall)
	})
}
