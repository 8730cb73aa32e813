package maze

import (
	"math/rand"

	"github.com/spakin/disjoint"
)

// latticeEdge joins two logically adjacent cells.
type latticeEdge struct {
	from CellPosition
	to   CellPosition
}

// generateKruskal carves a spanning tree with randomized Kruskal: every pair
// of adjacent logical cells is a candidate edge, the edge list is shuffled,
// and an edge is carved whenever its endpoints belong to different
// connectivity sets. Produces more uniform branching than the backtracker.
func generateKruskal(g *Grid) {
	l := latticeFor(g)

	sets := make(map[CellPosition]*disjoint.Element, l.rows*l.cols)
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			cell := CellPosition{Row: row, Col: col}
			sets[cell] = disjoint.NewElement()

			phys := l.physical(cell)
			g.Cells[phys.Row][phys.Col] = Open
		}
	}

	// Symmetry: south and east edges cover every adjacent pair once.
	var edges []latticeEdge
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			if col < l.cols-1 {
				edges = append(edges, latticeEdge{
					from: CellPosition{Row: row, Col: col},
					to:   CellPosition{Row: row, Col: col + 1},
				})
			}
			if row < l.rows-1 {
				edges = append(edges, latticeEdge{
					from: CellPosition{Row: row, Col: col},
					to:   CellPosition{Row: row + 1, Col: col},
				})
			}
		}
	}

	rand.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	for _, e := range edges {
		if sets[e.from].Find() == sets[e.to].Find() {
			continue
		}
		disjoint.Union(sets[e.from], sets[e.to])
		carve(g, e.from, e.to)
	}
}
