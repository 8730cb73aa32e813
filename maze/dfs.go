package maze

import "math/rand"

// generateDFS carves a spanning tree with randomized depth-first
// backtracking. It walks to random unvisited logical neighbors, opening the
// separator on each step, and backtracks through an explicit stack when a
// cell has no unvisited neighbor left.
func generateDFS(g *Grid) {
	l := latticeFor(g)

	visited := make(map[CellPosition]struct{}, l.rows*l.cols)
	start := CellPosition{Row: rand.Intn(l.rows), Col: rand.Intn(l.cols)}
	visited[start] = struct{}{}

	startPhys := l.physical(start)
	g.Cells[startPhys.Row][startPhys.Col] = Open

	stack := []CellPosition{start}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]

		var unvisited []CellPosition
		for _, nbr := range l.neighbors(cell) {
			if _, seen := visited[nbr]; !seen {
				unvisited = append(unvisited, nbr)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rand.Intn(len(unvisited))]
		carve(g, cell, next)
		visited[next] = struct{}{}
		stack = append(stack, next)
	}
}
