package maze

import "math/rand"

// generateWilson carves a spanning tree with Wilson's algorithm: starting
// from a single-cell tree, it repeatedly random-walks from an unvisited cell
// until the walk reaches the tree, erasing any loop the walk closes, then
// carves the loop-erased path into the tree. The resulting spanning tree is
// uniformly random, unlike the dfs and kruskal variants.
func generateWilson(g *Grid) {
	l := latticeFor(g)

	visited := make(map[CellPosition]struct{}, l.rows*l.cols)
	root := CellPosition{Row: rand.Intn(l.rows), Col: rand.Intn(l.cols)}
	visited[root] = struct{}{}

	rootPhys := l.physical(root)
	g.Cells[rootPhys.Row][rootPhys.Col] = Open

	for len(visited) < l.rows*l.cols {
		path := loopErasedWalk(l, visited)
		for i := 0; i < len(path)-1; i++ {
			carve(g, path[i], path[i+1])
			visited[path[i]] = struct{}{}
		}
	}
}

// loopErasedWalk random-walks from a random unvisited cell until it hits the
// visited set, truncating the walk back whenever it revisits one of its own
// cells. walkIndex maps each cell on the walk to its position in the path so
// a revisit erases the loop in place instead of re-walking.
func loopErasedWalk(l lattice, visited map[CellPosition]struct{}) []CellPosition {
	start := randomUnvisited(l, visited)
	path := []CellPosition{start}
	walkIndex := map[CellPosition]int{start: 0}

	cell := start
	for {
		if _, done := visited[cell]; done {
			return path
		}

		nbrs := l.neighbors(cell)
		next := nbrs[rand.Intn(len(nbrs))]

		if at, looped := walkIndex[next]; looped {
			for _, erased := range path[at+1:] {
				delete(walkIndex, erased)
			}
			path = path[:at+1]
		} else {
			walkIndex[next] = len(path)
			path = append(path, next)
		}
		cell = next
	}
}

// randomUnvisited picks a random logical cell outside the visited set.
func randomUnvisited(l lattice, visited map[CellPosition]struct{}) CellPosition {
	for {
		cell := CellPosition{Row: rand.Intn(l.rows), Col: rand.Intn(l.cols)}
		if _, seen := visited[cell]; !seen {
			return cell
		}
	}
}
