package maze

// Supported generation algorithms.
const (
	AlgorithmDFS     = "dfs"
	AlgorithmKruskal = "kruskal"
	AlgorithmWilson  = "wilson"
)

// lattice describes the logical cell lattice inside a physical grid. Logical
// cell (row,col) sits at physical position (2*row+1, 2*col+1); the cells
// between logical neighbors act as separators.
type lattice struct {
	rows int
	cols int
}

func latticeFor(g *Grid) lattice {
	return lattice{
		rows: (g.Height - 1) / 2,
		cols: (g.Width - 1) / 2,
	}
}

// physical maps a logical cell to its physical grid position.
func (l lattice) physical(cell CellPosition) CellPosition {
	return CellPosition{Row: 2*cell.Row + 1, Col: 2*cell.Col + 1}
}

// inBounds reports whether the logical cell lies inside the lattice.
func (l lattice) inBounds(cell CellPosition) bool {
	return cell.Row >= 0 && cell.Row < l.rows && cell.Col >= 0 && cell.Col < l.cols
}

// neighbors returns the in-lattice logical neighbors of a cell.
func (l lattice) neighbors(cell CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range neighborOffsets {
		nbr := CellPosition{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
		if l.inBounds(nbr) {
			result = append(result, nbr)
		}
	}
	return result
}

// carve opens the two logical cells and the separator between them.
func carve(g *Grid, from, to CellPosition) {
	l := latticeFor(g)
	fromPhys := l.physical(from)
	toPhys := l.physical(to)
	g.Cells[fromPhys.Row][fromPhys.Col] = Open
	g.Cells[toPhys.Row][toPhys.Col] = Open

	sepRow := fromPhys.Row + (to.Row - from.Row)
	sepCol := fromPhys.Col + (to.Col - from.Col)
	g.Cells[sepRow][sepCol] = Open
}

// Generate builds a maze of the given physical dimensions with the selected
// algorithm. Dimensions below 3 are rejected; even dimensions are normalized
// up to the next odd value so every grid holds a whole lattice. An
// unrecognized algorithm name falls back to "dfs".
func Generate(width, height int, algorithm string) (*Grid, error) {
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}

	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	switch algorithm {
	case AlgorithmKruskal:
		generateKruskal(g)
	case AlgorithmWilson:
		generateWilson(g)
	default:
		generateDFS(g)
	}

	return g, nil
}
