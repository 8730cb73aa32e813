package maze

import "math/rand"

// PlaceExit selects a border cell to act as the maze exit and marks it OPEN.
//
// Candidates are OPEN cells on the four border lines that connect into the
// maze body (at least one OPEN grid-adjacent neighbor); among those one is
// picked uniformly at random so exit positions stay unlearnable. Generation
// normally leaves the whole border walled, in which case the placer forces an
// exit by carving a random border cell inward until it meets the open
// region. PlaceExit never fails to produce an exit; it only reports an error
// for a grid too small to hold one.
func PlaceExit(g *Grid, start CellPosition) (CellPosition, error) {
	if g.Width < 3 || g.Height < 3 {
		return CellPosition{}, ErrMazeTooSmall
	}

	candidates := exitCandidates(g, start)
	if len(candidates) == 0 {
		forced := forceExit(g)
		return forced, nil
	}

	exit := candidates[rand.Intn(len(candidates))]
	g.Cells[exit.Row][exit.Col] = Open
	return exit, nil
}

// exitCandidates collects OPEN border cells with at least one OPEN neighbor,
// excluding the start cell.
func exitCandidates(g *Grid, start CellPosition) []CellPosition {
	var candidates []CellPosition

	consider := func(row, col int) {
		pos := CellPosition{Row: row, Col: col}
		if pos == start {
			return
		}
		if g.IsOpen(row, col) && g.OpenNeighborCount(row, col) >= 1 {
			candidates = append(candidates, pos)
		}
	}

	for col := 0; col < g.Width; col++ {
		consider(0, col)
		consider(g.Height-1, col)
	}
	for row := 1; row < g.Height-1; row++ {
		consider(row, 0)
		consider(row, g.Width-1)
	}

	return candidates
}

// forceExit opens a border cell aligned with the logical lattice and carves
// toward the interior until the carve meets an already OPEN cell. Aligned
// positions face a lattice cell-center one step inward, so the carve opens
// exactly one new cell and the spanning tree stays intact.
func forceExit(g *Grid) CellPosition {
	l := latticeFor(g)

	// A random side and a random lattice-aligned offset along it.
	type ray struct {
		at   CellPosition
		step CellPosition
	}
	rays := []ray{
		{at: CellPosition{Row: 0, Col: 2*rand.Intn(l.cols) + 1}, step: CellPosition{Row: 1, Col: 0}},
		{at: CellPosition{Row: g.Height - 1, Col: 2*rand.Intn(l.cols) + 1}, step: CellPosition{Row: -1, Col: 0}},
		{at: CellPosition{Row: 2*rand.Intn(l.rows) + 1, Col: 0}, step: CellPosition{Row: 0, Col: 1}},
		{at: CellPosition{Row: 2*rand.Intn(l.rows) + 1, Col: g.Width - 1}, step: CellPosition{Row: 0, Col: -1}},
	}
	r := rays[rand.Intn(len(rays))]

	exit := r.at
	for cell := r.at; g.InBounds(cell.Row, cell.Col); cell = (CellPosition{Row: cell.Row + r.step.Row, Col: cell.Col + r.step.Col}) {
		if g.IsOpen(cell.Row, cell.Col) {
			break
		}
		g.Cells[cell.Row][cell.Col] = Open
	}
	return exit
}
