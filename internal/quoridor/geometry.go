package quoridor

// adjacent reports whether two cells differ by exactly one unit along exactly
// one axis. There is no diagonal adjacency.
func adjacent(a, b Cell) bool {
	return abs(a.X-b.X)+abs(a.Y-b.Y) == 1
}

// fenceBlocked reports whether a fence segment lies across the edge between
// two adjacent cells. Pawn occupancy is ignored here: jump validation tests
// edges whose midpoint is occupied by the opponent by definition.
func (that *Game) fenceBlocked(from, to Cell) bool {
	if from.X == to.X {
		// vertical step, crossing the row boundary at max(from.Y, to.Y)
		y := max(from.Y, to.Y)
		return that.Fences.Contains(Fence{Orientation: Horizontal, Anchor: Cell{X: from.X, Y: y}}) ||
			that.Fences.Contains(Fence{Orientation: Horizontal, Anchor: Cell{X: from.X + 1, Y: y}})
	}

	// horizontal step, crossing the column boundary at max(from.X, to.X)
	x := max(from.X, to.X)
	return that.Fences.Contains(Fence{Orientation: Vertical, Anchor: Cell{X: x, Y: from.Y}}) ||
		that.Fences.Contains(Fence{Orientation: Vertical, Anchor: Cell{X: x, Y: from.Y + 1}})
}

// stepBlocked is the single source of truth for "can a pawn cross this edge":
// the edge is closed by a fence or the destination holds the opponent pawn.
// Both ordinary-move validation and the fair play reachability search use it.
func (that *Game) stepBlocked(from, to Cell) bool {
	if to == that.Pawns[that.Turn.Opponent()] {
		return true
	}
	return that.fenceBlocked(from, to)
}

// neighbors returns the four orthogonally adjacent cells, bounds not checked.
func neighbors(cell Cell) [4]Cell {
	return [4]Cell{
		{X: cell.X, Y: cell.Y + 1},
		{X: cell.X, Y: cell.Y - 1},
		{X: cell.X + 1, Y: cell.Y},
		{X: cell.X - 1, Y: cell.Y},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
