package quoridor

// ApplyFence places a fence for the acting player after the ordered checks:
// terminal/turn, budget, orientation, anchor range, occupancy, fair play.
// On success the fence is committed, the budget decremented and the turn
// flipped; on any rejection the board is left exactly as before.
func (that *Game) ApplyFence(player Player, orientation Orientation, anchor Cell) error {
	if err := that.actionAllowed(player); err != nil {
		return err
	}

	if that.FencesLeft[player] == 0 {
		return ErrNoFencesRemaining
	}

	if !orientation.Valid() {
		return ErrInvalidOrientation
	}

	fence := Fence{Orientation: orientation, Anchor: anchor}
	if !fence.InBounds() {
		return ErrFenceOutOfBounds
	}

	if that.Fences.Contains(fence) {
		return ErrFenceOccupied
	}

	if !that.keepsFairPlay(player, fence) {
		return ErrBreaksFairPlay
	}

	that.Fences[fence] = struct{}{}
	that.FencesLeft[player]--
	that.Turn = player.Opponent()

	return nil
}

// keepsFairPlay provisionally places the fence and checks that the opponent
// still reaches their goal row. The provisional fence is always removed; the
// caller commits it only on success.
func (that *Game) keepsFairPlay(player Player, fence Fence) bool {
	that.Fences[fence] = struct{}{}
	defer delete(that.Fences, fence)

	opponent := player.Opponent()

	return that.reachesRow(that.Pawns[opponent], opponent.GoalRow())
}

// reachesRow - iterative breadth-first search from start toward goalRow over
// unblocked edges. The frontier grows monotonically and is bounded by the 81
// board cells, so the search terminates at a fixed point when no new cell
// can be added.
func (that *Game) reachesRow(start Cell, goalRow int) bool {
	if start.Y == goalRow {
		return true
	}

	var visited [BoardSize][BoardSize]bool
	visited[start.X][start.Y] = true

	frontier := []Cell{start}
	for len(frontier) > 0 {
		var next []Cell

		for _, cell := range frontier {
			for _, neighbor := range neighbors(cell) {
				if !neighbor.InBounds() || visited[neighbor.X][neighbor.Y] {
					continue
				}
				if that.stepBlocked(cell, neighbor) {
					continue
				}
				if neighbor.Y == goalRow {
					return true
				}

				visited[neighbor.X][neighbor.Y] = true
				next = append(next, neighbor)
			}
		}

		frontier = next
	}

	return false
}
