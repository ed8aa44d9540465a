package quoridor

// ApplyMove relocates the acting player's pawn to destination after
// validating turn ownership and move legality. On success the pawn moves and
// the turn flips; on any rejection the board is left exactly as before.
func (that *Game) ApplyMove(player Player, destination Cell) error {
	if err := that.actionAllowed(player); err != nil {
		return err
	}

	if !that.isLegalMove(player, destination) {
		return ErrIllegalMove
	}

	that.Pawns[player] = destination
	that.Turn = player.Opponent()

	return nil
}

// actionAllowed - the shared terminal and turn checks of every action.
func (that *Game) actionAllowed(player Player) error {
	if that.over() {
		return ErrGameAlreadyOver
	}

	if player != that.Turn {
		return ErrNotYourTurn
	}

	return nil
}

// isLegalMove classifies a pawn relocation as an ordinary step, a straight
// jump or a diagonal jump. Jump logic is consulted only when the pawns are
// adjacent and the destination is not itself adjacent to the acting pawn;
// stepping onto the opponent's cell is never legal.
func (that *Game) isLegalMove(player Player, destination Cell) bool {
	if !destination.InBounds() {
		return false
	}

	pawn := that.Pawns[player]
	opponent := that.Pawns[player.Opponent()]

	if adjacent(pawn, opponent) && !adjacent(pawn, destination) {
		return that.isLegalJump(pawn, opponent, destination)
	}

	if !adjacent(pawn, destination) {
		return false
	}

	return !that.stepBlocked(pawn, destination)
}

// isLegalJump validates a jump over the adjacent opponent pawn, landing
// either straight behind it or on one of the two flanking diagonals.
func (that *Game) isLegalJump(pawn, opponent, destination Cell) bool {
	if that.fenceBlocked(pawn, opponent) {
		return false
	}

	// the cell continuing the pawn->opponent line one step further
	behind := Cell{X: opponent.X*2 - pawn.X, Y: opponent.Y*2 - pawn.Y}

	if destination == behind {
		return !that.fenceBlocked(opponent, behind)
	}

	return that.isLegalDiagonal(pawn, opponent, behind, destination)
}

// isLegalDiagonal - a diagonal jump is activated only when the straight line
// past the opponent is sealed by a fence; the landing cell must flank the
// opponent and its own edge must be open. A board edge behind the opponent
// does not activate diagonal jumps.
func (that *Game) isLegalDiagonal(pawn, opponent, behind, destination Cell) bool {
	if destination == pawn || !adjacent(opponent, destination) {
		return false
	}

	if !that.fenceBlocked(opponent, behind) {
		return false
	}

	return !that.fenceBlocked(opponent, destination)
}
