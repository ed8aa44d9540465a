package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

// BoardView is the slice of engine queries rendering needs. The renderer
// never touches board internals.
type BoardView interface {
	PawnPosition(player quoridor.Player) quoridor.Cell
	FenceOccupied(orientation quoridor.Orientation, anchor quoridor.Cell) bool
	FencesRemaining(player quoridor.Player) int
	CurrentTurn() quoridor.Player
}

// RenderBoard draws the board row by row, row 0 on top. Each row is preceded
// by a line marking horizontal fence anchors (closing the boundary above the
// row); vertical fence anchors are drawn left of their cell.
func RenderBoard(view BoardView) string {
	var sb strings.Builder

	pawnOne := view.PawnPosition(quoridor.Player1)
	pawnTwo := view.PawnPosition(quoridor.Player2)

	for y := 0; y < quoridor.BoardSize; y++ {
		for x := 0; x < quoridor.BoardSize; x++ {
			if view.FenceOccupied(quoridor.Horizontal, quoridor.Cell{X: x, Y: y}) {
				sb.WriteString(" ___")
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteByte('\n')

		for x := 0; x < quoridor.BoardSize; x++ {
			if view.FenceOccupied(quoridor.Vertical, quoridor.Cell{X: x, Y: y}) {
				sb.WriteString("| ")
			} else {
				sb.WriteString("  ")
			}

			switch (quoridor.Cell{X: x, Y: y}) {
			case pawnOne:
				sb.WriteString("1 ")
			case pawnTwo:
				sb.WriteString("2 ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "turn: %s | fences left: %d / %d\n",
		view.CurrentTurn(),
		view.FencesRemaining(quoridor.Player1),
		view.FencesRemaining(quoridor.Player2))

	return sb.String()
}
