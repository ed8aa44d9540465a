package terminal

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	t.Run("FreshGame", func(t *testing.T) {
		game := quoridor.NewGame()

		output := RenderBoard(game)
		lines := strings.Split(output, "\n")

		// two lines per row plus the footer and a trailing newline
		require.Len(t, lines, 2*quoridor.BoardSize+2)

		// Then: both pawns sit on their starting cells, everything else is empty
		assert.Equal(t, "  .   .   .   .   1   .   .   .   . ", lines[1])
		assert.Equal(t, "  .   .   .   .   2   .   .   .   . ", lines[17])
		assert.Equal(t, strings.Repeat("    ", quoridor.BoardSize), lines[0])
		assert.Equal(t, "turn: player 1 | fences left: 10 / 10", lines[18])
	})

	t.Run("FencesAndProgress", func(t *testing.T) {
		game := quoridor.NewGame()
		require.NoError(t, game.ApplyMove(quoridor.Player1, quoridor.Cell{X: 4, Y: 1}))
		require.NoError(t, game.ApplyFence(quoridor.Player2, quoridor.Horizontal, quoridor.Cell{X: 1, Y: 1}))
		require.NoError(t, game.ApplyFence(quoridor.Player1, quoridor.Vertical, quoridor.Cell{X: 4, Y: 4}))

		output := RenderBoard(game)
		lines := strings.Split(output, "\n")

		// Then: the horizontal anchor closes the boundary above row 1
		assert.Equal(t, "     ___"+strings.Repeat("    ", 7), lines[2])

		// And: player 1's pawn moved off the back row
		assert.Equal(t, "  .   .   .   .   .   .   .   .   . ", lines[1])
		assert.Equal(t, "  .   .   .   .   1   .   .   .   . ", lines[3])

		// And: the vertical anchor is drawn left of its cell
		assert.Equal(t, "  .   .   .   . | .   .   .   .   . ", lines[9])

		assert.Equal(t, "turn: player 2 | fences left: 9 / 9", lines[18])
	})
}
