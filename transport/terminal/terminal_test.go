package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeManager keeps one in-memory game on the real engine and seats players
// in creation order, so the script knows who is who.
type fakeManager struct {
	game    *entity.Game
	created int
}

func (that *fakeManager) GetOrCreatePlayer(_ context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		that.created++
		playerID = fmt.Sprintf("p%d", that.created)
	}
	return &entity.Player{ID: playerID}, nil
}

func (that *fakeManager) CreateGame(_ context.Context, playerID string) (*entity.Game, error) {
	that.game = entity.NewGame("g1")
	that.game.Players = append(that.game.Players, &entity.Player{ID: playerID, Seat: quoridor.Player1, GameID: "g1"})
	return that.game, nil
}

func (that *fakeManager) JoinGame(_ context.Context, _, playerID string) (*entity.Game, error) {
	that.game.Players = append(that.game.Players, &entity.Player{ID: playerID, Seat: quoridor.Player2, GameID: "g1"})
	that.game.RefreshStatus()
	return that.game, nil
}

func (that *fakeManager) MovePawn(_ context.Context, playerID string, destination quoridor.Cell) (*entity.Game, error) {
	seat, _ := that.game.SeatOf(playerID)
	err := that.game.Board.ApplyMove(seat, destination)
	that.game.RefreshStatus()
	return that.game, err
}

func (that *fakeManager) PlaceFence(_ context.Context, playerID string, orientation quoridor.Orientation, anchor quoridor.Cell) (*entity.Game, error) {
	seat, _ := that.game.SeatOf(playerID)
	err := that.game.Board.ApplyFence(seat, orientation, anchor)
	that.game.RefreshStatus()
	return that.game, err
}

func runSession(t *testing.T, script string) (*fakeManager, string, error) {
	t.Helper()

	manager := &fakeManager{}
	out := &strings.Builder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	term := NewWithIO(logger, manager, strings.NewReader(script), out)
	err := term.Run(context.Background())

	return manager, out.String(), err
}

func TestTerminal_Run(t *testing.T) {
	t.Run("AppliedMove_RedrawsBoard", func(t *testing.T) {
		manager, output, err := runSession(t, "move 4 1\nquit\n")

		require.NoError(t, err)
		assert.Contains(t, output, string(quoridor.OutcomeApplied))
		assert.Equal(t, quoridor.Cell{X: 4, Y: 1}, manager.game.Board.PawnPosition(quoridor.Player1))

		// the prompt follows the turn
		assert.Contains(t, output, "player 2> ")
	})

	t.Run("RulesRejection_PlayContinues", func(t *testing.T) {
		manager, output, err := runSession(t, "move 0 0\nmove 4 1\nquit\n")

		require.NoError(t, err)
		assert.Contains(t, output, string(quoridor.OutcomeIllegalMove))
		assert.Equal(t, quoridor.Cell{X: 4, Y: 1}, manager.game.Board.PawnPosition(quoridor.Player1))
	})

	t.Run("FenceCommand_ReachesEngine", func(t *testing.T) {
		manager, output, err := runSession(t, "fence h 4 4\nquit\n")

		require.NoError(t, err)
		assert.Contains(t, output, string(quoridor.OutcomeApplied))
		assert.True(t, manager.game.Board.FenceOccupied(quoridor.Horizontal, quoridor.Cell{X: 4, Y: 4}))
	})

	t.Run("UnknownInput_Reported", func(t *testing.T) {
		_, output, err := runSession(t, "dance\nquit\n")

		require.NoError(t, err)
		assert.Contains(t, output, "unknown command")
	})

	t.Run("Victory_EndsSession", func(t *testing.T) {
		// Given: player 1 marches straight down while player 2 steps aside
		// and shuffles in column 3, leaving the goal cell free
		var script strings.Builder
		script.WriteString("move 4 1\nmove 3 8\n")
		for y := 2; y <= 7; y++ {
			fmt.Fprintf(&script, "move 4 %d\n", y)
			if y%2 == 0 {
				script.WriteString("move 3 7\n")
			} else {
				script.WriteString("move 3 8\n")
			}
		}
		script.WriteString("move 4 8\n")

		manager, output, err := runSession(t, script.String())

		require.NoError(t, err)
		assert.Contains(t, output, "player 1 wins")
		assert.True(t, manager.game.IsFinished())
		assert.Equal(t, int(quoridor.Player1), manager.game.Winner)
	})

	t.Run("EndOfInput_Terminates", func(t *testing.T) {
		_, _, err := runSession(t, "")
		require.NoError(t, err)
	})
}
