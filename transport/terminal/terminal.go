// Package terminal hosts a local two-seat Quoridor match: both players share
// one terminal and the seat on turn is prompted for the next action. It is a
// rendering/input collaborator of the engine and consumes only its query and
// action operations through the game manager.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

type gameManager interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	CreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	MovePawn(ctx context.Context, playerID string, destination quoridor.Cell) (*entity.Game, error)
	PlaceFence(ctx context.Context, playerID string, orientation quoridor.Orientation, anchor quoridor.Cell) (*entity.Game, error)
}

type Terminal struct {
	logger  *slog.Logger
	manager gameManager

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, manager gameManager) *Terminal {
	return NewWithIO(logger, manager, os.Stdin, os.Stdout)
}

func NewWithIO(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:  logger,
		manager: manager,
		in:      in,
		out:     out,
	}
}

// Run seats two players into a fresh game and drives it to the end, to a
// quit command or to the end of input.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("component", "terminal")

	game, seats, err := that.setupGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}

	log.Info("game ready", "game", game.ID)

	fmt.Fprintln(that.out, usage)
	fmt.Fprint(that.out, RenderBoard(game.Board))
	that.prompt(game)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Text()
		if line == "" {
			that.prompt(game)
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintln(that.out, err)
			that.prompt(game)
			continue
		}

		switch cmd.kind {
		case cmdQuit:
			log.Info("game abandoned", "game", game.ID)
			return nil

		case cmdHelp:
			fmt.Fprintln(that.out, usage)

		case cmdBoard:
			fmt.Fprint(that.out, RenderBoard(game.Board))

		case cmdMove, cmdFence:
			game, err = that.act(ctx, game, seats, cmd)
			if err != nil {
				return err
			}

			if game.IsFinished() {
				fmt.Fprint(that.out, RenderBoard(game.Board))
				fmt.Fprintf(that.out, "player %d wins\n", game.Winner)
				return nil
			}
		}

		that.prompt(game)
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// act forwards a move or fence command for the seat on turn and prints the
// engine's outcome. Infrastructure failures abort the session; rules
// rejections are reported and play continues.
func (that *Terminal) act(ctx context.Context, game *entity.Game, seats map[quoridor.Player]string, cmd command) (*entity.Game, error) {
	actingID := seats[game.Board.CurrentTurn()]

	var updated *entity.Game
	var err error

	switch cmd.kind {
	case cmdMove:
		updated, err = that.manager.MovePawn(ctx, actingID, cmd.cell)
	case cmdFence:
		updated, err = that.manager.PlaceFence(ctx, actingID, cmd.orientation, cmd.cell)
	default:
		return game, nil
	}

	outcome, ok := quoridor.OutcomeOf(err)
	if !ok {
		return game, fmt.Errorf("action failed: %w", err)
	}

	fmt.Fprintln(that.out, outcome)

	if updated != nil {
		game = updated
	}

	if outcome == quoridor.OutcomeApplied {
		fmt.Fprint(that.out, RenderBoard(game.Board))
	}

	return game, nil
}

func (that *Terminal) setupGame(ctx context.Context) (*entity.Game, map[quoridor.Player]string, error) {
	playerOne, err := that.manager.GetOrCreatePlayer(ctx, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create first player: %w", err)
	}

	playerTwo, err := that.manager.GetOrCreatePlayer(ctx, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create second player: %w", err)
	}

	game, err := that.manager.CreateGame(ctx, playerOne.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game: %w", err)
	}

	game, err = that.manager.JoinGame(ctx, game.ID, playerTwo.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to join game: %w", err)
	}

	seats := make(map[quoridor.Player]string, 2)
	for _, player := range game.Players {
		seats[player.Seat] = player.ID
	}

	return game, seats, nil
}

func (that *Terminal) prompt(game *entity.Game) {
	fmt.Fprintf(that.out, "%s> ", game.Board.CurrentTurn())
}
