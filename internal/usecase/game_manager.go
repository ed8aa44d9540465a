package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/quoridor-backend/internal/apperror"
	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/pkg"
	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type matchArchive interface {
	Save(ctx context.Context, game *entity.Game) error
}

// GameManager owns game sessions: seating, persistence and the hand-off of
// every action to the rules engine. One goroutine drives one game; sessions
// are independent and share nothing.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	archive    matchArchive
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, archive matchArchive) *GameManager {
	return &GameManager{
		logger:     logger,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		archive:    archive,
	}
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player := &entity.Player{ID: pkg.GeneratePlayerID()}
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// CreateGame starts a fresh session with the creator seated at a random seat.
func (that *GameManager) CreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game := entity.NewGame(pkg.GenerateGameID())

	player.Seat = entity.RandomSeat()
	player.GameID = game.ID
	game.Players = append(game.Players, player)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	that.logger.Info("game created", "game", game.ID, "player", player.ID, "seat", player.Seat)

	return game, nil
}

// JoinGame seats a second player; joining a game twice is a no-op.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if game.HasPlayer(player.ID) {
		return game, nil
	}

	seat, ok := game.FreeSeat()
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameFull, gameID)
	}

	player.Seat = seat
	player.GameID = game.ID
	game.Players = append(game.Players, player)
	game.RefreshStatus()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	that.logger.Info("player joined", "game", game.ID, "player", player.ID, "seat", player.Seat)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MovePawn relocates the acting player's pawn. Rules rejections come back
// wrapped around the engine's closed outcome set and never touch storage.
func (that *GameManager) MovePawn(ctx context.Context, playerID string, destination quoridor.Cell) (*entity.Game, error) {
	game, seat, err := that.gameFor(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	if err = game.Board.ApplyMove(seat, destination); err != nil {
		return game, fmt.Errorf("failed to move pawn: %w", err)
	}

	return game, that.commit(ctx, game)
}

// PlaceFence places a fence for the acting player, same contract as MovePawn.
func (that *GameManager) PlaceFence(ctx context.Context, playerID string, orientation quoridor.Orientation, anchor quoridor.Cell) (*entity.Game, error) {
	game, seat, err := that.gameFor(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	if err = game.Board.ApplyFence(seat, orientation, anchor); err != nil {
		return game, fmt.Errorf("failed to place fence: %w", err)
	}

	return game, that.commit(ctx, game)
}

func (that *GameManager) gameFor(ctx context.Context, playerID string) (*entity.Game, quoridor.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, 0, apperror.ErrNotInGame
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get game by id: %w", err)
	}

	seat, ok := game.SeatOf(player.ID)
	if !ok {
		return nil, 0, apperror.ErrNotInGame
	}

	return game, seat, nil
}

// commit saves an applied action; a finished match is archived and its live
// session dropped.
func (that *GameManager) commit(ctx context.Context, game *entity.Game) error {
	game.RefreshStatus()

	if !game.IsFinished() {
		if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
		return nil
	}

	if err := that.archive.Save(ctx, game); err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to delete finished game: %w", err)
	}

	that.logger.Info("match finished", "game", game.ID, "winner", game.Winner)

	return nil
}
