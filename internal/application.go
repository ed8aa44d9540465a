package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/quoridor-backend/internal/config"
	"github.com/rocketscienceinc/quoridor-backend/internal/repository"
	"github.com/rocketscienceinc/quoridor-backend/internal/repository/storage"
	"github.com/rocketscienceinc/quoridor-backend/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/quoridor-backend/internal/usecase"
	"github.com/rocketscienceinc/quoridor-backend/transport/terminal"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - wires storage, repositories and the game manager, then hosts a
// local match on the terminal until it ends or a shutdown signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	redisAddr := conf.Redis.GetRedisAddr()
	if redisAddr == "" {
		return ErrAddrNotFound
	}

	redisClient, err := storage.New(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	archiveStorage, err := sqlite.New(conf.ArchiveStoragePath)
	if err != nil {
		return fmt.Errorf("could not open match archive: %w", err)
	}

	defer func() {
		if err = archiveStorage.Connection.Close(); err != nil {
			log.Error("could not close match archive", "error", err)
		}
	}()

	if err = archiveStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init match archive: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisClient)
	gameRepo := repository.NewGameRepository(redisClient)
	archive := repository.NewMatchArchive(archiveStorage.Connection)
	manager := usecase.NewGameManager(logger, playerRepo, gameRepo, archive)

	session := terminal.New(logger, manager)

	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal session")
		sessionErrCh <- session.Run(ctx)
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("terminal session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
