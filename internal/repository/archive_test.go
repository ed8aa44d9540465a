package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/repository/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(t *testing.T) (context.Context, MatchArchive) {
	t.Helper()

	ctx := context.Background()

	storage, err := sqlite.New(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Connection.Close() })

	require.NoError(t, storage.Init(ctx))

	return ctx, NewMatchArchive(storage.Connection)
}

func TestMatchArchive_Save(t *testing.T) {
	ctx, archive := newTestArchive(t)

	// Given: a finished game
	game := entity.NewGame("abcd")
	game.Status = entity.StatusFinished
	game.Winner = 1

	// When: Save is called
	// Then: no error should be returned
	require.NoError(t, archive.Save(ctx, game))

	// And: saving the same match again overwrites instead of failing
	require.NoError(t, archive.Save(ctx, game))

	records, err := archive.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "abcd", records[0].GameID)
	assert.Equal(t, 1, records[0].Winner)
}

func TestMatchArchive_Recent(t *testing.T) {
	ctx, archive := newTestArchive(t)

	// Given: three archived matches
	for _, id := range []string{"g1", "g2", "g3"} {
		game := entity.NewGame(id)
		game.Status = entity.StatusFinished
		game.Winner = 2
		require.NoError(t, archive.Save(ctx, game))
	}

	// When: Recent is called with a smaller limit
	records, err := archive.Recent(ctx, 2)

	// Then: only that many records come back
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// And: an empty archive yields no records
	ctx2, empty := newTestArchive(t)
	records, err = empty.Recent(ctx2, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
