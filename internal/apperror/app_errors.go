package apperror

import "errors"

var (
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameFull         = errors.New("game already has two players")
	ErrNotInGame        = errors.New("player is not in a game")
)
