package entity

import (
	"math/rand"

	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is a playable session: the engine board plus the players seated at it.
type Game struct {
	ID      string         `json:"id"`
	Board   *quoridor.Game `json:"board"`
	Players []*Player      `json:"players,omitempty"`
	Status  string         `json:"status"`
	Winner  int            `json:"winner,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  quoridor.NewGame(),
		Status: StatusWaiting,
	}
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// SeatOf - the seat a player occupies in this game.
func (that *Game) SeatOf(playerID string) (quoridor.Player, bool) {
	for _, player := range that.Players {
		if player.ID == playerID {
			return player.Seat, true
		}
	}
	return 0, false
}

func (that *Game) HasPlayer(playerID string) bool {
	_, ok := that.SeatOf(playerID)
	return ok
}

// FreeSeat returns the unoccupied seat, if any.
func (that *Game) FreeSeat() (quoridor.Player, bool) {
	taken := map[quoridor.Player]bool{}
	for _, player := range that.Players {
		taken[player.Seat] = true
	}

	for _, seat := range []quoridor.Player{quoridor.Player1, quoridor.Player2} {
		if !taken[seat] {
			return seat, true
		}
	}

	return 0, false
}

// RefreshStatus derives the session status from the seats and the board:
// waiting until both seats are filled, finished once the board has a winner.
func (that *Game) RefreshStatus() {
	if winner, over := that.Board.Winner(); over {
		that.Status = StatusFinished
		that.Winner = int(winner)
		return
	}

	if len(that.Players) == 2 {
		that.Status = StatusOngoing
	}
}

// RandomSeat picks the creator's seat; the joiner gets the other one.
func RandomSeat() quoridor.Player {
	if rand.Intn(2) == 0 { //nolint: gosec // seat assignment is not security sensitive
		return quoridor.Player1
	}
	return quoridor.Player2
}
