package entity

import "github.com/rocketscienceinc/quoridor-backend/internal/quoridor"

type Player struct {
	ID     string          `json:"id"`
	Seat   quoridor.Player `json:"seat,omitempty"`
	GameID string          `json:"game_id,omitempty"`
}
