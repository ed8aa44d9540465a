// Package quoridor implements the Quoridor rules engine: board state, move
// and fence legality, the fair play connectivity rule, and win detection.
package quoridor

import (
	"encoding/json"
	"fmt"
	"sort"
)

const (
	// BoardSize is the number of columns and rows of the board.
	BoardSize = 9

	// FencesPerPlayer is the fence budget each player starts with.
	FencesPerPlayer = 10

	startColumn = BoardSize / 2
)

type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (that Player) Valid() bool {
	return that == Player1 || that == Player2
}

func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

// GoalRow - the row a player's pawn must reach to win: the opponent's baseline.
func (that Player) GoalRow() int {
	if that == Player1 {
		return BoardSize - 1
	}
	return 0
}

func (that Player) String() string {
	return fmt.Sprintf("player %d", int(that))
}

// Cell identifies a board square by column (X) and row (Y), each in [0,8].
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Cell) InBounds() bool {
	return that.X >= 0 && that.X < BoardSize && that.Y >= 0 && that.Y < BoardSize
}

type Orientation string

const (
	Vertical   Orientation = "v"
	Horizontal Orientation = "h"
)

func (that Orientation) Valid() bool {
	return that == Vertical || that == Horizontal
}

// Fence is a placed wall segment, identified by orientation and anchor.
//
// A vertical fence anchored at (x,y) blocks horizontal steps across the
// column boundary x-1|x at rows y-1 and y. A horizontal fence anchored at
// (x,y) blocks vertical steps across the row boundary y-1|y at columns
// x-1 and x.
type Fence struct {
	Orientation Orientation `json:"orientation"`
	Anchor      Cell        `json:"anchor"`
}

// InBounds - checks the orientation-specific anchor range: vertical fences
// need x in [1,8], horizontal fences need y in [1,8].
func (that Fence) InBounds() bool {
	switch that.Orientation {
	case Vertical:
		return that.Anchor.X >= 1 && that.Anchor.X < BoardSize &&
			that.Anchor.Y >= 0 && that.Anchor.Y < BoardSize
	case Horizontal:
		return that.Anchor.X >= 0 && that.Anchor.X < BoardSize &&
			that.Anchor.Y >= 1 && that.Anchor.Y < BoardSize
	default:
		return false
	}
}

// FenceSet holds the placed fences. The set only ever grows: fences are
// placed, never removed or moved, for the life of a game.
type FenceSet map[Fence]struct{}

func (that FenceSet) Contains(fence Fence) bool {
	_, ok := that[fence]
	return ok
}

// MarshalJSON encodes the set as a deterministically ordered array so that
// serialized games compare equal byte-for-byte.
func (that FenceSet) MarshalJSON() ([]byte, error) {
	fences := make([]Fence, 0, len(that))
	for fence := range that {
		fences = append(fences, fence)
	}

	sort.Slice(fences, func(i, j int) bool {
		a, b := fences[i], fences[j]
		if a.Orientation != b.Orientation {
			return a.Orientation < b.Orientation
		}
		if a.Anchor.X != b.Anchor.X {
			return a.Anchor.X < b.Anchor.X
		}
		return a.Anchor.Y < b.Anchor.Y
	})

	return json.Marshal(fences)
}

func (that *FenceSet) UnmarshalJSON(data []byte) error {
	var fences []Fence
	if err := json.Unmarshal(data, &fences); err != nil {
		return fmt.Errorf("failed to unmarshal fence set: %w", err)
	}

	set := make(FenceSet, len(fences))
	for _, fence := range fences {
		set[fence] = struct{}{}
	}

	*that = set
	return nil
}

// Game is the authoritative board state: pawn positions, placed fences,
// remaining fence budgets and the turn indicator. The container itself does
// no legality checking; all mutation goes through ApplyMove and ApplyFence.
type Game struct {
	Pawns      map[Player]Cell `json:"pawns"`
	Fences     FenceSet        `json:"fences"`
	FencesLeft map[Player]int  `json:"fences_left"`
	Turn       Player          `json:"turn"`
}

// NewGame - returns the canonical initial layout: pawns centered on rows 0
// and 8, full fence budgets, no fences, player 1 to move.
func NewGame() *Game {
	return &Game{
		Pawns: map[Player]Cell{
			Player1: {X: startColumn, Y: 0},
			Player2: {X: startColumn, Y: BoardSize - 1},
		},
		Fences: FenceSet{},
		FencesLeft: map[Player]int{
			Player1: FencesPerPlayer,
			Player2: FencesPerPlayer,
		},
		Turn: Player1,
	}
}

func (that *Game) PawnPosition(player Player) Cell {
	return that.Pawns[player]
}

func (that *Game) FenceOccupied(orientation Orientation, anchor Cell) bool {
	return that.Fences.Contains(Fence{Orientation: orientation, Anchor: anchor})
}

func (that *Game) FencesRemaining(player Player) int {
	return that.FencesLeft[player]
}

func (that *Game) CurrentTurn() Player {
	return that.Turn
}

// IsWinner - a player has won iff their pawn stands on the opponent's
// baseline row.
func (that *Game) IsWinner(player Player) bool {
	if !player.Valid() {
		return false
	}
	return that.Pawns[player].Y == player.GoalRow()
}

func (that *Game) Winner() (Player, bool) {
	for _, player := range []Player{Player1, Player2} {
		if that.IsWinner(player) {
			return player, true
		}
	}
	return 0, false
}

func (that *Game) over() bool {
	_, ok := that.Winner()
	return ok
}
