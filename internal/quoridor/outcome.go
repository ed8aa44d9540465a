package quoridor

import "errors"

// The closed set of action rejections. Every ApplyMove and ApplyFence call
// resolves to nil (applied) or exactly one of these.
var (
	ErrGameAlreadyOver    = errors.New("game is already over")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrIllegalMove        = errors.New("illegal move")
	ErrNoFencesRemaining  = errors.New("no fences remaining")
	ErrInvalidOrientation = errors.New("invalid fence orientation")
	ErrFenceOutOfBounds   = errors.New("fence anchor out of bounds")
	ErrFenceOccupied      = errors.New("fence position is already occupied")
	ErrBreaksFairPlay     = errors.New("fence breaks the fair play rule")
)

// Outcome names an action result for rendering and transport collaborators.
type Outcome string

const (
	OutcomeApplied            Outcome = "applied"
	OutcomeGameAlreadyOver    Outcome = "game_already_over"
	OutcomeNotYourTurn        Outcome = "not_your_turn"
	OutcomeIllegalMove        Outcome = "illegal_move"
	OutcomeNoFencesRemaining  Outcome = "no_fences_remaining"
	OutcomeInvalidOrientation Outcome = "invalid_orientation"
	OutcomeOutOfBounds        Outcome = "out_of_bounds"
	OutcomeAlreadyOccupied    Outcome = "already_occupied"
	OutcomeBreaksFairPlay     Outcome = "breaks_fair_play"
)

// OutcomeOf maps an ApplyMove/ApplyFence result to its outcome name. The
// second return is false when err is not a rules outcome (infrastructure
// failures wrapped around the engine, for example).
func OutcomeOf(err error) (Outcome, bool) {
	switch {
	case err == nil:
		return OutcomeApplied, true
	case errors.Is(err, ErrGameAlreadyOver):
		return OutcomeGameAlreadyOver, true
	case errors.Is(err, ErrNotYourTurn):
		return OutcomeNotYourTurn, true
	case errors.Is(err, ErrIllegalMove):
		return OutcomeIllegalMove, true
	case errors.Is(err, ErrNoFencesRemaining):
		return OutcomeNoFencesRemaining, true
	case errors.Is(err, ErrInvalidOrientation):
		return OutcomeInvalidOrientation, true
	case errors.Is(err, ErrFenceOutOfBounds):
		return OutcomeOutOfBounds, true
	case errors.Is(err, ErrFenceOccupied):
		return OutcomeAlreadyOccupied, true
	case errors.Is(err, ErrBreaksFairPlay):
		return OutcomeBreaksFairPlay, true
	default:
		return "", false
	}
}
