package texasholdem

import (
	"errors"
	"fmt"

	"pokervm/pkg/playable/poker/action"
)

// Category groups illegal actions by what the caller did wrong
type Category string

// error categories
const (
	// CategorySequencing covers acting out of turn, in the wrong round, or twice
	CategorySequencing Category = "sequencing"
	// CategoryInsufficient covers requests the player's stack cannot cover
	CategoryInsufficient Category = "insufficient"
	// CategoryMalformed covers bad input such as a seat string or amount
	CategoryMalformed Category = "malformed"
	// CategoryIntegrity covers actions that would leave the table in an invalid state
	CategoryIntegrity Category = "integrity"
)

// sentinel errors, usable with errors.Is
var (
	ErrNotYourTurn       = errors.New("it is not your turn")
	ErrInvalidIndex      = errors.New("action index must be greater than the last accepted index")
	ErrPlayerNotFound    = errors.New("player is not seated at the table")
	ErrUnknownAction     = errors.New("unknown action")
	ErrGameOver          = errors.New("the tournament is over")
	ErrNotBettingRound   = errors.New("not in a betting round")
	ErrNoLivePlayers     = errors.New("no live players remain")
	ErrInvalidSeatFormat = errors.New(`seat must be in the format of "seat=<positive integer>"`)
)

// IllegalActionError is returned when an action cannot be applied.
// The game is untouched when this error is returned.
type IllegalActionError struct {
	Action   action.Action
	Category Category
	Reason   string
	err      error
}

func (e *IllegalActionError) Error() string {
	return e.Reason
}

// Unwrap returns the sentinel error, if any
func (e *IllegalActionError) Unwrap() error {
	return e.err
}

func newIllegalAction(kind action.Action, category Category, format string, a ...interface{}) *IllegalActionError {
	return &IllegalActionError{
		Action:   kind,
		Category: category,
		Reason:   fmt.Sprintf(format, a...),
	}
}

func wrapIllegalAction(kind action.Action, category Category, err error) *IllegalActionError {
	return &IllegalActionError{
		Action:   kind,
		Category: category,
		Reason:   err.Error(),
		err:      err,
	}
}

// IsIllegalAction returns true if err is an IllegalActionError
func IsIllegalAction(err error) bool {
	var iae *IllegalActionError
	return errors.As(err, &iae)
}
