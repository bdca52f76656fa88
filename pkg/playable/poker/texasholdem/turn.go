package texasholdem

import (
	sdkmath "cosmossdk.io/math"
	"pokervm/pkg/playable/poker/action"
)

// Turn is an accepted entry in the action log
type Turn struct {
	PlayerID  string        `json:"playerId"`
	Action    action.Action `json:"action"`
	Amount    sdkmath.Uint  `json:"amount"`
	Index     int           `json:"index"`
	Seat      int           `json:"seat,omitempty"`
	Round     Round         `json:"round"`
	Data      string        `json:"data,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

// isVoluntary returns true if the turn counts as the player acting in a betting round
func (t Turn) isVoluntary() bool {
	switch t.Action {
	case action.Fold, action.Check, action.Bet, action.Call, action.Raise, action.AllIn:
		return true
	}

	return false
}

// turnsForRound returns the turns that happened in the given round
func turnsForRound(turns []Turn, round Round) []Turn {
	filtered := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if t.Round == round {
			filtered = append(filtered, t)
		}
	}

	return filtered
}
