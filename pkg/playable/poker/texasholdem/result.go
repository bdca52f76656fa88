package texasholdem

import (
	sdkmath "cosmossdk.io/math"
)

// Outcome is how a hand or tournament ended for a player
type Outcome string

// outcomes
const (
	OutcomeWon    Outcome = "won"
	OutcomeLost   Outcome = "lost"
	OutcomeFolded Outcome = "folded"
	// OutcomeBusted marks a player who ran out of chips
	OutcomeBusted Outcome = "busted"
	// OutcomeChampion marks the last sit-and-go player standing
	OutcomeChampion Outcome = "champion"
)

// Result is one line of the results of a concluded hand
type Result struct {
	PlayerID string       `json:"playerId"`
	Seat     int          `json:"seat"`
	Outcome  Outcome      `json:"outcome"`
	Amount   sdkmath.Uint `json:"amount"`
	Hand     string       `json:"hand,omitempty"`
	Place    int          `json:"place,omitempty"`
	Payout   sdkmath.Uint `json:"payout"`
}
