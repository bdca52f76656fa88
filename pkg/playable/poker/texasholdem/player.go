package texasholdem

import (
	sdkmath "cosmossdk.io/math"
	"pokervm/pkg/deck"
)

// PlayerStatus is where a player stands in the current hand
type PlayerStatus string

// player statuses
const (
	StatusActive     PlayerStatus = "active"
	StatusFolded     PlayerStatus = "folded"
	StatusAllIn      PlayerStatus = "all-in"
	StatusSittingOut PlayerStatus = "sitting-out"
	StatusShowing    PlayerStatus = "showing"
	StatusBusted     PlayerStatus = "busted"
	// StatusNotActed is a player who joined while a hand was being played
	StatusNotActed PlayerStatus = "not-acted"
)

// isLive returns true if the player can still win the current hand
func (s PlayerStatus) isLive() bool {
	return s == StatusActive || s == StatusAllIn || s == StatusShowing
}

// isSeatedActive returns true if the player is counted for dealer and blind positions
func (s PlayerStatus) isSeatedActive() bool {
	return s == StatusActive || s == StatusNotActed
}

// Player is a participant seated at the table
type Player struct {
	Address   string       `json:"address"`
	Seat      int          `json:"seat"`
	Chips     sdkmath.Uint `json:"chips"`
	Status    PlayerStatus `json:"status"`
	HoleCards []deck.Card  `json:"holeCards,omitempty"`
	// LastAction and Actions cover the current hand
	LastAction *Turn  `json:"lastAction,omitempty"`
	Actions    []Turn `json:"actions"`
	// Place and Payout are set when a sit-and-go player is eliminated
	Place  int          `json:"place,omitempty"`
	Payout sdkmath.Uint `json:"payout"`
}

func newPlayer(address string, seat int, chips sdkmath.Uint, status PlayerStatus) *Player {
	return &Player{
		Address: address,
		Seat:    seat,
		Chips:   chips,
		Status:  status,
		Actions: []Turn{},
		Payout:  sdkmath.ZeroUint(),
	}
}

// subtractChips removes chips from the stack and returns the amount removed.
// A stack that is emptied moves the player all-in.
func (p *Player) subtractChips(amount sdkmath.Uint) sdkmath.Uint {
	amount = minUint(amount, p.Chips)
	p.Chips = p.Chips.Sub(amount)
	if p.Chips.IsZero() && p.Status == StatusActive {
		p.Status = StatusAllIn
	}

	return amount
}

func (p *Player) record(turn Turn) {
	p.Actions = append(p.Actions, turn)
	p.LastAction = &p.Actions[len(p.Actions)-1]
}

func (p *Player) resetForHand() {
	p.HoleCards = nil
	p.LastAction = nil
	p.Actions = []Turn{}
}

func (p *Player) clone() *Player {
	cp := *p
	cp.HoleCards = append([]deck.Card(nil), p.HoleCards...)
	cp.Actions = append([]Turn{}, p.Actions...)
	if len(cp.Actions) > 0 && p.LastAction != nil {
		cp.LastAction = &cp.Actions[len(cp.Actions)-1]
	}

	return &cp
}
