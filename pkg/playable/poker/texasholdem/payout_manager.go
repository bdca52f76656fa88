package texasholdem

import (
	"errors"

	sdkmath "cosmossdk.io/math"
)

// ErrNoPlaceToPay is returned when every player is busted
var ErrNoPlaceToPay = errors.New("cannot determine a place to pay: no players remain")

var (
	// fewer than six entrants
	shortTablePayouts = []uint64{80, 20}
	// six or more entrants
	fullTablePayouts = []uint64{60, 30, 10}
)

// PayoutManager calculates sit-and-go prizes. The prize pool is fixed when it is built,
// so later eliminations do not change it.
type PayoutManager struct {
	players   []*Player
	entrants  int
	prizePool sdkmath.Uint
}

// NewPayoutManager builds a PayoutManager over every tournament entrant, busted or not
func NewPayoutManager(buyIn sdkmath.Uint, players []*Player) *PayoutManager {
	return &PayoutManager{
		players:   players,
		entrants:  len(players),
		prizePool: buyIn.MulUint64(uint64(len(players))),
	}
}

// TotalPrizePool returns buy-in × entrants
func (p *PayoutManager) TotalPrizePool() sdkmath.Uint {
	return p.prizePool
}

func (p *PayoutManager) percentages() []uint64 {
	if p.entrants < 6 {
		return shortTablePayouts
	}

	return fullTablePayouts
}

// CalculatePayout returns the prize for the given finishing place (1 is the winner).
// Rounding leftovers go to first place so the paid tiers always add up to the pool.
func (p *PayoutManager) CalculatePayout(place int) sdkmath.Uint {
	percentages := p.percentages()
	if place < 1 || place > len(percentages) {
		return sdkmath.ZeroUint()
	}

	if place > 1 {
		return p.prizePool.MulUint64(percentages[place-1]).QuoUint64(100)
	}

	paid := sdkmath.ZeroUint()
	for i := 1; i < len(percentages); i++ {
		paid = paid.Add(p.prizePool.MulUint64(percentages[i]).QuoUint64(100))
	}

	return p.prizePool.Sub(paid)
}

// CalculateCurrentPayout returns the prize for the place being decided right now,
// which is the number of players who are not busted
func (p *PayoutManager) CalculateCurrentPayout() (sdkmath.Uint, error) {
	place := p.CurrentPlace()
	if place == 0 {
		return sdkmath.ZeroUint(), ErrNoPlaceToPay
	}

	return p.CalculatePayout(place), nil
}

// CurrentPlace returns the number of players who are not busted
func (p *PayoutManager) CurrentPlace() int {
	place := 0
	for _, player := range p.players {
		if player.Status != StatusBusted {
			place++
		}
	}

	return place
}
