package texasholdem

import (
	sdkmath "cosmossdk.io/math"
	"pokervm/pkg/playable/poker/action"
)

// BetManager is a read-only view over the bets of one round.
// It keeps no state besides what it derives from the turns it was built with.
type BetManager struct {
	totals  map[string]sdkmath.Uint
	largest sdkmath.Uint
	raised  sdkmath.Uint
}

// NewBetManager aggregates the chip-moving turns of a round.
// Blind postings are only counted when includeBlinds is set, which is the case for PREFLOP.
func NewBetManager(turns []Turn, includeBlinds bool) *BetManager {
	b := &BetManager{
		totals:  make(map[string]sdkmath.Uint),
		largest: sdkmath.ZeroUint(),
		raised:  sdkmath.ZeroUint(),
	}

	for _, t := range turns {
		if !t.Action.MovesChips() {
			continue
		}

		if t.Action.IsBlind() && !includeBlinds {
			continue
		}

		total := b.TotalBetsForPlayer(t.PlayerID).Add(orZero(t.Amount))
		b.totals[t.PlayerID] = total

		if !total.GT(b.largest) {
			continue
		}

		increment := total.Sub(b.largest)
		switch {
		case t.Action.IsBlind():
			// a blind is a bet over nothing; the big blind sets the opening raise size
			if orZero(t.Amount).GT(b.raised) {
				b.raised = orZero(t.Amount)
			}
		case t.Action == action.AllIn && increment.LT(b.raised):
			// a short all-in does not change the raise size
		default:
			b.raised = increment
		}

		b.largest = total
	}

	return b
}

// GetLargestBet returns the largest cumulative contribution of a single player this round
func (b *BetManager) GetLargestBet() sdkmath.Uint {
	return b.largest
}

// TotalBetsForPlayer returns how much the player has contributed this round
func (b *BetManager) TotalBetsForPlayer(address string) sdkmath.Uint {
	if total, ok := b.totals[address]; ok {
		return total
	}

	return sdkmath.ZeroUint()
}

// GetRaisedAmount returns the size of the most recent raise increment
func (b *BetManager) GetRaisedAmount() sdkmath.Uint {
	return b.raised
}

// AmountToCall returns how much the player needs to add to match the largest bet
func (b *BetManager) AmountToCall(address string) sdkmath.Uint {
	total := b.TotalBetsForPlayer(address)
	if total.GTE(b.largest) {
		return sdkmath.ZeroUint()
	}

	return b.largest.Sub(total)
}

// MinimumRaise returns how many chips the player must add for a legal raise
func (b *BetManager) MinimumRaise(address string) sdkmath.Uint {
	return b.largest.Add(b.raised).Sub(b.TotalBetsForPlayer(address))
}

// Total returns the sum of every counted contribution
func (b *BetManager) Total() sdkmath.Uint {
	total := sdkmath.ZeroUint()
	for _, amount := range b.totals {
		total = total.Add(amount)
	}

	return total
}
