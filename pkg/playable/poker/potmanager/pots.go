package potmanager

import (
	"errors"
	"sort"

	sdkmath "cosmossdk.io/math"
)

// ErrNoEligibleWinner is returned when a pot cannot be matched to any ranked participant
var ErrNoEligibleWinner = errors.New("pot has no eligible winner")

// Contribution is how much a participant put into the pot over the hand
type Contribution struct {
	ID     string
	Amount sdkmath.Uint
	// Folded participants feed the pots but can never win them
	Folded bool
}

// Pot is a main or side pot
type Pot struct {
	Amount   sdkmath.Uint `json:"amount"`
	Eligible []string     `json:"eligible"`
}

// Pots is an ordered list of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() sdkmath.Uint {
	total := sdkmath.ZeroUint()
	for _, pot := range p {
		total = total.Add(pot.Amount)
	}

	return total
}

// CalculatePots splits the contributions into a main pot and side pots.
// A new pot starts at every distinct commitment level of a non-folded participant.
func CalculatePots(contributions []Contribution) Pots {
	levels := make([]sdkmath.Uint, 0, len(contributions))
	for _, c := range contributions {
		if c.Folded || c.Amount.IsZero() {
			continue
		}

		dupe := false
		for _, level := range levels {
			if level.Equal(c.Amount) {
				dupe = true
				break
			}
		}

		if !dupe {
			levels = append(levels, c.Amount)
		}
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].LT(levels[j])
	})

	pots := make(Pots, 0, len(levels))
	prev := sdkmath.ZeroUint()
	for _, level := range levels {
		pot := &Pot{Amount: sdkmath.ZeroUint(), Eligible: []string{}}
		for _, c := range contributions {
			pot.Amount = pot.Amount.Add(slice(c.Amount, prev, level))
			if !c.Folded && c.Amount.GTE(level) {
				pot.Eligible = append(pot.Eligible, c.ID)
			}
		}

		pots = append(pots, pot)
		prev = level
	}

	// chips above the highest live commitment (only possible from folded participants)
	// belong to the last pot
	leftover := sdkmath.ZeroUint()
	for _, c := range contributions {
		if c.Amount.GT(prev) {
			leftover = leftover.Add(c.Amount.Sub(prev))
		}
	}

	if !leftover.IsZero() && len(pots) > 0 {
		last := pots[len(pots)-1]
		last.Amount = last.Amount.Add(leftover)
	}

	return pots
}

// slice returns the portion of amount that falls within (lower, upper]
func slice(amount, lower, upper sdkmath.Uint) sdkmath.Uint {
	if amount.LTE(lower) {
		return sdkmath.ZeroUint()
	}

	if amount.GT(upper) {
		amount = upper
	}

	return amount.Sub(lower)
}

// Distribute awards every pot to the best ranked eligible participants.
// tiers are groups of participants of equal strength, best first (see WinManager.GetSortedTiers).
// order is the table order starting left of the dealer; odd chips of a split go out one at a
// time in that order.
func (p Pots) Distribute(tiers [][]string, order []string) (map[string]sdkmath.Uint, error) {
	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	winnings := make(map[string]sdkmath.Uint)
	for _, pot := range p {
		if pot.Amount.IsZero() {
			continue
		}

		winners := bestEligible(tiers, pot.Eligible)
		if len(winners) == 0 {
			return nil, ErrNoEligibleWinner
		}

		sort.SliceStable(winners, func(i, j int) bool {
			return position[winners[i]] < position[winners[j]]
		})

		count := uint64(len(winners))
		share := pot.Amount.QuoUint64(count)
		remainder := pot.Amount.Sub(share.MulUint64(count)).Uint64()
		for i, id := range winners {
			amount := share
			if uint64(i) < remainder {
				amount = amount.AddUint64(1)
			}

			if current, ok := winnings[id]; ok {
				winnings[id] = current.Add(amount)
			} else {
				winnings[id] = amount
			}
		}
	}

	return winnings, nil
}

func bestEligible(tiers [][]string, eligible []string) []string {
	isEligible := make(map[string]bool, len(eligible))
	for _, id := range eligible {
		isEligible[id] = true
	}

	for _, tier := range tiers {
		winners := make([]string, 0, len(tier))
		for _, id := range tier {
			if isEligible[id] {
				winners = append(winners, id)
			}
		}

		if len(winners) > 0 {
			return winners
		}
	}

	return nil
}
