package potmanager

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
)

func contribution(id string, amount uint64, folded bool) Contribution {
	return Contribution{ID: id, Amount: sdkmath.NewUint(amount), Folded: folded}
}

func assertPot(t *testing.T, pot *Pot, amount uint64, eligible ...string) {
	t.Helper()
	assert.Equal(t, sdkmath.NewUint(amount).String(), pot.Amount.String())
	assert.Equal(t, eligible, pot.Eligible)
}

func TestCalculatePots_noAllIn(t *testing.T) {
	pots := CalculatePots([]Contribution{
		contribution("a", 50, false),
		contribution("b", 50, false),
		contribution("c", 20, true),
	})

	if assert.Len(t, pots, 1) {
		assertPot(t, pots[0], 120, "a", "b")
	}
	assert.Equal(t, "120", pots.Total().String())
}

func TestCalculatePots_sidePots(t *testing.T) {
	pots := CalculatePots([]Contribution{
		contribution("a", 100, false),
		contribution("b", 25, false),
		contribution("c", 60, false),
		contribution("d", 40, true),
	})

	if assert.Len(t, pots, 3) {
		assertPot(t, pots[0], 100, "a", "b", "c")
		assertPot(t, pots[1], 85, "a", "c")
		assertPot(t, pots[2], 40, "a")
	}
	assert.Equal(t, "225", pots.Total().String())
}

func TestCalculatePots_foldedAboveLive(t *testing.T) {
	pots := CalculatePots([]Contribution{
		contribution("a", 10, false),
		contribution("b", 30, true),
	})

	if assert.Len(t, pots, 1) {
		assertPot(t, pots[0], 40, "a")
	}
}

func TestPots_Distribute(t *testing.T) {
	a := assert.New(t)

	pots := CalculatePots([]Contribution{
		contribution("a", 100, false),
		contribution("b", 25, false),
		contribution("c", 60, false),
	})

	wm := NewWinManager()
	wm.AddParticipant("a", 10)
	wm.AddParticipant("b", 30)
	wm.AddParticipant("c", 20)

	winnings, err := pots.Distribute(wm.GetSortedTiers(), []string{"a", "b", "c"})
	a.NoError(err)
	a.Equal("100", winnings["b"].String())
	a.Equal("85", winnings["c"].String())
	a.Equal("40", winnings["a"].String())
}

func TestPots_Distribute_oddChip(t *testing.T) {
	a := assert.New(t)

	pots := CalculatePots([]Contribution{
		contribution("a", 5, false),
		contribution("b", 5, false),
		contribution("c", 1, true),
	})

	wm := NewWinManager()
	wm.AddParticipant("a", 10)
	wm.AddParticipant("b", 10)

	winnings, err := pots.Distribute(wm.GetSortedTiers(), []string{"b", "c", "a"})
	a.NoError(err)
	a.Equal("6", winnings["b"].String())
	a.Equal("5", winnings["a"].String())
}

func TestPots_Distribute_noWinner(t *testing.T) {
	pots := CalculatePots([]Contribution{contribution("a", 5, false)})
	_, err := pots.Distribute([][]string{{"b"}}, []string{"a", "b"})
	assert.Equal(t, ErrNoEligibleWinner, err)
}
