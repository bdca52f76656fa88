package texasholdem

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
)

// arena builds a seat arena of size n with active players in the given seats
func arena(n int, seats ...int) []*Player {
	players := make([]*Player, n)
	for _, seat := range seats {
		players[seat-1] = newPlayer(addr(seat), seat, sdkmath.NewUint(100), StatusActive)
	}

	return players
}

func TestDealerPositionManager_initialDealer(t *testing.T) {
	a := assert.New(t)

	a.Equal(3, NewDealerPositionManager(arena(9, 3, 5, 7), 0).Dealer())
	a.Equal(5, NewDealerPositionManager(arena(9, 3, 5, 7), 5).Dealer())
	a.Equal(0, NewDealerPositionManager(arena(9), 0).Dealer())
}

func TestDealerPositionManager_RotateDealer(t *testing.T) {
	a := assert.New(t)

	seats := arena(9, 1, 4, 6, 9)
	seats[5].Status = StatusBusted
	seats[0].Status = StatusSittingOut

	dpm := NewDealerPositionManager(seats, 4)
	a.Equal(9, dpm.RotateDealer(), "skips the busted seat")
	a.Equal(4, dpm.RotateDealer(), "wraps past seat 9 and skips the sitting out seat")

	seats[0].Status = StatusNotActed
	a.Equal(9, dpm.RotateDealer())
	a.Equal(1, dpm.RotateDealer(), "not acted players are still active for the button")
}

func TestDealerPositionManager_positions(t *testing.T) {
	a := assert.New(t)

	dpm := NewDealerPositionManager(arena(9, 2, 5, 8), 8)
	a.Equal(2, dpm.SmallBlindPosition())
	a.Equal(5, dpm.BigBlindPosition())

	dpm = NewDealerPositionManager(arena(9, 2, 5, 8), 2)
	a.Equal(5, dpm.SmallBlindPosition())
	a.Equal(8, dpm.BigBlindPosition())

	dpm = NewDealerPositionManager(arena(9, 2), 2)
	a.Equal(0, dpm.SmallBlindPosition())
	a.Equal(0, dpm.BigBlindPosition())
}

func TestDealerPositionManager_headsUp(t *testing.T) {
	a := assert.New(t)

	seats := arena(6, 2, 5)
	dpm := NewDealerPositionManager(seats, 2)
	a.Equal(2, dpm.SmallBlindPosition(), "the dealer posts the small blind")
	a.Equal(5, dpm.BigBlindPosition())

	a.Equal(5, dpm.HandleNewHand())
	a.Equal(5, dpm.SmallBlindPosition())
	a.Equal(2, dpm.BigBlindPosition())
	a.Equal(2, dpm.HandleNewHand())
	a.Equal(5, dpm.HandleNewHand())
}

func TestDealerPositionManager_HandleNewHand_multiway(t *testing.T) {
	a := assert.New(t)

	seats := arena(9, 1, 3, 9)
	dpm := NewDealerPositionManager(seats, 1)
	a.Equal(3, dpm.HandleNewHand())
	a.Equal(9, dpm.HandleNewHand())
	a.Equal(1, dpm.HandleNewHand())
}

func TestDealerPositionManager_HandlePlayerLeave(t *testing.T) {
	a := assert.New(t)

	seats := arena(9, 1, 3, 9)
	dpm := NewDealerPositionManager(seats, 3)

	seats[0] = nil
	a.Equal(3, dpm.HandlePlayerLeave(1), "only the dealer leaving moves the button")

	seats[2] = nil
	a.Equal(9, dpm.HandlePlayerLeave(3))

	seats[8].Status = StatusSittingOut
	seats[4] = newPlayer("p5", 5, sdkmath.NewUint(100), StatusSittingOut)
	seats[8] = nil
	a.Equal(5, dpm.HandlePlayerLeave(9), "falls back to the sole remaining player")

	seats[4] = nil
	a.Equal(0, dpm.HandlePlayerLeave(5))
}

func TestDealerPositionManager_HandlePlayerJoin(t *testing.T) {
	a := assert.New(t)

	seats := arena(9)
	dpm := NewDealerPositionManager(seats, 0)

	seats[3] = newPlayer("p4", 4, sdkmath.NewUint(100), StatusActive)
	a.Equal(4, dpm.HandlePlayerJoin(4))

	seats[1] = newPlayer("p2", 2, sdkmath.NewUint(100), StatusActive)
	a.Equal(4, dpm.HandlePlayerJoin(2))
}
