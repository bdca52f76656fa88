package texasholdem

// DealerPositionManager works out the dealer, small blind, and big blind seats.
// It borrows the seat arena (index 0 is seat 1, nil is an empty seat) and never stores
// anything of its own; every method that moves the button returns the new dealer seat.
type DealerPositionManager struct {
	seats  []*Player
	dealer int
}

// NewDealerPositionManager returns a manager for the seats. A dealer of 0 means no button
// has been assigned yet, in which case the first active seat takes it.
func NewDealerPositionManager(seats []*Player, dealer int) *DealerPositionManager {
	d := &DealerPositionManager{
		seats:  seats,
		dealer: dealer,
	}

	if d.dealer == 0 {
		if active := d.activeSeats(); len(active) > 0 {
			d.dealer = active[0]
		}
	}

	return d
}

// Dealer returns the dealer seat, or 0 if the table is empty
func (d *DealerPositionManager) Dealer() int {
	return d.dealer
}

func (d *DealerPositionManager) isActive(seat int) bool {
	if seat < 1 || seat > len(d.seats) {
		return false
	}

	p := d.seats[seat-1]
	return p != nil && p.Status.isSeatedActive()
}

func (d *DealerPositionManager) activeSeats() []int {
	seats := make([]int, 0, len(d.seats))
	for i, p := range d.seats {
		if p != nil && p.Status.isSeatedActive() {
			seats = append(seats, i+1)
		}
	}

	return seats
}

// nextSeat scans clockwise from the seat after from, wrapping from the highest seat
// back to seat 1, and returns the first seat matching fn. from itself is checked last.
func (d *DealerPositionManager) nextSeat(from int, fn func(seat int) bool) int {
	n := len(d.seats)
	for i := 1; i <= n; i++ {
		seat := (from+i-1)%n + 1
		if fn(seat) {
			return seat
		}
	}

	return 0
}

// RotateDealer moves the button to the next active seat
func (d *DealerPositionManager) RotateDealer() int {
	if seat := d.nextSeat(d.dealer, d.isActive); seat != 0 {
		d.dealer = seat
	} else if active := d.activeSeats(); len(active) > 0 {
		d.dealer = active[0]
	}

	return d.dealer
}

// HandleNewHand moves the button for the next hand. Heads-up, the button alternates
// between the two players.
func (d *DealerPositionManager) HandleNewHand() int {
	active := d.activeSeats()
	if len(active) == 2 {
		switch d.dealer {
		case active[0]:
			d.dealer = active[1]
			return d.dealer
		case active[1]:
			d.dealer = active[0]
			return d.dealer
		}
	}

	return d.RotateDealer()
}

// isHeadsUp returns true if exactly two players are active and one of them has the button
func (d *DealerPositionManager) isHeadsUp() bool {
	return len(d.activeSeats()) == 2 && d.isActive(d.dealer)
}

// SmallBlindPosition returns the small blind seat, or 0 if fewer than two players are active
func (d *DealerPositionManager) SmallBlindPosition() int {
	if len(d.activeSeats()) < 2 {
		return 0
	}

	if d.isHeadsUp() {
		return d.dealer
	}

	return d.nextSeat(d.dealer, d.isActive)
}

// BigBlindPosition returns the big blind seat, or 0 if fewer than two players are active
func (d *DealerPositionManager) BigBlindPosition() int {
	sb := d.SmallBlindPosition()
	if sb == 0 {
		return 0
	}

	return d.nextSeat(sb, func(seat int) bool {
		return seat != sb && d.isActive(seat)
	})
}

// HandlePlayerLeave must be called after the player has been removed from the seats.
// The button only moves when the dealer left.
func (d *DealerPositionManager) HandlePlayerLeave(seat int) int {
	if seat != d.dealer {
		return d.dealer
	}

	if next := d.nextSeat(seat, d.isActive); next != 0 {
		d.dealer = next
		return d.dealer
	}

	// nobody active, hand the button to whoever is still seated
	d.dealer = d.nextSeat(seat, func(s int) bool {
		return d.seats[s-1] != nil
	})

	return d.dealer
}

// HandlePlayerJoin gives the button to the first player at the table
func (d *DealerPositionManager) HandlePlayerJoin(seat int) int {
	if d.dealer == 0 || d.seats[d.dealer-1] == nil {
		d.dealer = seat
	}

	return d.dealer
}
