package texasholdem

import (
	sdkmath "cosmossdk.io/math"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/playable/poker/action"
)

type joinAction struct{}

func (joinAction) Kind() action.Action {
	return action.Join
}

func (a joinAction) seatFor(t table, data string) (int, error) {
	if data == "" {
		seat := t.emptySeat()
		if seat == 0 {
			return 0, newIllegalAction(a.Kind(), CategoryIntegrity, "the table is full")
		}

		return seat, nil
	}

	return parseSeat(data, t.gameOptions().MaxPlayers)
}

func (a joinAction) verify(t table, p *Player, req ActionRequest) (Range, error) {
	if p != nil {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "you are already seated")
	}

	opts := t.gameOptions()
	if opts.Type == GameTypeSitAndGo && t.tournamentStarted() {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "the tournament has already started")
	}

	if _, err := a.seatFor(t, req.Data); err != nil {
		return Range{}, err
	}

	if opts.Type == GameTypeSitAndGo {
		return exactly(opts.BuyIn()), nil
	}

	return Range{Min: opts.MinBuyIn, Max: opts.MaxBuyIn}, nil
}

// execute seats the player. An explicitly requested seat that is occupied is taken over
// and its occupant removed.
func (a joinAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	amount, err := checkAmount(a.Kind(), r, req.Amount)
	if err != nil {
		return err
	}

	seat, err := a.seatFor(t, req.Data)
	if err != nil {
		return err
	}

	status := StatusActive
	if t.handInProgress() {
		status = StatusNotActed
	}

	if occupant := t.playerAt(seat); occupant != nil {
		t.log().WithFields(logrus.Fields{
			"seat":     seat,
			"evicted":  occupant.Address,
			"player":   req.Address,
			"chips":    occupant.Chips.String(),
			"occupant": occupant.Status,
		}).Warn("join overwrote an occupied seat")
		t.removePlayer(occupant)
	}

	p = newPlayer(req.Address, seat, amount, status)
	t.seatPlayer(p)
	t.commit(p, req, amount)
	return nil
}

type leaveAction struct{}

func (leaveAction) Kind() action.Action {
	return action.Leave
}

// cashOut returns what the player leaves with. eliminated is true when leaving decides
// the player's tournament place.
func (a leaveAction) cashOut(t table, p *Player) (amount sdkmath.Uint, eliminated bool, err error) {
	if t.gameOptions().Type == GameTypeCash {
		return p.Chips, false, nil
	}

	if p.Status == StatusBusted || p.Place > 0 {
		return p.Payout, false, nil
	}

	if !t.tournamentStarted() {
		return p.Chips, false, nil
	}

	payout, err := t.payoutManager().CalculateCurrentPayout()
	if err != nil {
		return zero, false, wrapIllegalAction(a.Kind(), CategoryIntegrity, err)
	}

	return payout, true, nil
}

func (a leaveAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	switch p.Status {
	case StatusFolded, StatusSittingOut, StatusBusted, StatusNotActed:
	default:
		if t.handInProgress() {
			return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "you cannot leave while you are in a hand")
		}
	}

	amount, _, err := a.cashOut(t, p)
	if err != nil {
		return Range{}, err
	}

	return exactly(amount), nil
}

// execute removes the player. The requested amount is ignored, the player always leaves
// with their stack (cash) or their payout (sit-and-go).
func (a leaveAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	amount, eliminated, err := a.cashOut(t, p)
	if err != nil {
		return err
	}

	if eliminated {
		t.eliminate(p, t.payoutManager().CurrentPlace(), amount)
	}

	t.removePlayer(p)
	t.commit(p, req, amount)
	return nil
}

type sitOutAction struct{}

func (sitOutAction) Kind() action.Action {
	return action.SitOut
}

func (a sitOutAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if p.Status == StatusFolded {
		return exactly(zero), nil
	}

	if p.Status == StatusNotActed {
		return exactly(zero), nil
	}

	if err := requireRound(a.Kind(), t, RoundAnte); err != nil {
		return Range{}, err
	}

	if err := requireStatus(a.Kind(), p, StatusActive); err != nil {
		return Range{}, err
	}

	if t.hasPostedBlind(p) {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "you cannot sit out after posting a blind")
	}

	// once the small blind is in, the hand must still be able to start
	if t.hasPosted(action.SmallBlind) {
		if p.Seat == t.bigBlindSeat() {
			return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "you cannot sit out while the big blind is due")
		}

		if minPlayers := t.gameOptions().MinPlayers; t.playersInHand()-1 < minPlayers {
			return Range{}, newIllegalAction(a.Kind(), CategoryIntegrity, "at least %d players are needed to finish the hand", minPlayers)
		}
	}

	return exactly(zero), nil
}

func (a sitOutAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	p.Status = StatusSittingOut
	t.commit(p, req, zero)
	return nil
}

type sitInAction struct{}

func (sitInAction) Kind() action.Action {
	return action.SitIn
}

func (a sitInAction) verify(_ table, p *Player, _ ActionRequest) (Range, error) {
	if err := requireStatus(a.Kind(), p, StatusSittingOut); err != nil {
		return Range{}, err
	}

	return exactly(zero), nil
}

func (a sitInAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	p.Status = StatusActive
	if t.handInProgress() {
		p.Status = StatusNotActed
	}

	t.commit(p, req, zero)
	return nil
}

type newHandAction struct{}

func (newHandAction) Kind() action.Action {
	return action.NewHand
}

func (a newHandAction) verify(t table, _ *Player, req ActionRequest) (Range, error) {
	if err := requireRound(a.Kind(), t, RoundEnd); err != nil {
		return Range{}, err
	}

	if t.tournamentOver() {
		return Range{}, wrapIllegalAction(a.Kind(), CategoryIntegrity, ErrGameOver)
	}

	if _, err := parseSeed(req.Data); err != nil {
		return Range{}, err
	}

	return exactly(zero), nil
}

func (a newHandAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	seed, _ := parseSeed(req.Data)
	t.startNewHand(seed)
	t.commit(p, req, zero)
	return nil
}
