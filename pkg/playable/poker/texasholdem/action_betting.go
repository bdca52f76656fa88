package texasholdem

import (
	"pokervm/pkg/playable/poker/action"
)

type foldAction struct{}

func (foldAction) Kind() action.Action {
	return action.Fold
}

func (a foldAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := bettingChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	if live := t.livePlayers(); len(live) == 1 && live[0] == p {
		return Range{}, newIllegalAction(a.Kind(), CategoryIntegrity, "you are the last player in the hand and cannot fold")
	}

	return exactly(zero), nil
}

func (a foldAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	p.Status = StatusFolded
	t.commit(p, req, zero)
	return nil
}

type checkAction struct{}

func (checkAction) Kind() action.Action {
	return action.Check
}

func (a checkAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := bettingChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	if toCall := t.betManager().AmountToCall(p.Address); !toCall.IsZero() {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "you cannot check, there is %s to call", toCall)
	}

	return exactly(zero), nil
}

func (a checkAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	if _, err := checkAmount(a.Kind(), r, req.Amount); err != nil {
		return err
	}

	t.commit(p, req, zero)
	return nil
}

type callAction struct{}

func (callAction) Kind() action.Action {
	return action.Call
}

func (a callAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := bettingChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	toCall := t.betManager().AmountToCall(p.Address)
	if toCall.IsZero() {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "there is no bet to call")
	}

	if p.Chips.LT(toCall) {
		return Range{}, newIllegalAction(a.Kind(), CategoryInsufficient, "you do not have %s to call, use all-in instead", toCall)
	}

	return exactly(toCall), nil
}

func (a callAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	amount, err := checkAmount(a.Kind(), r, req.Amount)
	if err != nil {
		return err
	}

	t.commit(p, req, p.subtractChips(amount))
	return nil
}

type betAction struct{}

func (betAction) Kind() action.Action {
	return action.Bet
}

func (a betAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := bettingChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	if !t.betManager().GetLargestBet().IsZero() {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "a bet has already been made, call or raise instead")
	}

	bigBlind := t.gameOptions().BigBlind
	if p.Chips.LT(bigBlind) {
		return Range{}, newIllegalAction(a.Kind(), CategoryInsufficient, "you need at least %s to bet, use all-in instead", bigBlind)
	}

	return Range{Min: bigBlind, Max: p.Chips}, nil
}

func (a betAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	amount, err := checkAmount(a.Kind(), r, req.Amount)
	if err != nil {
		return err
	}

	t.commit(p, req, p.subtractChips(amount))
	return nil
}

type raiseAction struct{}

func (raiseAction) Kind() action.Action {
	return action.Raise
}

func (a raiseAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := bettingChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	bm := t.betManager()
	if bm.GetLargestBet().IsZero() {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "there is no bet to raise, bet instead")
	}

	minimum := bm.MinimumRaise(p.Address)
	if p.Chips.LT(minimum) {
		return Range{}, newIllegalAction(a.Kind(), CategoryInsufficient, "you need %s to raise, use all-in instead", minimum)
	}

	return Range{Min: minimum, Max: p.Chips}, nil
}

func (a raiseAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	amount, err := checkAmount(a.Kind(), r, req.Amount)
	if err != nil {
		return err
	}

	t.commit(p, req, p.subtractChips(amount))
	return nil
}

type allInAction struct{}

func (allInAction) Kind() action.Action {
	return action.AllIn
}

func (a allInAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := bettingChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	if p.Chips.IsZero() {
		return Range{}, newIllegalAction(a.Kind(), CategoryInsufficient, "you have no chips left")
	}

	return exactly(p.Chips), nil
}

// execute ignores the requested amount, the whole stack always goes in
func (a allInAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	t.commit(p, req, p.subtractChips(p.Chips))
	return nil
}
