package texasholdem

import (
	sdkmath "cosmossdk.io/math"
	"pokervm/pkg/playable/poker/action"
)

// blindChecks applies the checks both blinds share and returns the amount to post
func blindChecks(kind action.Action, t table, p *Player, seat int, nominal sdkmath.Uint) (Range, error) {
	if err := requireRound(kind, t, RoundAnte); err != nil {
		return Range{}, err
	}

	if t.hasPosted(kind) {
		return Range{}, newIllegalAction(kind, CategorySequencing, "the %s has already been posted", blindName(kind))
	}

	if err := requireStatus(kind, p, StatusActive); err != nil {
		return Range{}, err
	}

	if minPlayers := t.gameOptions().MinPlayers; t.playersInHand() < minPlayers {
		return Range{}, newIllegalAction(kind, CategoryIntegrity, "at least %d players are needed to start a hand", minPlayers)
	}

	if p.Seat != seat {
		return Range{}, newIllegalAction(kind, CategorySequencing, "you are not in the %s position", blindName(kind))
	}

	// short stacks post what they have
	return exactly(minUint(nominal, p.Chips)), nil
}

func blindName(kind action.Action) string {
	if kind == action.SmallBlind {
		return "small blind"
	}

	return "big blind"
}

func postBlind(kind action.Action, t table, p *Player, r Range, req ActionRequest) error {
	amount, err := checkAmount(kind, r, req.Amount)
	if err != nil {
		return err
	}

	t.commit(p, req, p.subtractChips(amount))
	return nil
}

type smallBlindAction struct{}

func (smallBlindAction) Kind() action.Action {
	return action.SmallBlind
}

func (a smallBlindAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	return blindChecks(a.Kind(), t, p, t.smallBlindSeat(), t.gameOptions().SmallBlind)
}

func (a smallBlindAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	return postBlind(a.Kind(), t, p, r, req)
}

type bigBlindAction struct{}

func (bigBlindAction) Kind() action.Action {
	return action.BigBlind
}

func (a bigBlindAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := requireRound(a.Kind(), t, RoundAnte); err != nil {
		return Range{}, err
	}

	if !t.hasPosted(action.SmallBlind) {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "the small blind must be posted first")
	}

	return blindChecks(a.Kind(), t, p, t.bigBlindSeat(), t.gameOptions().BigBlind)
}

func (a bigBlindAction) execute(t table, p *Player, req ActionRequest) error {
	r, err := a.verify(t, p, req)
	if err != nil {
		return err
	}

	return postBlind(a.Kind(), t, p, r, req)
}

// dealAction deals the hole cards once both blinds are in. Any seated player may trigger it.
type dealAction struct{}

func (dealAction) Kind() action.Action {
	return action.Deal
}

func (a dealAction) verify(t table, _ *Player, _ ActionRequest) (Range, error) {
	if err := requireRound(a.Kind(), t, RoundAnte); err != nil {
		return Range{}, err
	}

	if !t.hasPosted(action.SmallBlind) || !t.hasPosted(action.BigBlind) {
		return Range{}, newIllegalAction(a.Kind(), CategorySequencing, "both blinds must be posted before dealing")
	}

	return exactly(zero), nil
}

func (a dealAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	t.commit(p, req, zero)
	return t.dealHoleCards()
}
