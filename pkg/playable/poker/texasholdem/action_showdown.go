package texasholdem

import (
	"pokervm/pkg/playable/poker/action"
)

func showdownChecks(kind action.Action, t table, p *Player) error {
	if err := requireRound(kind, t, RoundShowdown); err != nil {
		return err
	}

	if err := requireStatus(kind, p, StatusActive, StatusAllIn); err != nil {
		return err
	}

	return requireTurn(kind, t, p)
}

type showAction struct{}

func (showAction) Kind() action.Action {
	return action.Show
}

func (a showAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := showdownChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	return exactly(zero), nil
}

func (a showAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	p.Status = StatusShowing
	t.commit(p, req, zero)
	return nil
}

type muckAction struct{}

func (muckAction) Kind() action.Action {
	return action.Muck
}

func (a muckAction) verify(t table, p *Player, _ ActionRequest) (Range, error) {
	if err := showdownChecks(a.Kind(), t, p); err != nil {
		return Range{}, err
	}

	others := 0
	bm := NewBetManager(t.handTurns(), true)
	for _, other := range t.livePlayers() {
		if other == p {
			continue
		}

		others++
		// somebody still in has to be able to claim what this player put in
		if bm.TotalBetsForPlayer(other.Address).GTE(bm.TotalBetsForPlayer(p.Address)) {
			return exactly(zero), nil
		}
	}

	if others == 0 {
		return Range{}, newIllegalAction(a.Kind(), CategoryIntegrity, "you are the last player in the hand and must show")
	}

	return Range{}, newIllegalAction(a.Kind(), CategoryIntegrity, "you must show, nobody else can win your side pot")
}

func (a muckAction) execute(t table, p *Player, req ActionRequest) error {
	if _, err := a.verify(t, p, req); err != nil {
		return err
	}

	p.Status = StatusFolded
	t.commit(p, req, zero)
	return nil
}
