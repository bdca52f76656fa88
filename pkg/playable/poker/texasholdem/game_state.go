package texasholdem

import (
	"fmt"
	"sort"

	sdkmath "cosmossdk.io/math"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/deck"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/playable/poker/potmanager"
)

// playersAfter returns the seated players clockwise from the seat after anchor.
// The anchor seat itself comes last.
func (g *Game) playersAfter(anchor int) []*Player {
	n := len(g.seats)
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		seat := ((anchor+i-1)%n+n)%n + 1
		if p := g.seats[seat-1]; p != nil {
			players = append(players, p)
		}
	}

	return players
}

// nextToAct derives whose turn it is from the seats and the action log
func (g *Game) nextToAct() *Player {
	switch {
	case g.round == RoundAnte:
		if !g.hasPosted(action.SmallBlind) {
			return g.playerAt(g.smallBlindSeat())
		}

		if !g.hasPosted(action.BigBlind) {
			return g.playerAt(g.bigBlindSeat())
		}
	case g.round.IsBettingRound():
		return g.nextToActInBettingRound()
	case g.round == RoundShowdown:
		for _, p := range g.playersAfter(g.dealer) {
			if p.Status == StatusActive || p.Status == StatusAllIn {
				return p
			}
		}
	}

	return nil
}

// nextToActInBettingRound finds the first active player, clockwise from the last player to
// act, who has not acted voluntarily this round or has not matched the largest bet.
// Posting a blind does not count as acting, which gives the big blind its option.
func (g *Game) nextToActInBettingRound() *Player {
	bm := g.betManager()
	largest := bm.GetLargestBet()

	acted := make(map[string]bool)
	anchor := 0
	for _, t := range turnsForRound(g.turns, g.round) {
		if t.isVoluntary() {
			acted[t.PlayerID] = true
			anchor = t.Seat
		}
	}

	if anchor == 0 {
		if g.round == RoundPreFlop {
			anchor = g.bigBlindSeat()
		} else {
			anchor = g.dealer
		}
	}

	canAct := make([]*Player, 0, len(g.seats))
	for _, p := range g.playersAfter(anchor) {
		if p.Status == StatusActive {
			canAct = append(canAct, p)
		}
	}

	// everybody else is all-in, the last player only acts if they are facing a bet
	if len(canAct) == 1 && bm.TotalBetsForPlayer(canAct[0].Address).GTE(largest) {
		return nil
	}

	for _, p := range canAct {
		if !acted[p.Address] || bm.TotalBetsForPlayer(p.Address).LT(largest) {
			return p
		}
	}

	return nil
}

// advance moves the hand forward until somebody has to act or the hand is over
func (g *Game) advance() error {
	for {
		switch {
		case g.round.IsBettingRound():
			if live := g.livePlayers(); len(live) == 1 {
				return g.finishUncontested(live[0])
			}

			if g.nextToAct() != nil {
				return nil
			}

			if err := g.nextRound(); err != nil {
				return err
			}
		case g.round == RoundShowdown:
			if live := g.livePlayers(); len(live) == 1 {
				return g.finishUncontested(live[0])
			}

			if g.nextToAct() != nil {
				return nil
			}

			return g.resolveShowdown()
		default:
			return nil
		}
	}
}

func (g *Game) nextRound() error {
	if g.round == RoundRiver {
		g.round = RoundShowdown
		return nil
	}

	g.round++
	return g.dealCommunityCards(g.round.communityCards())
}

// dealCommunityCards deals up to count community cards, burning before each street
func (g *Game) dealCommunityCards(count int) error {
	for len(g.communityCards) < count {
		if n := len(g.communityCards); n == 0 || n >= 3 {
			if _, err := g.deck.Draw(); err != nil {
				return err
			}
		}

		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.communityCards = append(g.communityCards, card)
	}

	return nil
}

// dealHoleCards deals two cards to every player in the hand, starting with the small blind
func (g *Game) dealHoleCards() error {
	sb := g.smallBlindSeat()
	order := make([]*Player, 0, len(g.seats))
	for _, p := range g.playersAfter(sb - 1) {
		if p.Status == StatusActive || p.Status == StatusAllIn {
			order = append(order, p)
		}
	}

	if !g.deck.CanDraw(len(order)*2 + 8) {
		return deck.ErrEndOfDeck
	}

	for i := 0; i < 2; i++ {
		for _, p := range order {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.HoleCards = append(p.HoleCards, card)
		}
	}

	g.round = RoundPreFlop
	return nil
}

// contributions returns what everybody put into the pot this hand, in log order
func (g *Game) contributions() []potmanager.Contribution {
	index := make(map[string]int)
	contributions := make([]potmanager.Contribution, 0)
	for _, t := range g.turns {
		if !t.Action.MovesChips() {
			continue
		}

		i, ok := index[t.PlayerID]
		if !ok {
			p := g.playerByAddress(t.PlayerID)
			contributions = append(contributions, potmanager.Contribution{
				ID:     t.PlayerID,
				Amount: sdkmath.ZeroUint(),
				Folded: p == nil || !p.Status.isLive(),
			})
			i = len(contributions) - 1
			index[t.PlayerID] = i
		}

		contributions[i].Amount = contributions[i].Amount.Add(t.Amount)
	}

	return contributions
}

func (g *Game) finishUncontested(winner *Player) error {
	if err := g.dealCommunityCards(5); err != nil {
		return err
	}

	won := g.pot
	winner.Chips = winner.Chips.Add(won)
	g.finishHand(map[string]sdkmath.Uint{winner.Address: won}, nil)
	return nil
}

func (g *Game) resolveShowdown() error {
	pots := potmanager.CalculatePots(g.contributions())

	wm := potmanager.NewWinManager()
	hands := make(map[string]string)
	for _, p := range g.livePlayers() {
		cards := append(append([]deck.Card{}, p.HoleCards...), g.communityCards...)
		result, err := g.evaluator.Evaluate(cards)
		if err != nil {
			return fmt.Errorf("could not evaluate the hand of %s: %w", p.Address, err)
		}

		wm.AddParticipant(p.Address, result.Strength)
		hands[p.Address] = result.Description
	}

	order := make([]string, 0, len(g.seats))
	for _, p := range g.playersAfter(g.dealer) {
		order = append(order, p.Address)
	}

	winnings, err := pots.Distribute(wm.GetSortedTiers(), order)
	if err != nil {
		return err
	}

	for address, amount := range winnings {
		p := g.playerByAddress(address)
		p.Chips = p.Chips.Add(amount)
	}

	g.finishHand(winnings, hands)
	return nil
}

// finishHand records the results, settles eliminations, and ends the hand
func (g *Game) finishHand(winnings map[string]sdkmath.Uint, hands map[string]string) {
	results := make([]Result, 0, len(g.seats))
	for _, p := range g.Players() {
		if len(p.HoleCards) == 0 && !g.contributed(p) {
			continue
		}

		result := Result{
			PlayerID: p.Address,
			Seat:     p.Seat,
			Amount:   sdkmath.ZeroUint(),
			Hand:     hands[p.Address],
			Payout:   sdkmath.ZeroUint(),
		}

		switch amount, ok := winnings[p.Address]; {
		case ok && !amount.IsZero():
			result.Outcome = OutcomeWon
			result.Amount = amount
		case p.Status.isLive():
			result.Outcome = OutcomeLost
		default:
			result.Outcome = OutcomeFolded
		}

		results = append(results, result)
	}

	g.results = results
	g.pot = sdkmath.ZeroUint()
	g.round = RoundEnd
	g.settleBusts()

	g.log().WithFields(logrus.Fields{
		"hand":    g.handNumber,
		"results": len(g.results),
	}).Info("hand complete")
}

func (g *Game) contributed(p *Player) bool {
	for _, t := range g.turns {
		if t.PlayerID == p.Address && t.Action.MovesChips() {
			return true
		}
	}

	return false
}

// settleBusts marks players without chips as busted. In a sit-and-go the smaller starting
// stack finishes lower, and the last player standing is paid first place.
func (g *Game) settleBusts() {
	busting := make([]*Player, 0)
	for _, p := range g.Players() {
		if p.Chips.IsZero() && p.Status != StatusBusted {
			busting = append(busting, p)
		}
	}

	if g.options.Type == GameTypeCash {
		for _, p := range busting {
			p.Status = StatusBusted
			g.results = append(g.results, Result{
				PlayerID: p.Address,
				Seat:     p.Seat,
				Outcome:  OutcomeBusted,
				Amount:   sdkmath.ZeroUint(),
				Payout:   sdkmath.ZeroUint(),
			})
		}

		return
	}

	stacks := make(map[string]sdkmath.Uint, len(busting))
	for _, c := range g.contributions() {
		stacks[c.ID] = c.Amount
	}

	sort.SliceStable(busting, func(i, j int) bool {
		return orZero(stacks[busting[i].Address]).LT(orZero(stacks[busting[j].Address]))
	})

	pm := g.payoutManager()
	for _, p := range busting {
		place := pm.CurrentPlace()
		g.eliminate(p, place, pm.CalculatePayout(place))
		g.results = append(g.results, Result{
			PlayerID: p.Address,
			Seat:     p.Seat,
			Outcome:  OutcomeBusted,
			Amount:   sdkmath.ZeroUint(),
			Place:    p.Place,
			Payout:   p.Payout,
		})
	}

	if pm.CurrentPlace() != 1 {
		return
	}

	for _, p := range g.Players() {
		if p.Status != StatusBusted && p.Place == 0 {
			p.Place = 1
			p.Payout = pm.CalculatePayout(1)
			g.results = append(g.results, Result{
				PlayerID: p.Address,
				Seat:     p.Seat,
				Outcome:  OutcomeChampion,
				Amount:   sdkmath.ZeroUint(),
				Place:    1,
				Payout:   p.Payout,
			})
		}
	}
}
