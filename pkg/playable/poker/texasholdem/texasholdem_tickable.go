package texasholdem

import (
	"time"

	"github.com/sirupsen/logrus"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/action"
)

var _ playable.Tickable = (*Game)(nil)

// TimedOut returns true if the player on the clock has used up the per-action timeout
func (g *Game) TimedOut(now time.Time) bool {
	if g.options.Timeout <= 0 {
		return false
	}

	if !g.round.IsBettingRound() && g.round != RoundShowdown {
		return false
	}

	if g.nextToAct() == nil {
		return false
	}

	return now.Unix()-g.lastActivity >= int64(g.options.Timeout)
}

// TimeoutAction returns the action to apply on behalf of a player who timed out:
// a check when it is free, otherwise a fold. At showdown the cards are shown.
// The second return value is false when nobody has timed out.
func (g *Game) TimeoutAction(now time.Time) (ActionRequest, bool) {
	if !g.TimedOut(now) {
		return ActionRequest{}, false
	}

	p := g.nextToAct()
	req := ActionRequest{
		Address:   p.Address,
		Index:     g.lastIndex + 1,
		Timestamp: now.Unix(),
	}

	if g.round == RoundShowdown {
		req.Action = action.Show
		return req, true
	}

	req.Action = action.Check
	if _, err := (checkAction{}).verify(g, p, req); err != nil {
		req.Action = action.Fold
	}

	return req, true
}

// Tick applies the timeout action, if any. The returned bool is true if the state changed.
func (g *Game) Tick(now time.Time) (bool, error) {
	req, ok := g.TimeoutAction(now)
	if !ok {
		return false, nil
	}

	if err := g.Apply(req); err != nil {
		return false, err
	}

	g.log().WithFields(logrus.Fields{
		"player": req.Address,
		"action": string(req.Action),
	}).Info("player timed out")

	return true, nil
}
