package texasholdem

import (
	sdkmath "cosmossdk.io/math"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/playable/poker/action"
)

// table is everything the actions may query or change on a Game
type table interface {
	currentRound() Round
	gameOptions() Options
	log() logrus.FieldLogger

	nextToAct() *Player
	livePlayers() []*Player
	betManager() *BetManager
	handTurns() []Turn
	payoutManager() *PayoutManager

	playerAt(seat int) *Player
	emptySeat() int
	smallBlindSeat() int
	bigBlindSeat() int
	hasPosted(kind action.Action) bool
	hasPostedBlind(p *Player) bool
	playersInHand() int
	handInProgress() bool
	tournamentStarted() bool
	tournamentOver() bool

	commit(p *Player, req ActionRequest, amount sdkmath.Uint)
	seatPlayer(p *Player)
	removePlayer(p *Player)
	eliminate(p *Player, place int, payout sdkmath.Uint)
	dealHoleCards() error
	startNewHand(seed *int64)
}

var _ table = (*Game)(nil)
