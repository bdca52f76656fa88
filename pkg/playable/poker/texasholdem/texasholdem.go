package texasholdem

import (
	"errors"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/deck"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/playable/poker/handanalyzer"
)

// Game is a table of No-Limit Texas Hold'em.
// It is not safe for concurrent use; callers must apply actions one at a time.
type Game struct {
	logger  logrus.FieldLogger
	address string
	options Options

	// seats is a fixed arena, index 0 is seat 1 and nil is an empty seat
	seats []*Player
	// eliminated holds sit-and-go players who left the table after being placed
	eliminated []*Player

	round          Round
	handNumber     int
	dealer         int
	pot            sdkmath.Uint
	communityCards []deck.Card
	deck           *deck.Deck
	// turns is the action log of the current hand
	turns        []Turn
	results      []Result
	lastIndex    int
	lastActivity int64

	clock     func() time.Time
	evaluator handanalyzer.Evaluator
}

// NewGame returns an empty table identified by address
func NewGame(logger logrus.FieldLogger, address string, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if address == "" {
		return nil, errors.New("table address is required")
	}

	g := &Game{
		logger:         logger,
		address:        address,
		options:        opts,
		seats:          make([]*Player, opts.MaxPlayers),
		eliminated:     []*Player{},
		round:          RoundAnte,
		handNumber:     1,
		pot:            sdkmath.ZeroUint(),
		communityCards: []deck.Card{},
		deck:           deck.New(),
		turns:          []Turn{},
		results:        []Result{},
		clock:          time.Now,
		evaluator:      handanalyzer.New(),
	}

	g.deck.Shuffle(deck.SeedFor(address, g.handNumber))
	g.lastActivity = g.clock().Unix()
	return g, nil
}

// SetClock replaces the clock used to timestamp actions that do not carry a timestamp
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
}

// SetEvaluator replaces the showdown evaluator
func (g *Game) SetEvaluator(evaluator handanalyzer.Evaluator) {
	g.evaluator = evaluator
}

// Address returns the table identifier
func (g *Game) Address() string {
	return g.address
}

// Options returns the table options
func (g *Game) Options() Options {
	return g.options
}

// Round returns the current round
func (g *Game) Round() Round {
	return g.round
}

// LastIndex returns the index of the last accepted action
func (g *Game) LastIndex() int {
	return g.lastIndex
}

// Pot returns the chips committed to the current hand
func (g *Game) Pot() sdkmath.Uint {
	return g.pot
}

// PerformAction validates and applies a single action
func (g *Game) PerformAction(address string, kind action.Action, index int, amount *sdkmath.Uint, data string) error {
	return g.Apply(ActionRequest{
		Address: address,
		Action:  kind,
		Index:   index,
		Amount:  amount,
		Data:    data,
	})
}

// Apply validates and applies a single action. An IllegalActionError leaves the game untouched.
func (g *Game) Apply(req ActionRequest) error {
	act, ok := actionFor(req.Action)
	if !ok {
		return wrapIllegalAction(req.Action, CategoryMalformed, ErrUnknownAction)
	}

	if req.Index <= g.lastIndex {
		return wrapIllegalAction(req.Action, CategorySequencing, ErrInvalidIndex)
	}

	p := g.playerByAddress(req.Address)
	if p == nil && req.Action != action.Join {
		return wrapIllegalAction(req.Action, CategorySequencing, ErrPlayerNotFound)
	}

	if err := act.execute(g, p, req); err != nil {
		return err
	}

	return g.advance()
}

// LegalActions returns every action the player could take right now
func (g *Game) LegalActions(address string) []LegalAction {
	p := g.playerByAddress(address)
	req := ActionRequest{Address: address}

	legal := make([]LegalAction, 0)
	for _, act := range actions {
		if p == nil && act.Kind() != action.Join {
			continue
		}

		r, err := act.verify(g, p, req)
		if err != nil {
			continue
		}

		legal = append(legal, LegalAction{
			Action: act.Kind(),
			Min:    r.Min,
			Max:    r.Max,
		})
	}

	return legal
}

// CurrentTurn returns the player who must act next: a blind, a bet, or a showdown decision
func (g *Game) CurrentTurn() (*Player, error) {
	p := g.nextToAct()
	if p == nil {
		return nil, ErrNotBettingRound
	}

	return p, nil
}

// Player returns the seated player with the address
func (g *Game) Player(address string) (*Player, bool) {
	p := g.playerByAddress(address)
	return p, p != nil
}

// Players returns the seated players in seat order
func (g *Game) Players() []*Player {
	players := make([]*Player, 0, len(g.seats))
	for _, p := range g.seats {
		if p != nil {
			players = append(players, p)
		}
	}

	return players
}

func (g *Game) playerByAddress(address string) *Player {
	for _, p := range g.seats {
		if p != nil && p.Address == address {
			return p
		}
	}

	return nil
}

func (g *Game) dealerPositionManager() *DealerPositionManager {
	return NewDealerPositionManager(g.seats, g.dealer)
}

// table implementation

func (g *Game) currentRound() Round {
	return g.round
}

func (g *Game) gameOptions() Options {
	return g.options
}

func (g *Game) log() logrus.FieldLogger {
	return g.logger.WithField("table", g.address)
}

func (g *Game) playerAt(seat int) *Player {
	if seat < 1 || seat > len(g.seats) {
		return nil
	}

	return g.seats[seat-1]
}

func (g *Game) emptySeat() int {
	for i, p := range g.seats {
		if p == nil {
			return i + 1
		}
	}

	return 0
}

// livePlayers returns the players who can still win the hand
func (g *Game) livePlayers() []*Player {
	live := make([]*Player, 0, len(g.seats))
	for _, p := range g.seats {
		if p != nil && p.Status.isLive() {
			live = append(live, p)
		}
	}

	return live
}

func (g *Game) betManager() *BetManager {
	if g.round == RoundPreFlop {
		turns := append(turnsForRound(g.turns, RoundAnte), turnsForRound(g.turns, RoundPreFlop)...)
		return NewBetManager(turns, true)
	}

	return NewBetManager(turnsForRound(g.turns, g.round), false)
}

// handTurns returns the action log of the current hand
func (g *Game) handTurns() []Turn {
	return g.turns
}

// entrants returns every sit-and-go entrant, seated or eliminated
func (g *Game) entrants() []*Player {
	return append(g.Players(), g.eliminated...)
}

func (g *Game) payoutManager() *PayoutManager {
	return NewPayoutManager(g.options.BuyIn(), g.entrants())
}

func (g *Game) postedTurn(kind action.Action) (Turn, bool) {
	for _, t := range g.turns {
		if t.Action == kind {
			return t, true
		}
	}

	return Turn{}, false
}

func (g *Game) hasPosted(kind action.Action) bool {
	_, ok := g.postedTurn(kind)
	return ok
}

func (g *Game) hasPostedBlind(p *Player) bool {
	for _, t := range g.turns {
		if t.Action.IsBlind() && t.PlayerID == p.Address {
			return true
		}
	}

	return false
}

// smallBlindSeat comes from the log once posted, otherwise from the dealer position
func (g *Game) smallBlindSeat() int {
	if t, ok := g.postedTurn(action.SmallBlind); ok {
		return t.Seat
	}

	return g.dealerPositionManager().SmallBlindPosition()
}

func (g *Game) bigBlindSeat() int {
	if t, ok := g.postedTurn(action.BigBlind); ok {
		return t.Seat
	}

	if sb, ok := g.postedTurn(action.SmallBlind); ok {
		// players who joined after the small blind went in are not dealt in
		return g.dealerPositionManager().nextSeat(sb.Seat, func(seat int) bool {
			p := g.playerAt(seat)
			return seat != sb.Seat && p != nil && p.Status == StatusActive
		})
	}

	return g.dealerPositionManager().BigBlindPosition()
}

// playersInHand counts the players who will be dealt in
func (g *Game) playersInHand() int {
	count := 0
	for _, p := range g.seats {
		if p != nil && (p.Status == StatusActive || p.Status == StatusAllIn) {
			count++
		}
	}

	return count
}

// handInProgress is true from the first blind until the hand is resolved
func (g *Game) handInProgress() bool {
	switch g.round {
	case RoundAnte:
		return g.hasPosted(action.SmallBlind)
	case RoundEnd:
		return false
	}

	return true
}

func (g *Game) tournamentStarted() bool {
	return g.options.Type == GameTypeSitAndGo && (g.handNumber > 1 || g.round != RoundAnte || g.hasPosted(action.SmallBlind))
}

func (g *Game) tournamentOver() bool {
	if !g.tournamentStarted() {
		return false
	}

	remaining := 0
	for _, p := range g.seats {
		if p != nil && p.Status != StatusBusted {
			remaining++
		}
	}

	return remaining <= 1
}

func (g *Game) commit(p *Player, req ActionRequest, amount sdkmath.Uint) {
	timestamp := req.Timestamp
	if timestamp == 0 {
		timestamp = g.clock().Unix()
	}

	turn := Turn{
		PlayerID:  req.Address,
		Action:    req.Action,
		Amount:    amount,
		Index:     req.Index,
		Round:     g.round,
		Data:      req.Data,
		Timestamp: timestamp,
	}

	if p != nil {
		turn.Seat = p.Seat
		p.record(turn)
	}

	if req.Action.MovesChips() {
		g.pot = g.pot.Add(amount)
	}

	g.turns = append(g.turns, turn)
	g.lastIndex = req.Index
	g.lastActivity = timestamp

	g.log().WithFields(logrus.Fields{
		"player": req.Address,
		"action": string(req.Action),
		"index":  req.Index,
		"amount": amount.String(),
	}).Debug("applied action")
}

func (g *Game) seatPlayer(p *Player) {
	g.seats[p.Seat-1] = p
	if !g.handInProgress() {
		g.dealer = g.dealerPositionManager().HandlePlayerJoin(p.Seat)
	}
}

func (g *Game) removePlayer(p *Player) {
	if g.seats[p.Seat-1] != p {
		return
	}

	g.seats[p.Seat-1] = nil
	if g.options.Type == GameTypeSitAndGo && p.Status == StatusBusted {
		g.eliminated = append(g.eliminated, p)
	}

	// the button stays put during a hand, and a new hand moves it past the empty seat
	if g.round == RoundAnte && !g.handInProgress() {
		g.dealer = g.dealerPositionManager().HandlePlayerLeave(p.Seat)
	}
}

func (g *Game) eliminate(p *Player, place int, payout sdkmath.Uint) {
	p.Status = StatusBusted
	p.Place = place
	p.Payout = payout
	p.Chips = sdkmath.ZeroUint()
}

func (g *Game) startNewHand(seed *int64) {
	for _, p := range g.seats {
		if p == nil {
			continue
		}

		p.resetForHand()
		switch p.Status {
		case StatusBusted, StatusSittingOut:
		default:
			p.Status = StatusActive
		}
	}

	g.dealer = g.dealerPositionManager().HandleNewHand()
	g.handNumber++
	g.round = RoundAnte
	g.pot = sdkmath.ZeroUint()
	g.communityCards = []deck.Card{}
	g.turns = []Turn{}
	g.results = []Result{}

	s := deck.SeedFor(g.address, g.handNumber)
	if seed != nil {
		s = *seed
	}

	g.deck.Shuffle(s)
}
