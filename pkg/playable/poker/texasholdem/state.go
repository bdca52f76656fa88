package texasholdem

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/deck"
	"pokervm/pkg/playable/poker/handanalyzer"
)

// GameState is the exported state of a table. A Game built from it with FromState
// continues exactly where the exporting game left off.
type GameState struct {
	Address        string       `json:"address"`
	Options        Options      `json:"options"`
	HandNumber     int          `json:"handNumber"`
	Round          Round        `json:"round"`
	Players        []*Player    `json:"players"`
	Eliminated     []*Player    `json:"eliminated"`
	Pot            sdkmath.Uint `json:"pot"`
	CommunityCards []deck.Card  `json:"communityCards"`
	Dealer         int          `json:"dealer"`
	SmallBlind     int          `json:"smallBlind"`
	BigBlind       int          `json:"bigBlind"`
	NextToAct      string       `json:"nextToAct,omitempty"`
	LastIndex      int          `json:"lastIndex"`
	LastActivity   int64        `json:"lastActivity"`
	Actions        []Turn       `json:"actions"`
	Results        []Result     `json:"results"`
	Deck           *deck.Deck   `json:"deck,omitempty"`
}

func clonePlayers(players []*Player) []*Player {
	cloned := make([]*Player, len(players))
	for i, p := range players {
		cloned[i] = p.clone()
	}

	return cloned
}

// State exports the full state of the game, including hole cards and the deck
func (g *Game) State() *GameState {
	state := &GameState{
		Address:        g.address,
		Options:        g.options,
		HandNumber:     g.handNumber,
		Round:          g.round,
		Players:        clonePlayers(g.Players()),
		Eliminated:     clonePlayers(g.eliminated),
		Pot:            g.pot,
		CommunityCards: append([]deck.Card{}, g.communityCards...),
		Dealer:         g.dealer,
		SmallBlind:     g.smallBlindSeat(),
		BigBlind:       g.bigBlindSeat(),
		LastIndex:      g.lastIndex,
		LastActivity:   g.lastActivity,
		Actions:        append([]Turn{}, g.turns...),
		Results:        append([]Result{}, g.results...),
		Deck:           g.deck.Clone(),
	}

	if p := g.nextToAct(); p != nil {
		state.NextToAct = p.Address
	}

	return state
}

// ForPlayer returns a copy of the state that only reveals what address is allowed to see:
// their own hole cards and the cards of players who showed. The deck is never included.
func (s *GameState) ForPlayer(address string) *GameState {
	cp := *s
	cp.Deck = nil
	cp.Players = clonePlayers(s.Players)
	for _, p := range cp.Players {
		if p.Address != address && p.Status != StatusShowing {
			p.HoleCards = nil
		}
	}

	return &cp
}

// Hash returns a sha256 digest of the encoded state. Two nodes that applied the same
// action log have the same hash.
func (s *GameState) Hash() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// FromState resumes a game from an exported state using the provided options
func FromState(logger logrus.FieldLogger, state *GameState, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if state == nil {
		return nil, errors.New("state is required")
	}

	if state.Address == "" {
		return nil, errors.New("table address is required")
	}

	if state.Deck == nil {
		return nil, errors.New("state is missing the deck")
	}

	if state.HandNumber < 1 {
		return nil, fmt.Errorf("invalid hand number: %d", state.HandNumber)
	}

	g := &Game{
		logger:         logger,
		address:        state.Address,
		options:        opts,
		seats:          make([]*Player, opts.MaxPlayers),
		eliminated:     clonePlayers(state.Eliminated),
		round:          state.Round,
		handNumber:     state.HandNumber,
		dealer:         state.Dealer,
		pot:            orZero(state.Pot),
		communityCards: append([]deck.Card{}, state.CommunityCards...),
		deck:           state.Deck.Clone(),
		turns:          append([]Turn{}, state.Actions...),
		results:        append([]Result{}, state.Results...),
		lastIndex:      state.LastIndex,
		lastActivity:   state.LastActivity,
		clock:          time.Now,
		evaluator:      handanalyzer.New(),
	}

	addresses := make(map[string]bool)
	for _, p := range clonePlayers(state.Players) {
		if p.Seat < 1 || p.Seat > opts.MaxPlayers {
			return nil, fmt.Errorf("player %s is in seat %d, outside of 1-%d", p.Address, p.Seat, opts.MaxPlayers)
		}

		if g.seats[p.Seat-1] != nil {
			return nil, fmt.Errorf("seat %d is occupied more than once", p.Seat)
		}

		if addresses[p.Address] {
			return nil, fmt.Errorf("player %s is seated more than once", p.Address)
		}

		p.Chips = orZero(p.Chips)
		p.Payout = orZero(p.Payout)
		if p.Actions == nil {
			p.Actions = []Turn{}
		}

		if len(p.Actions) > 0 {
			p.LastAction = &p.Actions[len(p.Actions)-1]
		} else {
			p.LastAction = nil
		}

		addresses[p.Address] = true
		g.seats[p.Seat-1] = p
	}

	if g.dealer < 0 || g.dealer > opts.MaxPlayers {
		return nil, fmt.Errorf("invalid dealer seat: %d", g.dealer)
	}

	return g, nil
}
