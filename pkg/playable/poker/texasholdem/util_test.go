package texasholdem

import (
	"fmt"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokervm/pkg/deck"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/playable/poker/handanalyzer"
)

const testTimestamp = 1700000000

func testOptions() Options {
	opts := DefaultOptions()
	opts.MinBuyIn = sdkmath.NewUint(2)
	opts.MaxBuyIn = sdkmath.NewUint(10000)
	return opts
}

func amt(n uint64) *sdkmath.Uint {
	u := sdkmath.NewUint(n)
	return &u
}

func addr(i int) string {
	return fmt.Sprintf("p%d", i)
}

// setupNewGame seats p1, p2, ... in seats 1, 2, ... with the given stacks
func setupNewGame(opts Options, stacks ...uint64) *Game {
	game, err := NewGame(logrus.StandardLogger(), "table-1", opts)
	if err != nil {
		panic(err)
	}

	game.SetClock(func() time.Time {
		return time.Unix(testTimestamp, 0)
	})

	for i, stack := range stacks {
		err := game.PerformAction(addr(i+1), action.Join, game.LastIndex()+1, amt(stack), fmt.Sprintf("seat=%d", i+1))
		if err != nil {
			panic(err)
		}
	}

	return game
}

// startHand posts both blinds and deals
func startHand(t *testing.T, game *Game) {
	t.Helper()

	sb := game.playerAt(game.smallBlindSeat())
	assertAction(t, game, sb.Address, action.SmallBlind)
	bb := game.playerAt(game.bigBlindSeat())
	assertAction(t, game, bb.Address, action.BigBlind)
	assertAction(t, game, sb.Address, action.Deal)
}

func assertAction(t *testing.T, game *Game, address string, kind action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	err := game.PerformAction(address, kind, game.LastIndex()+1, nil, "")
	assert.NoError(t, err, msgAndArgs...)
}

func assertActionAndAmount(t *testing.T, game *Game, address string, kind action.Action, amount uint64, msgAndArgs ...interface{}) {
	t.Helper()
	err := game.PerformAction(address, kind, game.LastIndex()+1, amt(amount), "")
	assert.NoError(t, err, msgAndArgs...)
}

func assertActionFailed(t *testing.T, game *Game, address string, kind action.Action, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	before := stateHash(t, game)
	err := game.PerformAction(address, kind, game.LastIndex()+1, nil, "")
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.Equal(t, before, stateHash(t, game), msgAndArgs...)
}

func assertActionFailedAndAmount(t *testing.T, game *Game, address string, kind action.Action, amount uint64, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	before := stateHash(t, game)
	err := game.PerformAction(address, kind, game.LastIndex()+1, amt(amount), "")
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.Equal(t, before, stateHash(t, game), msgAndArgs...)
}

func assertChips(t *testing.T, expected uint64, actual sdkmath.Uint, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, sdkmath.NewUint(expected).String(), actual.String(), msgAndArgs...)
}

func assertTurn(t *testing.T, game *Game, address string) {
	t.Helper()
	p, err := game.CurrentTurn()
	if assert.NoError(t, err) {
		assert.Equal(t, address, p.Address)
	}
}

func player(game *Game, address string) *Player {
	p, ok := game.Player(address)
	if !ok {
		panic(fmt.Sprintf("player %s is not seated", address))
	}

	return p
}

func legalKinds(legal []LegalAction) []action.Action {
	kinds := make([]action.Action, len(legal))
	for i, l := range legal {
		kinds[i] = l.Action
	}

	return kinds
}

func legalAction(legal []LegalAction, kind action.Action) (LegalAction, bool) {
	for _, l := range legal {
		if l.Action == kind {
			return l, true
		}
	}

	return LegalAction{}, false
}

// totalChips is every chip at the table: stacks plus the pot
func totalChips(game *Game) sdkmath.Uint {
	total := game.Pot()
	for _, p := range game.Players() {
		total = total.Add(p.Chips)
	}

	return total
}

// rankedEvaluator ranks a hand by its first hole card
type rankedEvaluator map[deck.Card]int

func (r rankedEvaluator) Evaluate(cards []deck.Card) (handanalyzer.Result, error) {
	return handanalyzer.Result{
		Strength:    r[cards[0]],
		Description: fmt.Sprintf("rank %d", r[cards[0]]),
	}, nil
}

// rankHands fixes the showdown order once the hole cards are dealt. Higher wins.
func rankHands(game *Game, ranks map[string]int) {
	evaluator := rankedEvaluator{}
	for address, rank := range ranks {
		evaluator[player(game, address).HoleCards[0]] = rank
	}

	game.SetEvaluator(evaluator)
}

func performWithData(game *Game, address string, kind action.Action, amount *sdkmath.Uint, data string) error {
	return game.PerformAction(address, kind, game.LastIndex()+1, amount, data)
}
