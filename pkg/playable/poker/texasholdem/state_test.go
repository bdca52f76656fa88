package texasholdem

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/snapshot"
)

// resume round trips the game through its JSON state
func resume(t *testing.T, game *Game) *Game {
	t.Helper()

	b, err := json.Marshal(game.State())
	if err != nil {
		t.Fatal(err)
	}

	var state GameState
	if err := json.Unmarshal(b, &state); err != nil {
		t.Fatal(err)
	}

	resumed, err := FromState(logrus.StandardLogger(), &state, game.Options())
	if err != nil {
		t.Fatal(err)
	}

	resumed.SetClock(func() time.Time {
		return time.Unix(testTimestamp, 0)
	})

	return resumed
}

func stateHash(t *testing.T, game *Game) string {
	t.Helper()

	hash, err := game.State().Hash()
	if err != nil {
		t.Fatal(err)
	}

	return hash
}

func TestGame_State(t *testing.T) {
	a := assert.New(t)
	game := setupNewGame(testOptions(), 100, 100, 100)
	startHand(t, game)

	state := game.State()
	a.Equal("table-1", state.Address)
	a.Equal(1, state.HandNumber)
	a.Equal(RoundPreFlop, state.Round)
	a.Equal("p1", state.NextToAct)
	a.Equal(6, state.LastIndex)
	a.Equal(int64(testTimestamp), state.LastActivity)
	a.Equal(6, len(state.Actions), "the first hand's log includes the joins")
	a.Equal(3, len(state.Players))
	assertChips(t, 3, state.Pot)

	// the export is a copy
	state.Players[0].Chips = state.Players[0].Chips.AddUint64(1000)
	assertChips(t, 100, player(game, "p1").Chips)

	snapshot.ValidateSnapshot(t, state, 0)
}

func TestGameState_ForPlayer(t *testing.T) {
	a := assert.New(t)
	game := setupNewGame(testOptions(), 100, 100)
	startHand(t, game)

	view := game.State().ForPlayer("p1")
	a.Nil(view.Deck)
	a.Equal(2, len(view.Players[0].HoleCards))
	a.Nil(view.Players[1].HoleCards)
	a.NotNil(game.State().Deck, "only the view is redacted")
	a.Equal(2, len(player(game, "p2").HoleCards))

	assertAction(t, game, "p1", action.Call)
	assertAction(t, game, "p2", action.Check)
	for i := 0; i < 3; i++ {
		assertAction(t, game, "p2", action.Check)
		assertAction(t, game, "p1", action.Check)
	}

	a.Equal(RoundShowdown, game.Round())
	assertAction(t, game, "p2", action.Show)

	// shown cards are public
	view = game.State().ForPlayer("p1")
	a.Equal(2, len(view.Players[1].HoleCards))
	view = game.State().ForPlayer("observer")
	a.Nil(view.Players[0].HoleCards)
	a.Equal(2, len(view.Players[1].HoleCards))
}

func TestFromState(t *testing.T) {
	a := assert.New(t)
	game := setupNewGame(testOptions(), 100, 100, 100)
	startHand(t, game)
	assertActionAndAmount(t, game, "p1", action.Raise, 6)

	resumed := resume(t, game)
	a.Equal(stateHash(t, game), stateHash(t, resumed))
	assertTurn(t, resumed, "p2")

	// both copies play on identically
	for _, g := range []*Game{game, resumed} {
		assertAction(t, g, "p2", action.Call)
		assertAction(t, g, "p3", action.Fold)
		assertActionAndAmount(t, g, "p2", action.Bet, 10)
		assertAction(t, g, "p1", action.Call)
	}

	a.Equal(RoundTurn, resumed.Round())
	a.Equal(stateHash(t, game), stateHash(t, resumed))
	a.Equal(game.State().CommunityCards, resumed.State().CommunityCards)
}

func TestFromState_validation(t *testing.T) {
	a := assert.New(t)
	game := setupNewGame(testOptions(), 100, 100)
	opts := testOptions()

	_, err := FromState(logrus.StandardLogger(), nil, opts)
	a.EqualError(err, "state is required")

	state := game.State()
	state.Deck = nil
	_, err = FromState(logrus.StandardLogger(), state, opts)
	a.EqualError(err, "state is missing the deck")

	state = game.State()
	state.Players[1].Seat = 1
	_, err = FromState(logrus.StandardLogger(), state, opts)
	a.EqualError(err, "seat 1 is occupied more than once")

	state = game.State()
	state.Players[1].Address = "p1"
	_, err = FromState(logrus.StandardLogger(), state, opts)
	a.EqualError(err, "player p1 is seated more than once")

	state = game.State()
	state.Players[1].Seat = 12
	_, err = FromState(logrus.StandardLogger(), state, opts)
	a.EqualError(err, "player p2 is in seat 12, outside of 1-9")

	// options come from the caller, not the state
	opts.MaxPlayers = 2
	resumed, err := FromState(logrus.StandardLogger(), game.State(), opts)
	a.NoError(err)
	a.Equal(2, resumed.Options().MaxPlayers)
}

func TestGame_replayIsDeterministic(t *testing.T) {
	a := assert.New(t)

	play := func() *Game {
		game := setupNewGame(testOptions(), 100, 200, 300)
		startHand(t, game)
		assertActionAndAmount(t, game, "p1", action.Raise, 8)
		assertAction(t, game, "p2", action.AllIn)
		assertAction(t, game, "p3", action.Call)
		assertAction(t, game, "p1", action.Fold)
		for game.Round() == RoundShowdown {
			p, err := game.CurrentTurn()
			if !a.NoError(err) {
				break
			}

			assertAction(t, game, p.Address, action.Show)
		}

		return game
	}

	first, second := play(), play()
	a.Equal(RoundEnd, first.Round())
	a.Equal(stateHash(t, first), stateHash(t, second))
	assertChips(t, 600, totalChips(first))
}
