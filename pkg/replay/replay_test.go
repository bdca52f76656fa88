package replay

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokervm/pkg/playable/poker/texasholdem"
)

func load(t *testing.T, filename string) *Log {
	t.Helper()

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	l, err := Load(file)
	require.NoError(t, err)
	return l
}

func TestRun_yaml(t *testing.T) {
	a := assert.New(t)
	l := load(t, "testdata/heads_up.yaml")
	a.Equal("table-1", l.Table)
	a.Equal(9, l.Options.MaxPlayers, "options missing from the log use the defaults")
	a.Len(l.Actions, 7)

	game, err := Run(logrus.StandardLogger(), l)
	require.NoError(t, err)

	state := game.State()
	a.Equal(2, state.HandNumber)
	a.Equal(7, state.LastIndex)
	a.Equal(int64(1700000010), state.LastActivity)
	a.Equal(int64(42), state.Deck.Seed)
	a.Equal(texasholdem.RoundAnte, state.Round)
	if a.Len(state.Players, 2) {
		a.Equal("99", state.Players[0].Chips.String())
		a.Equal("101", state.Players[1].Chips.String())
	}
}

func TestRun_json(t *testing.T) {
	a := assert.New(t)
	l := load(t, "testdata/heads_up.json")
	a.Equal("100", func() string {
		opts, _ := l.Options.Options()
		return opts.MinBuyIn.String()
	}())

	game, err := Run(logrus.StandardLogger(), l)
	require.NoError(t, err)
	a.Equal(2, game.LastIndex())
	a.Equal(int64(1700000001), game.State().LastActivity)
}

func TestRun_illegalAction(t *testing.T) {
	a := assert.New(t)
	l := load(t, "testdata/out_of_turn.yaml")
	a.Equal(defaultTable, l.Table)

	game, err := Run(logrus.StandardLogger(), l)
	a.Error(err)
	a.True(strings.HasPrefix(err.Error(), "action #3 "), err.Error())
	a.True(texasholdem.IsIllegalAction(err))
	a.Equal(2, game.LastIndex(), "the game is left at the last accepted action")

	l.Actions[2].Action = "shuffle"
	_, err = Run(logrus.StandardLogger(), l)
	a.EqualError(err, "action #3: unknown action")

	l.Options.Type = "omaha"
	_, err = Run(logrus.StandardLogger(), l)
	a.EqualError(err, "unknown game type: omaha")
}

func TestVerify(t *testing.T) {
	a := assert.New(t)
	l := load(t, "testdata/heads_up.yaml")

	hash, err := Verify(logrus.StandardLogger(), l)
	a.NoError(err)
	a.Len(hash, 64)

	game, err := Run(logrus.StandardLogger(), l)
	require.NoError(t, err)
	expected, _ := game.State().Hash()
	a.Equal(expected, hash)

	_, err = Verify(logrus.StandardLogger(), load(t, "testdata/out_of_turn.yaml"))
	a.Error(err)
}

func TestLoad_invalid(t *testing.T) {
	_, err := Load(strings.NewReader("actions: ["))
	assert.Error(t, err)
}
