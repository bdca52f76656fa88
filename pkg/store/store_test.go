package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokervm/pkg/db"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/playable/poker/texasholdem"
)

var cbg = context.Background()

func TestMemory(t *testing.T) {
	runStoreTests(t, NewMemory())
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("POKERVM_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("POKERVM_TEST_PG_DSN is not set")
	}

	dbh, err := db.Open(dsn)
	require.NoError(t, err)
	defer dbh.Close()

	require.NoError(t, db.Migrate(dbh, "../../sql"))
	runStoreTests(t, NewPostgres(dbh))
}

func lastTurn(state *texasholdem.GameState) texasholdem.Turn {
	return state.Actions[len(state.Actions)-1]
}

func runStoreTests(t *testing.T, s Store) {
	a := assert.New(t)

	_, err := s.CreateTable(cbg, "", texasholdem.DefaultOptions())
	a.EqualError(err, "table name is required")

	tbl, err := s.CreateTable(cbg, "Friday Night", texasholdem.DefaultOptions())
	require.NoError(t, err)
	a.NotEmpty(tbl.UUID)
	a.False(tbl.Created.IsZero())

	found, err := s.GetTableByUUID(cbg, tbl.UUID)
	require.NoError(t, err)
	a.Equal("Friday Night", found.Name)
	a.Equal("100", found.Options.MinBuyIn.String())
	a.Equal(texasholdem.GameTypeCash, found.Options.Type)

	_, err = s.GetTableByUUID(cbg, uuid.New().String())
	a.Equal(sql.ErrNoRows, err)
	_, err = s.GetTableByUUID(cbg, "not-a-uuid")
	a.Equal(sql.ErrNoRows, err)

	tables, err := s.GetTables(cbg, 0, 100)
	a.NoError(err)
	var listed bool
	for _, t := range tables {
		listed = listed || t.UUID == tbl.UUID
	}
	a.True(listed)

	_, err = s.LoadState(cbg, tbl.UUID)
	a.Equal(sql.ErrNoRows, err)

	game, err := texasholdem.NewGame(logrus.StandardLogger(), tbl.UUID, tbl.Options)
	require.NoError(t, err)

	buyIn := sdkmath.NewUint(100)
	require.NoError(t, game.PerformAction("p1", action.Join, 1, &buyIn, "seat=1"))
	state := game.State()
	a.NoError(s.SaveAction(cbg, tbl.UUID, lastTurn(state), state))
	a.Equal(ErrDuplicateAction, s.SaveAction(cbg, tbl.UUID, lastTurn(state), state))

	require.NoError(t, game.PerformAction("p2", action.Join, 2, &buyIn, "seat=2"))
	state = game.State()
	a.NoError(s.SaveAction(cbg, tbl.UUID, lastTurn(state), state))

	loaded, err := s.LoadState(cbg, tbl.UUID)
	require.NoError(t, err)
	a.Equal(2, loaded.LastIndex)
	want, _ := state.Hash()
	got, _ := loaded.Hash()
	a.Equal(want, got)

	turns, err := s.GetActions(cbg, tbl.UUID, 0)
	a.NoError(err)
	if a.Len(turns, 2) {
		a.Equal("p1", turns[0].PlayerID)
		a.Equal("p2", turns[1].PlayerID)
		a.Equal(action.Join, turns[1].Action)
		a.Equal("100", turns[1].Amount.String())
		a.Equal("seat=2", turns[1].Data)
	}

	turns, err = s.GetActions(cbg, tbl.UUID, 1)
	a.NoError(err)
	a.Len(turns, 1)

	results := []texasholdem.Result{{
		PlayerID: "p1",
		Seat:     1,
		Outcome:  texasholdem.OutcomeWon,
		Amount:   sdkmath.NewUint(4),
		Payout:   sdkmath.ZeroUint(),
	}}
	a.NoError(s.RecordHand(cbg, tbl.UUID, 1, results))
	a.NoError(s.RecordHand(cbg, tbl.UUID, 2, nil))

	hands, err := s.GetHands(cbg, tbl.UUID)
	a.NoError(err)
	if a.Len(hands, 2) {
		a.Equal(1, hands[0].HandNumber)
		a.Equal("4", hands[0].Results[0].Amount.String())
		a.Equal(2, hands[1].HandNumber)
	}
}

func TestMemory_GetTables(t *testing.T) {
	a := assert.New(t)
	m := NewMemory()

	start := time.Unix(1700000000, 0)
	names := []string{"one", "two", "three"}
	for i, name := range names {
		created := start.Add(time.Duration(i) * time.Minute)
		m.now = func() time.Time { return created }
		_, err := m.CreateTable(cbg, name, texasholdem.DefaultOptions())
		a.NoError(err)
	}

	tables, err := m.GetTables(cbg, 0, 2)
	a.NoError(err)
	if a.Len(tables, 2) {
		a.Equal("three", tables[0].Name)
		a.Equal("two", tables[1].Name)
	}

	tables, err = m.GetTables(cbg, 2, 2)
	a.NoError(err)
	if a.Len(tables, 1) {
		a.Equal("one", tables[0].Name)
	}

	tables, err = m.GetTables(cbg, 5, 2)
	a.NoError(err)
	a.Len(tables, 0)
}

func TestMemory_unknownTable(t *testing.T) {
	a := assert.New(t)
	m := NewMemory()

	a.Equal(sql.ErrNoRows, m.SaveAction(cbg, "nope", texasholdem.Turn{}, nil))
	a.Equal(sql.ErrNoRows, m.RecordHand(cbg, "nope", 1, nil))

	hands, err := m.GetHands(cbg, "nope")
	a.NoError(err)
	a.Len(hands, 0)
}

func TestValidateTableName(t *testing.T) {
	a := assert.New(t)
	a.NoError(validateTableName("table"))
	a.EqualError(validateTableName(""), "table name is required")

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	a.EqualError(validateTableName(string(long)), "table name cannot be longer than 64 characters")
}
