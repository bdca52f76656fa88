package texasholdem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/action"
)

func TestRequestFromPayload(t *testing.T) {
	a := assert.New(t)

	req, err := RequestFromPayload("p1", &playable.PayloadIn{
		Action: "bet",
		Index:  7,
		Amount: "18446744073709551616",
	})
	a.NoError(err)
	a.Equal("p1", req.Address)
	a.Equal(action.Bet, req.Action)
	a.Equal(7, req.Index)
	if a.NotNil(req.Amount) {
		a.Equal("18446744073709551616", req.Amount.String())
	}

	req, err = RequestFromPayload("p1", &playable.PayloadIn{Action: "join", Index: 1, Data: "seat=3"})
	a.NoError(err)
	a.Nil(req.Amount)
	a.Equal("seat=3", req.Data)
	a.Equal(`#1 p1 Join - "seat=3"`, req.String())

	_, err = RequestFromPayload("p1", &playable.PayloadIn{Action: "dance"})
	a.True(errors.Is(err, ErrUnknownAction))

	_, err = RequestFromPayload("p1", &playable.PayloadIn{Action: "bet", Amount: "-5"})
	a.EqualError(err, "invalid amount: -5")

	_, err = RequestFromPayload("p1", &playable.PayloadIn{Action: "bet", Amount: "ten"})
	a.EqualError(err, "invalid amount: ten")

	_, err = RequestFromPayload("p1", &playable.PayloadIn{Action: "check", Index: -1})
	a.EqualError(err, "index must be >= 0")
}

func TestLogMessages(t *testing.T) {
	a := assert.New(t)
	game := setupNewGame(testOptions(), 100, 100)
	startHand(t, game)

	msgs := LogMessages(game.State().Actions)
	if a.Equal(5, len(msgs)) {
		a.Equal([]string{"p1"}, msgs[0].PlayerIDs)
		a.Equal(int64(testTimestamp), msgs[0].Time.Unix())
		a.NotEmpty(msgs[0].UUID)
		a.Equal("joined the table with ${100}", msgs[0].Message)
		a.Equal("posted the small blind of ${1}", msgs[2].Message)
	}

	a.Equal(0, len(game.ResultLogMessages()), "no results until the hand is over")
}
