package room

import (
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/texasholdem"
)

type clientStatePlayer struct {
	Address     string `json:"address"`
	Seat        int    `json:"seat,omitempty"`
	IsConnected bool   `json:"isConnected"`
	IsSeated    bool   `json:"isSeated"`
}

type clientGameState struct {
	State        *texasholdem.GameState    `json:"state"`
	LegalActions []texasholdem.LegalAction `json:"legalActions"`
	Log          []*playable.LogMessage    `json:"log"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
