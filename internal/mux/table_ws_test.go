package mux

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/texasholdem"
)

var cbg = context.Background()

type wsResponse struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Context string `json:"context"`
}

func readUntil(t *testing.T, conn *websocket.Conn, key string) wsResponse {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var res wsResponse
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatalf("could not read %s: %v", key, err)
		}

		if res.Key == key {
			return res
		}
	}
}

func Test_getTableUUIDWS(t *testing.T) {
	a := assert.New(t)
	ts, pitBoss := newTestServer(t)

	dealer, err := pitBoss.CreateTable(cbg, "Sockets", texasholdem.DefaultOptions())
	require.NoError(t, err)
	path := "/table/" + dealer.Table().UUID + "/ws"

	var errObj errorResponse
	assertGet(t, ts, path, &errObj, 400)
	a.Equal("address is required", errObj.Message)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path + "?address=p1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	readUntil(t, conn, "game")

	require.NoError(t, conn.WriteJSON(playable.PayloadIn{Action: "join", Amount: "100", Data: "seat=1", Context: "ctx-1"}))
	res := readUntil(t, conn, "status")
	a.Equal("OK", res.Value)
	a.Equal("ctx-1", res.Context)

	require.NoError(t, conn.WriteJSON(playable.PayloadIn{Action: "join", Amount: "100", Data: "seat=2", Context: "ctx-2"}))
	res = readUntil(t, conn, "error")
	a.Equal("you are already seated", res.Value)
	a.Equal("ctx-2", res.Context)

	gs, err := dealer.State(cbg, "p1")
	require.NoError(t, err)
	if a.Len(gs.Players, 1) {
		a.Equal("p1", gs.Players[0].Address)
	}
}
