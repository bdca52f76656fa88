package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"pokervm/pkg/deck"
)

// LogMessage is the format a table sends log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []string    `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

// Response is a container for a message sent directly to one client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from clients submitting an action
type PayloadIn struct {
	Action string `json:"action"`
	// Index is optional for clients of the server, which assigns the next index when it is zero
	Index int `json:"index"`
	// Amount is a base-10 integer string so it survives values larger than 2^53
	Amount string `json:"amount"`
	Data   string `json:"data"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}
