package room

import (
	"pokervm/pkg/playable"
)

// logMessageLimit is how many log messages a dealer replays to newly connected clients
const logMessageLimit = 25

// addLogMessages appends messages to the dealer's log, dropping the oldest beyond logMessageLimit
// NOTE: must only be called from the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	if len(messages) == 0 {
		return
	}

	if len(messages) >= logMessageLimit {
		d.logMessages = append([]*playable.LogMessage(nil), messages[len(messages)-logMessageLimit:]...)
		return
	}

	keep := len(d.logMessages)
	if overflow := keep + len(messages) - logMessageLimit; overflow > 0 {
		keep -= overflow
	}

	log := make([]*playable.LogMessage, 0, keep+len(messages))
	log = append(log, d.logMessages[len(d.logMessages)-keep:]...)
	d.logMessages = append(log, messages...)
}
