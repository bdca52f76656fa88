package playable

import "time"

// Tickable is a game whose state can advance without player input, e.g. when a player runs out of time
type Tickable interface {
	// Tick is called periodically by the dealer with the current time.
	// It returns true if anything changed and clients need the new state.
	Tick(now time.Time) (bool, error)
}
