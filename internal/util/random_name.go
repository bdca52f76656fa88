package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var moods = []string{
	"Lucky", "Silent", "Reckless", "Patient", "Stubborn", "Cold", "Hot", "Quiet", "Loud", "Crafty", "Tight",
	"Loose", "Brave", "Sneaky", "Steady", "Wild", "Grinning", "Stoic", "Sleepy", "Restless", "Golden", "Velvet",
}

var tableWords = []string{
	"Flop", "Turn", "River", "Kicker", "Ace", "Deuce", "Button", "Blind", "Pot", "Straddle", "Bluff", "Nuts",
	"Rail", "Felt", "Stack", "Showdown", "Muck", "Draw", "Flush", "Boat", "Quads", "Wheel",
}

// GetRandomName returns a random table name, e.g. "Lucky River"
func GetRandomName() string {
	mood := moods[random.Intn(len(moods))]
	word := tableWords[random.Intn(len(tableWords))]

	return fmt.Sprintf("%s %s", mood, word)
}
