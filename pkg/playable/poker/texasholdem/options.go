package texasholdem

import (
	"encoding/json"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// MaxSeats is the largest table the engine deals to
const MaxSeats = 10

// GameType is the format of the game
type GameType string

// game types
const (
	GameTypeCash      GameType = "cash"
	GameTypeSitAndGo  GameType = "sit-and-go"
	gameTypeUndefined GameType = ""
)

// GameTypeFromString returns a GameType for the given string
func GameTypeFromString(s string) (GameType, error) {
	switch GameType(s) {
	case GameTypeCash, GameTypeSitAndGo:
		return GameType(s), nil
	}

	return gameTypeUndefined, fmt.Errorf("unknown game type: %s", s)
}

func (g GameType) String() string {
	switch g {
	case GameTypeCash:
		return "Cash"
	case GameTypeSitAndGo:
		return "Sit & Go"
	}

	return "Unknown"
}

// UnmarshalJSON validates the game type
func (g *GameType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	gt, err := GameTypeFromString(s)
	if err != nil {
		return err
	}

	*g = gt
	return nil
}

// Options configures a table
type Options struct {
	MinBuyIn   sdkmath.Uint `json:"minBuyIn"`
	MaxBuyIn   sdkmath.Uint `json:"maxBuyIn"`
	MinPlayers int          `json:"minPlayers"`
	MaxPlayers int          `json:"maxPlayers"`
	SmallBlind sdkmath.Uint `json:"smallBlind"`
	BigBlind   sdkmath.Uint `json:"bigBlind"`
	// Timeout is the number of seconds a player has to act. Zero disables it.
	Timeout int      `json:"timeout"`
	Type    GameType `json:"type"`
}

// DefaultOptions returns the default options for a cash table
func DefaultOptions() Options {
	return Options{
		MinBuyIn:   sdkmath.NewUint(100),
		MaxBuyIn:   sdkmath.NewUint(1000),
		MinPlayers: 2,
		MaxPlayers: 9,
		SmallBlind: sdkmath.NewUint(1),
		BigBlind:   sdkmath.NewUint(2),
		Timeout:    30,
		Type:       GameTypeCash,
	}
}

// BuyIn is the tournament entry fee. Sit-and-Go tables have a single buy-in.
func (o Options) BuyIn() sdkmath.Uint {
	return o.MinBuyIn
}

// Validate returns an error if the options cannot be used to create a table
func (o Options) Validate() error {
	return validateOptions(o)
}

func validateOptions(opts Options) error {
	if isUnset(opts.MinBuyIn) || isUnset(opts.MaxBuyIn) || isUnset(opts.SmallBlind) || isUnset(opts.BigBlind) {
		return errors.New("buy-in and blind amounts are required")
	}

	if opts.SmallBlind.IsZero() {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind.LT(opts.SmallBlind) {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.MinBuyIn.LT(opts.BigBlind) {
		return errors.New("minimum buy-in must be >= the big blind")
	}

	if opts.MaxBuyIn.LT(opts.MinBuyIn) {
		return errors.New("maximum buy-in must be >= the minimum buy-in")
	}

	if opts.Type == GameTypeSitAndGo && !opts.MaxBuyIn.Equal(opts.MinBuyIn) {
		return errors.New("a sit-and-go must have the same minimum and maximum buy-in")
	}

	if opts.MinPlayers < 2 {
		return errors.New("minimum players must be >= 2")
	}

	if opts.MaxPlayers < opts.MinPlayers {
		return errors.New("maximum players must be >= minimum players")
	}

	if opts.MaxPlayers > MaxSeats {
		return fmt.Errorf("maximum players must be <= %d", MaxSeats)
	}

	if opts.Timeout < 0 {
		return errors.New("timeout must be >= 0")
	}

	if _, err := GameTypeFromString(string(opts.Type)); err != nil {
		return err
	}

	return nil
}
