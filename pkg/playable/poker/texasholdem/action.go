package texasholdem

import (
	"regexp"
	"strconv"

	sdkmath "cosmossdk.io/math"
	"pokervm/pkg/playable/poker/action"
)

// ActionRequest is one submission to the engine
type ActionRequest struct {
	Address string        `json:"address"`
	Action  action.Action `json:"action"`
	// Index must be strictly greater than the index of the last accepted action
	Index  int           `json:"index"`
	Amount *sdkmath.Uint `json:"amount,omitempty"`
	Data   string        `json:"data,omitempty"`
	// Timestamp is in unix seconds. When zero, the game clock is used.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// Range is the inclusive amount an action accepts
type Range struct {
	Min sdkmath.Uint `json:"min"`
	Max sdkmath.Uint `json:"max"`
}

func exactly(amount sdkmath.Uint) Range {
	return Range{Min: amount, Max: amount}
}

// LegalAction is an action a player may currently take
type LegalAction struct {
	Action action.Action `json:"action"`
	Min    sdkmath.Uint  `json:"min"`
	Max    sdkmath.Uint  `json:"max"`
}

// Action is the verify/execute contract shared by every action kind.
// verify never mutates; execute verifies again before changing anything.
type Action interface {
	Kind() action.Action
	verify(t table, p *Player, req ActionRequest) (Range, error)
	execute(t table, p *Player, req ActionRequest) error
}

// actions is every registered action, in the order legal actions are reported
var actions = []Action{
	smallBlindAction{},
	bigBlindAction{},
	foldAction{},
	checkAction{},
	callAction{},
	betAction{},
	raiseAction{},
	allInAction{},
	showAction{},
	muckAction{},
	dealAction{},
	newHandAction{},
	joinAction{},
	leaveAction{},
	sitOutAction{},
	sitInAction{},
}

func actionFor(kind action.Action) (Action, bool) {
	for _, a := range actions {
		if a.Kind() == kind {
			return a, true
		}
	}

	return nil, false
}

// shared checks

func requireRound(kind action.Action, t table, rounds ...Round) error {
	current := t.currentRound()
	for _, r := range rounds {
		if current == r {
			return nil
		}
	}

	return newIllegalAction(kind, CategorySequencing, "%s is not allowed during the %s round", kind, current)
}

func requireBettingRound(kind action.Action, t table) error {
	if !t.currentRound().IsBettingRound() {
		return newIllegalAction(kind, CategorySequencing, "%s is not allowed during the %s round", kind, t.currentRound())
	}

	return nil
}

func requireStatus(kind action.Action, p *Player, statuses ...PlayerStatus) error {
	for _, s := range statuses {
		if p.Status == s {
			return nil
		}
	}

	if p.Status == StatusBusted {
		return newIllegalAction(kind, CategoryIntegrity, "%s is not allowed, you have been eliminated", kind)
	}

	return newIllegalAction(kind, CategorySequencing, "%s is not allowed while %s", kind, p.Status)
}

func requireTurn(kind action.Action, t table, p *Player) error {
	if t.nextToAct() != p {
		return wrapIllegalAction(kind, CategorySequencing, ErrNotYourTurn)
	}

	return nil
}

// bettingChecks applies the checks every betting action shares
func bettingChecks(kind action.Action, t table, p *Player) error {
	if err := requireBettingRound(kind, t); err != nil {
		return err
	}

	if err := requireStatus(kind, p, StatusActive); err != nil {
		return err
	}

	return requireTurn(kind, t, p)
}

// checkAmount validates a requested amount against the range.
// A missing amount is only accepted when the range allows a single value.
func checkAmount(kind action.Action, r Range, amount *sdkmath.Uint) (sdkmath.Uint, error) {
	if amount == nil || isUnset(*amount) {
		if r.Min.Equal(r.Max) {
			return r.Min, nil
		}

		return zero, newIllegalAction(kind, CategoryMalformed, "an amount between %s and %s is required", r.Min, r.Max)
	}

	if amount.LT(r.Min) || amount.GT(r.Max) {
		if r.Min.Equal(r.Max) {
			return zero, newIllegalAction(kind, CategoryMalformed, "amount must be %s", r.Min)
		}

		return zero, newIllegalAction(kind, CategoryMalformed, "amount must be between %s and %s", r.Min, r.Max)
	}

	return *amount, nil
}

var seatRx = regexp.MustCompile(`^seat=([1-9][0-9]*)\z`)

// parseSeat parses the strict "seat=<n>" format
func parseSeat(data string, maxPlayers int) (int, error) {
	match := seatRx.FindStringSubmatch(data)
	if match == nil {
		return 0, wrapIllegalAction(action.Join, CategoryMalformed, ErrInvalidSeatFormat)
	}

	seat, err := strconv.Atoi(match[1])
	if err != nil || seat > maxPlayers {
		return 0, newIllegalAction(action.Join, CategoryMalformed, "seat must be between 1 and %d", maxPlayers)
	}

	return seat, nil
}

var seedRx = regexp.MustCompile(`^seed=(0|[1-9][0-9]*)\z`)

// parseSeed parses the optional "seed=<n>" override of a new hand
func parseSeed(data string) (*int64, error) {
	if data == "" {
		return nil, nil
	}

	match := seedRx.FindStringSubmatch(data)
	if match == nil {
		return nil, newIllegalAction(action.NewHand, CategoryMalformed, `seed must be in the format of "seed=<non-negative integer>"`)
	}

	seed, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return nil, newIllegalAction(action.NewHand, CategoryMalformed, "seed is out of range")
	}

	return &seed, nil
}
