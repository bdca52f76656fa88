package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player, or the table on a player's behalf, can take
type Action string

// player actions
const (
	SmallBlind Action = "post-small-blind"
	BigBlind   Action = "post-big-blind"
	Fold       Action = "fold"
	Check      Action = "check"
	Bet        Action = "bet"
	Call       Action = "call"
	Raise      Action = "raise"
	AllIn      Action = "all-in"
	Show       Action = "show"
	Muck       Action = "muck"
)

// non-player actions
const (
	Join    Action = "join"
	Leave   Action = "leave"
	Deal    Action = "deal"
	NewHand Action = "new-hand"
	SitOut  Action = "sit-out"
	SitIn   Action = "sit-in"
)

var names = map[Action]string{
	SmallBlind: "Small Blind",
	BigBlind:   "Big Blind",
	Fold:       "Fold",
	Check:      "Check",
	Bet:        "Bet",
	Call:       "Call",
	Raise:      "Raise",
	AllIn:      "All-In",
	Show:       "Show",
	Muck:       "Muck",
	Join:       "Join",
	Leave:      "Leave",
	Deal:       "Deal",
	NewHand:    "New Hand",
	SitOut:     "Sit Out",
	SitIn:      "Sit In",
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := names[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	if name, ok := names[a]; ok {
		return name
	}

	return string(a)
}

// IsValid returns true if the action is known
func (a Action) IsValid() bool {
	_, ok := names[a]
	return ok
}

// IsPlayerAction returns true for actions that are part of the betting or showdown flow
func (a Action) IsPlayerAction() bool {
	switch a {
	case SmallBlind, BigBlind, Fold, Check, Bet, Call, Raise, AllIn, Show, Muck:
		return true
	}

	return false
}

// MovesChips returns true if the action puts chips into the pot
func (a Action) MovesChips() bool {
	switch a {
	case SmallBlind, BigBlind, Bet, Call, Raise, AllIn:
		return true
	}

	return false
}

// IsBlind returns true for the forced bets
func (a Action) IsBlind() bool {
	return a == SmallBlind || a == BigBlind
}

type actionJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(actionJSON{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON accepts either the bare identifier or the encoded object
func (a *Action) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		var obj actionJSON
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		id = obj.ID
	}

	act, err := FromString(id)
	if err != nil {
		return err
	}

	*a = act
	return nil
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount string) string {
	switch a {
	case SmallBlind:
		return fmt.Sprintf("posted the small blind of ${%s}", amount)
	case BigBlind:
		return fmt.Sprintf("posted the big blind of ${%s}", amount)
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%s}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%s}", amount)
	case Raise:
		return fmt.Sprintf("raised by ${%s}", amount)
	case AllIn:
		return fmt.Sprintf("went all-in for ${%s}", amount)
	case Show:
		return "showed their cards"
	case Muck:
		return "mucked"
	case Join:
		return fmt.Sprintf("joined the table with ${%s}", amount)
	case Leave:
		return fmt.Sprintf("left the table with ${%s}", amount)
	case Deal:
		return "dealt the cards"
	case NewHand:
		return "started a new hand"
	case SitOut:
		return "sat out"
	case SitIn:
		return "sat back in"
	}

	return ""
}
