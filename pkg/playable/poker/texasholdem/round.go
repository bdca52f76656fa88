package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Round is one phase of a hand
type Round int

// constants for Round
const (
	RoundAnte Round = iota
	RoundPreFlop
	RoundFlop
	RoundTurn
	RoundRiver
	RoundShowdown
	RoundEnd
)

func (r Round) String() string {
	switch r {
	case RoundAnte:
		return "ante"
	case RoundPreFlop:
		return "preflop"
	case RoundFlop:
		return "flop"
	case RoundTurn:
		return "turn"
	case RoundRiver:
		return "river"
	case RoundShowdown:
		return "showdown"
	case RoundEnd:
		return "end"
	}

	return ""
}

// IsBettingRound returns true for PREFLOP through RIVER
func (r Round) IsBettingRound() bool {
	return r >= RoundPreFlop && r <= RoundRiver
}

// communityCards is how many community cards are on the board once the round starts
func (r Round) communityCards() int {
	switch r {
	case RoundFlop:
		return 3
	case RoundTurn:
		return 4
	case RoundRiver, RoundShowdown:
		return 5
	}

	return 0
}

type roundJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MarshalJSON encodes JSON
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(roundJSON{
		ID:   int(r),
		Name: r.String(),
	})
}

// UnmarshalJSON decodes the id of an encoded round
func (r *Round) UnmarshalJSON(b []byte) error {
	var rj roundJSON
	if err := json.Unmarshal(b, &rj); err != nil {
		return err
	}

	round := Round(rj.ID)
	if round < RoundAnte || round > RoundEnd {
		return fmt.Errorf("unknown round: %d", rj.ID)
	}

	*r = round
	return nil
}
