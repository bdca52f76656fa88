package handanalyzer

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
	"pokervm/pkg/deck"
)

// ErrWrongCardCount is returned when the analyzer is not given exactly seven cards
var ErrWrongCardCount = errors.New("hand analysis requires exactly seven cards")

// Result is the outcome of analyzing a hand
type Result struct {
	// Strength orders hands. Higher is better and equal strengths tie.
	Strength    int
	Description string
}

// Evaluator can rank a hold'em hand (two hole cards plus the five community cards)
type Evaluator interface {
	Evaluate(cards []deck.Card) (Result, error)
}

// HandAnalyzer is the standard seven-card Evaluator
type HandAnalyzer struct{}

// New returns a new HandAnalyzer
func New() HandAnalyzer {
	return HandAnalyzer{}
}

// Evaluate ranks the best five-card hand out of the seven cards
func (HandAnalyzer) Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) != 7 {
		return Result{}, ErrWrongCardCount
	}

	var hand [7]poker.Card
	for i, card := range cards {
		c, err := convert(card)
		if err != nil {
			return Result{}, err
		}

		hand[i] = c
	}

	description, err := poker.Describe(hand[:])
	if err != nil {
		return Result{}, fmt.Errorf("could not describe hand: %w", err)
	}

	return Result{
		Strength:    int(poker.Eval7(&hand)),
		Description: description,
	}, nil
}

func convert(card deck.Card) (poker.Card, error) {
	var none poker.Card
	var suit int
	switch card.Suit {
	case deck.Clubs:
		suit = 0
	case deck.Diamonds:
		suit = 1
	case deck.Hearts:
		suit = 2
	case deck.Spades:
		suit = 3
	default:
		return none, fmt.Errorf("unknown suit: %q", card.Suit)
	}

	rank := card.Rank
	if rank == deck.Ace {
		rank = 1
	}

	c, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	if err != nil {
		return none, fmt.Errorf("invalid card %s: %w", card.Code(), err)
	}

	return c, nil
}
