package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return rank + suit
}

// Code returns the compact representation of the card, i.e., 14c for the Ace of Clubs
func (c Card) Code() string {
	return fmt.Sprintf("%d%s", c.Rank, string(c.Suit)[:1])
}

// IsValid returns true if the card could exist in a standard deck
func (c Card) IsValid() bool {
	if c.Rank < 2 || c.Rank > Ace {
		return false
	}

	switch c.Suit {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}

	return false
}

// MarshalText encodes the card as its code
func (c Card) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot encode invalid card %+v", c)
	}

	return []byte(c.Code()), nil
}

// UnmarshalText decodes a card code
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

var cardRx = regexp.MustCompile(`^([2-9]|1[0-4])([cdhs])\z`)

// ParseCard parses a card in the format of <rank><suit> where rank is 2 through 14 and suit is one of [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	rank, _ := strconv.Atoi(match[1])

	var suit Suit
	switch match[2] {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString is like ParseCard, but panics on a bad card. It is meant for tests and fixtures.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will return a slice of cards from a comma-separated list of codes
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	codes := strings.Split(s, ",")
	cards := make([]Card, len(codes))
	for i, code := range codes {
		cards[i] = CardFromString(code)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.Code()
	}

	return strings.Join(c, ",")
}
