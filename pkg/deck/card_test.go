package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♡", Card{Rank: 2, Suit: Hearts}.String())
	a.Equal("J♣", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("K♠", Card{Rank: King, Suit: Spades}.String())
	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("14c")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Clubs}, card)

	card, err = ParseCard("10h")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Hearts}, card)

	for _, bad := range []string{"", "1c", "15c", "14x", "14C", "ac", " 2c"} {
		_, err := ParseCard(bad)
		a.Error(err, bad)
	}

	a.Panics(func() { CardFromString("nope") })
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13d,14s")
	assert.Equal(t, []Card{{2, Clubs}, {King, Diamonds}, {Ace, Spades}}, cards)
	assert.Equal(t, "2c,13d,14s", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Card{{Rank: 10, Suit: Spades}})
	a.NoError(err)
	a.Equal(`["10s"]`, string(b))

	var cards []Card
	a.NoError(json.Unmarshal([]byte(`["3d","12h"]`), &cards))
	a.Equal([]Card{{3, Diamonds}, {Queen, Hearts}}, cards)

	a.Error(json.Unmarshal([]byte(`["1d"]`), &cards))

	_, err = json.Marshal(Card{})
	a.Error(err)
}
