package deck

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/rand"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	Seed  int64  `json:"seed"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{Seed: -1}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the deck and shuffles it with the provided seed.
// The same seed always produces the same order.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	d.buildDeck()
	d.Seed = seed

	rng := rand.New(rand.NewSource(seed)) // nolint:gosec
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := rng.Intn(j + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// SeedFor derives a non-negative shuffle seed from a table identifier and hand number
func SeedFor(table string, hand int) int64 {
	hash := sha256.New()
	_, _ = hash.Write([]byte(table))

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(hand))
	_, _ = hash.Write(buf[:])

	sum := hash.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) & 0x7fffffffffffffff)
}

// HashCode returns a SHA-256 hash code of the remaining cards
func (d *Deck) HashCode() string {
	hash := sha256.New()
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.Code()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a deep copy of the deck
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return &Deck{Cards: cards, Seed: d.Seed}
}
