package deck

import (
	"github.com/arcanaland/klondike/internal/card"
)

// Size is the number of cards in a standard deck
const Size = card.NumSuits * card.NumRanks

// Deck is a standard 52-card deck. Position order is the deal order.
type Deck [Size]card.Card

// New returns an ordered deck: Clubs A..K, Hearts A..K, Spades A..K,
// Diamonds A..K.
func New() Deck {
	var d Deck
	for i := range d {
		d[i] = card.MustNew(card.Suit(i/card.NumRanks), card.Rank(i%card.NumRanks))
	}
	return d
}

// Cards returns the cards as a slice sharing the deck's storage
func (d *Deck) Cards() []card.Card {
	return d[:]
}

// Index returns the position of c in the deck, or -1
func (d *Deck) Index(c card.Card) int {
	for i, dc := range d {
		if dc == c {
			return i
		}
	}
	return -1
}
