package card

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidRank = errors.New("invalid rank")
)

// Suit is one of the four French suits. The ordinals match the deck order.
type Suit uint8

const (
	Clubs Suit = iota
	Hearts
	Spades
	Diamonds
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// Color of a suit
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s < NumSuits
}

// Color returns the color of the suit
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}

// Name returns the plural English name of the suit, e.g. "Clubs"
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Rank runs from Ace (low) to King (high), so Rank+1 is the next higher rank.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks per suit
const NumRanks = 13

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r < NumRanks
}

// Name returns the English name of the rank, e.g. "Queen"
func (r Rank) Name() string {
	names := [NumRanks]string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King",
	}
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return names[r]
}

// Card is an immutable playing card. The zero value is the Ace of Clubs.
type Card struct {
	suit Suit
	rank Rank
}

// New creates a card, rejecting suits and ranks outside the enumerations
func New(s Suit, r Rank) (Card, error) {
	if !s.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, uint8(s))
	}
	if !r.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, uint8(r))
	}
	return Card{suit: s, rank: r}, nil
}

// MustNew is like New but panics on an invalid suit or rank.
// Intended for constants and tests.
func MustNew(s Suit, r Rank) Card {
	c, err := New(s, r)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Color returns the color of the card's suit
func (c Card) Color() Color {
	return c.suit.Color()
}

// Name returns the long name of the card, e.g. "Ten of Diamonds"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.rank.Name(), c.suit.Name())
}

// String returns the display form of the card, e.g. "10♦"
func (c Card) String() string {
	return Render(c)
}
