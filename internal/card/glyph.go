package card

import "strconv"

// Glyph returns the suit symbol
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// String returns the short rank text: "A", "2".."10", "J", "Q" or "K"
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if !r.Valid() {
		return "?"
	}
	return strconv.Itoa(int(r) + 1)
}

// Render returns the rank text followed by the suit glyph, e.g. "A♠"
func Render(c Card) string {
	return c.rank.String() + c.suit.Glyph()
}
