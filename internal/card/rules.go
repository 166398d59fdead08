package card

// Placement rules for Klondike Solitaire. Ranks never wrap: nothing goes on
// a King in the foundation and nothing sits below an Ace on the tableau.

// IsBlack reports whether the card is a club or a spade
func IsBlack(c Card) bool {
	return c.suit == Clubs || c.suit == Spades
}

// IsRed reports whether the card is a heart or a diamond
func IsRed(c Card) bool {
	return c.suit == Hearts || c.suit == Diamonds
}

// IsOtherColor reports whether the two cards differ in color
func IsOtherColor(first, second Card) bool {
	return IsBlack(first) != IsBlack(second)
}

// IsNextRank reports whether higher is exactly one rank above lower
func IsNextRank(higher, lower Card) bool {
	return higher.rank == lower.rank+1
}

// IsSameSuit reports whether the two cards share a suit
func IsSameSuit(first, second Card) bool {
	return first.suit == second.suit
}

// CanBePlacedOnTableau reports whether child may be stacked on parent in a
// tableau column: opposite color and one rank lower than parent.
func CanBePlacedOnTableau(parent, child Card) bool {
	return IsOtherColor(parent, child) && IsNextRank(parent, child)
}

// CanBePlacedOnFoundation reports whether child may be stacked on parent in
// a foundation pile: same suit and one rank higher than parent.
func CanBePlacedOnFoundation(parent, child Card) bool {
	return IsSameSuit(parent, child) && IsNextRank(child, parent)
}
