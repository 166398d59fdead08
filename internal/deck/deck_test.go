package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/klondike/internal/card"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

// sequence always returns the next value in its list, modulo n
type sequence struct {
	values []int
	calls  []int
}

func (q *sequence) IntN(n int) int {
	v := q.values[len(q.calls)%len(q.values)] % n
	q.calls = append(q.calls, n)
	return v
}

func (s *DeckTestSuite) requirePermutation(d Deck) {
	seen := make(map[card.Card]int)
	for _, c := range d {
		seen[c]++
	}
	s.Require().Len(seen, Size, "every card should be present")
	for c, n := range seen {
		s.Require().Equal(1, n, "card %s should appear exactly once", c)
	}
}

func (s *DeckTestSuite) TestNewIsOrdered() {
	d := New()

	for i, c := range d {
		s.Equal(card.Suit(i/13), c.Suit(), "suit at %d", i)
		s.Equal(card.Rank(i%13), c.Rank(), "rank at %d", i)
	}
	s.Equal(card.MustNew(card.Clubs, card.Ace), d[0])
	s.Equal(card.MustNew(card.Hearts, card.Ace), d[13])
	s.Equal(card.MustNew(card.Spades, card.King), d[38])
	s.Equal(card.MustNew(card.Diamonds, card.King), d[51])
}

func (s *DeckTestSuite) TestNewCoversEveryCombination() {
	d := New()
	s.requirePermutation(d)

	suits := map[card.Suit]int{}
	ranks := map[card.Rank]int{}
	for _, c := range d {
		suits[c.Suit()]++
		ranks[c.Rank()]++
	}
	s.Len(suits, 4)
	s.Len(ranks, 13)
	for suit, n := range suits {
		s.Equal(13, n, "each suit should have 13 cards: %s", suit.Name())
	}
	for rank, n := range ranks {
		s.Equal(4, n, "each rank should have 4 cards: %s", rank.Name())
	}
}

func (s *DeckTestSuite) TestIndex() {
	d := New()
	s.Equal(0, d.Index(card.MustNew(card.Clubs, card.Ace)))
	s.Equal(22, d.Index(card.MustNew(card.Hearts, card.Ten)))
	s.Len(d.Cards(), Size)
}

func (s *DeckTestSuite) TestShuffleDrawsFromTopDown() {
	d := New()
	src := &sequence{values: []int{0}}

	Shuffle(&d, src)

	s.Require().Len(src.calls, Size-1)
	for k, n := range src.calls {
		s.Equal(Size-k, n, "draw %d should be bounded by i+1", k)
	}
	// Always swapping with position 0 rotates the deck left by one.
	s.Equal(card.MustNew(card.Clubs, card.Two), d[0])
	s.Equal(card.MustNew(card.Clubs, card.Three), d[1])
	s.Equal(card.MustNew(card.Diamonds, card.King), d[50])
	s.Equal(card.MustNew(card.Clubs, card.Ace), d[51])
	s.requirePermutation(d)
}

func (s *DeckTestSuite) TestShuffleIdentityWhenSwappingInPlace() {
	d := New()
	Shuffle(&d, upperBound{})
	s.Equal(New(), d)
}

type upperBound struct{}

func (upperBound) IntN(n int) int { return n - 1 }

func (s *DeckTestSuite) TestShuffleIsPermutation() {
	for seed := uint64(1); seed <= 20; seed++ {
		d := New()
		Shuffle(&d, NewSource(seed))
		s.requirePermutation(d)
	}
}

func (s *DeckTestSuite) TestShuffleSameSeedSameOrder() {
	d1, d2 := New(), New()
	Shuffle(&d1, NewSource(42))
	Shuffle(&d2, NewSource(42))
	s.Equal(d1, d2)

	d3 := New()
	Shuffle(&d3, NewSource(43))
	s.NotEqual(d1, d3)
	s.NotEqual(New(), d1)
}

func (s *DeckTestSuite) TestShuffleReseedingFrozenClock() {
	frozen := time.Date(2021, 10, 20, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return frozen }

	d1, d2 := New(), New()
	ShuffleReseeding(&d1, clock)
	ShuffleReseeding(&d2, clock)

	s.Equal(d1, d2, "the same second should produce the same order")
	s.requirePermutation(d1)
}

func (s *DeckTestSuite) TestShuffleReseedingUsesSecondResolution() {
	base := time.Date(2021, 10, 20, 12, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}

	d1 := New()
	ShuffleReseeding(&d1, clock)
	s.Equal(Size-1, calls, "clock should be read once per swap")

	d2 := New()
	ShuffleReseeding(&d2, func() time.Time { return base })
	s.Equal(d2, d1, "sub-second clock changes should not change the seed")
}
