package validator

import (
	"fmt"
	"math"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// MinTrials keeps the expected count of every position/card cell at five
// or more, the usual floor for a chi-square test.
const MinTrials = 5 * deck.Size

// DefaultMaxZ is the largest standardized chi-square statistic accepted as
// uniform.
const DefaultMaxZ = 5.0

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were recorded
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Deck *deck.Deck
	// RequireOrder checks the construction order (suit-major, rank-minor).
	RequireOrder bool
	Results      ValidationResults
}

func NewValidator(d *deck.Deck) *Validator {
	return &Validator{
		Deck:    d,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.Results = ValidationResults{}
	v.validateCards()
	v.validateUniqueness()
	v.validateCoverage()
	if v.RequireOrder {
		v.validateOrder()
	} else if *v.Deck == deck.New() {
		v.Results.Warnings = append(v.Results.Warnings,
			"deck is still in construction order")
	}

	return v.Results
}

// validateCards checks that every entry is a real suit/rank pair
func (v *Validator) validateCards() {
	for i, c := range v.Deck {
		if !c.Suit().Valid() || !c.Rank().Valid() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("position %d holds an invalid card", i))
		}
	}
}

// validateUniqueness reports every card that appears more than once
func (v *Validator) validateUniqueness() {
	first := make(map[card.Card]int, deck.Size)
	for i, c := range v.Deck {
		if at, ok := first[c]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card %s at positions %d and %d", c.Name(), at, i))
			continue
		}
		first[c] = i
	}
}

// validateCoverage reports every suit/rank combination missing from the deck
func (v *Validator) validateCoverage() {
	for s := card.Clubs; s <= card.Diamonds; s++ {
		for r := card.Ace; r <= card.King; r++ {
			c := card.MustNew(s, r)
			if v.Deck.Index(c) < 0 {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("missing card %s", c.Name()))
			}
		}
	}
}

// validateOrder checks position i holds suit i/13 and rank i%13
func (v *Validator) validateOrder() {
	for i, c := range v.Deck {
		if int(c.Suit()) != i/card.NumRanks || int(c.Rank()) != i%card.NumRanks {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("position %d holds %s, out of construction order", i, c.Name()))
		}
	}
}

// UniformityReport is the outcome of a position-frequency chi-square test
// over repeated shuffles.
type UniformityReport struct {
	Trials int
	// Broken counts trials whose result was not a permutation of the deck.
	Broken int
	// Statistic sums (observed-expected)^2/expected over every
	// position/card cell.
	Statistic float64
	// Mean is the expected value of Statistic for a uniform shuffle.
	Mean float64
	// Z standardizes Statistic against Mean.
	Z float64
}

// Uniform reports whether the shuffle looks uniform at the given Z bound
func (r UniformityReport) Uniform(maxZ float64) bool {
	return r.Broken == 0 && r.Z <= maxZ
}

// CheckUniformity shuffles a fresh ordered deck trials times and measures
// how evenly every card lands in every position.
func CheckUniformity(trials int, shuffle func(*deck.Deck)) (UniformityReport, error) {
	if trials < MinTrials {
		return UniformityReport{}, fmt.Errorf("need at least %d trials for a chi-square test, got %d", MinTrials, trials)
	}

	var counts [deck.Size][deck.Size]int
	report := UniformityReport{Trials: trials}
	ordered := deck.New()

	for t := 0; t < trials; t++ {
		d := ordered
		shuffle(&d)

		v := NewValidator(&d)
		if !v.Validate().Valid() {
			report.Broken++
			continue
		}
		for pos, c := range d {
			counts[pos][int(c.Suit())*card.NumRanks+int(c.Rank())]++
		}
	}

	valid := trials - report.Broken
	expected := float64(valid) / deck.Size
	if expected > 0 {
		for pos := range counts {
			for c := range counts[pos] {
				diff := float64(counts[pos][c]) - expected
				report.Statistic += diff * diff / expected
			}
		}
	}

	// Row and column sums are fixed, so the statistic is n/(n-1) times a
	// chi-square with (n-1)^2 degrees of freedom: mean n(n-1), sd n*sqrt2.
	report.Mean = float64(deck.Size * (deck.Size - 1))
	report.Z = (report.Statistic - report.Mean) / (deck.Size * math.Sqrt2)

	return report, nil
}
