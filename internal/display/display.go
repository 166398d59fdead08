package display

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// PerRow is the number of cards printed on each line
const PerRow = 4

// Printer writes cards as rank+glyph cells, optionally in color. The zero
// value prints plain text.
type Printer struct {
	color bool

	red   *colorize.Color
	black *colorize.Color
}

// NewPrinter returns a printer. Color output is forced on or off
// regardless of what fatih/color detects about the process's stdout.
func NewPrinter(useColor bool) *Printer {
	p := &Printer{
		color: useColor,
		red:   colorize.New(colorize.FgHiRed),
		black: colorize.New(colorize.Bold),
	}
	if useColor {
		p.red.EnableColor()
		p.black.EnableColor()
	} else {
		p.red.DisableColor()
		p.black.DisableColor()
	}
	return p
}

// Color reports whether the printer emits ANSI colors
func (p *Printer) Color() bool {
	return p.color
}

// Cell formats a single card: the rank right-aligned in two columns,
// then the suit glyph.
func (p *Printer) Cell(c card.Card) string {
	cell := fmt.Sprintf("%2s%s", c.Rank().String(), c.Suit().Glyph())
	if !p.color {
		return cell
	}
	if card.IsRed(c) {
		return p.red.Sprint(cell)
	}
	return p.black.Sprint(cell)
}

// Format returns the printed form of cards, PerRow to a line, each
// followed by a space.
func (p *Printer) Format(cards []card.Card) string {
	var buffer strings.Builder
	for i, c := range cards {
		buffer.WriteString(p.Cell(c))
		buffer.WriteString(" ")
		if (i+1)%PerRow == 0 {
			buffer.WriteString("\n")
		}
	}
	return buffer.String()
}

// PrintDeck writes the whole deck to w in a single write
func (p *Printer) PrintDeck(w io.Writer, d *deck.Deck) error {
	if _, err := io.WriteString(w, p.Format(d.Cards())); err != nil {
		return fmt.Errorf("error writing deck: %w", err)
	}
	return nil
}
