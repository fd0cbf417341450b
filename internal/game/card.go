// internal/game/card.go
//
// A single card on the Pexeso board.
// Responsibilities:
//   - Hold the hidden value and the revealed/matched flags.
//   - Hit-test logical click positions against the card's square.
//   - Render itself onto a Surface with a caller-supplied font face.
//
// Position and value are fixed at construction; only the flags change.

package game

import (
	"strconv"

	"golang.org/x/image/font"
)

// CardSize is the side length of a card in logical units.
const CardSize = 100

const (
	outlineWidth = 2
	labelOffsetX = 38 // label origin relative to the card's top-left corner
	labelOffsetY = 62 // baseline, not top edge
)

// Card is a positioned square with a hidden integer value.
type Card struct {
	x, y     float64
	value    int
	revealed bool
	matched  bool
}

// NewCard constructs a hidden, unmatched card at (x, y).
func NewCard(x, y float64, value int) Card {
	return Card{x: x, y: y, value: value}
}

// Contains reports whether p lies within the card's bounds.
// The left/top edges are inside, the right/bottom edges are not.
func (c Card) Contains(p Point) bool {
	return p.X >= c.x && p.X < c.x+CardSize &&
		p.Y >= c.y && p.Y < c.y+CardSize
}

// Toggle flips the revealed flag. Matched cards are inert.
func (c *Card) Toggle() {
	if !c.matched {
		c.revealed = !c.revealed
	}
}

// Visible returns the revealed flag.
func (c Card) Visible() bool { return c.revealed }

// Matched reports whether the card has been retired as part of a pair.
func (c Card) Matched() bool { return c.matched }

// SetMatched retires the card. Calling it twice has no further effect.
// Callers only match cards that are currently revealed.
func (c *Card) SetMatched() { c.matched = true }

// ValueEquals compares hidden values, not identity.
func (c Card) ValueEquals(other Card) bool { return c.value == other.value }

// Value returns the hidden value.
func (c Card) Value() int { return c.value }

// Position returns the card's top-left corner.
func (c Card) Position() Point { return Point{X: c.x, Y: c.y} }

// Render draws the card. The outline is always drawn; the value label only
// when the card is revealed or matched.
func (c Card) Render(s Surface, face font.Face, pal Palette) {
	fill := pal.CardFace
	if c.matched {
		fill = pal.Matched
	}
	s.FillRect(c.x, c.y, CardSize, CardSize, fill)
	s.StrokeRect(c.x, c.y, CardSize, CardSize, outlineWidth, pal.CardOutline)

	if c.revealed || c.matched {
		s.Text(strconv.Itoa(c.value), face, int(c.x)+labelOffsetX, int(c.y)+labelOffsetY, pal.Label)
	}
}
