// internal/game/board.go
//
// Board owns the cards of one Pexeso game and runs the selection state machine.
// Responsibilities:
//   - Deal 16 cards (values 1..8, twice each) onto a 4x4 grid.
//   - Turn click positions into reveal / match / mismatch transitions.
//   - Count attempts and matches; report the win predicate.
//
// State machine (driven only by HandleClick):
//   - idle         → one_selected  when an eligible card is clicked.
//   - one_selected → pending       when a second eligible card is clicked.
//   - pending      → (dropped)     while less than RevealDelay has passed.
//   - pending      → idle          on the next click after RevealDelay; the pair
//                                  is settled first, then the click is handled
//                                  as a fresh selection.
//
// Selections are indexes into the board's own card slice, never pointers.

package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/font"
)

// RevealDelay is how long a freshly completed pair stays on screen before
// the board accepts another click.
const RevealDelay = time.Second

// selection is the tagged state of the state machine.
// first is valid in one_selected and pending; second and since only in pending.
type selection struct {
	phase  Phase
	first  int
	second int
	since  time.Time
}

// Board holds the state of a single game.
type Board struct {
	ID   string // unique game identifier
	Seed uint64 // shuffle seed the deal was produced from

	cards    []Card
	sel      selection
	attempts int
	matches  int

	clock     Clock
	startedAt time.Time
	wonAt     time.Time
}

// Option configures a Board at construction.
type Option func(*Board)

// WithClock replaces the monotonic wall clock used for the reveal delay.
func WithClock(c Clock) Option {
	return func(b *Board) { b.clock = c }
}

// New deals a fresh board from seed.
func New(seed uint64, opts ...Option) *Board {
	b := newBoard(Deal(seed), opts...)
	b.Seed = seed
	return b
}

// newBoard lays out values in the given order. Tests use it to build
// boards with a known arrangement.
func newBoard(values []int, opts ...Option) *Board {
	b := &Board{
		ID:    uuid.NewString(),
		cards: layout(values),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.startedAt = b.clock()
	return b
}

// HandleClick applies one click at logical position p.
//
// A click inside the reveal delay of a pending pair changes nothing.
// Otherwise a pending pair is settled first, then the first card (in deal
// order) that is unmatched, hidden and under p is revealed.
func (b *Board) HandleClick(p Point) Outcome {
	out := Outcome{Resolved: ResolveNone, Picked: -1}

	if b.sel.phase == PhasePending {
		if b.clock().Sub(b.sel.since) < RevealDelay {
			out.Gated = true
			out.Phase = b.sel.phase
			return out
		}
		out.Resolved = b.resolve()
	}

	if i := b.eligibleAt(p); i >= 0 {
		b.cards[i].Toggle()
		out.Picked = i
		switch b.sel.phase {
		case PhaseIdle:
			b.sel = selection{phase: PhaseOneSelected, first: i}
		case PhaseOneSelected:
			b.sel.phase = PhasePending
			b.sel.second = i
			b.sel.since = b.clock()
		}
	}

	out.Phase = b.sel.phase
	return out
}

// resolve settles the pending pair and returns the board to idle.
func (b *Board) resolve() Resolution {
	first, second := &b.cards[b.sel.first], &b.cards[b.sel.second]
	b.attempts++

	res := ResolveMismatch
	if first.ValueEquals(*second) {
		first.SetMatched()
		second.SetMatched()
		b.matches++
		res = ResolveMatch
		if b.Won() {
			b.wonAt = b.clock()
		}
	} else {
		first.Toggle()
		second.Toggle()
	}

	b.sel = selection{phase: PhaseIdle}
	return res
}

// eligibleAt returns the index of the first card that can be selected at p,
// or -1.
func (b *Board) eligibleAt(p Point) int {
	for i := range b.cards {
		c := b.cards[i]
		if !c.Matched() && c.Contains(p) && !c.Visible() {
			return i
		}
	}
	return -1
}

// Won reports whether every card has been matched.
func (b *Board) Won() bool {
	for _, c := range b.cards {
		if !c.Matched() {
			return false
		}
	}
	return true
}

// Attempts is the number of settled pairs, matched or not.
func (b *Board) Attempts() int { return b.attempts }

// Matches is the number of pairs found so far.
func (b *Board) Matches() int { return b.matches }

// Phase reports the current phase of the selection state machine.
func (b *Board) Phase() Phase { return b.sel.phase }

// Cards returns a copy of the cards in deal order.
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Card returns a copy of the card at index i.
func (b *Board) Card(i int) Card { return b.cards[i] }

// Elapsed is the play time: up to the winning match once won, up to now otherwise.
func (b *Board) Elapsed() time.Duration {
	if !b.wonAt.IsZero() {
		return b.wonAt.Sub(b.startedAt)
	}
	return b.clock().Sub(b.startedAt)
}

// Render asks every card to draw itself with the shared face.
func (b *Board) Render(s Surface, face font.Face, pal Palette) {
	for _, c := range b.cards {
		c.Render(s, face, pal)
	}
}
