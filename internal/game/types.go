// internal/game/types.go
//
// Core type definitions for the Pexeso game engine.
// Defines:
//   - Point: a click position in the board's logical coordinate space.
//   - Phase: where the selection state machine currently is.
//   - Resolution / Outcome: what a single click did to the board.
//   - Surface: the drawing primitives the engine needs from a renderer.

package game

import (
	"image/color"
	"time"

	"golang.org/x/image/font"
)

// Point is a position in logical (not pixel) coordinates.
type Point struct {
	X, Y float64
}

// Phase is the state of the selection state machine.
// Won is not a phase: it is derived from the cards (see Board.Won).
type Phase int

const (
	PhaseIdle        Phase = iota // no card selected
	PhaseOneSelected              // one card revealed, waiting for its partner
	PhasePending                  // two cards revealed, waiting out RevealDelay
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneSelected:
		return "one_selected"
	case PhasePending:
		return "pending"
	default:
		return "unknown"
	}
}

// Resolution describes how a pending pair was settled during a click.
type Resolution string

const (
	ResolveNone     Resolution = "none"
	ResolveMatch    Resolution = "match"
	ResolveMismatch Resolution = "mismatch"
)

// Outcome reports the effects of one HandleClick call.
type Outcome struct {
	Gated    bool       // click arrived inside the reveal delay and was dropped
	Resolved Resolution // how the previous pending pair was settled, if at all
	Picked   int        // index of the newly revealed card, -1 if none
	Phase    Phase      // phase after the click
}

// Surface is the set of drawing primitives cards and boards render with.
// internal/ui implements it on top of an ebiten image; tests record calls.
type Surface interface {
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	Text(s string, face font.Face, x, y int, clr color.Color)
}

// Palette holds the colours a board is rendered with.
type Palette struct {
	CardFace    color.Color
	CardOutline color.Color
	Label       color.Color
	Matched     color.Color
}

// Clock returns the current time. Board uses it for the reveal delay.
type Clock func() time.Time
