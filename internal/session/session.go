// internal/session/session.go
//
// Session is everything the window loop plays with between frames:
// the current board, the active theme and the results of games won so far.
//
// Responsibilities:
//   - Forward clicks to the board and log what they did.
//   - Record a won game exactly once in the results store.
//   - Deal new boards and cycle themes on request.
//   - Produce the overlay text drawn around the board.
//
// It has no rendering dependency, so the window layer stays a thin adapter.

package session

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pexeso/internal/game"
	"github.com/robalobadob/pexeso/internal/store"
	"github.com/robalobadob/pexeso/internal/theme"
)

// Session holds the state of one program run.
type Session struct {
	themes   []theme.Theme
	themeIdx int
	results  store.Store
	nextSeed func() uint64
	opts     []game.Option

	board    *game.Board
	recorded bool
}

// New starts a session and deals its first board.
// themes must not be empty; nextSeed is called once per deal.
func New(themes []theme.Theme, results store.Store, nextSeed func() uint64, opts ...game.Option) *Session {
	s := &Session{
		themes:   themes,
		results:  results,
		nextSeed: nextSeed,
		opts:     opts,
	}
	s.NewGame()
	return s
}

// NewGame replaces the board with a fresh deal.
func (s *Session) NewGame() {
	seed := s.nextSeed()
	s.board = game.New(seed, s.opts...)
	s.recorded = false
	log.Info().Str("gameId", s.board.ID).Uint64("seed", seed).Msg("new game")
}

// Click forwards a logical click position to the board.
func (s *Session) Click(p game.Point) game.Outcome {
	out := s.board.HandleClick(p)

	ev := log.Debug().
		Str("gameId", s.board.ID).
		Float64("x", p.X).
		Float64("y", p.Y).
		Bool("gated", out.Gated).
		Int("picked", out.Picked).
		Str("phase", out.Phase.String())
	if out.Resolved != game.ResolveNone {
		ev = ev.Str("resolved", string(out.Resolved)).
			Int("attempts", s.board.Attempts()).
			Int("matches", s.board.Matches())
	}
	ev.Msg("click")

	if s.board.Won() && !s.recorded {
		s.recordWin()
	}
	return out
}

func (s *Session) recordWin() {
	s.recorded = true
	r := store.Result{
		GameID:   s.board.ID,
		Seed:     s.board.Seed,
		Attempts: s.board.Attempts(),
		Duration: s.board.Elapsed(),
	}
	if err := s.results.Save(r); err != nil {
		log.Warn().Err(err).Str("gameId", r.GameID).Msg("save result")
		return
	}
	log.Info().
		Str("gameId", r.GameID).
		Int("attempts", r.Attempts).
		Dur("duration", r.Duration).
		Int("gamesWon", s.results.Len()).
		Msg("game won")
}

// NextTheme switches to the following theme, wrapping around.
func (s *Session) NextTheme() theme.Theme {
	s.themeIdx = (s.themeIdx + 1) % len(s.themes)
	t := s.themes[s.themeIdx]
	log.Debug().Str("theme", t.Name).Msg("theme changed")
	return t
}

// Theme is the active theme.
func (s *Session) Theme() theme.Theme { return s.themes[s.themeIdx] }

// Board is the current board.
func (s *Session) Board() *game.Board { return s.board }

// Score is the line drawn above the grid.
func (s *Session) Score() string {
	return fmt.Sprintf("Attempts: %d   Pairs: %d/%d", s.board.Attempts(), s.board.Matches(), game.Pairs)
}

// Footer is the line drawn below the grid.
func (s *Session) Footer() string {
	best := "Best: -"
	if r, ok := s.results.Best(); ok {
		best = fmt.Sprintf("Best: %d attempts", r.Attempts)
	}
	return fmt.Sprintf("%s   N new   T theme (%s)   Esc quit", best, s.Theme().Name)
}

// Banner is the win text, empty while the game is still running.
func (s *Session) Banner() string {
	if s.board.Won() {
		return "You Win!"
	}
	return ""
}
