// internal/store/memory.go
//
// In-memory record of finished games for the current run.
//
// Characteristics:
//   - Stores Result values keyed by game ID in a map, plus insertion order.
//   - Used only from the game loop goroutine, so there is no locking.
//   - State is lost when the process exits; nothing is written to disk.
//   - Errors are returned for missing game IDs on Get().

package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get for an unknown game ID.
var ErrNotFound = errors.New("store: game not found")

// Result summarises one won game.
type Result struct {
	GameID   string
	Seed     uint64
	Attempts int
	Duration time.Duration
}

// Store keeps results of finished games.
type Store interface {
	// Save records a result. Saving the same game ID again replaces it.
	Save(r Result) error

	// Get retrieves a result by game ID.
	Get(id string) (Result, error)

	// Best returns the result with the fewest attempts, ties broken by the
	// shorter duration. ok is false while nothing has been saved.
	Best() (r Result, ok bool)

	// Len is the number of recorded games.
	Len() int
}

// memory is a map-based Store implementation.
type memory struct {
	results map[string]Result // keyed by Result.GameID
	order   []string          // game IDs in first-save order
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

// Save adds or replaces the result for r.GameID.
func (m *memory) Save(r Result) error {
	if r.GameID == "" {
		return errors.New("store: result without game id")
	}
	if _, ok := m.results[r.GameID]; !ok {
		m.order = append(m.order, r.GameID)
	}
	m.results[r.GameID] = r
	return nil
}

// Get looks up a result by game ID.
func (m *memory) Get(id string) (Result, error) {
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return Result{}, ErrNotFound
}

// Best scans in save order so the earliest of equal results wins.
func (m *memory) Best() (Result, bool) {
	var best Result
	found := false
	for _, id := range m.order {
		r := m.results[id]
		if !found || r.Attempts < best.Attempts ||
			(r.Attempts == best.Attempts && r.Duration < best.Duration) {
			best, found = r, true
		}
	}
	return best, found
}

func (m *memory) Len() int { return len(m.order) }
