package store

import (
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	s := NewMemoryStore()
	r := Result{GameID: "g1", Seed: 9, Attempts: 12, Duration: 40 * time.Second}
	if err := s.Save(r); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Get("g1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != r {
		t.Fatalf("got %+v, want %+v", got, r)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_SaveRequiresID(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Save(Result{Attempts: 8}); err == nil {
		t.Fatal("expected error for empty game id")
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestMemoryStore_Best(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Best(); ok {
		t.Fatal("empty store reported a best result")
	}

	for _, r := range []Result{
		{GameID: "a", Attempts: 14, Duration: 30 * time.Second},
		{GameID: "b", Attempts: 10, Duration: 50 * time.Second},
		{GameID: "c", Attempts: 10, Duration: 45 * time.Second},
		{GameID: "d", Attempts: 10, Duration: 45 * time.Second},
	} {
		if err := s.Save(r); err != nil {
			t.Fatal(err)
		}
	}

	best, ok := s.Best()
	if !ok || best.GameID != "c" {
		t.Fatalf("best = %+v (ok=%v), want game c", best, ok)
	}
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
}

func TestMemoryStore_SaveReplaces(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Save(Result{GameID: "a", Attempts: 20})
	_ = s.Save(Result{GameID: "a", Attempts: 9})
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if r, _ := s.Get("a"); r.Attempts != 9 {
		t.Fatalf("attempts = %d, want 9", r.Attempts)
	}
}
