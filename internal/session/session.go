// Package session keeps per-user capture dialogue state: the draft an
// expense message produced while the bot waits for a category choice.
package session

import (
	"sync"

	"expense-bot/internal/model"
)

// Store maps a user id to at most one pending draft. Starting a new
// capture before finishing the previous one silently overwrites it
// (last-write-wins); drafts have no expiry.
type Store struct {
	mu     sync.Mutex
	drafts map[int64]model.Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[int64]model.Draft)}
}

// Put stores the pending draft for a user, replacing any existing one.
func (s *Store) Put(userID int64, d model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = d
}

// Take removes and returns the user's pending draft, if any.
func (s *Store) Take(userID int64) (model.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[userID]
	if ok {
		delete(s.drafts, userID)
	}
	return d, ok
}
