// Package cart keeps the "My List" selection of each session and notifies
// interested views when it changes.
package cart

import (
	"context"
	"sync"

	"github.com/metinatakli/novaflix/internal/domain"
)

// MemoryStore keeps carts in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.Movie
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]domain.Movie),
	}
}

func (s *MemoryStore) Add(_ context.Context, sessionID string, movie domain.Movie) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.carts[sessionID] {
		if m.ID == movie.ID {
			return false, nil
		}
	}

	s.carts[sessionID] = append(s.carts[sessionID], movie)

	return true, nil
}

func (s *MemoryStore) Remove(_ context.Context, sessionID, movieID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := s.carts[sessionID]

	for i, m := range movies {
		if m.ID != movieID {
			continue
		}

		movies = append(movies[:i:i], movies[i+1:]...)
		if len(movies) == 0 {
			delete(s.carts, sessionID)
		} else {
			s.carts[sessionID] = movies
		}

		return true, nil
	}

	return false, nil
}

func (s *MemoryStore) List(_ context.Context, sessionID string) ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Movie{}, s.carts[sessionID]...), nil
}

func (s *MemoryStore) Count(_ context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.carts[sessionID]), nil
}
