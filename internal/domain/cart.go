package domain

import "context"

// CartStore keeps the "My List" selection of each session. Add and Remove
// are idempotent; the boolean result reports whether anything changed.
type CartStore interface {
	Add(ctx context.Context, sessionID string, movie Movie) (bool, error)
	Remove(ctx context.Context, sessionID, movieID string) (bool, error)
	List(ctx context.Context, sessionID string) ([]Movie, error)
	Count(ctx context.Context, sessionID string) (int, error)
}

type CartEventType string

const (
	CartMovieAdded   CartEventType = "added"
	CartMovieRemoved CartEventType = "removed"
)

type CartEvent struct {
	Type      CartEventType `json:"type"`
	SessionID string        `json:"-"`
	MovieID   string        `json:"movieId"`
	Count     int           `json:"count"`
}
